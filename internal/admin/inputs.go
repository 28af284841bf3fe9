package admin

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/nexhomes/nexcms/internal/domain"
	"github.com/nexhomes/nexcms/internal/icons"
)

func validStatus[T interface{ Valid() bool }](value any) error {
	status, ok := value.(T)
	if !ok || !status.Valid() {
		return validation.NewError("validation_status_unknown", "status is not a known value")
	}
	return nil
}

func requiredID(value any) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return validation.NewError("validation_id_required", "id is required")
	}
	return nil
}

func knownIcon(value any) error {
	name, _ := value.(string)
	if name == "" || icons.Known(name) {
		return nil
	}
	return validation.NewError("validation_icon_unknown", "icon is not a renderable identifier")
}

// CreateProjectInput carries a new project. ProvisionalID, when set, names an
// optimistic record already rendered in the UI; the server-confirmed record
// replaces it in place.
type CreateProjectInput struct {
	ProvisionalID *uuid.UUID
	Title         string
	Location      string
	Status        domain.ProjectStatus
	Description   string
	Image         string
	Order         int
}

func (in CreateProjectInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Status, validation.Required, validation.By(validStatus[domain.ProjectStatus])),
	)
}

// UpdateProjectInput is a partial update; nil fields keep their current value.
type UpdateProjectInput struct {
	ID          uuid.UUID
	Title       *string
	Location    *string
	Status      *domain.ProjectStatus
	Description *string
	Image       *string
	Order       *int
}

func (in UpdateProjectInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ID, validation.By(requiredID)),
		validation.Field(&in.Status, validation.When(in.Status != nil, validation.By(func(any) error {
			return validStatus[domain.ProjectStatus](*in.Status)
		}))),
	)
}

// CreateServiceInput carries a new service offering.
type CreateServiceInput struct {
	ProvisionalID *uuid.UUID
	Title         string
	Description   string
	Icon          string
	Order         int
}

func (in CreateServiceInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.Icon, validation.By(knownIcon)),
	)
}

// UpdateServiceInput is a partial update; nil fields keep their current value.
type UpdateServiceInput struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	Icon        *string
	Order       *int
}

func (in UpdateServiceInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ID, validation.By(requiredID)),
		validation.Field(&in.Icon, validation.When(in.Icon != nil, validation.By(func(any) error {
			return knownIcon(*in.Icon)
		}))),
	)
}

// CreateTestimonialInput carries a new testimonial.
type CreateTestimonialInput struct {
	ProvisionalID *uuid.UUID
	Author        string
	Role          string
	Quote         string
	Rating        int
	Order         int
}

func (in CreateTestimonialInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Author, validation.Required),
		validation.Field(&in.Quote, validation.Required),
		validation.Field(&in.Rating, validation.Min(0), validation.Max(5)),
	)
}

// UpdateTestimonialInput is a partial update; nil fields keep their current value.
type UpdateTestimonialInput struct {
	ID     uuid.UUID
	Author *string
	Role   *string
	Quote  *string
	Rating *int
	Order  *int
}

func (in UpdateTestimonialInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ID, validation.By(requiredID)),
		validation.Field(&in.Rating, validation.When(in.Rating != nil, validation.By(func(any) error {
			if *in.Rating < 0 || *in.Rating > 5 {
				return validation.NewError("validation_rating_range", "rating must be between 0 and 5")
			}
			return nil
		}))),
	)
}

// CreateArticleInput carries a new news article. An empty slug is derived
// from the title.
type CreateArticleInput struct {
	ProvisionalID *uuid.UUID
	Slug          string
	Title         string
	Summary       *string
	Body          string
	Image         string
	PublishedAt   *time.Time
}

func (in CreateArticleInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Body, validation.Required),
	)
}

// UpdateArticleInput is a partial update; nil fields keep their current value.
type UpdateArticleInput struct {
	ID          uuid.UUID
	Slug        *string
	Title       *string
	Summary     *string
	Body        *string
	Image       *string
	PublishedAt *time.Time
}

func (in UpdateArticleInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ID, validation.By(requiredID)),
	)
}

// CreateJobInput carries a new job opening.
type CreateJobInput struct {
	ProvisionalID *uuid.UUID
	Title         string
	Department    string
	Location      string
	Type          string
	Description   string
	Open          bool
}

func (in CreateJobInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Description, validation.Required),
	)
}

// UpdateJobInput is a partial update; nil fields keep their current value.
type UpdateJobInput struct {
	ID          uuid.UUID
	Title       *string
	Department  *string
	Location    *string
	Type        *string
	Description *string
	Open        *bool
}

func (in UpdateJobInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ID, validation.By(requiredID)),
	)
}

// SaveDocumentInput replaces a page's content document wholesale.
type SaveDocumentInput struct {
	Page   domain.Page
	Fields map[string]any
}

func (in SaveDocumentInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Page, validation.Required, validation.By(func(any) error {
			if !domain.IsKnownPage(in.Page) {
				return validation.NewError("validation_page_unknown", "page is not a known page")
			}
			return nil
		})),
		validation.Field(&in.Fields, validation.Required),
	)
}

package admin

import (
	"context"
	"fmt"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/nexhomes/nexcms/internal/domain"
	"github.com/nexhomes/nexcms/internal/logging"
	"github.com/nexhomes/nexcms/internal/store"
	"github.com/nexhomes/nexcms/internal/validation"
	"github.com/nexhomes/nexcms/pkg/interfaces"
)

// RemoteClient is the backend surface the mutation flows call. Every method
// resolves only after the server has confirmed the mutation.
type RemoteClient interface {
	SaveDocument(ctx context.Context, doc *store.PageDocument) (*store.PageDocument, error)

	CreateProject(ctx context.Context, in *store.Project) (*store.Project, error)
	UpdateProject(ctx context.Context, in *store.Project) (*store.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error

	CreateService(ctx context.Context, in *store.ServiceOffering) (*store.ServiceOffering, error)
	UpdateService(ctx context.Context, in *store.ServiceOffering) (*store.ServiceOffering, error)
	DeleteService(ctx context.Context, id uuid.UUID) error

	CreateTestimonial(ctx context.Context, in *store.Testimonial) (*store.Testimonial, error)
	UpdateTestimonial(ctx context.Context, in *store.Testimonial) (*store.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error

	CreateArticle(ctx context.Context, in *store.NewsArticle) (*store.NewsArticle, error)
	UpdateArticle(ctx context.Context, in *store.NewsArticle) (*store.NewsArticle, error)
	DeleteArticle(ctx context.Context, id uuid.UUID) error

	CreateJob(ctx context.Context, in *store.JobOpening) (*store.JobOpening, error)
	UpdateJob(ctx context.Context, in *store.JobOpening) (*store.JobOpening, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error

	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*store.CareerApplication, error)
	DeleteApplication(ctx context.Context, id uuid.UUID) error

	UpdateInquiryStatus(ctx context.Context, id uuid.UUID, status domain.InquiryStatus) (*store.ContactInquiry, error)
	DeleteInquiry(ctx context.Context, id uuid.UUID) error
}

// Service runs the admin mutation flows: validate input, confirm the change
// with the backend, then patch the store, append one activity entry, and
// surface a notification. On any failure the store is left untouched.
type Service interface {
	SaveDocument(ctx context.Context, in SaveDocumentInput) (*store.PageDocument, error)

	CreateProject(ctx context.Context, in CreateProjectInput) (*store.Project, error)
	UpdateProject(ctx context.Context, in UpdateProjectInput) (*store.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error

	CreateService(ctx context.Context, in CreateServiceInput) (*store.ServiceOffering, error)
	UpdateService(ctx context.Context, in UpdateServiceInput) (*store.ServiceOffering, error)
	DeleteService(ctx context.Context, id uuid.UUID) error

	CreateTestimonial(ctx context.Context, in CreateTestimonialInput) (*store.Testimonial, error)
	UpdateTestimonial(ctx context.Context, in UpdateTestimonialInput) (*store.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error

	CreateArticle(ctx context.Context, in CreateArticleInput) (*store.NewsArticle, error)
	UpdateArticle(ctx context.Context, in UpdateArticleInput) (*store.NewsArticle, error)
	DeleteArticle(ctx context.Context, id uuid.UUID) error

	CreateJob(ctx context.Context, in CreateJobInput) (*store.JobOpening, error)
	UpdateJob(ctx context.Context, in UpdateJobInput) (*store.JobOpening, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error

	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*store.CareerApplication, error)
	DeleteApplication(ctx context.Context, id uuid.UUID) error

	UpdateInquiryStatus(ctx context.Context, id uuid.UUID, status domain.InquiryStatus) (*store.ContactInquiry, error)
	DeleteInquiry(ctx context.Context, id uuid.UUID) error
}

// ServiceOption customises the admin service.
type ServiceOption func(*service)

// WithLogger injects the service logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithNotifier surfaces mutation outcomes as transient notifications.
func WithNotifier(notifier interfaces.Notifier) ServiceOption {
	return func(s *service) {
		s.notifier = notifier
	}
}

// WithDocumentValidator enables schema validation of page documents before
// they are sent to the backend.
func WithDocumentValidator(validator *validation.DocumentValidator) ServiceOption {
	return func(s *service) {
		s.validator = validator
	}
}

type service struct {
	remote    RemoteClient
	store     *store.Store
	validator *validation.DocumentValidator
	notifier  interfaces.Notifier
	logger    interfaces.Logger
}

// NewService constructs the admin mutation service.
func NewService(remote RemoteClient, st *store.Store, opts ...ServiceOption) Service {
	s := &service{
		remote: remote,
		store:  st,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) notifySuccess(ctx context.Context, message string) {
	s.logger.Debug("admin.mutation_succeeded", "message", message)
	if s.notifier != nil {
		s.notifier.Success(ctx, message)
	}
}

func (s *service) notifyError(ctx context.Context, message string) {
	s.logger.Warn("admin.mutation_failed", "message", message)
	if s.notifier != nil {
		s.notifier.Error(ctx, message)
	}
}

// upsertByID replaces the record matching id, or appends when no match
// exists. Create flows use it to swap a provisional record for the
// server-confirmed one without changing its position.
func upsertByID[T any](records []*T, id uuid.UUID, getID func(*T) uuid.UUID, replacement *T) []*T {
	for i, record := range records {
		if getID(record) == id {
			out := append([]*T(nil), records...)
			out[i] = replacement
			return out
		}
	}
	return append(records, replacement)
}

// replaceByID replaces the record matching id and reports whether it existed.
func replaceByID[T any](records []*T, id uuid.UUID, getID func(*T) uuid.UUID, replacement *T) ([]*T, bool) {
	for i, record := range records {
		if getID(record) == id {
			out := append([]*T(nil), records...)
			out[i] = replacement
			return out, true
		}
	}
	return records, false
}

// removeByID removes the record matching id, preserving relative order of the
// survivors, and returns the removed record.
func removeByID[T any](records []*T, id uuid.UUID, getID func(*T) uuid.UUID) ([]*T, *T) {
	for i, record := range records {
		if getID(record) == id {
			out := append([]*T(nil), records[:i]...)
			return append(out, records[i+1:]...), record
		}
	}
	return records, nil
}

func (s *service) logActivity(ctx context.Context, activityType domain.ActivityType, entity domain.EntityKind, entityID uuid.UUID, name, description string) {
	s.store.AddActivity(ctx, store.ActivityEntry{
		Type:        activityType,
		Entity:      entity,
		EntityID:    entityID.String(),
		EntityName:  name,
		Description: description,
	})
}

// SaveDocument validates and replaces one page's content document.
func (s *service) SaveDocument(ctx context.Context, in SaveDocumentInput) (*store.PageDocument, error) {
	if err := in.Validate(); err != nil {
		return nil, wrapValidation(err, "save document")
	}
	if s.validator != nil {
		if err := s.validator.ValidateDocument(in.Page, in.Fields); err != nil {
			return nil, wrapValidation(err, "save document")
		}
	}

	current, _, _ := s.store.Document(in.Page)
	doc := &store.PageDocument{Page: in.Page, Fields: in.Fields}
	if current != nil {
		doc.Version = current.Version + 1
	}

	saved, err := s.remote.SaveDocument(ctx, doc)
	if err != nil {
		s.notifyError(ctx, "Failed to save page content")
		return nil, wrapRemote(err, "save document")
	}
	saved.Page = in.Page

	s.store.SetDocument(ctx, saved, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityUpdate, domain.EntityPage, uuid.Nil, string(in.Page),
		fmt.Sprintf("updated %s page content", in.Page))
	s.notifySuccess(ctx, "Page content saved")
	return saved, nil
}

func (s *service) CreateProject(ctx context.Context, in CreateProjectInput) (*store.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, wrapValidation(err, "create project")
	}

	payload := &store.Project{
		Title:       in.Title,
		Location:    in.Location,
		Status:      in.Status,
		Description: in.Description,
		Image:       in.Image,
		Order:       in.Order,
	}
	created, err := s.remote.CreateProject(ctx, payload)
	if err != nil {
		s.notifyError(ctx, "Failed to create project")
		return nil, wrapRemote(err, "create project")
	}

	records := s.store.Projects()
	if in.ProvisionalID != nil {
		records = upsertByID(records, *in.ProvisionalID, projectID, created)
	} else {
		records = append(records, created)
	}
	s.store.SetProjects(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityCreate, domain.EntityProject, created.ID, created.Title,
		fmt.Sprintf("created project %q", created.Title))
	s.notifySuccess(ctx, "Project created")
	return created, nil
}

func (s *service) UpdateProject(ctx context.Context, in UpdateProjectInput) (*store.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, wrapValidation(err, "update project")
	}

	records := s.store.Projects()
	current := findByID(records, in.ID, projectID)
	if current == nil {
		return nil, wrapValidation(ErrRecordNotFound, "update project")
	}

	next := *current
	applyString(&next.Title, in.Title)
	applyString(&next.Location, in.Location)
	applyString(&next.Description, in.Description)
	applyString(&next.Image, in.Image)
	if in.Status != nil {
		next.Status = *in.Status
	}
	if in.Order != nil {
		next.Order = *in.Order
	}

	updated, err := s.remote.UpdateProject(ctx, &next)
	if err != nil {
		s.notifyError(ctx, "Failed to update project")
		return nil, wrapRemote(err, "update project")
	}

	records, _ = replaceByID(records, in.ID, projectID, updated)
	s.store.SetProjects(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityUpdate, domain.EntityProject, updated.ID, updated.Title,
		fmt.Sprintf("updated project %q", updated.Title))
	s.notifySuccess(ctx, "Project updated")
	return updated, nil
}

func (s *service) DeleteProject(ctx context.Context, id uuid.UUID) error {
	records := s.store.Projects()
	current := findByID(records, id, projectID)
	if current == nil {
		return wrapValidation(ErrRecordNotFound, "delete project")
	}

	if err := s.remote.DeleteProject(ctx, id); err != nil {
		s.notifyError(ctx, "Failed to delete project")
		return wrapRemote(err, "delete project")
	}

	records, _ = removeByID(records, id, projectID)
	s.store.SetProjects(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityDelete, domain.EntityProject, id, current.Title,
		fmt.Sprintf("deleted project %q", current.Title))
	s.notifySuccess(ctx, "Project deleted")
	return nil
}

func (s *service) CreateService(ctx context.Context, in CreateServiceInput) (*store.ServiceOffering, error) {
	if err := in.Validate(); err != nil {
		return nil, wrapValidation(err, "create service")
	}

	payload := &store.ServiceOffering{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		Order:       in.Order,
	}
	created, err := s.remote.CreateService(ctx, payload)
	if err != nil {
		s.notifyError(ctx, "Failed to create service")
		return nil, wrapRemote(err, "create service")
	}

	records := s.store.Services()
	if in.ProvisionalID != nil {
		records = upsertByID(records, *in.ProvisionalID, serviceID, created)
	} else {
		records = append(records, created)
	}
	s.store.SetServices(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityCreate, domain.EntityService, created.ID, created.Title,
		fmt.Sprintf("created service %q", created.Title))
	s.notifySuccess(ctx, "Service created")
	return created, nil
}

func (s *service) UpdateService(ctx context.Context, in UpdateServiceInput) (*store.ServiceOffering, error) {
	if err := in.Validate(); err != nil {
		return nil, wrapValidation(err, "update service")
	}

	records := s.store.Services()
	current := findByID(records, in.ID, serviceID)
	if current == nil {
		return nil, wrapValidation(ErrRecordNotFound, "update service")
	}

	next := *current
	applyString(&next.Title, in.Title)
	applyString(&next.Description, in.Description)
	applyString(&next.Icon, in.Icon)
	if in.Order != nil {
		next.Order = *in.Order
	}

	updated, err := s.remote.UpdateService(ctx, &next)
	if err != nil {
		s.notifyError(ctx, "Failed to update service")
		return nil, wrapRemote(err, "update service")
	}

	records, _ = replaceByID(records, in.ID, serviceID, updated)
	s.store.SetServices(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityUpdate, domain.EntityService, updated.ID, updated.Title,
		fmt.Sprintf("updated service %q", updated.Title))
	s.notifySuccess(ctx, "Service updated")
	return updated, nil
}

func (s *service) DeleteService(ctx context.Context, id uuid.UUID) error {
	records := s.store.Services()
	current := findByID(records, id, serviceID)
	if current == nil {
		return wrapValidation(ErrRecordNotFound, "delete service")
	}

	if err := s.remote.DeleteService(ctx, id); err != nil {
		s.notifyError(ctx, "Failed to delete service")
		return wrapRemote(err, "delete service")
	}

	records, _ = removeByID(records, id, serviceID)
	s.store.SetServices(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityDelete, domain.EntityService, id, current.Title,
		fmt.Sprintf("deleted service %q", current.Title))
	s.notifySuccess(ctx, "Service deleted")
	return nil
}

func (s *service) CreateTestimonial(ctx context.Context, in CreateTestimonialInput) (*store.Testimonial, error) {
	if err := in.Validate(); err != nil {
		return nil, wrapValidation(err, "create testimonial")
	}

	payload := &store.Testimonial{
		Author: in.Author,
		Role:   in.Role,
		Quote:  in.Quote,
		Rating: in.Rating,
		Order:  in.Order,
	}
	created, err := s.remote.CreateTestimonial(ctx, payload)
	if err != nil {
		s.notifyError(ctx, "Failed to create testimonial")
		return nil, wrapRemote(err, "create testimonial")
	}

	records := s.store.Testimonials()
	if in.ProvisionalID != nil {
		records = upsertByID(records, *in.ProvisionalID, testimonialID, created)
	} else {
		records = append(records, created)
	}
	s.store.SetTestimonials(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityCreate, domain.EntityTestimonial, created.ID, created.Author,
		fmt.Sprintf("created testimonial by %q", created.Author))
	s.notifySuccess(ctx, "Testimonial created")
	return created, nil
}

func (s *service) UpdateTestimonial(ctx context.Context, in UpdateTestimonialInput) (*store.Testimonial, error) {
	if err := in.Validate(); err != nil {
		return nil, wrapValidation(err, "update testimonial")
	}

	records := s.store.Testimonials()
	current := findByID(records, in.ID, testimonialID)
	if current == nil {
		return nil, wrapValidation(ErrRecordNotFound, "update testimonial")
	}

	next := *current
	applyString(&next.Author, in.Author)
	applyString(&next.Role, in.Role)
	applyString(&next.Quote, in.Quote)
	if in.Rating != nil {
		next.Rating = *in.Rating
	}
	if in.Order != nil {
		next.Order = *in.Order
	}

	updated, err := s.remote.UpdateTestimonial(ctx, &next)
	if err != nil {
		s.notifyError(ctx, "Failed to update testimonial")
		return nil, wrapRemote(err, "update testimonial")
	}

	records, _ = replaceByID(records, in.ID, testimonialID, updated)
	s.store.SetTestimonials(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityUpdate, domain.EntityTestimonial, updated.ID, updated.Author,
		fmt.Sprintf("updated testimonial by %q", updated.Author))
	s.notifySuccess(ctx, "Testimonial updated")
	return updated, nil
}

func (s *service) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	records := s.store.Testimonials()
	current := findByID(records, id, testimonialID)
	if current == nil {
		return wrapValidation(ErrRecordNotFound, "delete testimonial")
	}

	if err := s.remote.DeleteTestimonial(ctx, id); err != nil {
		s.notifyError(ctx, "Failed to delete testimonial")
		return wrapRemote(err, "delete testimonial")
	}

	records, _ = removeByID(records, id, testimonialID)
	s.store.SetTestimonials(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityDelete, domain.EntityTestimonial, id, current.Author,
		fmt.Sprintf("deleted testimonial by %q", current.Author))
	s.notifySuccess(ctx, "Testimonial deleted")
	return nil
}

func (s *service) CreateArticle(ctx context.Context, in CreateArticleInput) (*store.NewsArticle, error) {
	if err := in.Validate(); err != nil {
		return nil, wrapValidation(err, "create article")
	}

	articleSlug := in.Slug
	if articleSlug == "" {
		normalized, err := slug.Normalize(in.Title)
		if err != nil {
			return nil, wrapValidation(err, "create article")
		}
		articleSlug = normalized
	} else if !slug.IsValid(articleSlug) {
		return nil, wrapValidation(fmt.Errorf("admin: slug %q is not valid", articleSlug), "create article")
	}

	payload := &store.NewsArticle{
		Slug:        articleSlug,
		Title:       in.Title,
		Summary:     in.Summary,
		Body:        in.Body,
		Image:       in.Image,
		PublishedAt: in.PublishedAt,
	}
	created, err := s.remote.CreateArticle(ctx, payload)
	if err != nil {
		s.notifyError(ctx, "Failed to create article")
		return nil, wrapRemote(err, "create article")
	}

	records := s.store.News()
	if in.ProvisionalID != nil {
		records = upsertByID(records, *in.ProvisionalID, articleID, created)
	} else {
		records = append(records, created)
	}
	s.store.SetNews(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityCreate, domain.EntityArticle, created.ID, created.Title,
		fmt.Sprintf("created article %q", created.Title))
	s.notifySuccess(ctx, "Article created")
	return created, nil
}

func (s *service) UpdateArticle(ctx context.Context, in UpdateArticleInput) (*store.NewsArticle, error) {
	if err := in.Validate(); err != nil {
		return nil, wrapValidation(err, "update article")
	}
	if in.Slug != nil && !slug.IsValid(*in.Slug) {
		return nil, wrapValidation(fmt.Errorf("admin: slug %q is not valid", *in.Slug), "update article")
	}

	records := s.store.News()
	current := findByID(records, in.ID, articleID)
	if current == nil {
		return nil, wrapValidation(ErrRecordNotFound, "update article")
	}

	next := *current
	applyString(&next.Slug, in.Slug)
	applyString(&next.Title, in.Title)
	applyString(&next.Body, in.Body)
	applyString(&next.Image, in.Image)
	if in.Summary != nil {
		next.Summary = in.Summary
	}
	if in.PublishedAt != nil {
		next.PublishedAt = in.PublishedAt
	}

	updated, err := s.remote.UpdateArticle(ctx, &next)
	if err != nil {
		s.notifyError(ctx, "Failed to update article")
		return nil, wrapRemote(err, "update article")
	}

	records, _ = replaceByID(records, in.ID, articleID, updated)
	s.store.SetNews(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityUpdate, domain.EntityArticle, updated.ID, updated.Title,
		fmt.Sprintf("updated article %q", updated.Title))
	s.notifySuccess(ctx, "Article updated")
	return updated, nil
}

func (s *service) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	records := s.store.News()
	current := findByID(records, id, articleID)
	if current == nil {
		return wrapValidation(ErrRecordNotFound, "delete article")
	}

	if err := s.remote.DeleteArticle(ctx, id); err != nil {
		s.notifyError(ctx, "Failed to delete article")
		return wrapRemote(err, "delete article")
	}

	records, _ = removeByID(records, id, articleID)
	s.store.SetNews(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityDelete, domain.EntityArticle, id, current.Title,
		fmt.Sprintf("deleted article %q", current.Title))
	s.notifySuccess(ctx, "Article deleted")
	return nil
}

func (s *service) CreateJob(ctx context.Context, in CreateJobInput) (*store.JobOpening, error) {
	if err := in.Validate(); err != nil {
		return nil, wrapValidation(err, "create job")
	}

	payload := &store.JobOpening{
		Title:       in.Title,
		Department:  in.Department,
		Location:    in.Location,
		Type:        in.Type,
		Description: in.Description,
		Open:        in.Open,
	}
	created, err := s.remote.CreateJob(ctx, payload)
	if err != nil {
		s.notifyError(ctx, "Failed to create job opening")
		return nil, wrapRemote(err, "create job")
	}

	records := s.store.Jobs()
	if in.ProvisionalID != nil {
		records = upsertByID(records, *in.ProvisionalID, jobID, created)
	} else {
		records = append(records, created)
	}
	s.store.SetJobs(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityCreate, domain.EntityJob, created.ID, created.Title,
		fmt.Sprintf("created job opening %q", created.Title))
	s.notifySuccess(ctx, "Job opening created")
	return created, nil
}

func (s *service) UpdateJob(ctx context.Context, in UpdateJobInput) (*store.JobOpening, error) {
	if err := in.Validate(); err != nil {
		return nil, wrapValidation(err, "update job")
	}

	records := s.store.Jobs()
	current := findByID(records, in.ID, jobID)
	if current == nil {
		return nil, wrapValidation(ErrRecordNotFound, "update job")
	}

	next := *current
	applyString(&next.Title, in.Title)
	applyString(&next.Department, in.Department)
	applyString(&next.Location, in.Location)
	applyString(&next.Type, in.Type)
	applyString(&next.Description, in.Description)
	if in.Open != nil {
		next.Open = *in.Open
	}

	updated, err := s.remote.UpdateJob(ctx, &next)
	if err != nil {
		s.notifyError(ctx, "Failed to update job opening")
		return nil, wrapRemote(err, "update job")
	}

	records, _ = replaceByID(records, in.ID, jobID, updated)
	s.store.SetJobs(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityUpdate, domain.EntityJob, updated.ID, updated.Title,
		fmt.Sprintf("updated job opening %q", updated.Title))
	s.notifySuccess(ctx, "Job opening updated")
	return updated, nil
}

func (s *service) DeleteJob(ctx context.Context, id uuid.UUID) error {
	records := s.store.Jobs()
	current := findByID(records, id, jobID)
	if current == nil {
		return wrapValidation(ErrRecordNotFound, "delete job")
	}

	if err := s.remote.DeleteJob(ctx, id); err != nil {
		s.notifyError(ctx, "Failed to delete job opening")
		return wrapRemote(err, "delete job")
	}

	records, _ = removeByID(records, id, jobID)
	s.store.SetJobs(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityDelete, domain.EntityJob, id, current.Title,
		fmt.Sprintf("deleted job opening %q", current.Title))
	s.notifySuccess(ctx, "Job opening deleted")
	return nil
}

// UpdateApplicationStatus moves one application to a new pipeline stage. Any
// transition between known stages is allowed; unknown values are rejected
// before the network call.
func (s *service) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*store.CareerApplication, error) {
	if !status.Valid() {
		return nil, wrapValidation(fmt.Errorf("%w: %q", ErrInvalidStatus, status), "update application status")
	}

	records := s.store.Applications()
	current := findByID(records, id, applicationID)
	if current == nil {
		return nil, wrapValidation(ErrRecordNotFound, "update application status")
	}

	updated, err := s.remote.UpdateApplicationStatus(ctx, id, status)
	if err != nil {
		s.notifyError(ctx, "Failed to update application status")
		return nil, wrapRemote(err, "update application status")
	}

	records, _ = replaceByID(records, id, applicationID, updated)
	s.store.SetApplications(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityStatusChange, domain.EntityApplication, id, updated.Name,
		fmt.Sprintf("changed application status to %q", status))
	s.notifySuccess(ctx, "Application status updated")
	return updated, nil
}

func (s *service) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	records := s.store.Applications()
	current := findByID(records, id, applicationID)
	if current == nil {
		return wrapValidation(ErrRecordNotFound, "delete application")
	}

	if err := s.remote.DeleteApplication(ctx, id); err != nil {
		s.notifyError(ctx, "Failed to delete application")
		return wrapRemote(err, "delete application")
	}

	records, _ = removeByID(records, id, applicationID)
	s.store.SetApplications(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityDelete, domain.EntityApplication, id, current.Name,
		fmt.Sprintf("deleted application from %q", current.Name))
	s.notifySuccess(ctx, "Application deleted")
	return nil
}

// UpdateInquiryStatus moves one inquiry to a new follow-up state.
func (s *service) UpdateInquiryStatus(ctx context.Context, id uuid.UUID, status domain.InquiryStatus) (*store.ContactInquiry, error) {
	if !status.Valid() {
		return nil, wrapValidation(fmt.Errorf("%w: %q", ErrInvalidStatus, status), "update inquiry status")
	}

	records := s.store.Inquiries()
	current := findByID(records, id, inquiryID)
	if current == nil {
		return nil, wrapValidation(ErrRecordNotFound, "update inquiry status")
	}

	updated, err := s.remote.UpdateInquiryStatus(ctx, id, status)
	if err != nil {
		s.notifyError(ctx, "Failed to update inquiry status")
		return nil, wrapRemote(err, "update inquiry status")
	}

	records, _ = replaceByID(records, id, inquiryID, updated)
	s.store.SetInquiries(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityStatusChange, domain.EntityInquiry, id, updated.Name,
		fmt.Sprintf("changed inquiry status to %q", status))
	s.notifySuccess(ctx, "Inquiry status updated")
	return updated, nil
}

func (s *service) DeleteInquiry(ctx context.Context, id uuid.UUID) error {
	records := s.store.Inquiries()
	current := findByID(records, id, inquiryID)
	if current == nil {
		return wrapValidation(ErrRecordNotFound, "delete inquiry")
	}

	if err := s.remote.DeleteInquiry(ctx, id); err != nil {
		s.notifyError(ctx, "Failed to delete inquiry")
		return wrapRemote(err, "delete inquiry")
	}

	records, _ = removeByID(records, id, inquiryID)
	s.store.SetInquiries(ctx, records, domain.SourceServer)
	s.logActivity(ctx, domain.ActivityDelete, domain.EntityInquiry, id, current.Name,
		fmt.Sprintf("deleted inquiry from %q", current.Name))
	s.notifySuccess(ctx, "Inquiry deleted")
	return nil
}

func findByID[T any](records []*T, id uuid.UUID, getID func(*T) uuid.UUID) *T {
	for _, record := range records {
		if getID(record) == id {
			return record
		}
	}
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func projectID(p *store.Project) uuid.UUID               { return p.ID }
func serviceID(s *store.ServiceOffering) uuid.UUID       { return s.ID }
func testimonialID(t *store.Testimonial) uuid.UUID       { return t.ID }
func articleID(a *store.NewsArticle) uuid.UUID           { return a.ID }
func jobID(j *store.JobOpening) uuid.UUID                { return j.ID }
func applicationID(a *store.CareerApplication) uuid.UUID { return a.ID }
func inquiryID(i *store.ContactInquiry) uuid.UUID        { return i.ID }

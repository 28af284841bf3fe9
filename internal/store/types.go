package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/nexhomes/nexcms/internal/domain"
)

// PageDocument is the editable content bundle for one page. Documents are
// replaced wholesale; no partial or merged state is ever stored.
type PageDocument struct {
	Page      domain.Page    `json:"page"`
	Fields    map[string]any `json:"fields"`
	Version   int            `json:"version"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Project is one development project shown on the projects page.
type Project struct {
	ID          uuid.UUID            `json:"id"`
	Title       string               `json:"title"`
	Location    string               `json:"location"`
	Status      domain.ProjectStatus `json:"status"`
	Description string               `json:"description"`
	Image       string               `json:"image,omitempty"`
	Order       int                  `json:"order"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// ServiceOffering is one entry in the services listing.
type ServiceOffering struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon,omitempty"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Testimonial is a customer quote rendered on the home page carousel.
type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Role      string    `json:"role,omitempty"`
	Quote     string    `json:"quote"`
	Rating    int       `json:"rating,omitempty"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewsArticle is a media/news entry; Body holds Markdown authored in the admin.
type NewsArticle struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     *string    `json:"summary,omitempty"`
	Body        string     `json:"body"`
	Image       string     `json:"image,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// JobOpening is a position advertised on the career page.
type JobOpening struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Department  string    `json:"department,omitempty"`
	Location    string    `json:"location,omitempty"`
	Type        string    `json:"type,omitempty"`
	Description string    `json:"description"`
	Open        bool      `json:"open"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CareerApplication is a submitted application tracked through the admin.
type CareerApplication struct {
	ID        uuid.UUID                `json:"id"`
	JobID     *uuid.UUID               `json:"job_id,omitempty"`
	Name      string                   `json:"name"`
	Email     string                   `json:"email"`
	Phone     string                   `json:"phone,omitempty"`
	ResumeURL string                   `json:"resume_url,omitempty"`
	Status    domain.ApplicationStatus `json:"status"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

// ContactInquiry is a message submitted through the contact page.
type ContactInquiry struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Phone     string               `json:"phone,omitempty"`
	Subject   string               `json:"subject,omitempty"`
	Message   string               `json:"message"`
	Status    domain.InquiryStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// ActivityEntry is an immutable record of one admin mutation. Entries are
// prepended (most recent first) and never edited after creation.
type ActivityEntry struct {
	ID          uuid.UUID           `json:"id"`
	Type        domain.ActivityType `json:"type"`
	Entity      domain.EntityKind   `json:"entity"`
	EntityID    string              `json:"entity_id"`
	EntityName  string              `json:"entity_name,omitempty"`
	Description string              `json:"description"`
	CreatedAt   time.Time           `json:"created_at"`
}

// Snapshot is the persisted JSON image of a store slice, keyed by a stable
// snapshot name such as "nex-cms-store" or "nex-admin-auth".
type Snapshot struct {
	bun.BaseModel `bun:"table:snapshots,alias:sn"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Key       string    `bun:"key,notnull,unique" json:"key"`
	Data      []byte    `bun:"data,notnull" json:"data"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

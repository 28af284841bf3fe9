package domain

import "strings"

// Page identifies one CMS-editable page document.
type Page string

const (
	PageHome       Page = "home"
	PageAbout      Page = "about"
	PageServices   Page = "services"
	PageProducts   Page = "products"
	PageInvestment Page = "investment"
	PageLandWanted Page = "land_wanted"
	PageCareer     Page = "career"
	PageContact    Page = "contact"
	PageBusiness   Page = "business"
	PageMedia      Page = "media"
)

// KnownPages returns every page the store seeds and resolvers serve.
func KnownPages() []Page {
	return []Page{
		PageHome,
		PageAbout,
		PageServices,
		PageProducts,
		PageInvestment,
		PageLandWanted,
		PageCareer,
		PageContact,
		PageBusiness,
		PageMedia,
	}
}

// IsKnownPage reports whether the supplied value names a seeded page.
func IsKnownPage(page Page) bool {
	for _, known := range KnownPages() {
		if known == page {
			return true
		}
	}
	return false
}

// ParsePage normalizes a raw page identifier.
func ParsePage(value string) (Page, bool) {
	page := Page(strings.ToLower(strings.TrimSpace(value)))
	if IsKnownPage(page) {
		return page, true
	}
	return "", false
}

// EntityKind names a CMS-managed collection for activity reporting.
type EntityKind string

const (
	EntityProject     EntityKind = "project"
	EntityService     EntityKind = "service"
	EntityTestimonial EntityKind = "testimonial"
	EntityArticle     EntityKind = "news_article"
	EntityJob         EntityKind = "job_opening"
	EntityApplication EntityKind = "application"
	EntityInquiry     EntityKind = "inquiry"
	EntityPage        EntityKind = "page"
)

// ActivityType enumerates admin mutations captured in the activity log.
type ActivityType string

const (
	ActivityCreate       ActivityType = "create"
	ActivityUpdate       ActivityType = "update"
	ActivityDelete       ActivityType = "delete"
	ActivityStatusChange ActivityType = "status_change"
)

// Source tags which tier produced the value a resolver currently serves.
type Source string

const (
	SourceDefault   Source = "default"
	SourcePersisted Source = "persisted"
	SourceServer    Source = "server"
)

// ApplicationStatus tracks the review pipeline for career applications.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewed    ApplicationStatus = "reviewed"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
)

// Valid reports whether the status names a known pipeline stage. Transitions
// between known stages are unconstrained; unknown values are rejected.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationShortlisted, ApplicationRejected, ApplicationHired:
		return true
	}
	return false
}

// InquiryStatus tracks follow-up state for contact inquiries.
type InquiryStatus string

const (
	InquiryNew        InquiryStatus = "new"
	InquiryContacted  InquiryStatus = "contacted"
	InquiryInProgress InquiryStatus = "in_progress"
	InquiryClosed     InquiryStatus = "closed"
)

// Valid reports whether the status names a known follow-up state.
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryNew, InquiryContacted, InquiryInProgress, InquiryClosed:
		return true
	}
	return false
}

// ProjectStatus classifies development projects for public listings.
type ProjectStatus string

const (
	ProjectOngoing   ProjectStatus = "ongoing"
	ProjectCompleted ProjectStatus = "completed"
	ProjectUpcoming  ProjectStatus = "upcoming"
)

// Valid reports whether the status names a known project phase.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectOngoing, ProjectCompleted, ProjectUpcoming:
		return true
	}
	return false
}

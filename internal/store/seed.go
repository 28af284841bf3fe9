package store

import (
	"github.com/google/uuid"

	"github.com/nexhomes/nexcms/internal/domain"
)

// seedLocked populates every slice with the bundled defaults so pages render
// meaningfully before any network call resolves, or if none ever does.
func (s *Store) seedLocked() {
	for page, doc := range DefaultDocuments() {
		s.documents[page] = doc
		s.docSources[page] = domain.SourceDefault
	}

	s.projects = defaultProjects()
	s.services = defaultServices()
	s.testimonials = defaultTestimonials()
	s.news = defaultNews()
	s.jobs = defaultJobs()
	s.applications = []*CareerApplication{}
	s.inquiries = []*ContactInquiry{}

	for _, kind := range []domain.EntityKind{
		domain.EntityProject,
		domain.EntityService,
		domain.EntityTestimonial,
		domain.EntityArticle,
		domain.EntityJob,
		domain.EntityApplication,
		domain.EntityInquiry,
	} {
		s.colSources[kind] = domain.SourceDefault
	}
}

// DefaultDocuments returns the bundled page documents used to seed the store.
func DefaultDocuments() map[domain.Page]*PageDocument {
	docs := map[domain.Page]map[string]any{
		domain.PageHome: {
			"hero": map[string]any{
				"title":    "Building Homes, Building Trust",
				"subtitle": "Premium residential and commercial developments",
				"cta":      "Explore Projects",
			},
			"highlights": []any{
				map[string]any{"title": "20+ Years", "detail": "of development experience"},
				map[string]any{"title": "45 Projects", "detail": "delivered on schedule"},
				map[string]any{"title": "3,000 Families", "detail": "living in our communities"},
			},
		},
		domain.PageAbout: {
			"hero": map[string]any{
				"title":    "Our Story",
				"subtitle": "Two decades of shaping skylines",
			},
			"mission": "Deliver lasting value through quality construction and honest dealing.",
			"vision":  "Be the most trusted developer in the region.",
		},
		domain.PageServices: {
			"hero": map[string]any{
				"title":    "What We Do",
				"subtitle": "End-to-end real estate services",
			},
		},
		domain.PageProducts: {
			"hero": map[string]any{
				"title":    "Our Products",
				"subtitle": "Apartments, plots and commercial space",
			},
		},
		domain.PageInvestment: {
			"hero": map[string]any{
				"title":    "Invest With Us",
				"subtitle": "Transparent returns on landmark projects",
			},
			"steps": []any{
				"Schedule a consultation",
				"Review the project portfolio",
				"Sign and track your investment",
			},
		},
		domain.PageLandWanted: {
			"hero": map[string]any{
				"title":    "Land Wanted",
				"subtitle": "Partner with us on your plot",
			},
			"criteria": []any{
				"Clear title documentation",
				"Minimum 10 katha in metropolitan areas",
			},
		},
		domain.PageCareer: {
			"hero": map[string]any{
				"title":    "Careers",
				"subtitle": "Build your career while we build the city",
			},
		},
		domain.PageContact: {
			"hero": map[string]any{
				"title": "Get In Touch",
			},
			"office": map[string]any{
				"address": "House 12, Road 5, Gulshan",
				"phone":   "+880 1700 000000",
				"email":   "info@nexhomes.example",
			},
		},
		domain.PageBusiness: {
			"hero": map[string]any{
				"title":    "Our Businesses",
				"subtitle": "Development, construction and property management",
			},
		},
		domain.PageMedia: {
			"hero": map[string]any{
				"title":    "News & Media",
				"subtitle": "Announcements, milestones and press",
			},
		},
	}

	out := make(map[domain.Page]*PageDocument, len(docs))
	for page, fields := range docs {
		out[page] = &PageDocument{
			Page:    page,
			Fields:  fields,
			Version: 1,
		}
	}
	return out
}

func defaultProjects() []*Project {
	return []*Project{
		{
			ID:          seedID("c5b8d1f0-0001-4000-8000-000000000001"),
			Title:       "Nex Lake Residences",
			Location:    "Gulshan",
			Status:      domain.ProjectOngoing,
			Description: "Lakeside apartments with rooftop amenities.",
			Order:       1,
		},
		{
			ID:          seedID("c5b8d1f0-0001-4000-8000-000000000002"),
			Title:       "Nex Business Tower",
			Location:    "Motijheel",
			Status:      domain.ProjectCompleted,
			Description: "Fourteen floors of premium commercial space.",
			Order:       2,
		},
		{
			ID:          seedID("c5b8d1f0-0001-4000-8000-000000000003"),
			Title:       "Nex Green Valley",
			Location:    "Purbachal",
			Status:      domain.ProjectUpcoming,
			Description: "Gated plot development with parks and schools.",
			Order:       3,
		},
	}
}

func defaultServices() []*ServiceOffering {
	return []*ServiceOffering{
		{
			ID:          seedID("c5b8d1f0-0002-4000-8000-000000000001"),
			Title:       "Property Development",
			Description: "Residential and commercial projects from design to handover.",
			Icon:        "building",
			Order:       1,
		},
		{
			ID:          seedID("c5b8d1f0-0002-4000-8000-000000000002"),
			Title:       "Construction Management",
			Description: "Quality-controlled construction with in-house engineering.",
			Icon:        "hard-hat",
			Order:       2,
		},
		{
			ID:          seedID("c5b8d1f0-0002-4000-8000-000000000003"),
			Title:       "Property Management",
			Description: "Maintenance and tenancy services for delivered buildings.",
			Icon:        "key",
			Order:       3,
		},
		{
			ID:          seedID("c5b8d1f0-0002-4000-8000-000000000004"),
			Title:       "Investment Advisory",
			Description: "Guidance on plots, flats and joint ventures.",
			Icon:        "chart",
			Order:       4,
		},
	}
}

func defaultTestimonials() []*Testimonial {
	return []*Testimonial{
		{
			ID:     seedID("c5b8d1f0-0003-4000-8000-000000000001"),
			Author: "Farhana Rahman",
			Role:   "Homeowner, Nex Lake Residences",
			Quote:  "Handover was on the promised date, down to the week.",
			Rating: 5,
			Order:  1,
		},
		{
			ID:     seedID("c5b8d1f0-0003-4000-8000-000000000002"),
			Author: "Imran Chowdhury",
			Role:   "Tenant, Nex Business Tower",
			Quote:  "The building management is the best we have worked with.",
			Rating: 5,
			Order:  2,
		},
		{
			ID:     seedID("c5b8d1f0-0003-4000-8000-000000000003"),
			Author: "Sadia Karim",
			Role:   "Investor",
			Quote:  "Quarterly reports arrive without asking. Rare in this market.",
			Rating: 4,
			Order:  3,
		},
	}
}

func defaultNews() []*NewsArticle {
	return []*NewsArticle{
		{
			ID:    seedID("c5b8d1f0-0004-4000-8000-000000000001"),
			Slug:  "nex-green-valley-announced",
			Title: "Nex Green Valley announced",
			Body:  "We are opening bookings for **Nex Green Valley**, our largest plot development to date.",
		},
		{
			ID:    seedID("c5b8d1f0-0004-4000-8000-000000000002"),
			Slug:  "lake-residences-handover",
			Title: "Lake Residences handover complete",
			Body:  "All 96 apartments of Nex Lake Residences have been handed over to their owners.",
		},
	}
}

func defaultJobs() []*JobOpening {
	return []*JobOpening{
		{
			ID:          seedID("c5b8d1f0-0005-4000-8000-000000000001"),
			Title:       "Site Engineer",
			Department:  "Engineering",
			Location:    "Dhaka",
			Type:        "full_time",
			Description: "Supervise on-site construction quality and schedules.",
			Open:        true,
		},
		{
			ID:          seedID("c5b8d1f0-0005-4000-8000-000000000002"),
			Title:       "Sales Executive",
			Department:  "Sales",
			Location:    "Dhaka",
			Type:        "full_time",
			Description: "Guide clients through bookings and documentation.",
			Open:        true,
		},
	}
}

// seedID keeps bundled records stable across restarts so snapshots and seeds
// agree on identity.
func seedID(value string) uuid.UUID {
	return uuid.MustParse(value)
}

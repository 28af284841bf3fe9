package store

import "github.com/nexhomes/nexcms/internal/util"

func cloneDocument(src *PageDocument) *PageDocument {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Fields = util.CloneMap(src.Fields)
	return &copied
}

func cloneProjects(src []*Project) []*Project {
	if src == nil {
		return nil
	}
	out := make([]*Project, 0, len(src))
	for _, rec := range src {
		if rec == nil {
			continue
		}
		copied := *rec
		out = append(out, &copied)
	}
	return out
}

func cloneServices(src []*ServiceOffering) []*ServiceOffering {
	if src == nil {
		return nil
	}
	out := make([]*ServiceOffering, 0, len(src))
	for _, rec := range src {
		if rec == nil {
			continue
		}
		copied := *rec
		out = append(out, &copied)
	}
	return out
}

func cloneTestimonials(src []*Testimonial) []*Testimonial {
	if src == nil {
		return nil
	}
	out := make([]*Testimonial, 0, len(src))
	for _, rec := range src {
		if rec == nil {
			continue
		}
		copied := *rec
		out = append(out, &copied)
	}
	return out
}

func cloneArticles(src []*NewsArticle) []*NewsArticle {
	if src == nil {
		return nil
	}
	out := make([]*NewsArticle, 0, len(src))
	for _, rec := range src {
		if rec == nil {
			continue
		}
		copied := *rec
		copied.Summary = util.CloneStringPtr(rec.Summary)
		copied.PublishedAt = util.CloneTimePtr(rec.PublishedAt)
		out = append(out, &copied)
	}
	return out
}

func cloneJobs(src []*JobOpening) []*JobOpening {
	if src == nil {
		return nil
	}
	out := make([]*JobOpening, 0, len(src))
	for _, rec := range src {
		if rec == nil {
			continue
		}
		copied := *rec
		out = append(out, &copied)
	}
	return out
}

func cloneApplications(src []*CareerApplication) []*CareerApplication {
	if src == nil {
		return nil
	}
	out := make([]*CareerApplication, 0, len(src))
	for _, rec := range src {
		if rec == nil {
			continue
		}
		copied := *rec
		if rec.JobID != nil {
			jobID := *rec.JobID
			copied.JobID = &jobID
		}
		out = append(out, &copied)
	}
	return out
}

func cloneInquiries(src []*ContactInquiry) []*ContactInquiry {
	if src == nil {
		return nil
	}
	out := make([]*ContactInquiry, 0, len(src))
	for _, rec := range src {
		if rec == nil {
			continue
		}
		copied := *rec
		out = append(out, &copied)
	}
	return out
}

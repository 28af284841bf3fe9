package validation

import "github.com/nexhomes/nexcms/internal/domain"

// heroSection is shared by every page: a required title plus optional
// subtitle and call-to-action text.
func heroSection() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"title"},
		"properties": map[string]any{
			"title":    map[string]any{"type": "string", "minLength": 1},
			"subtitle": map[string]any{"type": "string"},
			"cta":      map[string]any{"type": "string"},
		},
	}
}

func pageSchema(extra map[string]any, required ...string) map[string]any {
	properties := map[string]any{"hero": heroSection()}
	for name, schema := range extra {
		properties[name] = schema
	}
	req := []any{"hero"}
	for _, name := range required {
		req = append(req, name)
	}
	return map[string]any{
		"type":       "object",
		"required":   req,
		"properties": properties,
	}
}

// pageSchemas is the de facto contract between content authoring and page
// rendering; shapes here must stay stable across versions.
var pageSchemas = map[domain.Page]map[string]any{
	domain.PageHome: pageSchema(map[string]any{
		"highlights": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"title"},
				"properties": map[string]any{
					"title":  map[string]any{"type": "string", "minLength": 1},
					"detail": map[string]any{"type": "string"},
				},
			},
		},
	}),
	domain.PageAbout: pageSchema(map[string]any{
		"mission": map[string]any{"type": "string"},
		"vision":  map[string]any{"type": "string"},
	}),
	domain.PageServices: pageSchema(nil),
	domain.PageProducts: pageSchema(nil),
	domain.PageInvestment: pageSchema(map[string]any{
		"steps": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	}),
	domain.PageLandWanted: pageSchema(map[string]any{
		"criteria": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	}),
	domain.PageCareer:  pageSchema(nil),
	domain.PageContact: pageSchema(map[string]any{
		"office": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"address": map[string]any{"type": "string"},
				"phone":   map[string]any{"type": "string"},
				"email":   map[string]any{"type": "string"},
			},
		},
	}),
	domain.PageBusiness: pageSchema(nil),
	domain.PageMedia:    pageSchema(nil),
}

package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nexhomes/nexcms/internal/domain"
)

var (
	// ErrSchemaInvalid reports a schema that does not compile.
	ErrSchemaInvalid = errors.New("validation: schema invalid")
	// ErrDocumentInvalid reports a document that failed its page schema.
	ErrDocumentInvalid = errors.New("validation: document invalid")
	// ErrUnknownPage reports a page with no registered schema.
	ErrUnknownPage = errors.New("validation: unknown page")
)

// Issue captures a single validation failure at one document location.
type Issue struct {
	Location string
	Message  string
}

// DocumentError surfaces every schema violation found in one document.
type DocumentError struct {
	Page   domain.Page
	Issues []Issue
}

func (e *DocumentError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return fmt.Sprintf("document %q: %s", e.Page, strings.Join(parts, "; "))
}

func (e *DocumentError) Unwrap() error {
	return ErrDocumentInvalid
}

// Issues extracts structured issues from a validation error, or wraps an
// arbitrary error as a single anonymous issue.
func Issues(err error) []Issue {
	if err == nil {
		return nil
	}
	var docErr *DocumentError
	if errors.As(err, &docErr) && docErr != nil {
		return docErr.Issues
	}
	return []Issue{{Message: err.Error()}}
}

// DocumentValidator checks page documents against per-page JSON schemas
// before they are allowed through an admin save. Schemas are compiled once at
// construction; validation itself is read-only and safe for concurrent use.
type DocumentValidator struct {
	schemas map[domain.Page]*jsonschema.Schema
}

// NewDocumentValidator compiles the bundled schema for every known page.
func NewDocumentValidator() (*DocumentValidator, error) {
	v := &DocumentValidator{schemas: make(map[domain.Page]*jsonschema.Schema, len(pageSchemas))}
	for page, schema := range pageSchemas {
		compiled, err := compileSchema(schema)
		if err != nil {
			return nil, fmt.Errorf("%w: page %q: %v", ErrSchemaInvalid, page, err)
		}
		v.schemas[page] = compiled
	}
	return v, nil
}

// ValidateDocument checks one document's fields against its page schema.
func (v *DocumentValidator) ValidateDocument(page domain.Page, fields map[string]any) error {
	schema, ok := v.schemas[page]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}
	if err := schema.Validate(normalize(fields)); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &DocumentError{Page: page, Issues: collectIssues(validationErr)}
		}
		return &DocumentError{Page: page, Issues: []Issue{{Message: err.Error()}}}
	}
	return nil
}

func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

// normalize round-trips fields through JSON so typed Go values take the
// shapes the schema engine expects.
func normalize(fields map[string]any) any {
	encoded, err := json.Marshal(fields)
	if err != nil {
		return fields
	}
	var out any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return fields
	}
	return out
}

func collectIssues(err *jsonschema.ValidationError) []Issue {
	var issues []Issue
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if e == nil {
			return
		}
		if len(e.Causes) == 0 {
			issues = append(issues, Issue{
				Location: e.InstanceLocation,
				Message:  e.Message,
			})
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}

package remote

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/nexhomes/nexcms/internal/domain"
	"github.com/nexhomes/nexcms/internal/store"
)

// API exposes one typed method per backend endpoint. All methods share the
// client's cookie jar, headers, and auth handling.
type API struct {
	client *Client
}

// NewAPI wraps a configured client with the typed resource surface.
func NewAPI(client *Client) *API {
	return &API{client: client}
}

func fetchList[T any](ctx context.Context, c *Client, path string) ([]*T, error) {
	var out []*T
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func createRecord[T any](ctx context.Context, c *Client, path string, in *T) (*T, error) {
	out := new(T)
	if err := c.do(ctx, http.MethodPost, path, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func updateRecord[T any](ctx context.Context, c *Client, path string, in *T) (*T, error) {
	out := new(T)
	if err := c.do(ctx, http.MethodPut, path, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type statusPayload struct {
	Status string `json:"status"`
}

func patchStatus[T any](ctx context.Context, c *Client, path, status string) (*T, error) {
	out := new(T)
	if err := c.do(ctx, http.MethodPatch, path, statusPayload{Status: status}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Document fetches the editable document for one page.
func (a *API) Document(ctx context.Context, page domain.Page) (*store.PageDocument, error) {
	var out store.PageDocument
	if err := a.client.do(ctx, http.MethodGet, "pages/"+string(page), nil, &out); err != nil {
		return nil, err
	}
	out.Page = page
	return &out, nil
}

// SaveDocument replaces the document for doc.Page on the server.
func (a *API) SaveDocument(ctx context.Context, doc *store.PageDocument) (*store.PageDocument, error) {
	out := new(store.PageDocument)
	if err := a.client.do(ctx, http.MethodPut, "pages/"+string(doc.Page), doc, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) Projects(ctx context.Context) ([]*store.Project, error) {
	return fetchList[store.Project](ctx, a.client, "projects")
}

func (a *API) CreateProject(ctx context.Context, in *store.Project) (*store.Project, error) {
	return createRecord(ctx, a.client, "projects", in)
}

func (a *API) UpdateProject(ctx context.Context, in *store.Project) (*store.Project, error) {
	return updateRecord(ctx, a.client, "projects/"+in.ID.String(), in)
}

func (a *API) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return a.client.do(ctx, http.MethodDelete, "projects/"+id.String(), nil, nil)
}

func (a *API) Services(ctx context.Context) ([]*store.ServiceOffering, error) {
	return fetchList[store.ServiceOffering](ctx, a.client, "services")
}

func (a *API) CreateService(ctx context.Context, in *store.ServiceOffering) (*store.ServiceOffering, error) {
	return createRecord(ctx, a.client, "services", in)
}

func (a *API) UpdateService(ctx context.Context, in *store.ServiceOffering) (*store.ServiceOffering, error) {
	return updateRecord(ctx, a.client, "services/"+in.ID.String(), in)
}

func (a *API) DeleteService(ctx context.Context, id uuid.UUID) error {
	return a.client.do(ctx, http.MethodDelete, "services/"+id.String(), nil, nil)
}

func (a *API) Testimonials(ctx context.Context) ([]*store.Testimonial, error) {
	return fetchList[store.Testimonial](ctx, a.client, "testimonials")
}

func (a *API) CreateTestimonial(ctx context.Context, in *store.Testimonial) (*store.Testimonial, error) {
	return createRecord(ctx, a.client, "testimonials", in)
}

func (a *API) UpdateTestimonial(ctx context.Context, in *store.Testimonial) (*store.Testimonial, error) {
	return updateRecord(ctx, a.client, "testimonials/"+in.ID.String(), in)
}

func (a *API) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	return a.client.do(ctx, http.MethodDelete, "testimonials/"+id.String(), nil, nil)
}

func (a *API) News(ctx context.Context) ([]*store.NewsArticle, error) {
	return fetchList[store.NewsArticle](ctx, a.client, "news")
}

func (a *API) CreateArticle(ctx context.Context, in *store.NewsArticle) (*store.NewsArticle, error) {
	return createRecord(ctx, a.client, "news", in)
}

func (a *API) UpdateArticle(ctx context.Context, in *store.NewsArticle) (*store.NewsArticle, error) {
	return updateRecord(ctx, a.client, "news/"+in.ID.String(), in)
}

func (a *API) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	return a.client.do(ctx, http.MethodDelete, "news/"+id.String(), nil, nil)
}

func (a *API) Jobs(ctx context.Context) ([]*store.JobOpening, error) {
	return fetchList[store.JobOpening](ctx, a.client, "jobs")
}

func (a *API) CreateJob(ctx context.Context, in *store.JobOpening) (*store.JobOpening, error) {
	return createRecord(ctx, a.client, "jobs", in)
}

func (a *API) UpdateJob(ctx context.Context, in *store.JobOpening) (*store.JobOpening, error) {
	return updateRecord(ctx, a.client, "jobs/"+in.ID.String(), in)
}

func (a *API) DeleteJob(ctx context.Context, id uuid.UUID) error {
	return a.client.do(ctx, http.MethodDelete, "jobs/"+id.String(), nil, nil)
}

func (a *API) Applications(ctx context.Context) ([]*store.CareerApplication, error) {
	return fetchList[store.CareerApplication](ctx, a.client, "applications")
}

func (a *API) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*store.CareerApplication, error) {
	return patchStatus[store.CareerApplication](ctx, a.client, "applications/"+id.String()+"/status", string(status))
}

func (a *API) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	return a.client.do(ctx, http.MethodDelete, "applications/"+id.String(), nil, nil)
}

func (a *API) Inquiries(ctx context.Context) ([]*store.ContactInquiry, error) {
	return fetchList[store.ContactInquiry](ctx, a.client, "inquiries")
}

func (a *API) UpdateInquiryStatus(ctx context.Context, id uuid.UUID, status domain.InquiryStatus) (*store.ContactInquiry, error) {
	return patchStatus[store.ContactInquiry](ctx, a.client, "inquiries/"+id.String()+"/status", string(status))
}

func (a *API) DeleteInquiry(ctx context.Context, id uuid.UUID) error {
	return a.client.do(ctx, http.MethodDelete, "inquiries/"+id.String(), nil, nil)
}

package resolver

import (
	"context"

	"github.com/nexhomes/nexcms/internal/domain"
	"github.com/nexhomes/nexcms/internal/icons"
	"github.com/nexhomes/nexcms/internal/store"
)

// HomeContent is everything the home page renders in one coherent value.
type HomeContent struct {
	Document     Resolved[*store.PageDocument]
	Projects     Resolved[[]*store.Project]
	Services     Resolved[[]*store.ServiceOffering]
	Testimonials Resolved[[]*store.Testimonial]
}

// Home resolves the home page: document plus the featured collections.
func (r *Resolver) Home(ctx context.Context) HomeContent {
	return HomeContent{
		Document:     r.Document(ctx, domain.PageHome),
		Projects:     r.Projects(ctx),
		Services:     r.Services(ctx),
		Testimonials: r.Testimonials(ctx),
	}
}

// ServiceCard pairs an offering with the icon the UI can actually render.
// Authored icon identifiers outside the registry fall back to a neutral icon.
type ServiceCard struct {
	Service *store.ServiceOffering
	Icon    icons.Icon
}

// ServicesContent combines the services page document with the offerings list.
type ServicesContent struct {
	Document Resolved[*store.PageDocument]
	Services Resolved[[]*store.ServiceOffering]
	Cards    []ServiceCard
}

// ServicesPage resolves the services page.
func (r *Resolver) ServicesPage(ctx context.Context) ServicesContent {
	content := ServicesContent{
		Document: r.Document(ctx, domain.PageServices),
		Services: r.Services(ctx),
	}
	content.Cards = make([]ServiceCard, 0, len(content.Services.Value))
	for _, svc := range content.Services.Value {
		icon, _ := icons.Resolve(svc.Icon)
		content.Cards = append(content.Cards, ServiceCard{Service: svc, Icon: icon})
	}
	return content
}

// CareerContent combines the career page document with the open positions.
type CareerContent struct {
	Document Resolved[*store.PageDocument]
	Jobs     Resolved[[]*store.JobOpening]
}

// Career resolves the career page.
func (r *Resolver) Career(ctx context.Context) CareerContent {
	return CareerContent{
		Document: r.Document(ctx, domain.PageCareer),
		Jobs:     r.Jobs(ctx),
	}
}

// RenderedArticle pairs a news article with its body rendered to HTML.
type RenderedArticle struct {
	Article *store.NewsArticle
	HTML    string
}

// MediaContent combines the media page document with the news listing.
// Rendered is populated only when a body renderer is configured.
type MediaContent struct {
	Document Resolved[*store.PageDocument]
	News     Resolved[[]*store.NewsArticle]
	Rendered []RenderedArticle
}

// Media resolves the news/media page.
func (r *Resolver) Media(ctx context.Context) MediaContent {
	content := MediaContent{
		Document: r.Document(ctx, domain.PageMedia),
		News:     r.News(ctx),
	}
	if r.renderer == nil {
		return content
	}

	content.Rendered = make([]RenderedArticle, 0, len(content.News.Value))
	for _, article := range content.News.Value {
		html, err := r.renderer.Render(article.Body)
		if err != nil {
			r.logger.Warn("resolver.render_article_failed", "slug", article.Slug, "error", err)
			html = ""
		}
		content.Rendered = append(content.Rendered, RenderedArticle{Article: article, HTML: html})
	}
	return content
}

// ProjectsContent combines the products page document with the project listing.
type ProjectsContent struct {
	Document Resolved[*store.PageDocument]
	Projects Resolved[[]*store.Project]
}

// Products resolves the products page.
func (r *Resolver) Products(ctx context.Context) ProjectsContent {
	return ProjectsContent{
		Document: r.Document(ctx, domain.PageProducts),
		Projects: r.Projects(ctx),
	}
}

package module

import (
	"context"

	blogdom "neuraledge/internal/services/api/blog/domain"
	blogsvc "neuraledge/internal/services/api/blog/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptBlogPort adapts the blog service to the domain port interface
type adaptBlogPort struct{ svc blogsvc.Service }

// Create implements the domain ServicePort interface
func (a adaptBlogPort) Create(ctx context.Context, in blogdom.CreatePostInput) (blogdom.BlogPost, error) {
	return a.svc.Create(ctx, in)
}

// Update implements the domain ServicePort interface
func (a adaptBlogPort) Update(ctx context.Context, in blogdom.UpdatePostInput) (blogdom.BlogPost, error) {
	return a.svc.Update(ctx, in)
}

// List implements the domain ServicePort interface
func (a adaptBlogPort) List(ctx context.Context, q blogdom.ListQuery) ([]blogdom.BlogPost, int, error) {
	return a.svc.List(ctx, q)
}

// BySlug implements the domain ServicePort interface
func (a adaptBlogPort) BySlug(ctx context.Context, slug string) (blogdom.BlogPost, error) {
	return a.svc.BySlug(ctx, slug)
}

package domain

import "context"

// ServicePort defines the service contract for blog posts
type ServicePort interface {
	Create(ctx context.Context, in CreatePostInput) (BlogPost, error)
	Update(ctx context.Context, in UpdatePostInput) (BlogPost, error)
	List(ctx context.Context, q ListQuery) ([]BlogPost, int, error)
	BySlug(ctx context.Context, slug string) (BlogPost, error)
}

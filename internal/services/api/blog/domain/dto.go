// Package domain holds DTOs for blog http and service contracts
package domain

import "time"

// CreatePostInput is the authenticated create payload.
// Slug is optional and generated from the title when omitted
type CreatePostInput struct {
	Title          string     `json:"title" validate:"required,min=5,max=200" example:"Shipping Your First ML Model"`
	Slug           string     `json:"slug,omitempty" validate:"omitempty,min=3,max=200,slug" example:"shipping-your-first-ml-model"`
	Excerpt        string     `json:"excerpt" validate:"required,min=10,max=500"`
	Content        string     `json:"content" validate:"required,min=100"`
	Author         string     `json:"author" validate:"required,min=2,max=100" example:"Grace Hopper"`
	AuthorBio      string     `json:"author_bio,omitempty" validate:"omitempty,max=500"`
	Image          string     `json:"image,omitempty" validate:"omitempty,url,max=500"`
	SEOTitle       string     `json:"seo_title,omitempty" validate:"omitempty,max=60"`
	SEODescription string     `json:"seo_description,omitempty" validate:"omitempty,max=160"`
	Tags           []string   `json:"tags" validate:"required,min=1,max=10,dive,min=1,max=50"`
	IsPublished    bool       `json:"is_published"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
}

// UpdatePostInput is the authenticated partial update payload.
// Nil pointers leave the stored value untouched
type UpdatePostInput struct {
	ID             string     `json:"id" validate:"required,uuid"`
	Title          *string    `json:"title,omitempty" validate:"omitempty,min=5,max=200"`
	Slug           *string    `json:"slug,omitempty" validate:"omitempty,min=3,max=200,slug"`
	Excerpt        *string    `json:"excerpt,omitempty" validate:"omitempty,min=10,max=500"`
	Content        *string    `json:"content,omitempty" validate:"omitempty,min=100"`
	Author         *string    `json:"author,omitempty" validate:"omitempty,min=2,max=100"`
	AuthorBio      *string    `json:"author_bio,omitempty" validate:"omitempty,max=500"`
	Image          *string    `json:"image,omitempty" validate:"omitempty,url,max=500"`
	SEOTitle       *string    `json:"seo_title,omitempty" validate:"omitempty,max=60"`
	SEODescription *string    `json:"seo_description,omitempty" validate:"omitempty,max=160"`
	Tags           []string   `json:"tags,omitempty" validate:"omitempty,min=1,max=10,dive,min=1,max=50"`
	IsPublished    *bool      `json:"is_published,omitempty"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
}

// ListQuery bounds the public listing
type ListQuery struct {
	Page      int
	Limit     int
	Tag       string
	Search    string
	Published *bool
}

// Normalize clamps paging to the supported ranges
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 50 {
		q.Limit = 10
	}
}

// BlogPost is a stored post including derived fields
type BlogPost struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"`
	Author          string     `json:"author"`
	AuthorBio       string     `json:"author_bio,omitempty"`
	Image           string     `json:"image,omitempty"`
	SEOTitle        string     `json:"seo_title"`
	SEODescription  string     `json:"seo_description"`
	Tags            []string   `json:"tags"`
	IsPublished     bool       `json:"is_published"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	ReadTimeMinutes int        `json:"read_time_minutes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

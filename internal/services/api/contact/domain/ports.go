package domain

import "context"

// ServicePort defines the service contract for contact submissions
type ServicePort interface {
	Submit(ctx context.Context, in SubmissionInput) (Submission, error)
	Recent(ctx context.Context, limit int) ([]Submission, error)
}

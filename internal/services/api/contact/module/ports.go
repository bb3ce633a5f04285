package module

import (
	"context"

	contactdom "neuraledge/internal/services/api/contact/domain"
	contactsvc "neuraledge/internal/services/api/contact/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptContactPort adapts the contact service to the domain port interface
type adaptContactPort struct{ svc contactsvc.Service }

// Submit implements the domain ServicePort interface
func (a adaptContactPort) Submit(ctx context.Context, in contactdom.SubmissionInput) (contactdom.Submission, error) {
	return a.svc.Submit(ctx, in)
}

// Recent implements the domain ServicePort interface
func (a adaptContactPort) Recent(ctx context.Context, limit int) ([]contactdom.Submission, error) {
	return a.svc.Recent(ctx, limit)
}

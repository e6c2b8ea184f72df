package auditmock

import (
	"context"

	domain "aidbridge-backend/internal/domain/audit"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	AppendFn              func(ctx context.Context, e *domain.Entry) error
	ListByApplicationIDFn func(ctx context.Context, applicationID string) ([]domain.Entry, error)
}

func (m *Repo) Append(ctx context.Context, e *domain.Entry) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListByApplicationID(ctx context.Context, applicationID string) ([]domain.Entry, error) {
	if m.ListByApplicationIDFn != nil {
		return m.ListByApplicationIDFn(ctx, applicationID)
	}
	return nil, nil
}

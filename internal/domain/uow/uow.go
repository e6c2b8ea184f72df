package uow

import (
	"context"

	"aidbridge-backend/internal/domain/application"
	"aidbridge-backend/internal/domain/audit"
)

type Repos struct {
	Applications application.Repository
	Audit        audit.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.Application) error) error
}

package application

import "context"

type ListFilter struct {
	Status     Status
	AssignedTo string
}

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// Row-locked read (SELECT ... FOR UPDATE); only meaningful inside a tx.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*Application, error)
	List(ctx context.Context, f ListFilter) ([]Application, error)
	// Save commits with an optimistic version check and returns ErrConflict
	// when another writer got there first.
	Save(ctx context.Context, a *Application) error
	SoftDelete(ctx context.Context, a *Application, deletedBy string) error
}

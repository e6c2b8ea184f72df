package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appDomain "aidbridge-backend/internal/domain/application"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		First(&out)
	return &out, res.Error
}

// GetByApplicationIDForUpdate locks the row (SELECT ... FOR UPDATE) so a
// concurrent action on the same application blocks until this tx finishes.
func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	q := r.db.WithContext(ctx)
	// sqlite (tests) has no FOR UPDATE; it serializes writers itself
	if r.db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out appDomain.Application
	res := q.Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) List(ctx context.Context, f appDomain.ListFilter) ([]appDomain.Application, error) {
	q := r.db.WithContext(ctx).Model(&appDomain.Application{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.AssignedTo != "" {
		q = q.Where("assigned_reviewer_id = ?", f.AssignedTo)
	}
	var out []appDomain.Application
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

// Save writes the whole record guarded by the version column. A stale
// version means another writer committed first; the caller gets ErrConflict
// and the in-memory version is restored.
func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.Application) error {
	prev := a.Version
	a.Version = prev + 1

	res := r.db.WithContext(ctx).
		Model(&appDomain.Application{}).
		Where("id = ? AND version = ?", a.ID, prev).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(a)
	if res.Error != nil {
		a.Version = prev
		return res.Error
	}
	if res.RowsAffected == 0 {
		a.Version = prev
		return appDomain.ErrConflict
	}
	return nil
}

func (r *ApplicationRepository) SoftDelete(ctx context.Context, a *appDomain.Application, deletedBy string) error {
	if err := r.db.WithContext(ctx).
		Model(&appDomain.Application{}).
		Where("id = ?", a.ID).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(a).Error
}

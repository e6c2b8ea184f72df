package mysql

import (
	"context"

	"gorm.io/gorm"

	auditDomain "aidbridge-backend/internal/domain/audit"
)

// AuditRepository appends and reads the immutable transition log. It has no
// update or delete methods.
type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Append(ctx context.Context, e *auditDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditRepository) ListByApplicationID(ctx context.Context, applicationID string) ([]auditDomain.Entry, error) {
	var out []auditDomain.Entry
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

package mysql

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	auditDomain "aidbridge-backend/internal/domain/audit"
)

type auditSQLite struct {
	ID             uint64     `gorm:"primaryKey;column:id"`
	EntryID        string     `gorm:"column:entry_id"`
	ApplicationID  string     `gorm:"column:application_id"`
	ActorID        string     `gorm:"column:actor_id"`
	ActorRole      string     `gorm:"column:actor_role"`
	Action         string     `gorm:"column:action"`
	OldStatus      string     `gorm:"column:old_status"`
	NewStatus      string     `gorm:"column:new_status"`
	Comments       *string    `gorm:"type:text;column:comments"`
	ActorIP        *string    `gorm:"column:actor_ip"`
	ActorUserAgent *string    `gorm:"type:text;column:actor_user_agent"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
}

func (auditSQLite) TableName() string { return "workflow_audit_log" }

func openAuditTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&auditSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeEntry(entryID, appID, oldStatus, newStatus string) *auditDomain.Entry {
	return &auditDomain.Entry{
		EntryID:       entryID,
		ApplicationID: appID,
		ActorID:       "actor-1",
		ActorRole:     "program_manager",
		Action:        "assign",
		OldStatus:     oldStatus,
		NewStatus:     newStatus,
	}
}

func TestAuditAppendAndListOrdering(t *testing.T) {
	db := openAuditTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	if err := repo.Append(ctx, makeEntry("e-1", "app-1", "new_submission", "po_review")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := repo.Append(ctx, makeEntry("e-2", "app-1", "po_review", "manager_review")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	// a different application's trail must not leak in
	if err := repo.Append(ctx, makeEntry("e-3", "app-2", "new_submission", "rejected")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	trail, err := repo.ListByApplicationID(ctx, "app-1")
	if err != nil {
		t.Fatalf("ListByApplicationID: %v", err)
	}
	if len(trail) != 2 {
		t.Fatalf("trail = %d rows, want 2", len(trail))
	}
	if trail[0].EntryID != "e-1" || trail[1].EntryID != "e-2" {
		t.Fatalf("trail not oldest-first: %+v", trail)
	}
	if trail[0].NewStatus != "po_review" || trail[1].OldStatus != "po_review" {
		t.Fatalf("statuses mismatch: %+v", trail)
	}
}

package audit

import "time"

// Entry is one immutable row in the transition audit log. Entries are append
// only: written once per executed transition, never updated or deleted.
type Entry struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (UUID)
	EntryID       string `gorm:"column:entry_id;type:char(36);not null;uniqueIndex" json:"entry_id"`
	ApplicationID string `gorm:"column:application_id;size:32;not null;index" json:"application_id"`
	ActorID       string `gorm:"column:actor_id;size:32;not null" json:"actor_id"`
	ActorRole     string `gorm:"column:actor_role;size:32;not null" json:"actor_role"`
	Action        string `gorm:"column:action;size:32;not null" json:"action"`
	OldStatus     string `gorm:"column:old_status;size:32;not null" json:"old_status"`
	NewStatus     string `gorm:"column:new_status;size:32;not null" json:"new_status"`

	Comments       *string `gorm:"column:comments;type:text" json:"comments,omitempty"`
	ActorIP        *string `gorm:"column:actor_ip;size:64" json:"actor_ip,omitempty"`
	ActorUserAgent *string `gorm:"column:actor_user_agent;type:text" json:"actor_user_agent,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "workflow_audit_log" }

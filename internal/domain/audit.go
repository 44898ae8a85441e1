package domain

import "time"

// AuditLog is append-only; entries are never mutated or deleted.
type AuditLog struct {
	ID         string         `gorm:"primaryKey;size:64" json:"id"`
	ActorID    string         `gorm:"column:actor_id;size:64" json:"actor_id"`
	Action     string         `gorm:"size:64" json:"action"`
	EntityType string         `gorm:"column:entity_type;size:32" json:"entity_type"`
	EntityID   string         `gorm:"column:entity_id;size:64" json:"entity_id"`
	Meta       map[string]any `gorm:"serializer:json" json:"meta"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }

package models

import "time"

// AuditLog records mutating operations for traceability.
type AuditLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index" json:"user_id"`
	Action       string    `gorm:"not null" json:"action"`
	ResourceType string    `gorm:"not null" json:"resource_type"`
	ResourceID   uint      `json:"resource_id"`
	IPAddress    string    `json:"ip_address"`
	Changes      string    `json:"changes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

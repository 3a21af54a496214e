package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"finnews/internal/logger"
	"finnews/internal/models"
)

// Audit actions and resource types.
const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"

	AuditResourceAsset      = "asset"
	AuditResourceNews       = "news"
	AuditResourceUser       = "user"
	AuditResourceAnnotation = "annotation"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records a mutation of an asset, news item, user or annotation.
// Failures are logged and never returned to the caller.
func (s *auditService) Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{}) {
	audit := logger.Named("audit")
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			audit.Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		audit.Errorw("failed to create audit log entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}

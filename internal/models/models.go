// Package models defines the GORM schema of the news and asset store.
package models

// All lists every model in dependency order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Asset{},
		&AssetPrice{},
		&NewsItem{},
		&AssetMention{},
		&Analysis{},
		&Annotation{},
		&AuditLog{},
	}
}

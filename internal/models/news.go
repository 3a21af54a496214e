package models

import "time"

// NewsItem represents a published news article.
type NewsItem struct {
	Base
	Title           string    `gorm:"size:255;not null;index" json:"title"`
	Content         string    `gorm:"not null" json:"content"`
	Summary         string    `json:"summary"`
	Source          string    `gorm:"size:255;not null" json:"source"`
	URL             string    `gorm:"column:url;size:512;index" json:"url"`
	PublishedAt     time.Time `gorm:"not null;index" json:"published_at"`
	NeedsReanalysis bool      `gorm:"not null;default:false" json:"needs_reanalysis"`
	CreatedByID     *uint     `json:"created_by_id,omitempty"`
	UpdatedByID     *uint     `json:"updated_by_id,omitempty"`

	// Relationships
	Analysis *Analysis      `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE" json:"analysis,omitempty"`
	Mentions []AssetMention `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE" json:"asset_mentions,omitempty"`
}

// TableName overrides the pluralized default.
func (NewsItem) TableName() string {
	return "news"
}

// AssetMention links a news item to an asset it references.
type AssetMention struct {
	ID           uint  `gorm:"primaryKey" json:"id"`
	NewsID       uint  `gorm:"not null;uniqueIndex:uq_asset_mentions_news_asset" json:"news_id"`
	AssetID      uint  `gorm:"not null;uniqueIndex:uq_asset_mentions_news_asset;index" json:"asset_id"`
	MentionCount int   `gorm:"not null;default:1" json:"mention_count"`
	Asset        Asset `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
}

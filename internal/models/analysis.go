package models

import (
	"time"

	"gorm.io/datatypes"
)

// Analysis holds the AI-derived sentiment, entities and summary of a news item.
// There is at most one analysis per news item.
type Analysis struct {
	Base
	NewsID         uint                        `gorm:"not null;uniqueIndex" json:"news_id"`
	SentimentScore float64                     `gorm:"not null;index" json:"sentiment_score"` // -1.0 (negative) to 1.0 (positive)
	Confidence     float64                     `gorm:"not null" json:"confidence"`
	Entities       datatypes.JSONSlice[string] `json:"entities"`
	Keywords       datatypes.JSONSlice[string] `json:"keywords"`
	Summary        string                      `json:"summary"`
	ModelVersion   string                      `gorm:"size:50;not null" json:"model_version"`

	// Relationships
	Annotations []Annotation `gorm:"foreignKey:AnalysisID;constraint:OnDelete:CASCADE" json:"annotations,omitempty"`
}

// TableName overrides the pluralized default.
func (Analysis) TableName() string {
	return "analyses"
}

// Annotation is an analyst's note, optionally overriding the AI sentiment.
type Annotation struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	AnalysisID        uint      `gorm:"not null;index" json:"analysis_id"`
	UserID            *uint     `gorm:"index" json:"user_id,omitempty"`
	Text              string    `gorm:"not null" json:"text"`
	OverrideSentiment *float64  `json:"override_sentiment,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

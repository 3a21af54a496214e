package services

import (
	"time"

	"finnews/internal/models"

	"github.com/shopspring/decimal"
)

// AssetInput is the creation payload of an asset.
type AssetInput struct {
	Symbol      string           `json:"symbol" binding:"required,max=20"`
	Name        string           `json:"name" binding:"required,max=255"`
	Description string           `json:"description"`
	AssetType   models.AssetType `json:"asset_type" binding:"omitempty,asset_type"`
	Sector      string           `json:"sector" binding:"max=100"`
	Region      string           `json:"region" binding:"max=100"`
}

// AssetUpdate is a partial asset payload; nil fields are left untouched.
type AssetUpdate struct {
	Symbol      *string           `json:"symbol" binding:"omitempty,min=1,max=20"`
	Name        *string           `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string           `json:"description"`
	AssetType   *models.AssetType `json:"asset_type" binding:"omitempty,asset_type"`
	Sector      *string           `json:"sector" binding:"omitempty,max=100"`
	Region      *string           `json:"region" binding:"omitempty,max=100"`
}

// PriceInput is one OHLCV point to record.
type PriceInput struct {
	Timestamp time.Time        `json:"timestamp" binding:"required"`
	Open      decimal.Decimal  `json:"open"`
	High      decimal.Decimal  `json:"high"`
	Low       decimal.Decimal  `json:"low"`
	Close     decimal.Decimal  `json:"close"`
	Volume    *decimal.Decimal `json:"volume"`
}

// NewsInput is the creation payload of a news item.
type NewsInput struct {
	Title        string     `json:"title" binding:"required,max=255"`
	Content      string     `json:"content" binding:"required"`
	Summary      string     `json:"summary"`
	Source       string     `json:"source" binding:"required,max=255"`
	URL          string     `json:"url" binding:"omitempty,max=512,url"`
	PublishedAt  *time.Time `json:"published_at"`
	AssetSymbols []string   `json:"asset_symbols" binding:"omitempty,dive,required,max=20"`
}

// NewsUpdate is a partial news payload; nil fields are left untouched.
type NewsUpdate struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=255"`
	Content     *string    `json:"content" binding:"omitempty,min=1"`
	Summary     *string    `json:"summary"`
	Source      *string    `json:"source" binding:"omitempty,min=1,max=255"`
	URL         *string    `json:"url" binding:"omitempty,max=512"`
	PublishedAt *time.Time `json:"published_at"`
}

// IngestInput is a news item delivered by the ingestion pipeline, with the
// number of times each asset symbol was mentioned.
type IngestInput struct {
	Title       string         `json:"title" binding:"required,max=255"`
	Content     string         `json:"content" binding:"required"`
	Summary     string         `json:"summary"`
	Source      string         `json:"source" binding:"required,max=255"`
	URL         string         `json:"url" binding:"required,max=512"`
	PublishedAt *time.Time     `json:"published_at"`
	Mentions    map[string]int `json:"mentions"`
}

// AnalysisInput is the analysis produced by the pipeline for a news item.
type AnalysisInput struct {
	SentimentScore float64  `json:"sentiment_score" binding:"sentiment_score"`
	Confidence     float64  `json:"confidence" binding:"unit_interval"`
	Entities       []string `json:"entities"`
	Keywords       []string `json:"keywords"`
	Summary        string   `json:"summary"`
	ModelVersion   string   `json:"model_version" binding:"required,max=50"`
}

// AnnotationInput is an analyst note on an analysis.
type AnnotationInput struct {
	Text              string   `json:"text" binding:"required"`
	OverrideSentiment *float64 `json:"override_sentiment" binding:"omitempty,sentiment_score"`
}

// UserInput is the creation payload of a user.
type UserInput struct {
	Email         string `json:"email" binding:"required,email"`
	Username      string `json:"username" binding:"required,min=3,max=50"`
	Password      string `json:"password" binding:"required,min=8"`
	IsActive      *bool  `json:"is_active"`
	IsAdmin       bool   `json:"is_admin"`
	CanCreateNews bool   `json:"can_create_news"`
}

// UserUpdate is a partial user payload; nil fields are left untouched.
type UserUpdate struct {
	Email         *string `json:"email" binding:"omitempty,email"`
	Username      *string `json:"username" binding:"omitempty,min=3,max=50"`
	Password      *string `json:"password" binding:"omitempty,min=8"`
	IsActive      *bool   `json:"is_active"`
	IsAdmin       *bool   `json:"is_admin"`
	CanCreateNews *bool   `json:"can_create_news"`
}

// Privileged reports whether the update touches fields only admins may change.
func (u UserUpdate) Privileged() bool {
	return u.IsActive != nil || u.IsAdmin != nil || u.CanCreateNews != nil
}

func newAssetFromInput(in AssetInput) *models.Asset {
	assetType := in.AssetType
	if assetType == "" {
		assetType = models.AssetTypeStock
	}
	return &models.Asset{
		Symbol:      in.Symbol,
		Name:        in.Name,
		Description: in.Description,
		AssetType:   assetType,
		Sector:      in.Sector,
		Region:      in.Region,
	}
}

func newPriceFromInput(assetID uint, in PriceInput) *models.AssetPrice {
	price := &models.AssetPrice{
		AssetID:   assetID,
		Timestamp: in.Timestamp.UTC(),
		Open:      in.Open,
		High:      in.High,
		Low:       in.Low,
		Close:     in.Close,
	}
	if in.Volume != nil {
		price.Volume = decimal.NewNullDecimal(*in.Volume)
	}
	return price
}

func newNewsFromInput(in NewsInput, createdByID uint) *models.NewsItem {
	publishedAt := time.Now().UTC()
	if in.PublishedAt != nil {
		publishedAt = in.PublishedAt.UTC()
	}
	return &models.NewsItem{
		Title:       in.Title,
		Content:     in.Content,
		Summary:     in.Summary,
		Source:      in.Source,
		URL:         in.URL,
		PublishedAt: publishedAt,
		CreatedByID: &createdByID,
	}
}

func newNewsFromIngest(in IngestInput) *models.NewsItem {
	publishedAt := time.Now().UTC()
	if in.PublishedAt != nil {
		publishedAt = in.PublishedAt.UTC()
	}
	return &models.NewsItem{
		Title:           in.Title,
		Content:         in.Content,
		Summary:         in.Summary,
		Source:          in.Source,
		URL:             in.URL,
		PublishedAt:     publishedAt,
		NeedsReanalysis: true,
	}
}

func newAnalysisFromInput(newsID uint, in AnalysisInput) *models.Analysis {
	return &models.Analysis{
		NewsID:         newsID,
		SentimentScore: in.SentimentScore,
		Confidence:     in.Confidence,
		Entities:       nonNil(in.Entities),
		Keywords:       nonNil(in.Keywords),
		Summary:        in.Summary,
		ModelVersion:   in.ModelVersion,
	}
}

// newUserFromInput maps the payload onto a user. The password must already be hashed.
func newUserFromInput(in UserInput, passwordHash string) *models.User {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return &models.User{
		Email:         normalizeEmail(in.Email),
		Username:      in.Username,
		Password:      passwordHash,
		IsActive:      active,
		IsAdmin:       in.IsAdmin,
		CanCreateNews: in.CanCreateNews,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

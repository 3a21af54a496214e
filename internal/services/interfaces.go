package services

import (
	"time"

	"finnews/internal/models"
	"finnews/internal/pagination"
)

// AssetFilter holds optional equality filters for listing assets.
type AssetFilter struct {
	AssetType *models.AssetType
	Sector    *string
	Region    *string
}

// AssetServicer defines the contract for asset and price-history access.
type AssetServicer interface {
	ListAssets(filter AssetFilter, page pagination.PageRequest) ([]models.Asset, error)
	ListAllAssets() ([]models.Asset, error)
	GetAssetByID(id uint) (*models.Asset, error)
	CreateAsset(input AssetInput) (*models.Asset, error)
	UpdateAsset(id uint, input AssetUpdate) (*models.Asset, error)
	DeleteAsset(id uint) error
	GetPriceHistory(assetID uint, from, to *time.Time) ([]models.AssetPrice, error)
	RecordPrices(assetID uint, prices []PriceInput) (int, error)
}

// NewsFilter holds optional filters for listing news. All present filters are AND-ed.
type NewsFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	Keyword     *string
	AssetSymbol *string
	Sentiment   *float64
}

// NewsServicer defines the contract for news item access.
type NewsServicer interface {
	ListNews(filter NewsFilter, page pagination.PageRequest) ([]models.NewsItem, error)
	GetNewsByID(id uint) (*models.NewsItem, error)
	CreateNews(actorID uint, input NewsInput) (*models.NewsItem, error)
	UpdateNews(actor *models.User, id uint, input NewsUpdate) (*models.NewsItem, error)
	DeleteNews(actor *models.User, id uint) error
	MarkForReanalysis(id uint) (*models.NewsItem, error)
	ListPending(limit int) ([]models.NewsItem, error)
	IngestNews(input IngestInput) (*models.NewsItem, bool, error)
}

// AnalysisServicer defines the contract for AI analyses and analyst annotations.
type AnalysisServicer interface {
	GetAnalysisByNewsID(newsID uint) (*models.Analysis, error)
	UpsertAnalysis(newsID uint, input AnalysisInput) (*models.Analysis, error)
	CreateAnnotation(userID, newsID uint, input AnnotationInput) (*models.Annotation, error)
	GetAnnotationByID(id uint) (*models.Annotation, error)
	DeleteAnnotation(actor *models.User, id uint) error
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	ListUsers(page pagination.PageRequest) ([]models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByLogin(login string) (*models.User, error)
	CreateUser(input UserInput) (*models.User, error)
	UpdateUser(id uint, input UserUpdate) (*models.User, error)
	DeleteUser(id uint) error
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(login, password string) (*models.User, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}

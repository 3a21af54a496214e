package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finnews/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an active, non-admin user with a unique email and username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return createUser(t, db, fmt.Sprintf("user%d@test.com", n), fmt.Sprintf("user%d", n), false)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	return createUser(t, db, email, fmt.Sprintf("user%d", nextID()), false)
}

// CreateTestAdmin creates an active admin user.
func CreateTestAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return createUser(t, db, fmt.Sprintf("admin%d@test.com", n), fmt.Sprintf("admin%d", n), true)
}

// CreateTestEditor creates a non-admin user allowed to publish news.
func CreateTestEditor(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := CreateTestUser(t, db)
	if err := db.Model(user).Update("can_create_news", true).Error; err != nil {
		t.Fatalf("failed to grant news permission: %v", err)
	}
	user.CanCreateNews = true
	return user
}

func createUser(t *testing.T, db *gorm.DB, email, username string, admin bool) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Username: username,
		Password: string(hash),
		IsActive: true,
		IsAdmin:  admin,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAsset creates a stock asset with a unique symbol.
func CreateTestAsset(t *testing.T, db *gorm.DB) *models.Asset {
	t.Helper()
	return CreateTestAssetWithSymbol(t, db, fmt.Sprintf("TST%d", nextID()))
}

// CreateTestAssetWithSymbol creates a stock asset with the given symbol.
func CreateTestAssetWithSymbol(t *testing.T, db *gorm.DB, symbol string) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		Symbol:    symbol,
		Name:      "Test Asset " + symbol,
		AssetType: models.AssetTypeStock,
		Sector:    "Technology",
		Region:    "US",
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestPrice records a price point for an asset with the given close.
func CreateTestPrice(t *testing.T, db *gorm.DB, assetID uint, ts time.Time, closePrice float64) *models.AssetPrice {
	t.Helper()

	c := decimal.NewFromFloat(closePrice)
	price := &models.AssetPrice{
		AssetID:   assetID,
		Timestamp: ts.UTC(),
		Open:      c,
		High:      c,
		Low:       c,
		Close:     c,
		Volume:    decimal.NewNullDecimal(decimal.NewFromInt(1000)),
	}
	if err := db.Create(price).Error; err != nil {
		t.Fatalf("failed to create test price: %v", err)
	}
	return price
}

// CreateTestNews creates a news item attributed to the given user.
func CreateTestNews(t *testing.T, db *gorm.DB, createdByID uint) *models.NewsItem {
	t.Helper()

	n := nextID()
	news := &models.NewsItem{
		Title:       fmt.Sprintf("Test headline %d", n),
		Content:     "Markets moved on the latest earnings report.",
		Source:      "Test Wire",
		URL:         fmt.Sprintf("https://news.test/%d", n),
		PublishedAt: time.Now().UTC(),
		CreatedByID: &createdByID,
	}
	if err := db.Create(news).Error; err != nil {
		t.Fatalf("failed to create test news: %v", err)
	}
	return news
}

// CreateTestMention links a news item to an asset.
func CreateTestMention(t *testing.T, db *gorm.DB, newsID, assetID uint) *models.AssetMention {
	t.Helper()

	mention := &models.AssetMention{NewsID: newsID, AssetID: assetID, MentionCount: 1}
	if err := db.Create(mention).Error; err != nil {
		t.Fatalf("failed to create test mention: %v", err)
	}
	return mention
}

// CreateTestAnalysis attaches an analysis with the given sentiment to a news item.
func CreateTestAnalysis(t *testing.T, db *gorm.DB, newsID uint, sentiment float64) *models.Analysis {
	t.Helper()

	analysis := &models.Analysis{
		NewsID:         newsID,
		SentimentScore: sentiment,
		Confidence:     0.8,
		Entities:       []string{"ACME"},
		Keywords:       []string{"earnings"},
		Summary:        "Earnings beat expectations.",
		ModelVersion:   "test-model",
	}
	if err := db.Create(analysis).Error; err != nil {
		t.Fatalf("failed to create test analysis: %v", err)
	}
	return analysis
}

// CreateTestAnnotation adds an analyst note to an analysis.
func CreateTestAnnotation(t *testing.T, db *gorm.DB, analysisID, userID uint) *models.Annotation {
	t.Helper()

	annotation := &models.Annotation{
		AnalysisID: analysisID,
		UserID:     &userID,
		Text:       "Looks overstated.",
	}
	if err := db.Create(annotation).Error; err != nil {
		t.Fatalf("failed to create test annotation: %v", err)
	}
	return annotation
}

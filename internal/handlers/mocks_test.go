package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"finnews/internal/logger"
	"finnews/internal/middleware"
	"finnews/internal/models"
	"finnews/internal/pagination"
	"finnews/internal/services"
	"finnews/internal/validator"
)

// --- mock services ---

type mockUserService struct {
	listUsersFn      func(page pagination.PageRequest) ([]models.User, error)
	getUserByIDFn    func(id uint) (*models.User, error)
	getUserByLoginFn func(login string) (*models.User, error)
	createUserFn     func(input services.UserInput) (*models.User, error)
	updateUserFn     func(id uint, input services.UserUpdate) (*models.User, error)
	deleteUserFn     func(id uint) error
	verifyPasswordFn func(user *models.User, password string) bool
	attemptLoginFn   func(login, password string) (*models.User, error)
}

func (m *mockUserService) ListUsers(page pagination.PageRequest) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(page)
	}
	return []models.User{}, nil
}

func (m *mockUserService) GetUserByID(id uint) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

func (m *mockUserService) GetUserByLogin(login string) (*models.User, error) {
	if m.getUserByLoginFn != nil {
		return m.getUserByLoginFn(login)
	}
	return &models.User{}, nil
}

func (m *mockUserService) CreateUser(input services.UserInput) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(input)
	}
	return &models.User{}, nil
}

func (m *mockUserService) UpdateUser(id uint, input services.UserUpdate) (*models.User, error) {
	if m.updateUserFn != nil {
		return m.updateUserFn(id, input)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

func (m *mockUserService) DeleteUser(id uint) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(id)
	}
	return nil
}

func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	if m.verifyPasswordFn != nil {
		return m.verifyPasswordFn(user, password)
	}
	return true
}

func (m *mockUserService) AttemptLogin(login, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(login, password)
	}
	return &models.User{}, nil
}

type mockAssetService struct {
	listAssetsFn      func(filter services.AssetFilter, page pagination.PageRequest) ([]models.Asset, error)
	listAllAssetsFn   func() ([]models.Asset, error)
	getAssetByIDFn    func(id uint) (*models.Asset, error)
	createAssetFn     func(input services.AssetInput) (*models.Asset, error)
	updateAssetFn     func(id uint, input services.AssetUpdate) (*models.Asset, error)
	deleteAssetFn     func(id uint) error
	getPriceHistoryFn func(assetID uint, from, to *time.Time) ([]models.AssetPrice, error)
	recordPricesFn    func(assetID uint, prices []services.PriceInput) (int, error)
}

func (m *mockAssetService) ListAssets(filter services.AssetFilter, page pagination.PageRequest) ([]models.Asset, error) {
	if m.listAssetsFn != nil {
		return m.listAssetsFn(filter, page)
	}
	return []models.Asset{}, nil
}

func (m *mockAssetService) ListAllAssets() ([]models.Asset, error) {
	if m.listAllAssetsFn != nil {
		return m.listAllAssetsFn()
	}
	return []models.Asset{}, nil
}

func (m *mockAssetService) GetAssetByID(id uint) (*models.Asset, error) {
	if m.getAssetByIDFn != nil {
		return m.getAssetByIDFn(id)
	}
	return &models.Asset{Base: models.Base{ID: id}}, nil
}

func (m *mockAssetService) CreateAsset(input services.AssetInput) (*models.Asset, error) {
	if m.createAssetFn != nil {
		return m.createAssetFn(input)
	}
	return &models.Asset{Base: models.Base{ID: 1}, Symbol: input.Symbol}, nil
}

func (m *mockAssetService) UpdateAsset(id uint, input services.AssetUpdate) (*models.Asset, error) {
	if m.updateAssetFn != nil {
		return m.updateAssetFn(id, input)
	}
	return &models.Asset{Base: models.Base{ID: id}}, nil
}

func (m *mockAssetService) DeleteAsset(id uint) error {
	if m.deleteAssetFn != nil {
		return m.deleteAssetFn(id)
	}
	return nil
}

func (m *mockAssetService) GetPriceHistory(assetID uint, from, to *time.Time) ([]models.AssetPrice, error) {
	if m.getPriceHistoryFn != nil {
		return m.getPriceHistoryFn(assetID, from, to)
	}
	return []models.AssetPrice{}, nil
}

func (m *mockAssetService) RecordPrices(assetID uint, prices []services.PriceInput) (int, error) {
	if m.recordPricesFn != nil {
		return m.recordPricesFn(assetID, prices)
	}
	return len(prices), nil
}

type mockNewsService struct {
	listNewsFn          func(filter services.NewsFilter, page pagination.PageRequest) ([]models.NewsItem, error)
	getNewsByIDFn       func(id uint) (*models.NewsItem, error)
	createNewsFn        func(actorID uint, input services.NewsInput) (*models.NewsItem, error)
	updateNewsFn        func(actor *models.User, id uint, input services.NewsUpdate) (*models.NewsItem, error)
	deleteNewsFn        func(actor *models.User, id uint) error
	markForReanalysisFn func(id uint) (*models.NewsItem, error)
	listPendingFn       func(limit int) ([]models.NewsItem, error)
	ingestNewsFn        func(input services.IngestInput) (*models.NewsItem, bool, error)
}

func (m *mockNewsService) ListNews(filter services.NewsFilter, page pagination.PageRequest) ([]models.NewsItem, error) {
	if m.listNewsFn != nil {
		return m.listNewsFn(filter, page)
	}
	return []models.NewsItem{}, nil
}

func (m *mockNewsService) GetNewsByID(id uint) (*models.NewsItem, error) {
	if m.getNewsByIDFn != nil {
		return m.getNewsByIDFn(id)
	}
	return &models.NewsItem{Base: models.Base{ID: id}}, nil
}

func (m *mockNewsService) CreateNews(actorID uint, input services.NewsInput) (*models.NewsItem, error) {
	if m.createNewsFn != nil {
		return m.createNewsFn(actorID, input)
	}
	return &models.NewsItem{Base: models.Base{ID: 1}, Title: input.Title, CreatedByID: &actorID}, nil
}

func (m *mockNewsService) UpdateNews(actor *models.User, id uint, input services.NewsUpdate) (*models.NewsItem, error) {
	if m.updateNewsFn != nil {
		return m.updateNewsFn(actor, id, input)
	}
	return &models.NewsItem{Base: models.Base{ID: id}}, nil
}

func (m *mockNewsService) DeleteNews(actor *models.User, id uint) error {
	if m.deleteNewsFn != nil {
		return m.deleteNewsFn(actor, id)
	}
	return nil
}

func (m *mockNewsService) MarkForReanalysis(id uint) (*models.NewsItem, error) {
	if m.markForReanalysisFn != nil {
		return m.markForReanalysisFn(id)
	}
	return &models.NewsItem{Base: models.Base{ID: id}, NeedsReanalysis: true}, nil
}

func (m *mockNewsService) ListPending(limit int) ([]models.NewsItem, error) {
	if m.listPendingFn != nil {
		return m.listPendingFn(limit)
	}
	return []models.NewsItem{}, nil
}

func (m *mockNewsService) IngestNews(input services.IngestInput) (*models.NewsItem, bool, error) {
	if m.ingestNewsFn != nil {
		return m.ingestNewsFn(input)
	}
	return &models.NewsItem{Base: models.Base{ID: 1}, URL: input.URL}, true, nil
}

type mockAnalysisService struct {
	getAnalysisByNewsIDFn func(newsID uint) (*models.Analysis, error)
	upsertAnalysisFn      func(newsID uint, input services.AnalysisInput) (*models.Analysis, error)
	createAnnotationFn    func(userID, newsID uint, input services.AnnotationInput) (*models.Annotation, error)
	getAnnotationByIDFn   func(id uint) (*models.Annotation, error)
	deleteAnnotationFn    func(actor *models.User, id uint) error
}

func (m *mockAnalysisService) GetAnalysisByNewsID(newsID uint) (*models.Analysis, error) {
	if m.getAnalysisByNewsIDFn != nil {
		return m.getAnalysisByNewsIDFn(newsID)
	}
	return &models.Analysis{NewsID: newsID}, nil
}

func (m *mockAnalysisService) UpsertAnalysis(newsID uint, input services.AnalysisInput) (*models.Analysis, error) {
	if m.upsertAnalysisFn != nil {
		return m.upsertAnalysisFn(newsID, input)
	}
	return &models.Analysis{NewsID: newsID, SentimentScore: input.SentimentScore}, nil
}

func (m *mockAnalysisService) CreateAnnotation(userID, newsID uint, input services.AnnotationInput) (*models.Annotation, error) {
	if m.createAnnotationFn != nil {
		return m.createAnnotationFn(userID, newsID, input)
	}
	return &models.Annotation{ID: 1, UserID: &userID, Text: input.Text}, nil
}

func (m *mockAnalysisService) GetAnnotationByID(id uint) (*models.Annotation, error) {
	if m.getAnnotationByIDFn != nil {
		return m.getAnnotationByIDFn(id)
	}
	return &models.Annotation{ID: id}, nil
}

func (m *mockAnalysisService) DeleteAnnotation(actor *models.User, id uint) error {
	if m.deleteAnnotationFn != nil {
		return m.deleteAnnotationFn(actor, id)
	}
	return nil
}

type auditEntry struct {
	userID       uint
	action       string
	resourceType string
	resourceID   uint
}

type mockAuditService struct {
	entries []auditEntry
}

func (m *mockAuditService) Log(userID uint, action, resourceType string, resourceID uint, _ string, _ map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{userID: userID, action: action, resourceType: resourceType, resourceID: resourceID})
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

var (
	regularUser = &models.User{Base: models.Base{ID: 1}, Username: "alice", IsActive: true}
	editorUser  = &models.User{Base: models.Base{ID: 2}, Username: "erin", IsActive: true, CanCreateNews: true}
	adminUser   = &models.User{Base: models.Base{ID: 9}, Username: "root", IsActive: true, IsAdmin: true}
)

func injectUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			middleware.SetCurrentUser(c, user)
		}
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

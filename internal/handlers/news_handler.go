package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finnews/internal/errors"
	"finnews/internal/pagination"
	"finnews/internal/services"
)

// NewsHandler handles news item requests.
type NewsHandler struct {
	newsService  services.NewsServicer
	auditService services.AuditServicer
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService services.NewsServicer, auditService services.AuditServicer) *NewsHandler {
	return &NewsHandler{newsService: newsService, auditService: auditService}
}

// NewsListQuery holds the non-date filters accepted when listing news.
type NewsListQuery struct {
	pagination.PageRequest
	Keyword     string   `form:"keyword"`
	AssetSymbol string   `form:"asset_symbol"`
	Sentiment   *float64 `form:"sentiment"`
}

// ListNews handles listing news items.
// @Summary     List news
// @Description Get a page of news items. All given filters must match.
// @Tags        news
// @Produce     json
// @Security    BearerAuth
// @Param       start_date   query string false "Published on or after (YYYY-MM-DD or RFC3339)"
// @Param       end_date     query string false "Published on or before (YYYY-MM-DD covers the whole day)"
// @Param       keyword      query string false "Substring of title or content"
// @Param       asset_symbol query string false "Mentions the asset with this symbol"
// @Param       sentiment    query number false "Exact analysis sentiment score"
// @Param       skip         query int    false "Rows to skip (default 0)"
// @Param       limit        query int    false "Page size (default 100, max 500)"
// @Success     200 {array}  models.NewsItem "News items"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /v1/news [get]
func (h *NewsHandler) ListNews(c *gin.Context) {
	var q NewsListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	start, err := optionalTimeQuery(c, "start_date", false)
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := optionalTimeQuery(c, "end_date", true)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter := services.NewsFilter{
		StartDate: start,
		EndDate:   end,
		Sentiment: q.Sentiment,
	}
	if q.Keyword != "" {
		filter.Keyword = &q.Keyword
	}
	if q.AssetSymbol != "" {
		filter.AssetSymbol = &q.AssetSymbol
	}

	news, err := h.newsService.ListNews(filter, q.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// GetNews handles fetching a news item by ID.
// @Summary     Get news item
// @Description Get a news item with its analysis and asset mentions
// @Tags        news
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "News ID"
// @Success     200 {object} models.NewsItem "News item"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "News not found"
// @Router      /v1/news/{id} [get]
func (h *NewsHandler) GetNews(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	news, err := h.newsService.GetNewsByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// CreateNews handles creating a news item.
// @Summary     Create news item
// @Description Publish a news item (admins and users allowed to create news)
// @Tags        news
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body services.NewsInput true "News item"
// @Success     201 {object} models.NewsItem "News item created"
// @Failure     400 {object} ErrorResponse "Invalid input or unknown asset symbol"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not allowed to create news"
// @Router      /v1/news [post]
func (h *NewsHandler) CreateNews(c *gin.Context) {
	actor, err := getCurrentUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !actor.MayCreateNews() {
		respondWithError(c, apperrors.ErrForbidden)
		return
	}

	var req services.NewsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	news, err := h.newsService.CreateNews(actor.ID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditActionCreate, services.AuditResourceNews, news.ID, c.ClientIP(),
		map[string]interface{}{"title": news.Title, "asset_symbols": req.AssetSymbols})

	c.JSON(http.StatusCreated, news)
}

// UpdateNews handles partially updating a news item.
// @Summary     Update news item
// @Description Change the given fields of a news item (its creator or an admin)
// @Tags        news
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                 true "News ID"
// @Param       request body services.NewsUpdate true "Fields to change"
// @Success     200 {object} models.NewsItem "News item updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "News not found"
// @Router      /v1/news/{id} [put]
func (h *NewsHandler) UpdateNews(c *gin.Context) {
	actor, err := getCurrentUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.NewsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	news, err := h.newsService.UpdateNews(actor, id, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditActionUpdate, services.AuditResourceNews, news.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, news)
}

// DeleteNews handles deleting a news item with its analysis and mentions.
// @Summary     Delete news item
// @Tags        news
// @Security    BearerAuth
// @Param       id path int true "News ID"
// @Success     204 "News item deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "News not found"
// @Router      /v1/news/{id} [delete]
func (h *NewsHandler) DeleteNews(c *gin.Context) {
	actor, err := getCurrentUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.newsService.DeleteNews(actor, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditActionDelete, services.AuditResourceNews, id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// Reanalyze handles flagging a news item for the analysis pipeline.
// @Summary     Request re-analysis
// @Description Flag a news item so the pipeline analyses it again
// @Tags        news
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "News ID"
// @Success     200 {object} models.NewsItem "Flagged news item"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "News not found"
// @Router      /v1/news/{id}/reanalyze [post]
func (h *NewsHandler) Reanalyze(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	news, err := h.newsService.MarkForReanalysis(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

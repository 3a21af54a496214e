package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finnews/internal/errors"
	"finnews/internal/models"
	"finnews/internal/services"
)

// PipelineHandler serves the machine endpoints used by the ingestion and
// analysis pipeline. Requests are authenticated by API key, not by user.
type PipelineHandler struct {
	newsService     services.NewsServicer
	analysisService services.AnalysisServicer
	assetService    services.AssetServicer
}

// NewPipelineHandler creates a new PipelineHandler.
func NewPipelineHandler(
	newsService services.NewsServicer,
	analysisService services.AnalysisServicer,
	assetService services.AssetServicer,
) *PipelineHandler {
	return &PipelineHandler{
		newsService:     newsService,
		analysisService: analysisService,
		assetService:    assetService,
	}
}

// PendingQuery bounds the number of pending news items returned.
type PendingQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

// IngestResponse reports whether an ingested item was new.
type IngestResponse struct {
	Created bool             `json:"created"`
	News    *models.NewsItem `json:"news"`
}

// PipelineAsset is the slim asset view used for mention detection.
type PipelineAsset struct {
	ID        uint             `json:"id"`
	Symbol    string           `json:"symbol"`
	Name      string           `json:"name"`
	AssetType models.AssetType `json:"asset_type"`
}

// ListPending handles listing news items awaiting analysis.
// @Summary     Pending news
// @Description News items flagged for (re-)analysis, oldest first
// @Tags        pipeline
// @Produce     json
// @Security    ApiKeyAuth
// @Param       limit query int false "Maximum items (default 100, max 500)"
// @Success     200 {array}  models.NewsItem "Pending news"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "Pipeline not configured"
// @Router      /v1/pipeline/news/pending [get]
func (h *PipelineHandler) ListPending(c *gin.Context) {
	var q PendingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	news, err := h.newsService.ListPending(q.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// UpsertAnalysis handles storing the analysis of a news item.
// @Summary     Store analysis
// @Description Create or replace the analysis of a news item and clear its re-analysis flag
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path int                    true "News ID"
// @Param       request body services.AnalysisInput true "Analysis"
// @Success     200 {object} models.Analysis "Stored analysis"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     404 {object} ErrorResponse "News not found"
// @Router      /v1/pipeline/news/{id}/analysis [put]
func (h *PipelineHandler) UpsertAnalysis(c *gin.Context) {
	newsID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.AnalysisInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	analysis, err := h.analysisService.UpsertAnalysis(newsID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// IngestNews handles a news item delivered by the ingester.
// @Summary     Ingest news
// @Description Store a news item with its asset mentions; an already known URL is skipped
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body services.IngestInput true "News item"
// @Success     201 {object} IngestResponse "News item created"
// @Success     200 {object} IngestResponse "URL already ingested"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Router      /v1/pipeline/news [post]
func (h *PipelineHandler) IngestNews(c *gin.Context) {
	var req services.IngestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	news, created, err := h.newsService.IngestNews(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, IngestResponse{Created: created, News: news})
}

// ListAssets handles listing every asset for mention detection.
// @Summary     Assets for mention detection
// @Tags        pipeline
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {array}  PipelineAsset "Assets"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Router      /v1/pipeline/assets [get]
func (h *PipelineHandler) ListAssets(c *gin.Context) {
	assets, err := h.assetService.ListAllAssets()
	if err != nil {
		respondWithError(c, err)
		return
	}

	out := make([]PipelineAsset, 0, len(assets))
	for _, a := range assets {
		out = append(out, PipelineAsset{ID: a.ID, Symbol: a.Symbol, Name: a.Name, AssetType: a.AssetType})
	}
	c.JSON(http.StatusOK, out)
}

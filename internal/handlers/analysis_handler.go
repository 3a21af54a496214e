package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finnews/internal/errors"
	"finnews/internal/services"
)

// AnalysisHandler handles AI analysis and annotation requests.
type AnalysisHandler struct {
	analysisService services.AnalysisServicer
	auditService    services.AuditServicer
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService services.AnalysisServicer, auditService services.AuditServicer) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, auditService: auditService}
}

// GetAnalysis handles fetching the analysis of a news item.
// @Summary     Get analysis
// @Tags        analysis
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "News ID"
// @Success     200 {object} models.Analysis "Analysis with annotations"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "News or analysis not found"
// @Router      /v1/news/{id}/analysis [get]
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	newsID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	analysis, err := h.analysisService.GetAnalysisByNewsID(newsID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// CreateAnnotation handles adding an analyst note to an analysis.
// @Summary     Annotate analysis
// @Description Add a note, optionally overriding the sentiment score (-1 to 1)
// @Tags        analysis
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                      true "News ID"
// @Param       request body services.AnnotationInput true "Annotation"
// @Success     201 {object} models.Annotation "Annotation created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "News or analysis not found"
// @Router      /v1/news/{id}/analysis/annotations [post]
func (h *AnalysisHandler) CreateAnnotation(c *gin.Context) {
	actor, err := getCurrentUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	newsID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.AnnotationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	annotation, err := h.analysisService.CreateAnnotation(actor.ID, newsID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditActionCreate, services.AuditResourceAnnotation, annotation.ID, c.ClientIP(),
		map[string]interface{}{"news_id": newsID, "override_sentiment": req.OverrideSentiment})

	c.JSON(http.StatusCreated, annotation)
}

// GetAnnotation handles fetching an annotation by ID.
// @Summary     Get annotation
// @Tags        analysis
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Annotation ID"
// @Success     200 {object} models.Annotation "Annotation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Annotation not found"
// @Router      /v1/annotations/{id} [get]
func (h *AnalysisHandler) GetAnnotation(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	annotation, err := h.analysisService.GetAnnotationByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, annotation)
}

// DeleteAnnotation handles deleting an annotation.
// @Summary     Delete annotation
// @Description Delete an annotation (its author or an admin)
// @Tags        analysis
// @Security    BearerAuth
// @Param       id path int true "Annotation ID"
// @Success     204 "Annotation deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Annotation not found"
// @Router      /v1/annotations/{id} [delete]
func (h *AnalysisHandler) DeleteAnnotation(c *gin.Context) {
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

	if err := h.analysisService.DeleteAnnotation(actor, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditActionDelete, services.AuditResourceAnnotation, id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finnews/internal/errors"
	"finnews/internal/models"
	"finnews/internal/pagination"
	"finnews/internal/services"
)

// defaultPriceInterval is echoed when the caller sends no interval.
const defaultPriceInterval = "1d"

// AssetHandler handles asset and price-history requests.
type AssetHandler struct {
	assetService services.AssetServicer
	auditService services.AuditServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer, auditService services.AuditServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService, auditService: auditService}
}

// AssetListQuery holds the filters accepted when listing assets.
type AssetListQuery struct {
	pagination.PageRequest
	AssetType string `form:"asset_type" binding:"omitempty,asset_type"`
	Sector    string `form:"sector"`
	Region    string `form:"region"`
}

// RecordPricesRequest represents the request payload for bulk price recording.
type RecordPricesRequest struct {
	Prices []services.PriceInput `json:"prices" binding:"required,min=1,dive"`
}

// ListAssets handles listing assets.
// @Summary     List assets
// @Description Get a page of assets, optionally filtered by type, sector and region
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       asset_type query string false "stock, forex, crypto, commodity, index or other"
// @Param       sector     query string false "Sector"
// @Param       region     query string false "Region"
// @Param       skip       query int    false "Rows to skip (default 0)"
// @Param       limit      query int    false "Page size (default 100, max 500)"
// @Success     200 {array}  models.Asset "Assets"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /v1/assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	var q AssetListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.AssetFilter
	if q.AssetType != "" {
		t := models.AssetType(q.AssetType)
		filter.AssetType = &t
	}
	if q.Sector != "" {
		filter.Sector = &q.Sector
	}
	if q.Region != "" {
		filter.Region = &q.Region
	}

	assets, err := h.assetService.ListAssets(filter, q.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

// GetAsset handles fetching an asset by ID.
// @Summary     Get asset
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Asset ID"
// @Success     200 {object} models.Asset "Asset"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /v1/assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.assetService.GetAssetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// CreateAsset handles creating an asset.
// @Summary     Create asset
// @Description Create an asset (admin only). Symbols are unique.
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body services.AssetInput true "Asset details"
// @Success     201 {object} models.Asset "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate symbol"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Router      /v1/assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	actor, err := requireAdmin(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.AssetInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.CreateAsset(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditActionCreate, services.AuditResourceAsset, asset.ID, c.ClientIP(),
		map[string]interface{}{"symbol": asset.Symbol, "asset_type": string(asset.AssetType)})

	c.JSON(http.StatusCreated, asset)
}

// UpdateAsset handles partially updating an asset.
// @Summary     Update asset
// @Description Change the given fields of an asset (admin only)
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                  true "Asset ID"
// @Param       request body services.AssetUpdate true "Fields to change"
// @Success     200 {object} models.Asset "Asset updated"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate symbol"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /v1/assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	actor, err := requireAdmin(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.AssetUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.UpdateAsset(id, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditActionUpdate, services.AuditResourceAsset, asset.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, asset)
}

// DeleteAsset handles deleting an asset and its price history and mentions.
// @Summary     Delete asset
// @Tags        assets
// @Security    BearerAuth
// @Param       id path int true "Asset ID"
// @Success     204 "Asset deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /v1/assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	actor, err := requireAdmin(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.assetService.DeleteAsset(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, services.AuditActionDelete, services.AuditResourceAsset, id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// GetPriceHistory handles fetching an asset's price history.
// @Summary     Asset price history
// @Description Price points within the inclusive date range, ascending by timestamp.
// @Description The interval is echoed in X-Price-Interval and does not resample.
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id         path  int    true  "Asset ID"
// @Param       start_date query string false "YYYY-MM-DD or RFC3339"
// @Param       end_date   query string false "YYYY-MM-DD (whole day) or RFC3339"
// @Param       interval   query string false "Requested interval (default 1d)"
// @Success     200 {array}  models.AssetPrice "Price points"
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /v1/assets/{id}/prices [get]
func (h *AssetHandler) GetPriceHistory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, err := optionalTimeQuery(c, "start_date", false)
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := optionalTimeQuery(c, "end_date", true)
	if err != nil {
		respondWithError(c, err)
		return
	}

	prices, err := h.assetService.GetPriceHistory(id, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("X-Price-Interval", c.DefaultQuery("interval", defaultPriceInterval))
	c.JSON(http.StatusOK, prices)
}

// RecordPrices handles bulk-recording price points for an asset.
// @Summary     Record prices
// @Description Record OHLCV points for an asset (admin only). Timestamps already stored are skipped.
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                 true "Asset ID"
// @Param       request body RecordPricesRequest true "Price points"
// @Success     200 {object} map[string]int "Number of new points"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not an admin"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /v1/assets/{id}/prices [post]
func (h *AssetHandler) RecordPrices(c *gin.Context) {
	actor, err := requireAdmin(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	count, err := h.assetService.RecordPrices(id, req.Prices)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor.ID, "RECORD_PRICES", services.AuditResourceAsset, id, c.ClientIP(),
		map[string]interface{}{"submitted": len(req.Prices), "recorded": count})

	c.JSON(http.StatusOK, gin.H{"prices_recorded": count})
}

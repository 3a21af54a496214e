package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"finnews/internal/demo"
	apperrors "finnews/internal/errors"
)

// DemoHandler serves the static market series and news timeline.
type DemoHandler struct{}

// NewDemoHandler creates a new DemoHandler.
func NewDemoHandler() *DemoHandler {
	return &DemoHandler{}
}

// GetMarketData handles listing the demo market series.
// @Summary     Demo market data
// @Description Daily OHLCV bars from 2024-05-07 to 2024-06-05
// @Tags        market
// @Produce     json
// @Success     200 {array} demo.MarketPoint "Market data"
// @Router      /v1/market/data [get]
func (h *DemoHandler) GetMarketData(c *gin.Context) {
	c.JSON(http.StatusOK, demo.MarketData())
}

// GetMarketDataByDate handles fetching the demo market bar of one day.
// @Summary     Demo market data for a day
// @Tags        market
// @Produce     json
// @Param       date path string true "Date (YYYY-MM-DD)"
// @Success     200 {array}  demo.MarketPoint "Matching bars"
// @Failure     404 {object} ErrorResponse "Market data not found for this date"
// @Router      /v1/market/data/{date} [get]
func (h *DemoHandler) GetMarketDataByDate(c *gin.Context) {
	points := demo.MarketDataByDate(c.Param("date"))
	if len(points) == 0 {
		respondWithError(c, apperrors.ErrMarketDataNotFound)
		return
	}
	c.JSON(http.StatusOK, points)
}

// ListEvents handles listing the demo news timeline.
// @Summary     Demo news events
// @Tags        events
// @Produce     json
// @Param       category query string false "positive, negative or neutral"
// @Success     200 {array}  demo.Event "Events"
// @Failure     400 {object} ErrorResponse "Unknown category"
// @Router      /v1/news/events [get]
func (h *DemoHandler) ListEvents(c *gin.Context) {
	raw := optionalStringQuery(c, "category")
	if raw == nil {
		c.JSON(http.StatusOK, demo.Events())
		return
	}

	category := demo.Category(*raw)
	if !category.Valid() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "category must be positive, negative or neutral"))
		return
	}
	c.JSON(http.StatusOK, demo.EventsByCategory(category))
}

// GetEvent handles fetching one demo event with its market context.
// @Summary     Demo news event
// @Tags        events
// @Produce     json
// @Param       index path int true "Zero-based event index"
// @Success     200 {object} demo.EventDetail "Event"
// @Failure     404 {object} ErrorResponse "Event not found"
// @Router      /v1/news/events/{index} [get]
func (h *DemoHandler) GetEvent(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondWithError(c, apperrors.ErrEventNotFound)
		return
	}

	detail, ok := demo.EventByIndex(index)
	if !ok {
		respondWithError(c, apperrors.ErrEventNotFound)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetEventNetwork handles building the entity network of the timeline.
// @Summary     Demo entity network
// @Tags        events
// @Produce     json
// @Success     200 {object} demo.Network "Entity network"
// @Router      /v1/news/events/network [get]
func (h *DemoHandler) GetEventNetwork(c *gin.Context) {
	c.JSON(http.StatusOK, demo.EntityNetwork())
}

package api

import (
	"net/http"

	reqdto "hotel-pricing/internal/handler/dto/request"
	resdto "hotel-pricing/internal/handler/dto/response"
	"hotel-pricing/internal/handler/httperr"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Quote stay prices
// @Description Price a stay for every room type of a hotel using the requested strategy
// @Tags pricing
// @Accept json
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /hotels/{hotelId}/quotes [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams(c.Param("hotelId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", err.Error())
		return
	}

	result, err := h.q.Quote(c.Request.Context(), params)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypePrices(result))
}

// @Summary Room availability
// @Description Number of rooms bookable for the whole stay, per room type
// @Tags pricing
// @Accept json
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param request body reqdto.AvailabilityRequest true "Availability request"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /hotels/{hotelId}/availability [post]
func (h *PricingHandler) Availability(c *gin.Context) {
	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams(c.Param("hotelId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", err.Error())
		return
	}

	result, err := h.q.Availability(c.Request.Context(), params)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	res, err := resdto.FromAvailability(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cancellation fees
// @Description Fee schedule for cancelling between booking and arrival
// @Tags pricing
// @Accept json
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param request body reqdto.CancellationFeesRequest true "Cancellation fees request"
// @Success 200 {object} resdto.CancellationFeesResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{hotelId}/cancellation-fees [post]
func (h *PricingHandler) CancellationFees(c *gin.Context) {
	var req reqdto.CancellationFeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams(c.Param("hotelId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", err.Error())
		return
	}

	result, err := h.q.CancellationFees(c.Request.Context(), params)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancellationPeriods(result))
}

func abortWithQueryError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrHotelNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
	case errs.Is(err, errs.ErrUnknownStrategy):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown pricing strategy", nil)
	case errs.Is(err, errs.ErrInvalidQuery):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
	case errs.IsAny(err, errs.ErrPricingUnavailable, errs.ErrAvailabilityCorrupted):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Hotel data cannot be evaluated", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

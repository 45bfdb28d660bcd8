package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-26/goldpulse/internal/dataset"
	"github.com/Ahmed-26/goldpulse/internal/domain/dto"
	"github.com/Ahmed-26/goldpulse/internal/domain/models"
	"github.com/Ahmed-26/goldpulse/internal/predictor"
	"github.com/Ahmed-26/goldpulse/internal/service"
)

// Handler provides HTTP handlers for the prediction endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP parameters and bodies
//   - Call the service layer
//   - Translate service results and errors into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc           service.PredictionService
	defaultRecent int
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc: business service used for predictions and historical lookups.
//   - defaultRecent: row count used by /prices/recent when no n is given.
func NewHandler(svc service.PredictionService, defaultRecent int) *Handler {
	return &Handler{svc: svc, defaultRecent: defaultRecent}
}

// PredictPrice handles POST /api/v1/predict requests.
//
// PredictPrice godoc
// @Summary      Predict the closing price
// @Description  Runs the trained SVR model on the submitted Open/High/Low prices
// @Tags         predict
// @Accept       json
// @Produce      json
// @Param        request  body      dto.PredictionRequest  true  "Open, high, and low prices (all positive)"
// @Success      200      {object}  dto.PredictionResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse       "Bad Request"
// @Failure      500      {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/v1/predict [post]
func (h *Handler) PredictPrice(c *gin.Context) {
	var req dto.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	pred, err := h.svc.Predict(c.Request.Context(), req.Open, req.High, req.Low)
	if err != nil {
		if errors.Is(err, predictor.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("all prices must be positive values", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("prediction failed", err))
		return
	}

	c.JSON(http.StatusOK, dto.PredictionResponse{ClosingPrice: pred.ClosingPrice})
}

// RecentPrices handles GET /api/v1/prices/recent requests.
//
// RecentPrices godoc
// @Summary      Get recent historical prices
// @Description  Returns the last n rows of the loaded gold-price dataset in file order
// @Tags         prices
// @Produce      json
// @Param        n  query     int  false  "Number of rows (default from config)"  example(4)
// @Success      200  {object}  dto.RecentPricesResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse         "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse         "Not Found"
// @Failure      500  {object}  dto.ErrorResponse         "Internal Error"
// @Router       /api/v1/prices/recent [get]
func (h *Handler) RecentPrices(c *gin.Context) {
	n := h.defaultRecent
	if s := c.Query("n"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("n must be a positive integer", err))
			return
		}
		n = parsed
	}

	recs, err := h.svc.RecentPrices(c.Request.Context(), n)
	if err != nil {
		if errors.Is(err, dataset.ErrInsufficientData) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("not enough historical data", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch prices", err))
		return
	}

	c.JSON(http.StatusOK, dto.RecentPricesResponse{
		Count:   len(recs),
		Records: toPriceRows(recs),
	})
}

func toPriceRows(recs []models.PriceRecord) []dto.PriceRow {
	rows := make([]dto.PriceRow, len(recs))
	for i, r := range recs {
		rows[i] = dto.PriceRow{
			Date:  r.Date,
			Open:  r.Open,
			High:  r.High,
			Low:   r.Low,
			Close: r.Close,
		}
	}
	return rows
}

package api

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-26/goldpulse/internal/domain/dto"
	"github.com/Ahmed-26/goldpulse/internal/predictor"
)

//go:embed templates/index.html
var templatesFS embed.FS

// pageTemplates parses the embedded HTML once at startup; NewRouter installs
// it on the Gin engine.
func pageTemplates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/index.html"))
}

// formInput echoes the user's raw form values back into the inputs so a
// rejected submission keeps what was typed.
type formInput struct {
	Open string
	High string
	Low  string
}

// pageData is everything the index template renders.
type pageData struct {
	Recent    []dto.PriceRow // trailing rows of the dataset
	RecentErr string         // shown instead of the table when lookup fails
	Result    string         // formatted predicted close, empty until a prediction succeeds
	Error     string         // user-facing validation or prediction error
	Form      formInput
}

// Index handles GET / and renders the prediction form together with the
// recent-prices panel.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.basePageData(c))
}

// PredictForm handles POST / (classic form submit) and re-renders the page
// with either the predicted closing price or a correction message. Errors
// are never fatal here: the form simply invites the user to try again.
func (h *Handler) PredictForm(c *gin.Context) {
	data := h.basePageData(c)
	data.Form = formInput{
		Open: strings.TrimSpace(c.PostForm("open")),
		High: strings.TrimSpace(c.PostForm("high")),
		Low:  strings.TrimSpace(c.PostForm("low")),
	}

	open, err1 := strconv.ParseFloat(data.Form.Open, 64)
	high, err2 := strconv.ParseFloat(data.Form.High, 64)
	low, err3 := strconv.ParseFloat(data.Form.Low, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		data.Error = "All prices must be numeric values."
		c.HTML(http.StatusBadRequest, "index.html", data)
		return
	}

	pred, err := h.svc.Predict(c.Request.Context(), open, high, low)
	if err != nil {
		if errors.Is(err, predictor.ErrInvalidInput) {
			data.Error = "All prices must be positive values."
			c.HTML(http.StatusBadRequest, "index.html", data)
			return
		}
		data.Error = "Prediction failed: " + err.Error()
		c.HTML(http.StatusInternalServerError, "index.html", data)
		return
	}

	data.Result = fmt.Sprintf("%.2f", pred.ClosingPrice)
	c.HTML(http.StatusOK, "index.html", data)
}

// basePageData fills the parts of the page that render on every request.
func (h *Handler) basePageData(c *gin.Context) pageData {
	var data pageData
	recs, err := h.svc.RecentPrices(c.Request.Context(), h.defaultRecent)
	if err != nil {
		data.RecentErr = "Historical prices unavailable: " + err.Error()
		return data
	}
	data.Recent = toPriceRows(recs)
	return data
}

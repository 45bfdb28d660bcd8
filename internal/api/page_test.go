package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Ahmed-26/goldpulse/internal/domain/models"
	"github.com/Ahmed-26/goldpulse/internal/predictor"
)

func postForm(t *testing.T, r http.Handler, open, high, low string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"open": {open}, "high": {high}, "low": {low}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndex_RendersRecentTable(t *testing.T) {
	svc := &mockPredictionService{recs: []models.PriceRecord{
		{Date: "2024-09-05", Open: 1935.5, High: 1950, Low: 1930, Close: 1948},
	}}
	r := setupRouterWithMock(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Gold Price Prediction", "2024-09-05", "1948.00"} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q", want)
		}
	}
}

func TestIndex_RecentUnavailable(t *testing.T) {
	svc := &mockPredictionService{recsErr: errors.New("no data")}
	r := setupRouterWithMock(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Historical prices unavailable") {
		t.Fatalf("expected unavailable notice, got %s", w.Body.String())
	}
}

func TestPredictForm_TableDriven(t *testing.T) {
	cases := []struct {
		name             string
		svc              *mockPredictionService
		open, high, low  string
		status           int
		wantBodyContains string
	}{
		{
			name:             "success shows formatted result",
			svc:              &mockPredictionService{pred: &models.Prediction{ClosingPrice: 1910.248}},
			open:             "1900.0",
			high:             "1920.0",
			low:              "1890.0",
			status:           http.StatusOK,
			wantBodyContains: "The predicted closing price is: 1910.25",
		},
		{
			name:             "non-numeric input",
			svc:              &mockPredictionService{},
			open:             "abc",
			high:             "1920",
			low:              "1890",
			status:           http.StatusBadRequest,
			wantBodyContains: "All prices must be numeric values.",
		},
		{
			name:             "non-positive input",
			svc:              &mockPredictionService{predErr: predictor.ErrInvalidInput},
			open:             "0",
			high:             "1920",
			low:              "1890",
			status:           http.StatusBadRequest,
			wantBodyContains: "All prices must be positive values.",
		},
		{
			name:             "model failure",
			svc:              &mockPredictionService{predErr: errors.New("model exploded")},
			open:             "1900",
			high:             "1920",
			low:              "1890",
			status:           http.StatusInternalServerError,
			wantBodyContains: "Prediction failed",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := postForm(t, r, tc.open, tc.high, tc.low)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if !strings.Contains(w.Body.String(), tc.wantBodyContains) {
				t.Fatalf("body missing %q:\n%s", tc.wantBodyContains, w.Body.String())
			}
		})
	}
}

func TestPredictForm_KeepsTypedValues(t *testing.T) {
	svc := &mockPredictionService{predErr: predictor.ErrInvalidInput}
	r := setupRouterWithMock(svc)
	w := postForm(t, r, "0", "1920.5", "1890")
	if !strings.Contains(w.Body.String(), `value="1920.5"`) {
		t.Fatalf("form did not echo typed value:\n%s", w.Body.String())
	}
}

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthEndpoints(t *testing.T) {
	cases := []struct {
		name       string
		ready      func() error
		path       string
		wantStatus int
	}{
		{name: "healthz always ok", ready: func() error { return errors.New("down") }, path: "/healthz", wantStatus: http.StatusOK},
		{name: "readyz ok", ready: func() error { return nil }, path: "/readyz", wantStatus: http.StatusOK},
		{name: "readyz degraded", ready: func() error { return errors.New("not loaded") }, path: "/readyz", wantStatus: http.StatusServiceUnavailable},
		{name: "readyz nil check ok", ready: nil, path: "/readyz", wantStatus: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			NewHealthHandler(tc.ready).Register(r)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
		})
	}
}

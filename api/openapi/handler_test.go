package openapi_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/mws-toolkit/api/openapi"
)

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		specURL      string
		path         string
		wantStatus   int
		wantBody     string
		wantLocation string
	}{
		{
			name:       "ui uses default spec path",
			path:       "/swagger/index.html",
			wantStatus: http.StatusOK,
			wantBody:   `url: "/openapi.json"`,
		},
		{
			name:       "ui uses custom spec path",
			specURL:    "/api/openapi.yaml",
			path:       "/swagger/index.html",
			wantStatus: http.StatusOK,
			wantBody:   `url: "/api/openapi.yaml"`,
		},
		{
			name:         "bare path redirects",
			path:         "/swagger",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "/swagger/index.html",
		},
		{
			name:         "trailing slash redirects",
			path:         "/swagger/",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "/swagger/index.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			openapi.RegisterRoutes(e, "MWS Sync API", tt.specURL)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
				assert.Contains(t, rec.Body.String(), "<title>MWS Sync API</title>")
			}
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
			}
		})
	}
}

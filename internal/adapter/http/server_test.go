package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "github.com/larseberhart/nuccalc/internal/adapter/http"
	"github.com/larseberhart/nuccalc/internal/catalog"
	"github.com/larseberhart/nuccalc/internal/observability"
	"github.com/larseberhart/nuccalc/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httpadapter.Server {
	t.Helper()
	cat, err := catalog.Load("", "")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(cat, nil, logger, observability.NewMetricsForTesting(), 20)
	return httpadapter.NewServer(":0", svc, logger)
}

func doRequest(srv *httpadapter.Server, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthzReturns200(t *testing.T) {
	rec := doRequest(newTestServer(t), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200(t *testing.T) {
	rec := doRequest(newTestServer(t), http.MethodGet, "/readyz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := doRequest(newTestServer(t), http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestEffectsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	t.Run("explicit parameters", func(t *testing.T) {
		rec := doRequest(srv, http.MethodPost, "/v1/effects",
			`{"yield_mt":0.15,"burst_height_m":159.4,"wind_speed_kmh":3,
			  "population":{"core_density":5724,"suburban_density":3500,"core_radius_km":22.5}}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var res struct {
			ID      string `json:"id"`
			Thermal struct {
				Severe struct {
					Radius float64 `json:"radius_m"`
				} `json:"severe"`
			} `json:"thermal"`
			Fallout struct {
				MaxDownwind float64 `json:"max_downwind_km"`
			} `json:"fallout"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.True(t, strings.HasPrefix(res.ID, "det-"))
		assert.InDelta(t, 561.85, res.Thermal.Severe.Radius, 0.01)
		assert.InDelta(t, 74.61, res.Fallout.MaxDownwind, 0.01)
	})

	t.Run("catalog references", func(t *testing.T) {
		rec := doRequest(srv, http.MethodPost, "/v1/effects",
			`{"weapon":"Fat Man (US)","city":"Vienna","burst_type":"optimum","wind_speed_kmh":10}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("invalid body", func(t *testing.T) {
		rec := doRequest(srv, http.MethodPost, "/v1/effects", "not-json{{{")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative yield", func(t *testing.T) {
		rec := doRequest(srv, http.MethodPost, "/v1/effects",
			`{"yield_mt":-1,"city":"Vienna"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing target", func(t *testing.T) {
		rec := doRequest(srv, http.MethodPost, "/v1/effects", `{"yield_mt":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown weapon is 404", func(t *testing.T) {
		rec := doRequest(srv, http.MethodPost, "/v1/effects",
			`{"weapon":"Death Star","city":"Vienna"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown city is 404", func(t *testing.T) {
		rec := doRequest(srv, http.MethodPost, "/v1/effects",
			`{"weapon":"W80","city":"Atlantis"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCatalogEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("weapons", func(t *testing.T) {
		rec := doRequest(srv, http.MethodGet, "/v1/weapons", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Weapons []catalog.Weapon `json:"weapons"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Weapons, 35)
	})

	t.Run("cities", func(t *testing.T) {
		rec := doRequest(srv, http.MethodGet, "/v1/cities", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Cities []catalog.City `json:"cities"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Cities, 31)
	})
}

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/journey-backend/internal/handlers"
	"github.com/yungbote/journey-backend/internal/logger"
	"github.com/yungbote/journey-backend/internal/observability"
	"github.com/yungbote/journey-backend/internal/services"
	"github.com/yungbote/journey-backend/internal/store"
	"github.com/yungbote/journey-backend/internal/types"
)

const testOrigin = "http://localhost:5173"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("development")
	require.NoError(t, err)

	st := store.New(log)
	for _, journey := range store.DefaultSeed() {
		st.Put(journey)
	}
	svc := services.NewJourneyService(st, log)
	return NewRouter(RouterConfig{
		JourneyHandler: handlers.NewJourneyHandler(svc),
		StageHandler:   handlers.NewStageHandler(svc),
		StepHandler:    handlers.NewStepHandler(svc),
		Metrics:        observability.NewMetrics(),
		CORSOrigin:     testOrigin,
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGetJourney(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/journeys/123", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var journey types.Journey
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &journey))
	assert.Equal(t, "123", journey.JourneyID)
	assert.Equal(t, 50, journey.CompletionPct)
	require.Len(t, journey.Stages, 2)
	assert.Equal(t, 75, journey.Stages[0].CompletionPct)
	assert.Equal(t, 0, journey.Stages[1].CompletionPct)
}

func TestGetJourney_NotFound(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/journeys/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStepStatus(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPatch, "/api/steps/t3", `{"status":"COMPLETED"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["ok"])

	// The next read reflects the new aggregate immediately.
	rec = doJSON(t, router, http.MethodGet, "/api/journeys/123", "")
	var journey types.Journey
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &journey))
	assert.Equal(t, 83, journey.CompletionPct)
	assert.Equal(t, 100, journey.Stages[1].CompletionPct)
}

func TestUpdateStepStatus_Failures(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPatch, "/api/steps/t3", `{"status":"DONE"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/api/steps/t99", `{"status":"COMPLETED"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/api/steps/t3", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddStage(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/journeys/123/stages", `{"name":"Evidence Collection"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "s3", body["stage_id"])
}

func TestAddStage_Failures(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/journeys/123/stages", `{"name":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/journeys/999/stages", `{"name":"Evidence Collection"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteStage_CascadesAndRecomputes(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/stages/s1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Steps t1/t2 died with the stage.
	rec = doJSON(t, router, http.MethodPatch, "/api/steps/t1", `{"status":"COMPLETED"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/journeys/123", "")
	var journey types.Journey
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &journey))
	require.Len(t, journey.Stages, 1)
	assert.Equal(t, 0, journey.CompletionPct)
}

func TestDeleteStage_NotFound(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodDelete, "/api/stages/s99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddStep(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/stages/s2/steps", `{"name":"Upload Policies"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "t4", body["step_id"])

	rec = doJSON(t, router, http.MethodGet, "/api/journeys/123", "")
	var journey types.Journey
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &journey))
	added := journey.Stages[1].Steps[1]
	assert.Equal(t, types.StatusNotStarted, added.Status)
	// (1 + 0.5 + 0 + 0) / 4 * 100 = 37.5 -> 38
	assert.Equal(t, 38, journey.CompletionPct)
}

func TestAddStep_Failures(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/stages/s2/steps", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/stages/s2/steps", `{"name":"Upload Policies","status":"BLOCKED"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/stages/s99/steps", `{"name":"Upload Policies"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteStep(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/steps/t2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/journeys/123", "")
	var journey types.Journey
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &journey))
	assert.Equal(t, 100, journey.Stages[0].CompletionPct)
	assert.Equal(t, 50, journey.CompletionPct)

	rec = doJSON(t, router, http.MethodDelete, "/api/steps/t2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/journeys/123", nil)
	req.Header.Set("Origin", testOrigin)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID_Issued(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthcheck", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	// Generate a request so the counter vec has at least one series.
	doJSON(t, router, http.MethodGet, "/api/journeys/123", "")

	rec := doJSON(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "journey_api_requests_total"))
}

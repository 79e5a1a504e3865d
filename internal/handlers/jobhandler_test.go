package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/logger"
	"github.com/justsurfingit/job-board/internal/metrics"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/justsurfingit/job-board/internal/services"
	"github.com/justsurfingit/job-board/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	s := store.New(func() time.Time {
		return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	}, models.SeedJobs()...)
	log := logger.NewTest(t)
	board := services.NewBoardService(s, log, metrics.New())

	r := gin.New()
	NewJobHandler(board, log).Register(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealthCheck(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListJobs_Seed(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/jobs", nil)

	require.Equal(t, http.StatusOK, w.Code)
	jobs := decode[[]models.Job](t, w)
	require.Len(t, jobs, 3)
	assert.Equal(t, "Product Manager", jobs[1].Title)
	assert.Equal(t, "1/20/2024", jobs[1].PostedDate)
}

func TestCreateJob(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCount  int
	}{
		{
			name: "valid",
			body: map[string]any{
				"title": "Support Engineer", "company": "Hooli", "location": "Remote",
				"salary": "$60k", "type": "Full-time", "remote": true, "description": "Help users.",
			},
			wantStatus: http.StatusCreated,
			wantCount:  4,
		},
		{
			name:       "missing fields",
			body:       map[string]any{"title": "Support Engineer"},
			wantStatus: http.StatusBadRequest,
			wantCount:  3,
		},
		{
			name:       "not an object",
			body:       []string{"nope"},
			wantStatus: http.StatusBadRequest,
			wantCount:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t)

			w := doJSON(t, r, http.MethodPost, "/api/v1/jobs", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			list := doJSON(t, r, http.MethodGet, "/api/v1/jobs", nil)
			assert.Len(t, decode[[]models.Job](t, list), tt.wantCount)
		})
	}
}

func TestGetJob(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/jobs/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Creative Minds", decode[models.Job](t, w).Company)

	w = doJSON(t, r, http.MethodGet, "/api/v1/jobs/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "JOB_NOT_FOUND", decode[dtos.ErrorResponse](t, w).Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/jobs/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDraftFlow(t *testing.T) {
	r := setupRouter(t)

	fields := []dtos.FieldUpdateRequest{
		{Name: "title", Value: "QA Engineer"},
		{Name: "company", Value: "Acme"},
		{Name: "location", Value: "Austin, TX"},
		{Name: "salary", Value: "$70k-$90k"},
		{Name: "type", Value: "Contract"},
		{Name: "remote", Value: true},
	}
	for _, f := range fields {
		w := doJSON(t, r, http.MethodPatch, "/api/v1/draft", f)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	// description still empty
	w := doJSON(t, r, http.MethodPost, "/api/v1/draft/submit", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errResp := decode[dtos.ErrorResponse](t, w)
	assert.Equal(t, "DRAFT_INCOMPLETE", errResp.Code)
	assert.Equal(t, []string{"description"}, errResp.Fields)

	w = doJSON(t, r, http.MethodPatch, "/api/v1/draft", dtos.FieldUpdateRequest{Name: "description", Value: "Test web apps."})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/draft/submit", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	job := decode[models.Job](t, w)
	assert.Equal(t, uint64(4), job.ID)
	assert.Equal(t, "10/19/2026", job.PostedDate)
	assert.True(t, job.Remote)

	w = doJSON(t, r, http.MethodGet, "/api/v1/draft", nil)
	assert.Equal(t, models.JobDraft{}, decode[models.JobDraft](t, w))
}

func TestUpdateDraft_BadField(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/v1/draft", dtos.FieldUpdateRequest{Name: "remote", Value: "yes"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_FIELD_VALUE", decode[dtos.ErrorResponse](t, w).Code)

	w = doJSON(t, r, http.MethodPatch, "/api/v1/draft", dtos.FieldUpdateRequest{Name: "email", Value: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNKNOWN_FIELD", decode[dtos.ErrorResponse](t, w).Code)
}

func TestSearchDoesNotFilterJobs(t *testing.T) {
	r := setupRouter(t)
	before := doJSON(t, r, http.MethodGet, "/api/v1/jobs", nil).Body.String()

	w := doJSON(t, r, http.MethodPatch, "/api/v1/search", dtos.FieldUpdateRequest{Name: "keyword", Value: "zzz"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPatch, "/api/v1/search", dtos.FieldUpdateRequest{Name: "remote", Value: true})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/search", nil)
	assert.Equal(t, models.SearchFilters{Keyword: "zzz", Remote: true}, decode[models.SearchFilters](t, w))

	after := doJSON(t, r, http.MethodGet, "/api/v1/jobs", nil).Body.String()
	assert.JSONEq(t, before, after)
}

func TestSelection(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/selection", dtos.SelectRequest{ID: 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	modal := decode[services.ModalState](t, w)
	require.True(t, modal.Open)
	assert.Equal(t, "Innovate Solutions", modal.Job.Company)
	assert.Equal(t, "New York, NY", modal.Job.Location)

	w = doJSON(t, r, http.MethodGet, "/api/v1/selection", nil)
	assert.True(t, decode[services.ModalState](t, w).Open)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/selection", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"open":false,"job":null}`, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/v1/selection", dtos.SelectRequest{ID: 77})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/selection", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBoard(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/board", nil)

	require.Equal(t, http.StatusOK, w.Code)
	view := decode[services.BoardView](t, w)
	assert.Equal(t, 3, view.Stats.JobsAvailable)
	assert.Len(t, view.Cards, 3)
	assert.False(t, view.Modal.Open)
}

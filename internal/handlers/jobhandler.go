package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/apperrors"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/services"
	"go.uber.org/zap"
)

// JobHandler exposes the board service over HTTP.
type JobHandler struct {
	Board  *services.BoardService
	Logger *zap.Logger
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(board *services.BoardService, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		Board:  board,
		Logger: logger,
	}
}

// Register mounts every board route on the group.
func (h *JobHandler) Register(api *gin.RouterGroup) {
	api.GET("/health", HealthCheck)

	api.GET("/jobs", h.ListJobs)
	api.POST("/jobs", h.CreateJob)
	api.GET("/jobs/:id", h.GetJob)

	api.GET("/board", h.GetBoard)

	api.GET("/draft", h.GetDraft)
	api.PATCH("/draft", h.UpdateDraft)
	api.POST("/draft/submit", h.SubmitDraft)

	api.GET("/search", h.GetSearch)
	api.PATCH("/search", h.UpdateSearch)

	api.GET("/selection", h.GetSelection)
	api.POST("/selection", h.SelectJob)
	api.DELETE("/selection", h.CloseSelection)
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListJobs is GET /jobs. Search filters never narrow it.
func (h *JobHandler) ListJobs(c *gin.Context) {
	c.JSON(http.StatusOK, h.Board.VisibleJobs())
}

// CreateJob is POST /jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "Invalid JSON format", err))
		return
	}
	job, err := h.Board.Post(req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	job, ok := h.Board.Store.Get(id)
	if !ok {
		h.fail(c, apperrors.New(apperrors.ErrCodeJobNotFound, "job not found"))
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) GetBoard(c *gin.Context) {
	c.JSON(http.StatusOK, h.Board.View())
}

func (h *JobHandler) GetDraft(c *gin.Context) {
	c.JSON(http.StatusOK, h.Board.Draft())
}

// UpdateDraft is PATCH /draft, one input change per call.
func (h *JobHandler) UpdateDraft(c *gin.Context) {
	var req dtos.FieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "Invalid JSON format", err))
		return
	}
	draft, err := h.Board.SetDraftField(req.Name, req.Value)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *JobHandler) SubmitDraft(c *gin.Context) {
	job, err := h.Board.Submit()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) GetSearch(c *gin.Context) {
	c.JSON(http.StatusOK, h.Board.SearchFilters())
}

func (h *JobHandler) UpdateSearch(c *gin.Context) {
	var req dtos.FieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "Invalid JSON format", err))
		return
	}
	filters, err := h.Board.SetSearchField(req.Name, req.Value)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, filters)
}

func (h *JobHandler) GetSelection(c *gin.Context) {
	c.JSON(http.StatusOK, h.Board.Modal())
}

// SelectJob is POST /selection, opening the detail modal.
func (h *JobHandler) SelectJob(c *gin.Context) {
	var req dtos.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "Invalid JSON format", err))
		return
	}
	if _, err := h.Board.Select(req.ID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Board.Modal())
}

func (h *JobHandler) CloseSelection(c *gin.Context) {
	h.Board.Close()
	c.JSON(http.StatusOK, h.Board.Modal())
}

func (h *JobHandler) fail(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	resp := dtos.ErrorResponse{Error: err.Error()}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		resp.Error = appErr.Message
		if appErr.Err != nil {
			resp.Error += ": " + appErr.Err.Error()
		}
		resp.Code = string(appErr.Code)
		resp.Fields = appErr.Fields
	}

	if status >= http.StatusInternalServerError {
		h.Logger.Error("request failed", zap.Error(err))
	}
	c.JSON(status, resp)
}

func parseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid job id", err)
	}
	return id, nil
}

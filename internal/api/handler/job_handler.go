package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cuongbtq/cleanmatch-be/internal/api/dto"
	"github.com/cuongbtq/cleanmatch-be/internal/engine"
	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
	"github.com/gin-gonic/gin"
)

// JobHandler handles job-related HTTP requests
type JobHandler struct {
	logger *slog.Logger
	engine *engine.Engine
}

// NewJobHandler creates a new JobHandler instance
func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{logger: deps.Logger, engine: deps.Engine}
}

// CreateJob handles POST /api/v1/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	job, err := h.engine.CreateJob(sessionToken(c), engine.CreateJobRequest{
		ServiceType:   req.ServiceType,
		Address:       req.Address,
		ScheduledAt:   req.ScheduledAt,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewJobDTO(job))
}

// ListJobs handles GET /api/v1/jobs
//
// The view depends on the session role: customers see their own jobs,
// providers see their assigned jobs, or the open pending jobs when
// ?open=true.
func (h *JobHandler) ListJobs(c *gin.Context) {
	user, err := h.engine.SessionUser(sessionToken(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var jobs []domain.Job
	switch {
	case user.Role == domain.RoleCustomer:
		jobs = h.engine.ListJobsForCustomer(user.ID)
	case c.Query("open") == "true":
		jobs = h.engine.ListOpenJobs()
	default:
		jobs = h.engine.ListJobsForProvider(user.ID)
	}

	c.JSON(http.StatusOK, dto.ListJobsResponse{Jobs: dto.NewJobDTOs(jobs)})
}

// GetJob handles GET /api/v1/jobs/:job_id
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, ok := h.jobID(c)
	if !ok {
		return
	}

	job, err := h.engine.GetJob(jobID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewJobDTO(job))
}

// UpdateStatus handles PUT /api/v1/jobs/:job_id/status
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	jobID, ok := h.jobID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	job, err := h.engine.UpdateJobStatus(sessionToken(c), jobID, req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewJobDTO(job))
}

// AcceptJob handles POST /api/v1/jobs/:job_id/accept (direct mode only)
func (h *JobHandler) AcceptJob(c *gin.Context) {
	jobID, ok := h.jobID(c)
	if !ok {
		return
	}

	job, err := h.engine.AcceptJob(sessionToken(c), jobID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewJobDTO(job))
}

// SubmitReview handles POST /api/v1/jobs/:job_id/reviews
func (h *JobHandler) SubmitReview(c *gin.Context) {
	jobID, ok := h.jobID(c)
	if !ok {
		return
	}

	var req dto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	job, err := h.engine.SubmitReview(sessionToken(c), jobID, req.Rating, req.Text)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewJobDTO(job))
}

// ListServices handles GET /api/v1/services
func (h *JobHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.engine.Catalog()})
}

func (h *JobHandler) jobID(c *gin.Context) (int64, bool) {
	jobID, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job_id must be an integer"})
		return 0, false
	}
	return jobID, true
}

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hellorory/careers-api/internal/dtos"
	"github.com/hellorory/careers-api/internal/intake"
)

// JobHandler serves the job-posting endpoints. The posting endpoints
// never leak adapter error detail; failures are logged server-side and
// surfaced with fixed messages only.
type JobHandler struct {
	Intake *intake.Intake
	Jobs   intake.JobRepository
}

func NewJobHandler(in *intake.Intake, jobs intake.JobRepository) *JobHandler {
	return &JobHandler{Intake: in, Jobs: jobs}
}

// CreateJob is the POST /jobs endpoint (multipart: title, description,
// location, optional image file).
func (h *JobHandler) CreateJob(c *gin.Context) {
	form, err := intake.DecodeRequest(c.Request, intake.Posting)
	if err != nil {
		h.failCreate(c, err)
		return
	}

	job, err := h.Intake.SubmitPosting(c.Request.Context(), form)
	if err != nil {
		h.failCreate(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"job": job})
}

func (h *JobHandler) failCreate(c *gin.Context, err error) {
	log.Printf("Error adding job: %v", err)
	cond, ok := intake.ConditionOf(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add job"})
		return
	}
	switch cond {
	case intake.ValidationFailed:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
	case intake.PayloadTooLarge:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Attachment too large"})
	default:
		// Malformed bodies and all downstream failures share the
		// generic message; the detail stays in the server log.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add job"})
	}
}

// GetJobs is the GET /jobs endpoint, newest posting first.
func (h *JobHandler) GetJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListPostings(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jobs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// DeleteJob is the POST /jobs/delete endpoint with JSON body {id}.
// Deleting an id that no longer exists still reports success.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	var req dtos.DeleteJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error deleting job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		return
	}
	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Job ID is required"})
		return
	}

	if err := h.Jobs.DeletePosting(c.Request.Context(), req.ID); err != nil {
		log.Printf("Error deleting job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

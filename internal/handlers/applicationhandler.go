package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hellorory/careers-api/internal/intake"
)

// ApplicationHandler serves the public application-intake endpoint.
// Unlike the posting endpoints it leaks adapter error detail in its
// responses; the frontend shows these messages to applicants, so this
// observed behavior is kept.
type ApplicationHandler struct {
	Intake *intake.Intake
}

func NewApplicationHandler(in *intake.Intake) *ApplicationHandler {
	return &ApplicationHandler{Intake: in}
}

// Apply is the POST /applications endpoint (multipart: jobId, fullName,
// email, phone, coverLetter, optional cv file).
func (h *ApplicationHandler) Apply(c *gin.Context) {
	form, err := intake.DecodeRequest(c.Request, intake.Application)
	if err != nil {
		h.fail(c, err)
		return
	}

	app, err := h.Intake.SubmitApplication(c.Request.Context(), form)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Application submitted successfully",
		"application": app,
	})
}

func (h *ApplicationHandler) fail(c *gin.Context, err error) {
	log.Printf("Error processing application: %v", err)

	cond, ok := intake.ConditionOf(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process application"})
		return
	}

	detail := err.Error()
	var ie *intake.Error
	if errors.As(err, &ie) && ie.Err != nil {
		detail = ie.Err.Error()
	}

	switch cond {
	case intake.MalformedForm, intake.PayloadTooLarge:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing form data: " + detail})
	case intake.ValidationFailed:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: jobId, fullName, email, phone, coverLetter are required."})
	case intake.NotFound:
		if intake.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job fetch error: " + detail})
		}
	case intake.UploadFailed:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "CV upload error: " + detail})
	case intake.PersistenceFailed:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + detail})
	case intake.NotificationFailed:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email send error: " + detail})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process application"})
	}
}

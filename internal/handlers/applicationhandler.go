package handlers

import (
	"errors"
	"net/http"

	"github.com/applytrack/applytrack/internal/dtos"
	"github.com/applytrack/applytrack/internal/services"
	"github.com/gin-gonic/gin"
)

// ApplicationHandler exposes the application store over HTTP.
type ApplicationHandler struct {
	AppService *services.ApplicationService
}

// NewApplicationHandler creates the handler with dependencies
func NewApplicationHandler(s *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		AppService: s,
	}
}

// ListApplications is the GET /applications endpoint
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	apps, err := h.AppService.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, "Failed to fetch applications", err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// CreateApplication is the POST /applications endpoint
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dtos.ApplicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.AppService.Create(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, "Failed to create application", err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// UpdateApplication is the PATCH /applications/:id endpoint.
// The body is a partial record: omitted fields keep their stored values.
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	var req dtos.ApplicationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.AppService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, "Failed to update application", err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// DeleteApplication is the DELETE /applications/:id endpoint
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	if err := h.AppService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, "Failed to delete application", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted"})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses:
// validation 400, not found 404, storage 500.
func writeServiceError(c *gin.Context, msg string, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg + ": " + err.Error()})
	}
}

package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/mbcars/lead-router/pkg/middleware"
	"github.com/mbcars/lead-router/pkg/models"
	"github.com/mbcars/lead-router/pkg/services"
)

const (
	formView    = "index.html"
	successView = "success.html"
)

// Handlers contains all HTTP handlers for the lead form
type Handlers struct {
	leadService services.LeadService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(leadService services.LeadService) *Handlers {
	return &Handlers{
		leadService: leadService,
	}
}

// RegisterRoutes mounts the lead form and the operator endpoints. The router
// must already have the HTML templates installed.
func RegisterRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/", h.ShowForm)
	router.POST("/", h.SubmitLead)
	router.GET("/health", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// ShowForm renders the empty lead form.
func (h *Handlers) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, formView, gin.H{})
}

// SubmitLead forwards the submitted lead to a sales agent and renders the
// confirmation, or the form again with the provider's errors.
func (h *Handlers) SubmitLead(c *gin.Context) {
	name, ok := c.GetPostForm("customer_name")
	if !ok {
		missingField(c, "customer_name")
		return
	}

	phone, ok := c.GetPostForm("phone")
	if !ok {
		missingField(c, "phone")
		return
	}

	lead := models.Lead{CustomerName: name, Phone: phone}
	outcome := h.leadService.Dispatch(c.Request.Context(), lead)

	if outcome.Succeeded() {
		c.HTML(http.StatusOK, successView, gin.H{
			"Name":  lead.CustomerName,
			"Phone": lead.Phone,
		})
		return
	}

	// Submitted values are not carried back into the form.
	notices := make([]string, 0, len(outcome.Errors))
	for _, e := range outcome.Errors {
		notices = append(notices, fmt.Sprintf("description : %s", e.Description))
	}

	c.HTML(http.StatusOK, formView, gin.H{
		"Notices": notices,
	})
}

func missingField(c *gin.Context, field string) {
	log.WithField("request_id", middleware.GetRequestID(c)).Warnf("Lead submission missing form field %s", field)
	c.JSON(http.StatusBadRequest, gin.H{"error": "missing form field: " + field})
}

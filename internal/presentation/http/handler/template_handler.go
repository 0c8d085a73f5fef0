package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/docuflow/docuflow-api/internal/presentation/http/dto/response"
	"github.com/docuflow/docuflow-api/internal/render/template"
)

// TemplateHandler serves the template gallery
type TemplateHandler struct {
	registry *template.Registry
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(registry *template.Registry) *TemplateHandler {
	return &TemplateHandler{registry: registry}
}

// List returns every available design with its descriptor and default theme.
// GET /api/v1/templates
func (h *TemplateHandler) List(c *gin.Context) {
	response.OK(c, "Templates retrieved successfully", h.registry.Catalog())
}

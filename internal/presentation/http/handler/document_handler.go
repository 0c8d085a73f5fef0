package handler

import (
	"encoding/base64"
	"errors"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/docuflow/docuflow-api/internal/application/service"
	"github.com/docuflow/docuflow-api/internal/config"
	"github.com/docuflow/docuflow-api/internal/presentation/http/dto/request"
	"github.com/docuflow/docuflow-api/internal/presentation/http/dto/response"
	"github.com/docuflow/docuflow-api/pkg/apperror"
)

// DocumentHandler handles document generation requests
type DocumentHandler struct {
	documentService *service.DocumentService
	cfg             *config.DocumentConfig
	logger          *zap.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService, cfg *config.DocumentConfig, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		cfg:             cfg,
		logger:          logger,
	}
}

// Generate renders one invoice snapshot into a PDF and streams it back as an
// attachment.
// POST /api/v1/documents
func (h *DocumentHandler) Generate(c *gin.Context) {
	var req request.GenerateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			fields := make([]apperror.FieldError, 0, len(validationErrs))
			for _, fe := range validationErrs {
				fields = append(fields, apperror.FieldError{
					Field:   strings.ToLower(fe.Field()),
					Message: "failed on the '" + fe.Tag() + "' rule",
				})
			}
			response.Error(c, apperror.NewValidationError(fields))
			return
		}
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	invoice, err := req.Invoice.ToEntity()
	if err != nil {
		response.Error(c, err)
		return
	}

	customer, err := req.Customer.ToEntity()
	if err != nil {
		response.Error(c, err)
		return
	}

	var logo []byte
	if req.LogoBase64 != "" {
		logo, err = base64.StdEncoding.DecodeString(req.LogoBase64)
		if err != nil {
			response.BadRequest(c, "logo_base64 is not valid base64")
			return
		}
		if h.cfg.MaxLogoBytes > 0 && int64(len(logo)) > h.cfg.MaxLogoBytes {
			response.BadRequest(c, "logo exceeds the maximum allowed size")
			return
		}
	}

	input := &service.GenerateInput{
		Invoice:      invoice,
		Company:      req.Company.ToEntity(),
		Customer:     customer,
		CurrencyCode: req.CurrencyCode,
		Template:     req.Template.ToEntity(),
		Logo:         logo,
	}

	out, err := h.documentService.Generate(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.FileAttachment(out.Path, filepath.Base(out.Path))
}

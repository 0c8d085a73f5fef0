package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/docuflow/docuflow-api/internal/domain/entity"
	"github.com/docuflow/docuflow-api/internal/render/layout"
	"github.com/docuflow/docuflow-api/internal/render/template"
	"github.com/docuflow/docuflow-api/pkg/apperror"
)

// DocumentService turns invoice snapshots into finished PDF artifacts. It
// holds no per-render state; concurrent Generate calls on different invoices
// are independent.
type DocumentService struct {
	logger    *zap.Logger
	registry  *template.Registry
	outputDir string
}

// NewDocumentService creates a new document service writing artifacts under
// outputDir.
func NewDocumentService(logger *zap.Logger, registry *template.Registry, outputDir string) *DocumentService {
	return &DocumentService{
		logger:    logger,
		registry:  registry,
		outputDir: outputDir,
	}
}

// GenerateInput is the fully-populated snapshot for one render call. The
// caller validates business completeness; the service validates nothing
// beyond what rendering itself requires.
type GenerateInput struct {
	Invoice      entity.Invoice
	Company      entity.Company
	Customer     entity.Customer
	CurrencyCode string
	Template     entity.CompleteTemplate
	Logo         []byte
}

// GenerateOutput describes the finished artifact.
type GenerateOutput struct {
	Path  string `json:"path"`
	Pages int    `json:"pages"`
}

// Generate resolves the template, renders every page, and writes the PDF
// atomically. A failed render never leaves a partial artifact at the final
// path.
func (s *DocumentService) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperror.RenderFailure(err)
	}

	tmpl, err := s.registry.Resolve(input.Template)
	if err != nil {
		s.logger.Error("template design did not resolve",
			zap.String("design", input.Template.Descriptor.Design.String()),
			zap.Error(err))
		return nil, err
	}

	code := input.CurrencyCode
	if code == "" {
		code = input.Invoice.CurrencyCode
	}

	// The creation date is pinned to the invoice's issue date so the same
	// snapshot always serializes to identical bytes.
	canvas := layout.NewCanvas(input.Invoice.IssueDate)
	if err := tmpl.Draw(canvas, &input.Invoice, input.Company, input.Customer, code, input.Logo); err != nil {
		s.logger.Error("drawing failed",
			zap.String("invoice", input.Invoice.Number),
			zap.Error(err))
		return nil, apperror.RenderFailure(err)
	}

	path := filepath.Join(s.outputDir, documentFileName(input.Invoice.Number))
	if err := writeAtomic(path, canvas.Output); err != nil {
		s.logger.Error("failed to write document artifact",
			zap.String("path", path),
			zap.Error(err))
		return nil, apperror.RenderFailure(err)
	}

	s.logger.Info("document generated",
		zap.String("invoice", input.Invoice.Number),
		zap.String("path", path),
		zap.Int("pages", canvas.PageCount()))

	return &GenerateOutput{Path: path, Pages: canvas.PageCount()}, nil
}

// documentFileName derives a safe artifact name from the invoice number.
func documentFileName(number string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, number)
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		cleaned = "invoice"
	}
	return "invoice-" + cleaned + ".pdf"
}

// writeAtomic streams the document into a temporary file in the target
// directory and renames it into place, so a crash mid-write never leaves a
// truncated file visible at the final path.
func writeAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".pdf-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

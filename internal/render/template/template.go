// Package template turns invoice snapshots into finished pages. Every design
// shares one rendering skeleton (header, bill-to, item table, totals,
// payment details, footer). A design contributes only its style tokens and
// a default color theme: fonts, header treatment, border, decorative motif.
// The registry resolves a (design, theme) pair to a renderer and refuses
// unknown designs rather than falling back to a default.
package template

import (
	"github.com/docuflow/docuflow-api/internal/domain/entity"
	"github.com/docuflow/docuflow-api/internal/domain/enum"
	"github.com/docuflow/docuflow-api/internal/render/layout"
	"github.com/docuflow/docuflow-api/pkg/apperror"
)

// Template renders one invoice onto one or more pages of a canvas.
// Implementations are stateless: concurrent Draw calls on distinct canvases
// never interfere.
type Template interface {
	// Theme returns the color theme the renderer was resolved with.
	Theme() entity.TemplateTheme
	// Draw lays the invoice out on the canvas, adding pages as needed.
	Draw(c *layout.Canvas, inv *entity.Invoice, company entity.Company,
		customer entity.Customer, currencyCode string, logo []byte) error
}

// Palette is a theme parsed into drawable colors.
type Palette struct {
	Primary    layout.RGB
	Secondary  layout.RGB
	Accent     layout.RGB
	Line       layout.RGB
	Background layout.RGB
	Subtle     layout.RGB
}

func paletteFrom(theme entity.TemplateTheme) Palette {
	return Palette{
		Primary:    layout.ParseHex(theme.Primary),
		Secondary:  layout.ParseHex(theme.Secondary),
		Accent:     layout.ParseHex(theme.Accent),
		Line:       layout.ParseHex(theme.Line),
		Background: layout.ParseHex(theme.Background),
		Subtle:     layout.ParseHex(theme.SubtleText),
	}
}

// CatalogEntry pairs a design descriptor with its default theme for gallery
// listings.
type CatalogEntry struct {
	Descriptor   entity.TemplateDescriptor `json:"descriptor"`
	DefaultTheme entity.TemplateTheme      `json:"default_theme"`
}

// Registry maps design identifiers to renderers.
type Registry struct {
	specs map[enum.TemplateDesign]designSpec
	order []enum.TemplateDesign
}

// NewRegistry builds the registry from the built-in design catalog.
func NewRegistry() *Registry {
	r := &Registry{specs: make(map[enum.TemplateDesign]designSpec, len(designCatalog))}
	for _, spec := range designCatalog {
		r.specs[spec.descriptor.Design] = spec
		r.order = append(r.order, spec.descriptor.Design)
	}
	return r
}

// Resolve returns the renderer for a complete template. A theme with an
// empty name selects the design's default theme. An unknown design
// identifier fails with ErrUnknownTemplate; there is deliberately no
// fallback design.
func (r *Registry) Resolve(ct entity.CompleteTemplate) (Template, error) {
	spec, ok := r.specs[ct.Descriptor.Design]
	if !ok {
		return nil, apperror.UnknownTemplate(ct.Descriptor.Design.String())
	}
	theme := ct.Theme
	if theme.Name == "" {
		theme = spec.theme
	}
	return &styledRenderer{
		descriptor: spec.descriptor,
		theme:      theme,
		palette:    paletteFrom(theme),
		style:      spec.style,
	}, nil
}

// Catalog lists every design with its descriptor and default theme, in
// catalog order.
func (r *Registry) Catalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(r.order))
	for _, design := range r.order {
		spec := r.specs[design]
		entries = append(entries, CatalogEntry{
			Descriptor:   spec.descriptor,
			DefaultTheme: spec.theme,
		})
	}
	return entries
}

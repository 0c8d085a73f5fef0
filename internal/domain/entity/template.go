package entity

import "github.com/docuflow/docuflow-api/internal/domain/enum"

// TemplateTheme is the color palette applied to a design. Colors are hex
// strings ("#RRGGBB"); the render layer parses them once at resolution time.
// Pure value type, no behavior.
type TemplateTheme struct {
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Line       string `json:"line"`
	Background string `json:"background"`
	SubtleText string `json:"subtle_text"`
}

// TemplateDescriptor describes one visual design for gallery listings and
// template selection.
type TemplateDescriptor struct {
	Design      enum.TemplateDesign   `json:"design"`
	Category    enum.TemplateCategory `json:"category"`
	Premium     bool                  `json:"premium"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
}

// CompleteTemplate pairs a design with the theme to render it in. The
// registry resolves it to a concrete renderer.
type CompleteTemplate struct {
	Descriptor TemplateDescriptor `json:"descriptor"`
	Theme      TemplateTheme      `json:"theme"`
}

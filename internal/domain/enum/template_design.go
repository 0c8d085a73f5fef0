package enum

// TemplateDesign identifies one visual invoice design. Every design listed
// here must resolve to exactly one renderer in the template registry; an
// identifier outside this set is a configuration error.
type TemplateDesign string

const (
	// Business classic
	DesignExecutive     TemplateDesign = "executive"
	DesignCorporate     TemplateDesign = "corporate"
	DesignClassicLedger TemplateDesign = "classic_ledger"
	DesignMinimalPro    TemplateDesign = "minimal_pro"
	DesignBoardroom     TemplateDesign = "boardroom"

	// Tech modern
	DesignTechGrid  TemplateDesign = "tech_grid"
	DesignStartup   TemplateDesign = "startup"
	DesignPixelEdge TemplateDesign = "pixel_edge"
	DesignMonospace TemplateDesign = "monospace"
	DesignCircuit   TemplateDesign = "circuit"

	// Geometric / abstract
	DesignGeoBands TemplateDesign = "geo_bands"
	DesignDiagonal TemplateDesign = "diagonal"
	DesignMosaic   TemplateDesign = "mosaic"
	DesignOrbit    TemplateDesign = "orbit"
	DesignPrism    TemplateDesign = "prism"

	// Vintage / retro
	DesignLetterpress TemplateDesign = "letterpress"
	DesignArtDeco     TemplateDesign = "art_deco"
	DesignTypewriter  TemplateDesign = "typewriter"
	DesignHeritage    TemplateDesign = "heritage"

	// Financial structured
	DesignLedgerLines TemplateDesign = "ledger_lines"
	DesignBalance     TemplateDesign = "balance"
	DesignFineprint   TemplateDesign = "fineprint"
	DesignAuditTrail  TemplateDesign = "audit_trail"

	// Legal traditional
	DesignCounsel TemplateDesign = "counsel"
	DesignNotary  TemplateDesign = "notary"
	DesignBrief   TemplateDesign = "brief"

	// Healthcare modern
	DesignClinic   TemplateDesign = "clinic"
	DesignWellness TemplateDesign = "wellness"
	DesignCarePlus TemplateDesign = "care_plus"

	// Creative studio
	DesignStudioInk TemplateDesign = "studio_ink"
	DesignPalette   TemplateDesign = "palette"
	DesignContour   TemplateDesign = "contour"
)

func (d TemplateDesign) String() string {
	return string(d)
}

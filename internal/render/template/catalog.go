package template

import (
	"github.com/docuflow/docuflow-api/internal/domain/entity"
	"github.com/docuflow/docuflow-api/internal/domain/enum"
)

// designSpec binds a descriptor to its default theme and style tokens.
type designSpec struct {
	descriptor entity.TemplateDescriptor
	theme      entity.TemplateTheme
	style      Style
}

// Shared default palettes. A request may override any of them with a custom
// theme; these are what the gallery previews use.
var (
	themeSlate = entity.TemplateTheme{
		Name: "Slate", Primary: "#1F2937", Secondary: "#111827", Accent: "#2563EB",
		Line: "#E5E7EB", Background: "#FFFFFF", SubtleText: "#6B7280",
	}
	themeNavy = entity.TemplateTheme{
		Name: "Navy & Gold", Primary: "#1E3A5F", Secondary: "#16263A", Accent: "#C89B3C",
		Line: "#D9DEE7", Background: "#FFFFFF", SubtleText: "#64748B",
	}
	themeTeal = entity.TemplateTheme{
		Name: "Teal", Primary: "#0F766E", Secondary: "#134E4A", Accent: "#F59E0B",
		Line: "#CCECE8", Background: "#FFFFFF", SubtleText: "#6B7280",
	}
	themeBurgundy = entity.TemplateTheme{
		Name: "Burgundy", Primary: "#7F1D1D", Secondary: "#3F1212", Accent: "#B45309",
		Line: "#EADEDE", Background: "#FFFDF8", SubtleText: "#6B7280",
	}
	themeForest = entity.TemplateTheme{
		Name: "Forest", Primary: "#166534", Secondary: "#14321F", Accent: "#65A30D",
		Line: "#DCE8DF", Background: "#FFFFFF", SubtleText: "#6B7280",
	}
	themeViolet = entity.TemplateTheme{
		Name: "Violet", Primary: "#5B21B6", Secondary: "#2E1065", Accent: "#DB2777",
		Line: "#E7DFF5", Background: "#FFFFFF", SubtleText: "#6B7280",
	}
	themeSepia = entity.TemplateTheme{
		Name: "Sepia", Primary: "#6B4F2E", Secondary: "#3F2E1A", Accent: "#A16207",
		Line: "#E6DCC9", Background: "#FBF7EF", SubtleText: "#8A7B63",
	}
	themeMint = entity.TemplateTheme{
		Name: "Mint", Primary: "#0D9488", Secondary: "#0F3D39", Accent: "#38BDF8",
		Line: "#D3F0EC", Background: "#F7FDFC", SubtleText: "#5E7A76",
	}
	themeCharcoal = entity.TemplateTheme{
		Name: "Charcoal", Primary: "#111111", Secondary: "#1A1A1A", Accent: "#E11D48",
		Line: "#E2E2E2", Background: "#FFFFFF", SubtleText: "#777777",
	}
	themeSky = entity.TemplateTheme{
		Name: "Sky", Primary: "#0369A1", Secondary: "#0B3954", Accent: "#22D3EE",
		Line: "#D7E9F3", Background: "#FFFFFF", SubtleText: "#64748B",
	}
)

func desc(design enum.TemplateDesign, cat enum.TemplateCategory, premium bool, name, blurb string) entity.TemplateDescriptor {
	return entity.TemplateDescriptor{
		Design: design, Category: cat, Premium: premium, Name: name, Description: blurb,
	}
}

// designCatalog is the closed list of shippable designs. Registry resolution
// is an exact lookup into this list.
var designCatalog = []designSpec{
	// Business classic
	{
		descriptor: desc(enum.DesignExecutive, enum.CategoryBusiness, false,
			"Executive", "Banded header with understated grid rows."),
		theme: themeSlate,
		style: Style{Header: headerBanded, TableFilled: true, RowShading: true},
	},
	{
		descriptor: desc(enum.DesignCorporate, enum.CategoryBusiness, false,
			"Corporate", "Open letterhead over a hairline rule."),
		theme: themeNavy,
		style: Style{Header: headerHairline, TableFilled: true},
	},
	{
		descriptor: desc(enum.DesignClassicLedger, enum.CategoryBusiness, false,
			"Classic Ledger", "Serif letterhead with ruled item rows."),
		theme: themeSepia,
		style: Style{BodyFamily: "Times", Header: headerHairline, RowShading: true},
	},
	{
		descriptor: desc(enum.DesignMinimalPro, enum.CategoryBusiness, false,
			"Minimal Pro", "Nothing but type and whitespace."),
		theme: themeCharcoal,
		style: Style{Header: headerHairline},
	},
	{
		descriptor: desc(enum.DesignBoardroom, enum.CategoryBusiness, true,
			"Boardroom", "Blocked title with a framed page."),
		theme: themeNavy,
		style: Style{Header: headerBlocked, TableFilled: true, Framed: true},
	},

	// Tech modern
	{
		descriptor: desc(enum.DesignTechGrid, enum.CategoryTech, false,
			"Tech Grid", "Shaded grid rows under a two-tone band."),
		theme: themeSky,
		style: Style{Header: headerTwoTone, TableFilled: true, RowShading: true},
	},
	{
		descriptor: desc(enum.DesignStartup, enum.CategoryTech, false,
			"Startup", "Bright banded header, generous spacing."),
		theme: themeViolet,
		style: Style{Header: headerBanded, RowShading: true, RowHeight: 9},
	},
	{
		descriptor: desc(enum.DesignPixelEdge, enum.CategoryTech, true,
			"Pixel Edge", "Accent ribbon along the page edge."),
		theme: themeSky,
		style: Style{Header: headerBlocked, TableFilled: true, Motif: motifSideRibbon},
	},
	{
		descriptor: desc(enum.DesignMonospace, enum.CategoryTech, false,
			"Monospace", "Terminal-flavored fixed-width type."),
		theme: themeCharcoal,
		style: Style{BodyFamily: "Courier", Header: headerHairline, RowShading: true},
	},
	{
		descriptor: desc(enum.DesignCircuit, enum.CategoryTech, true,
			"Circuit", "Dotted baseline with a banded header."),
		theme: themeMint,
		style: Style{Header: headerBanded, TableFilled: true, Motif: motifDotStrip},
	},

	// Geometric / abstract
	{
		descriptor: desc(enum.DesignGeoBands, enum.CategoryGeometric, false,
			"Geo Bands", "Two-tone banding carried to the page foot."),
		theme: themeTeal,
		style: Style{Header: headerTwoTone, TableFilled: true, Motif: motifBottomBand},
	},
	{
		descriptor: desc(enum.DesignDiagonal, enum.CategoryGeometric, true,
			"Diagonal", "A fan of corner lines over an open header."),
		theme: themeViolet,
		style: Style{Header: headerHairline, TableFilled: true, Motif: motifDiagonal},
	},
	{
		descriptor: desc(enum.DesignMosaic, enum.CategoryGeometric, true,
			"Mosaic", "Staggered color tiles in the corner."),
		theme: themeTeal,
		style: Style{Header: headerHairline, RowShading: true, Motif: motifMosaic},
	},
	{
		descriptor: desc(enum.DesignOrbit, enum.CategoryGeometric, false,
			"Orbit", "Concentric rings bleeding off the corner."),
		theme: themeSky,
		style: Style{Header: headerHairline, Motif: motifOrbit},
	},
	{
		descriptor: desc(enum.DesignPrism, enum.CategoryGeometric, true,
			"Prism", "Ribbon edge plus shaded rows."),
		theme: themeViolet,
		style: Style{Header: headerBanded, RowShading: true, Motif: motifSideRibbon},
	},

	// Vintage / retro
	{
		descriptor: desc(enum.DesignLetterpress, enum.CategoryVintage, false,
			"Letterpress", "Double-rule letterhead in warm serif."),
		theme: themeSepia,
		style: Style{BodyFamily: "Times", Header: headerHairline, Motif: motifDoubleRule},
	},
	{
		descriptor: desc(enum.DesignArtDeco, enum.CategoryVintage, true,
			"Art Deco", "Framed page with a blocked marquee title."),
		theme: themeNavy,
		style: Style{BodyFamily: "Times", Header: headerBlocked, Framed: true, TableFilled: true},
	},
	{
		descriptor: desc(enum.DesignTypewriter, enum.CategoryVintage, false,
			"Typewriter", "Courier on paper, nothing shiny."),
		theme: themeSepia,
		style: Style{BodyFamily: "Courier", Header: headerHairline, Motif: motifDoubleRule},
	},
	{
		descriptor: desc(enum.DesignHeritage, enum.CategoryVintage, true,
			"Heritage", "Framed serif page with ruled rows."),
		theme: themeBurgundy,
		style: Style{BodyFamily: "Times", Header: headerHairline, Framed: true, RowShading: true},
	},

	// Financial structured
	{
		descriptor: desc(enum.DesignLedgerLines, enum.CategoryFinancial, false,
			"Ledger Lines", "Tight ruled rows, built for long item lists."),
		theme: themeSlate,
		style: Style{Header: headerHairline, RowShading: true, RowHeight: 7},
	},
	{
		descriptor: desc(enum.DesignBalance, enum.CategoryFinancial, false,
			"Balance", "Filled table band over a quiet page."),
		theme: themeForest,
		style: Style{Header: headerHairline, TableFilled: true},
	},
	{
		descriptor: desc(enum.DesignFineprint, enum.CategoryFinancial, true,
			"Fineprint", "Dense rows with a compact header."),
		theme: themeCharcoal,
		style: Style{Header: headerBlocked, RowShading: true, RowHeight: 7, HeaderRowHeight: 8},
	},
	{
		descriptor: desc(enum.DesignAuditTrail, enum.CategoryFinancial, true,
			"Audit Trail", "Framed, banded and fully gridded."),
		theme: themeSlate,
		style: Style{Header: headerBanded, TableFilled: true, RowShading: true, Framed: true},
	},

	// Legal traditional
	{
		descriptor: desc(enum.DesignCounsel, enum.CategoryLegal, false,
			"Counsel", "Traditional serif letterhead with double rules."),
		theme: themeNavy,
		style: Style{BodyFamily: "Times", Header: headerHairline, Motif: motifDoubleRule},
	},
	{
		descriptor: desc(enum.DesignNotary, enum.CategoryLegal, true,
			"Notary", "Framed serif page, formal to a fault."),
		theme: themeBurgundy,
		style: Style{BodyFamily: "Times", Header: headerBlocked, Framed: true},
	},
	{
		descriptor: desc(enum.DesignBrief, enum.CategoryLegal, false,
			"Brief", "Serif body with ruled item rows."),
		theme: themeSlate,
		style: Style{BodyFamily: "Times", Header: headerHairline, RowShading: true},
	},

	// Healthcare modern
	{
		descriptor: desc(enum.DesignClinic, enum.CategoryHealthcare, false,
			"Clinic", "Care cross over a clean banded header."),
		theme: themeMint,
		style: Style{Header: headerBanded, TableFilled: true, Motif: motifCross},
	},
	{
		descriptor: desc(enum.DesignWellness, enum.CategoryHealthcare, false,
			"Wellness", "Soft palette, open header, shaded rows."),
		theme: themeMint,
		style: Style{Header: headerHairline, RowShading: true, Motif: motifCross},
	},
	{
		descriptor: desc(enum.DesignCarePlus, enum.CategoryHealthcare, true,
			"Care Plus", "Two-tone band with the care cross."),
		theme: themeTeal,
		style: Style{Header: headerTwoTone, TableFilled: true, Motif: motifCross},
	},

	// Creative studio
	{
		descriptor: desc(enum.DesignStudioInk, enum.CategoryCreative, true,
			"Studio Ink", "High-contrast banded header with contour lines."),
		theme: themeCharcoal,
		style: Style{Header: headerBanded, Motif: motifContour},
	},
	{
		descriptor: desc(enum.DesignPalette, enum.CategoryCreative, false,
			"Palette", "Color tiles and shaded rows."),
		theme: themeViolet,
		style: Style{Header: headerHairline, RowShading: true, Motif: motifMosaic},
	},
	{
		descriptor: desc(enum.DesignContour, enum.CategoryCreative, true,
			"Contour", "Quarter-circle contours anchor the page."),
		theme: themeForest,
		style: Style{Header: headerBlocked, TableFilled: true, Motif: motifContour},
	},
}

package template

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/docuflow/docuflow-api/internal/domain/entity"
	"github.com/docuflow/docuflow-api/internal/domain/enum"
	"github.com/docuflow/docuflow-api/internal/render/layout"
	"github.com/docuflow/docuflow-api/pkg/apperror"
)

func sampleInvoice(t *testing.T, itemCount int) *entity.Invoice {
	t.Helper()
	due := time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC)
	inv := &entity.Invoice{
		Number:       "INV-2026-0042",
		Status:       enum.InvoiceStatusSent,
		IssueDate:    time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC),
		DueDate:      &due,
		CurrencyCode: "USD",
		PaymentMethods: []entity.PaymentMethod{
			entity.PayPalMethod{Email: "billing@northwind.test"},
			entity.BankIBANMethod{IBAN: "DE89370400440532013000", SwiftCode: "COBADEFF"},
		},
		PaymentNotes: "Payment due within 30 days.",
	}
	for i := 0; i < itemCount; i++ {
		li, err := entity.NewLineItem(fmt.Sprintf("Consulting block %d", i+1), "1.5", "120.00")
		require.NoError(t, err)
		inv.Items = append(inv.Items, li)
	}
	return inv
}

func sampleParties() (entity.Company, entity.Customer) {
	company := entity.Company{
		Name:  "Northwind Studio",
		Email: "hello@northwind.test",
		Address: entity.Address{
			Line1: "12 Harbor Way", City: "Portland", State: "OR", Zip: "97201", Country: "USA",
		},
	}
	customer := entity.Customer{
		Name:  "Contoso Ltd",
		Email: "ap@contoso.test",
		Address: entity.Address{
			Line1: "500 Fifth Ave", City: "New York", State: "NY", Zip: "10110",
		},
	}
	return company, customer
}

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistry()

	t.Run("every cataloged design resolves", func(t *testing.T) {
		for _, entry := range reg.Catalog() {
			tpl, err := reg.Resolve(entity.CompleteTemplate{Descriptor: entry.Descriptor})
			require.NoError(t, err, "design %s", entry.Descriptor.Design)
			require.Equal(t, entry.DefaultTheme, tpl.Theme(),
				"empty theme name selects the default theme")
		}
	})

	t.Run("unknown design has no fallback", func(t *testing.T) {
		_, err := reg.Resolve(entity.CompleteTemplate{
			Descriptor: entity.TemplateDescriptor{Design: enum.TemplateDesign("brutalist")},
		})
		require.Error(t, err)
		require.True(t, errors.Is(err, apperror.ErrUnknownTemplate))
	})

	t.Run("custom theme overrides default", func(t *testing.T) {
		custom := entity.TemplateTheme{
			Name: "Midnight", Primary: "#0A0A23", Secondary: "#05051A", Accent: "#FFD700",
			Line: "#2A2A4A", Background: "#FFFFFF", SubtleText: "#888899",
		}
		tpl, err := reg.Resolve(entity.CompleteTemplate{
			Descriptor: entity.TemplateDescriptor{Design: enum.DesignExecutive},
			Theme:      custom,
		})
		require.NoError(t, err)
		require.Equal(t, custom, tpl.Theme())
	})
}

func TestRegistryCatalog(t *testing.T) {
	entries := NewRegistry().Catalog()
	require.Len(t, entries, len(designCatalog))

	seen := map[enum.TemplateDesign]bool{}
	for _, e := range entries {
		require.False(t, seen[e.Descriptor.Design], "duplicate design %s", e.Descriptor.Design)
		seen[e.Descriptor.Design] = true
		require.NotEmpty(t, e.Descriptor.Name)
		require.NotEmpty(t, e.DefaultTheme.Name)
	}

	// catalog order is stable
	require.Equal(t, enum.DesignExecutive, entries[0].Descriptor.Design)
}

func TestDrawSinglePage(t *testing.T) {
	reg := NewRegistry()
	company, customer := sampleParties()
	inv := sampleInvoice(t, 4)

	tpl, err := reg.Resolve(entity.CompleteTemplate{
		Descriptor: entity.TemplateDescriptor{Design: enum.DesignExecutive},
	})
	require.NoError(t, err)

	c := layout.NewCanvas(inv.IssueDate)
	require.NoError(t, tpl.Draw(c, inv, company, customer, "USD", nil))
	require.Equal(t, 1, c.PageCount())

	var buf bytes.Buffer
	require.NoError(t, c.Output(&buf))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestDrawPaginatesLongItemLists(t *testing.T) {
	reg := NewRegistry()
	company, customer := sampleParties()
	inv := sampleInvoice(t, 60)

	tpl, err := reg.Resolve(entity.CompleteTemplate{
		Descriptor: entity.TemplateDescriptor{Design: enum.DesignLedgerLines},
	})
	require.NoError(t, err)

	c := layout.NewCanvas(inv.IssueDate)
	require.NoError(t, tpl.Draw(c, inv, company, customer, "USD", nil))
	require.Greater(t, c.PageCount(), 1)
}

func TestDrawIsDeterministic(t *testing.T) {
	reg := NewRegistry()
	company, customer := sampleParties()
	inv := sampleInvoice(t, 8)

	render := func(design enum.TemplateDesign) []byte {
		tpl, err := reg.Resolve(entity.CompleteTemplate{
			Descriptor: entity.TemplateDescriptor{Design: design},
		})
		require.NoError(t, err)
		c := layout.NewCanvas(inv.IssueDate)
		require.NoError(t, tpl.Draw(c, inv, company, customer, "USD", nil))
		var buf bytes.Buffer
		require.NoError(t, c.Output(&buf))
		return buf.Bytes()
	}

	// Designs that mix regular, bold and italic faces so font resource
	// emission order is exercised, not just page content.
	for _, design := range []enum.TemplateDesign{
		enum.DesignCorporate, enum.DesignExecutive, enum.DesignLetterpress,
	} {
		t.Run(string(design), func(t *testing.T) {
			first := render(design)
			for i := 0; i < 5; i++ {
				require.Equal(t, first, render(design))
			}
		})
	}
}

func TestDrawEveryDesignSmoke(t *testing.T) {
	reg := NewRegistry()
	company, customer := sampleParties()
	inv := sampleInvoice(t, 6)

	for _, entry := range reg.Catalog() {
		entry := entry
		t.Run(string(entry.Descriptor.Design), func(t *testing.T) {
			tpl, err := reg.Resolve(entity.CompleteTemplate{Descriptor: entry.Descriptor})
			require.NoError(t, err)
			c := layout.NewCanvas(inv.IssueDate)
			require.NoError(t, tpl.Draw(c, inv, company, customer, "USD", nil))
			require.GreaterOrEqual(t, c.PageCount(), 1)
		})
	}
}

func TestDrawIgnoresBadLogo(t *testing.T) {
	reg := NewRegistry()
	company, customer := sampleParties()
	inv := sampleInvoice(t, 2)

	logos := map[string][]byte{
		"unrecognized bytes": []byte("not an image"),
		"corrupt png body":   append([]byte("\x89PNG\r\n\x1a\n"), []byte("garbage body")...),
		"truncated jpeg":     {0xFF, 0xD8, 0xFF, 0xE0, 0x00},
	}
	for name, logo := range logos {
		t.Run(name, func(t *testing.T) {
			tpl, err := reg.Resolve(entity.CompleteTemplate{
				Descriptor: entity.TemplateDescriptor{Design: enum.DesignExecutive},
			})
			require.NoError(t, err)

			c := layout.NewCanvas(inv.IssueDate)
			require.NoError(t, tpl.Draw(c, inv, company, customer, "USD", logo))
			require.Equal(t, 1, c.PageCount())
		})
	}
}

package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/docuflow/docuflow-api/internal/domain/entity"
	"github.com/docuflow/docuflow-api/internal/domain/enum"
	"github.com/docuflow/docuflow-api/internal/render/template"
	"github.com/docuflow/docuflow-api/pkg/apperror"
)

func sampleInput(t *testing.T) *GenerateInput {
	t.Helper()
	li, err := entity.NewLineItem("Design sprint", "3", "450.00")
	require.NoError(t, err)
	return &GenerateInput{
		Invoice: entity.Invoice{
			Number:       "INV-2026-0007",
			Status:       enum.InvoiceStatusSent,
			IssueDate:    time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC),
			CurrencyCode: "USD",
			Items:        []entity.LineItem{li},
			PaymentMethods: []entity.PaymentMethod{
				entity.PayPalMethod{Email: "billing@northwind.test"},
			},
		},
		Company:      entity.Company{Name: "Northwind Studio"},
		Customer:     entity.Customer{Name: "Contoso Ltd"},
		CurrencyCode: "USD",
		Template: entity.CompleteTemplate{
			Descriptor: entity.TemplateDescriptor{Design: enum.DesignExecutive},
		},
	}
}

func newService(t *testing.T) (*DocumentService, string) {
	t.Helper()
	dir := t.TempDir()
	return NewDocumentService(zap.NewNop(), template.NewRegistry(), dir), dir
}

func TestGenerate(t *testing.T) {
	t.Run("writes a pdf artifact", func(t *testing.T) {
		svc, dir := newService(t)
		out, err := svc.Generate(context.Background(), sampleInput(t))
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "invoice-INV-2026-0007.pdf"), out.Path)
		require.Equal(t, 1, out.Pages)

		data, err := os.ReadFile(out.Path)
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	})

	t.Run("same snapshot produces identical bytes", func(t *testing.T) {
		svc, _ := newService(t)
		first, err := svc.Generate(context.Background(), sampleInput(t))
		require.NoError(t, err)
		a, err := os.ReadFile(first.Path)
		require.NoError(t, err)

		second, err := svc.Generate(context.Background(), sampleInput(t))
		require.NoError(t, err)
		b, err := os.ReadFile(second.Path)
		require.NoError(t, err)

		require.Equal(t, a, b)
	})

	t.Run("unknown template leaves no artifact", func(t *testing.T) {
		svc, dir := newService(t)
		input := sampleInput(t)
		input.Template.Descriptor.Design = enum.TemplateDesign("vaporwave")

		_, err := svc.Generate(context.Background(), input)
		require.True(t, errors.Is(err, apperror.ErrUnknownTemplate))

		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		require.Empty(t, entries)
	})

	t.Run("canceled context fails fast", func(t *testing.T) {
		svc, dir := newService(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.Generate(ctx, sampleInput(t))
		require.True(t, errors.Is(err, apperror.ErrRenderFailure))
		require.True(t, errors.Is(err, context.Canceled))

		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		require.Empty(t, entries)
	})

	t.Run("falls back to invoice currency", func(t *testing.T) {
		svc, _ := newService(t)
		input := sampleInput(t)
		input.CurrencyCode = ""
		_, err := svc.Generate(context.Background(), input)
		require.NoError(t, err)
	})

	t.Run("overwrites previous artifact for the same invoice", func(t *testing.T) {
		svc, dir := newService(t)
		input := sampleInput(t)
		_, err := svc.Generate(context.Background(), input)
		require.NoError(t, err)

		li, err := entity.NewLineItem("Extra revision", "1", "80.00")
		require.NoError(t, err)
		input.Invoice.Items = append(input.Invoice.Items, li)
		out, err := svc.Generate(context.Background(), input)
		require.NoError(t, err)

		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		require.Len(t, entries, 1)
		require.Equal(t, filepath.Base(out.Path), entries[0].Name())
	})
}

func TestDocumentFileName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"INV-2026-0007", "invoice-INV-2026-0007.pdf"},
		{"INV 2026/07", "invoice-INV-2026-07.pdf"},
		{"../../etc/passwd", "invoice-etc-passwd.pdf"},
		{"", "invoice-invoice.pdf"},
		{"///", "invoice-invoice.pdf"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, documentFileName(tc.in), "input %q", tc.in)
	}
}

package entity

import (
	"strings"

	"github.com/docuflow/docuflow-api/internal/domain/enum"
)

// Address is a postal address. All fields are optional display data.
type Address struct {
	Line1   string `json:"line1,omitempty"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

// Lines returns the non-empty display lines of the address: street lines
// first, then "City, State Zip", then country.
func (a Address) Lines() []string {
	var lines []string
	if strings.TrimSpace(a.Line1) != "" {
		lines = append(lines, a.Line1)
	}
	if strings.TrimSpace(a.Line2) != "" {
		lines = append(lines, a.Line2)
	}
	locality := a.City
	region := strings.TrimSpace(strings.TrimSpace(a.State) + " " + strings.TrimSpace(a.Zip))
	switch {
	case locality != "" && region != "":
		lines = append(lines, locality+", "+region)
	case locality != "":
		lines = append(lines, locality)
	case region != "":
		lines = append(lines, region)
	}
	if strings.TrimSpace(a.Country) != "" {
		lines = append(lines, a.Country)
	}
	return lines
}

// Company is the issuing business, read-only input to rendering.
type Company struct {
	Name    string  `json:"name"`
	Email   string  `json:"email,omitempty"`
	Phone   string  `json:"phone,omitempty"`
	Address Address `json:"address"`
	Website string  `json:"website,omitempty"`
}

// Customer is the billed party, read-only input to rendering.
type Customer struct {
	Name           string              `json:"name"`
	Email          string              `json:"email,omitempty"`
	Phone          string              `json:"phone,omitempty"`
	Address        Address             `json:"address"`
	Website        string              `json:"website,omitempty"`
	Status         enum.CustomerStatus `json:"status"`
	PaymentMethods []PaymentMethod     `json:"payment_methods,omitempty"`
}

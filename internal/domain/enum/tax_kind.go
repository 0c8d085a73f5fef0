package enum

import "encoding/json"

// TaxKind represents how the invoice tax value is interpreted
type TaxKind int

const (
	// TaxKindPercentage applies the tax rate as a percentage of the subtotal.
	TaxKindPercentage TaxKind = 0
	// TaxKindFixed applies the tax value as a flat amount.
	TaxKindFixed TaxKind = 1
)

func (t TaxKind) String() string {
	names := [...]string{"Percentage", "Fixed"}
	if int(t) < 0 || int(t) >= len(names) {
		return "Percentage"
	}
	return names[t]
}

func (t TaxKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TaxKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TaxKind(i)
		return nil
	}
	switch str {
	case "Percentage":
		*t = TaxKindPercentage
	case "Fixed":
		*t = TaxKindFixed
	}
	return nil
}

package enum

import "encoding/json"

// DiscountKind represents how the invoice discount value is interpreted
type DiscountKind int

const (
	// DiscountKindPercentage applies the discount as a percentage of the subtotal.
	DiscountKindPercentage DiscountKind = 0
	// DiscountKindFixed applies the discount value as a flat amount.
	DiscountKindFixed DiscountKind = 1
)

func (d DiscountKind) String() string {
	names := [...]string{"Percentage", "Fixed"}
	if int(d) < 0 || int(d) >= len(names) {
		return "Percentage"
	}
	return names[d]
}

func (d DiscountKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DiscountKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*d = DiscountKind(i)
		return nil
	}
	switch str {
	case "Percentage":
		*d = DiscountKindPercentage
	case "Fixed":
		*d = DiscountKindFixed
	}
	return nil
}

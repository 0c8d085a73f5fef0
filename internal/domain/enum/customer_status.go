package enum

import "encoding/json"

// CustomerStatus represents the standing of a customer record
type CustomerStatus int

const (
	CustomerStatusActive   CustomerStatus = 0
	CustomerStatusArchived CustomerStatus = 1
)

func (s CustomerStatus) String() string {
	names := [...]string{"Active", "Archived"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Active"
	}
	return names[s]
}

func (s CustomerStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *CustomerStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = CustomerStatus(i)
		return nil
	}
	switch str {
	case "Active":
		*s = CustomerStatusActive
	case "Archived":
		*s = CustomerStatusArchived
	}
	return nil
}

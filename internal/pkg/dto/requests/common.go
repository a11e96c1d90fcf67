package requests

import "github.com/goccy/go-json"

// StringOrList accepts a JSON string or a JSON array of strings. The form
// frameworks send both shapes for the same field depending on the widget, and
// a few transforms behave differently for each (see the schedule controller).
type StringOrList struct {
	IsList bool
	Values []string
}

func (s *StringOrList) UnmarshalJSON(data []byte) error {
	var scalar string
	if err := json.Unmarshal(data, &scalar); err == nil {
		s.IsList = false
		if scalar != "" {
			s.Values = []string{scalar}
		} else {
			s.Values = nil
		}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	s.IsList = true
	s.Values = list
	return nil
}

func (s StringOrList) MarshalJSON() ([]byte, error) {
	if s.IsList {
		return json.Marshal(s.Values)
	}
	return json.Marshal(s.Scalar())
}

// Scalar returns the single value, or "" when the field is empty or a list.
func (s StringOrList) Scalar() string {
	if s.IsList || len(s.Values) == 0 {
		return ""
	}
	return s.Values[0]
}

func (s StringOrList) Empty() bool {
	return len(s.Values) == 0
}

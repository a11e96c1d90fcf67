package enums

// Choice is a single selectable option as the form frameworks expect it.
type Choice struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Enum is an ordered list of (code, label) pairs. Declaration order is the
// presentation order; lookups never fail, an unknown code yields "".
type Enum []Choice

func (e Enum) Choices() []Choice {
	out := make([]Choice, len(e))
	copy(out, e)
	return out
}

func (e Enum) Label(code string) string {
	for _, choice := range e {
		if choice.ID == code {
			return choice.Name
		}
	}
	return ""
}

func (e Enum) Contains(code string) bool {
	for _, choice := range e {
		if choice.ID == code {
			return true
		}
	}
	return false
}

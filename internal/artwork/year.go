package artwork

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Year is an artwork date that may be a plain year (1642, -500) or a
// free-form period string such as "c. 1500". The JSON form the generator
// produced is preserved on re-serialization.
type Year struct {
	Value  int
	Text   string
	IsText bool
}

// ParseYear interprets a textual year, preferring the numeric form.
func ParseYear(s string) Year {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return Year{Value: n}
	}
	return Year{Text: s, IsText: true}
}

func (y Year) String() string {
	if y.IsText {
		return y.Text
	}
	return strconv.Itoa(y.Value)
}

// UnmarshalJSON accepts either a JSON number or a JSON string. Anything else
// is kept as raw text so one odd year never fails a whole batch.
func (y *Year) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		*y = Year{}
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*y = Year{Value: n}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*y = Year{Text: s, IsText: true}
		return nil
	}

	*y = Year{Text: strings.Trim(raw, `"`), IsText: true}
	return nil
}

// MarshalJSON writes numeric years as numbers and everything else as strings.
func (y Year) MarshalJSON() ([]byte, error) {
	if y.IsText {
		return json.Marshal(y.Text)
	}
	return json.Marshal(y.Value)
}

package generation

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/artatlas/curator/internal/artwork"
)

// ErrMalformedResponse indicates the model returned text that could not
// be parsed as a JSON array of artwork records.
var ErrMalformedResponse = errors.New("malformed model response")

var (
	fencePattern         = regexp.MustCompile("```(?:json)?\\s*")
	trailingCommaPattern = regexp.MustCompile(`,\s*([\]}])`)
)

// CleanResponse strips the markdown code fences and trailing commas that
// models commonly wrap around JSON output.
func CleanResponse(raw string) string {
	text := fencePattern.ReplaceAllString(raw, "")
	text = strings.TrimSpace(text)
	return trailingCommaPattern.ReplaceAllString(text, "$1")
}

// ParseRecords parses cleaned model output as a JSON array of artwork
// records. Every parse failure wraps ErrMalformedResponse so the retry
// policy can observe the class; use TruncatedResponse to tell cut-off
// output apart from other garbage.
func ParseRecords(text string) ([]artwork.Record, error) {
	var records []artwork.Record
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: response is not a JSON array", ErrMalformedResponse)
	}
	return records, nil
}

// TruncatedResponse reports whether err came from model output that was
// cut off mid-document, typically by the output token cap.
func TruncatedResponse(err error) bool {
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return false
	}
	return strings.Contains(syntaxErr.Error(), "unexpected end of JSON input")
}

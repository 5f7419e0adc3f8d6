package widgets

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Form field names.
const (
	FieldName  = "userName"
	FieldEmail = "userEmail"
	FieldAge   = "userAge"
)

// Validation messages, one per rule.
const (
	ErrNameTooShort = "Name must contain at least 2 characters"
	ErrEmailInvalid = "Enter a valid email"
	ErrAgeRange     = "Age must be between 1 and 120 years"
)

// Field is one named form value.
type Field struct {
	Name  string
	Value string
}

// FormData is the ordered set of submitted fields.
type FormData []Field

// Get returns the value of the named field.
func (d FormData) Get(name string) (string, bool) {
	for _, f := range d {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// MarshalJSON encodes the fields as an object, keeping field order. A repeated
// name keeps its first position and last value.
func (d FormData) MarshalJSON() ([]byte, error) {
	var order []string
	values := make(map[string]string, len(d))
	for _, f := range d {
		if _, seen := values[f.Name]; !seen {
			order = append(order, f.Name)
		}
		values[f.Name] = f.Value
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, values[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Compact returns the single-line JSON encoding used in the log.
func (d FormData) Compact() string {
	return encodeForm(d, "")
}

// Pretty returns the two-space indented JSON encoding shown on success.
func (d FormData) Pretty() string {
	return encodeForm(d, "  ")
}

func encodeForm(d FormData, indent string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(d); err != nil {
		return "{}"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// Validate applies every rule and returns all violations in rule order.
// The email check only looks for "@". Name length counts UTF-16 code units.
// An age that is not a number is not a violation; only numeric ages outside
// [1, 120] are, and a blank-but-present age reads as 0.
func Validate(d FormData) []string {
	var errs []string
	if name, _ := d.Get(FieldName); len(utf16.Encode([]rune(name))) < 2 {
		errs = append(errs, ErrNameTooShort)
	}
	if email, _ := d.Get(FieldEmail); email == "" || !strings.Contains(email, "@") {
		errs = append(errs, ErrEmailInvalid)
	}
	if age, ok := d.Get(FieldAge); ok && age != "" {
		if n, ok := parseNumber(age); ok && (n < 1 || n > 120) {
			errs = append(errs, ErrAgeRange)
		}
	}
	return errs
}

// parseNumber converts s the way a browser coerces a form string to a
// number: surrounding space is ignored, blank is 0, decimal and exponent
// forms, unsigned 0x/0o/0b integers and Infinity are accepted.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0, true
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}
	if strings.Trim(s, "0123456789+-.eE") != "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormSurface renders the submission result.
type FormSurface interface {
	ShowErrors(messages []string)
	ShowSuccess(data string)
	ClearResult()
}

// Form validates submissions and renders the outcome.
type Form struct {
	surface FormSurface
	log     Recorder
}

// NewForm creates a form controller.
func NewForm(surface FormSurface, log Recorder) *Form {
	return &Form{surface: surface, log: log}
}

// Submit validates d. On failure every violation is shown and logged at once;
// on success the submitted data is shown. It reports whether d was accepted.
func (f *Form) Submit(d FormData) bool {
	if f.surface == nil {
		return false
	}
	if errs := Validate(d); len(errs) > 0 {
		f.surface.ShowErrors(errs)
		f.log.Append("Form validation error", strings.Join(errs, "; "))
		return false
	}
	f.surface.ShowSuccess(d.Pretty())
	f.log.Append("Form submitted successfully", d.Compact())
	return true
}

// Reset clears the rendered result.
func (f *Form) Reset() {
	if f.surface == nil {
		return
	}
	f.surface.ClearResult()
	f.log.Append("Form cleared", "")
}

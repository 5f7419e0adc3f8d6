package widgets

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type resultSurface struct {
	errors  []string
	success string
	cleared int
}

func (s *resultSurface) ShowErrors(msgs []string) { s.errors = msgs; s.success = "" }
func (s *resultSurface) ShowSuccess(data string)  { s.success = data; s.errors = nil }
func (s *resultSurface) ClearResult()             { s.cleared++; s.errors = nil; s.success = "" }

func form(name, email, age string) FormData {
	return FormData{{FieldName, name}, {FieldEmail, email}, {FieldAge, age}}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		data FormData
		want []string
	}{
		{"all rules fail", form("A", "x", "200"), []string{ErrNameTooShort, ErrEmailInvalid, ErrAgeRange}},
		{"valid", form("Ann", "a@b.com", "30"), nil},
		{"age optional", form("Ann", "a@b.com", ""), nil},
		{"age absent", FormData{{FieldName, "Ann"}, {FieldEmail, "a@b"}}, nil},
		{"age lower bound", form("Ann", "a@b", "1"), nil},
		{"age upper bound", form("Ann", "a@b", "120"), nil},
		{"age zero", form("Ann", "a@b", "0"), []string{ErrAgeRange}},
		{"age not numeric", form("Ann", "a@b", "old"), nil},
		{"empty form", FormData{}, []string{ErrNameTooShort, ErrEmailInvalid}},
		{"shallow email", form("Ann", "@", ""), nil},
		{"two-rune name", form("Żo", "z@o", ""), nil},
		{"surrogate pair name", form("😀", "z@o", ""), nil},
		{"one-rune name", form("Ż", "z@o", ""), []string{ErrNameTooShort}},
		{"hex age", form("Ann", "a@b", "0x200"), []string{ErrAgeRange}},
		{"hex age in range", form("Ann", "a@b", "0x1e"), nil},
		{"exponent age", form("Ann", "a@b", "1e3"), []string{ErrAgeRange}},
		{"padded age", form("Ann", "a@b", " 30 "), nil},
		{"blank age", form("Ann", "a@b", "   "), []string{ErrAgeRange}},
		{"underscore age", form("Ann", "a@b", "1_000"), nil},
		{"infinite age", form("Ann", "a@b", "Infinity"), []string{ErrAgeRange}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Validate(tt.data)); diff != "" {
				t.Errorf("Validate (-want +got):\n%s", diff)
			}
		})
	}
}

func TestForm_SubmitErrors(t *testing.T) {
	s := &resultSurface{}
	log := &recorder{}
	f := NewForm(s, log)

	if f.Submit(form("A", "x", "200")) {
		t.Fatal("Submit should reject invalid data")
	}
	if len(s.errors) != 3 {
		t.Errorf("rendered %d errors, want 3", len(s.errors))
	}
	want := record{"Form validation error", ErrNameTooShort + "; " + ErrEmailInvalid + "; " + ErrAgeRange}
	if log.last() != want {
		t.Errorf("last = %+v, want %+v", log.last(), want)
	}
}

func TestForm_SubmitSuccess(t *testing.T) {
	s := &resultSurface{}
	log := &recorder{}
	f := NewForm(s, log)

	if !f.Submit(form("Ann", "a@b.com", "30")) {
		t.Fatal("Submit should accept valid data")
	}
	wantPretty := "{\n  \"userName\": \"Ann\",\n  \"userEmail\": \"a@b.com\",\n  \"userAge\": \"30\"\n}"
	if s.success != wantPretty {
		t.Errorf("success = %q, want %q", s.success, wantPretty)
	}
	wantLog := record{"Form submitted successfully", `{"userName":"Ann","userEmail":"a@b.com","userAge":"30"}`}
	if log.last() != wantLog {
		t.Errorf("last = %+v, want %+v", log.last(), wantLog)
	}
}

func TestForm_Reset(t *testing.T) {
	s := &resultSurface{success: "x"}
	log := &recorder{}
	NewForm(s, log).Reset()
	if s.cleared != 1 || s.success != "" {
		t.Errorf("result not cleared: %+v", s)
	}
	if log.last() != (record{"Form cleared", ""}) {
		t.Errorf("last = %+v", log.last())
	}
}

func TestFormData_JSONKeepsMarkup(t *testing.T) {
	d := FormData{{FieldName, "<b>&"}, {FieldName, "Ann"}}
	got := d.Compact()
	if got != `{"userName":"Ann"}` {
		t.Errorf("duplicate key: Compact() = %s", got)
	}
	d = FormData{{"note", "<b>&</b>"}}
	if got := d.Compact(); !strings.Contains(got, "<b>&</b>") {
		t.Errorf("Compact() escaped markup: %s", got)
	}
}

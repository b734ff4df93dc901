package review

import (
	"strings"

	"github.com/pta-tools/reimb-parser/internal/extract"
)

// Form holds the extracted fields in display order while the user edits them.
type Form struct {
	order  []string
	values map[string]string
	raw    string
}

func NewForm(rec extract.FormRecord) *Form {
	fields := rec.Fields()
	f := &Form{
		order:  make([]string, 0, len(fields)),
		values: make(map[string]string, len(fields)),
		raw:    rec.RawText,
	}
	for _, fld := range fields {
		f.order = append(f.order, fld.Label)
		f.values[fld.Label] = fld.Value
	}
	return f
}

func (f *Form) Labels() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

func (f *Form) Get(label string) string {
	return f.values[f.resolve(label)]
}

func (f *Form) Has(label string) bool {
	return f.resolve(label) != ""
}

// Set updates a field by label, matched case-insensitively. It reports
// whether a field with that label exists.
func (f *Form) Set(label, value string) bool {
	key := f.resolve(label)
	if key == "" {
		return false
	}
	f.values[key] = value
	return true
}

func (f *Form) RawText() string {
	return f.raw
}

// Values returns label -> value for all fields, keyed by canonical label.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

func (f *Form) resolve(label string) string {
	if _, ok := f.values[label]; ok {
		return label
	}
	for _, key := range f.order {
		if strings.EqualFold(key, label) {
			return key
		}
	}
	return ""
}

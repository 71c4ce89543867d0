// Package duration renders second counts as localized human-readable
// phrases ("2 minutes, 10 seconds"), decomposing them over the fixed
// day, hour, minute, second ladder with at most two segments shown.
// Language tables are pluggable and can be registered in code or loaded
// from JSON.
package duration

import (
	"strconv"
	"strings"

	"github.com/bytq/bytq/pkg/errcode"
)

// The base unit names used as form keys by the decomposition.
const (
	UnitSecond = "second"
	UnitMinute = "minute"
	UnitHour   = "hour"
	UnitDay    = "day"
)

// PluralRule maps a count and a base unit name to the form key looked
// up in the table's Units map. A nil rule means DefaultPlural.
type PluralRule func(count float64, baseUnit string) string

// Time holds the renderable strings of one language.
type Time struct {
	// Format is the per-segment template; {value} and {unit} are
	// substituted.
	Format string `json:"format"`
	// Separator joins the two segments when both are present.
	Separator string `json:"separator"`
	// LessThanSecond is returned verbatim for sub-second durations.
	LessThanSecond string `json:"less_than_second"`
	// Units maps form keys to localized unit names.
	Units map[string]string `json:"units"`
}

// Lang is one loadable language table.
type Lang struct {
	Code string `json:"code"`
	Time Time   `json:"time"`
	// Plural is supplied in code, not in JSON tables; see
	// Registry.RegisterPluralRule for attaching rules to loaded files.
	Plural PluralRule `json:"-"`
}

// DefaultPlural is the English-style rule: the singular form key is the
// base unit name itself, the plural key appends "s".
func DefaultPlural(count float64, baseUnit string) string {
	if count == 1 {
		return baseUnit
	}
	return baseUnit + "s"
}

// renderUnit resolves the form key for count, looks up the localized
// unit name and substitutes both into the language's format template.
func renderUnit(count int64, baseUnit string, l Lang) (string, error) {
	rule := l.Plural
	if rule == nil {
		rule = DefaultPlural
	}
	key := rule(float64(count), baseUnit)

	name, ok := l.Time.Units[key]
	if !ok {
		return "", errcode.New(errcode.CodeMissingFormKey, "language %q has no form %q", l.Code, key)
	}

	r := strings.NewReplacer(
		"{value}", strconv.FormatInt(count, 10),
		"{unit}", name,
	)
	return r.Replace(l.Time.Format), nil
}

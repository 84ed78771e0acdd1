package codec

import goflat "github.com/reoring/goflat"

// Builtin names registered by RegisterBuiltins.
const (
	NameIdentity   = "identity"
	NameTrim       = "trim"
	NameTrimLeft   = "trim_left"
	NameUpper      = "upper"
	NameLower      = "lower"
	NameBlankToNil = "blank_nil"
	NameInt        = "int"
	NameFloat      = "float"
	NameMoney      = "cents"
	NameFormatCent = "format_cents"
	NameOneDecimal = "one_decimal"
	NameTwoDecimal = "two_decimal"
	NameDate       = "date"
	NameFormatDate = "format_date"
	NameRFC3339    = "rfc3339"
	NameFormatTime = "format_rfc3339"
)

// Builtins returns a fresh set of named transforms.
func Builtins() map[string]goflat.Transform {
	return map[string]goflat.Transform{
		NameIdentity:   Identity(),
		NameTrim:       Trim(),
		NameTrimLeft:   TrimLeft(),
		NameUpper:      Upper(),
		NameLower:      Lower(),
		NameBlankToNil: BlankToNil(),
		NameInt:        Int(),
		NameFloat:      Float(),
		NameMoney:      ImpliedDecimal(2),
		NameFormatCent: Digits(2),
		NameOneDecimal: Fixed(1),
		NameTwoDecimal: Fixed(2),
		NameDate:       Date(LayoutYYYYMMDD),
		NameFormatDate: FormatDate(LayoutYYYYMMDD),
		NameRFC3339:    TimeRFC3339(),
		NameFormatTime: FormatRFC3339(),
	}
}

// RegisterBuiltins adds Builtins to r without replacing existing
// registrations.
func RegisterBuiltins(r *goflat.Registry) {
	for name, t := range Builtins() {
		if !r.Has(name) {
			r.Register(name, t)
		}
	}
}

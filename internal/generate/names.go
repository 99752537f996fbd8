package generate

import (
	"github.com/iancoleman/strcase"

	. "github.com/dave/jennifer/jen"
)

// Source of truth for calendar names. Everything else, the exported
// constants, the abbreviations and the display names used by strftime,
// is derived from these lowercase words.
var (
	dayWords = []string{
		"monday", "tuesday", "wednesday", "thursday",
		"friday", "saturday", "sunday",
	}
	monthWords = []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
)

func GenerateNames() *File {
	f := NewFile("datetime")
	f.HeaderComment("Code generated by internal/cmd/generate. DO NOT EDIT.")

	generateOrdinalConsts(f, "Weekday numbers as returned by Weekday, Monday==0.", dayWords, 0)
	generateOrdinalConsts(f, "Month numbers as accepted by NewDate, January==1.", monthWords, 1)

	generateNameTable(f, "dayNames", "dayNames is indexed by weekday, Monday==0.", abbreviate(dayWords))
	generateNameTable(f, "dayFullNames", "dayFullNames is indexed by weekday, Monday==0.", camel(dayWords))
	generateNameTable(f, "monthNames", "monthNames is indexed by month-1.", abbreviate(monthWords))
	generateNameTable(f, "monthFullNames", "monthFullNames is indexed by month-1.", camel(monthWords))

	return f
}

func generateOrdinalConsts(f *File, doc string, words []string, base int) {
	f.Comment(doc)
	f.Const().DefsFunc(func(g *Group) {
		for i, w := range words {
			stmt := g.Id(strcase.ToCamel(w))
			if i == 0 {
				if base == 0 {
					stmt.Op("=").Iota()
				} else {
					stmt.Op("=").Lit(base).Op("+").Iota()
				}
			}
		}
	})
}

func generateNameTable(f *File, name, doc string, values []string) {
	f.Comment(doc)
	f.Var().Id(name).Op("=").Index(Lit(len(values))).String().ValuesFunc(func(g *Group) {
		for _, v := range values {
			g.Line().Lit(v)
		}
		g.Line()
	})
}

func camel(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strcase.ToCamel(w)
	}
	return out
}

func abbreviate(words []string) []string {
	out := make([]string, len(words))
	for i, w := range camel(words) {
		out[i] = w[:3]
	}
	return out
}

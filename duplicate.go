package infobox

import (
	"fmt"
	"strings"
)

// DefaultIdentifierParameters are the infobox parameters whose values are
// expected to identify a single compound.
var DefaultIdentifierParameters = []string{
	"číslo CAS",
	"PubChem",
	"SMILES",
	"InChI",
	"číslo EINECS",
	"indexové číslo",
	"číslo EC",
	"ChEBI",
	"UN kód",
	"číslo RTECS",
}

// Duplicate is an identifier value shared by more than one page.
type Duplicate struct {
	Value  string
	Titles []string
}

// DuplicateReport groups duplicated identifier values by parameter.
type DuplicateReport struct {
	// Parameters lists the checked parameters in the order they were requested.
	Parameters []string

	// Duplicates maps a parameter name to its duplicated values in the
	// order they were first seen.
	Duplicates map[string][]Duplicate

	// Records is the number of records examined.
	Records int
}

// Total returns the number of duplicated values across all parameters.
func (r *DuplicateReport) Total() int {
	var n int
	for _, dups := range r.Duplicates {
		n += len(dups)
	}
	return n
}

// FindDuplicates reports identifier values that appear in more than one
// record. Empty values and "-" placeholders are ignored. Multi-valued
// fields are compared by their joined value.
func FindDuplicates(records []*Record, params []string) *DuplicateReport {
	report := &DuplicateReport{
		Parameters: params,
		Duplicates: make(map[string][]Duplicate, len(params)),
		Records:    len(records),
	}

	for _, param := range params {
		var order []string
		titles := make(map[string][]string)

		for _, rec := range records {
			if rec == nil || rec.Infobox == nil {
				continue
			}
			value, ok := rec.Infobox.Get(param)
			if !ok {
				continue
			}
			value = strings.TrimSpace(value)
			if value == "" || value == "-" {
				continue
			}
			if _, seen := titles[value]; !seen {
				order = append(order, value)
			}
			titles[value] = append(titles[value], recordTitle(rec, UnknownTitle))
		}

		for _, value := range order {
			if len(titles[value]) > 1 {
				report.Duplicates[param] = append(report.Duplicates[param], Duplicate{
					Value:  value,
					Titles: titles[value],
				})
			}
		}
	}

	return report
}

// FormatDuplicateReport renders the report as wikitext suitable for a
// maintenance page. source names the analysed file in the heading.
func FormatDuplicateReport(report *DuplicateReport, source string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "= Duplicity v souboru %s =\n\n", source)
	fmt.Fprintf(&b, "Analyzováno %d záznamů. Nalezeno %d konfliktů.\n\n", report.Records, report.Total())

	for _, param := range report.Parameters {
		dups := report.Duplicates[param]
		if len(dups) == 0 {
			continue
		}
		fmt.Fprintf(&b, "== %s ==\n", param)
		for _, dup := range dups {
			fmt.Fprintf(&b, "* %s\n", dup.Value)
			for _, title := range dup.Titles {
				fmt.Fprintf(&b, "** [[%s]]\n", title)
			}
		}
		b.WriteString("\n")
	}

	if report.Total() == 0 {
		b.WriteString("Nebyly nalezeny žádné duplicity.\n")
	}

	return b.String()
}

// recordTitle returns fallback for records loaded without a title.
func recordTitle(rec *Record, fallback string) string {
	if rec.Title == "" {
		return fallback
	}
	return rec.Title
}

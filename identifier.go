package infobox

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultValidatedParameter is the identifier checked for allowed characters.
const DefaultValidatedParameter = "číslo CAS"

// UnknownArticle labels identifier issues of records without a title.
const UnknownArticle = "Neznámý článek"

var (
	validIdentifierRe = regexp.MustCompile(`^[0-9-]+$`)
	lettersRe         = regexp.MustCompile(`[a-zA-Z]`)
	spacesRe          = regexp.MustCompile(space)
)

// IdentifierIssue describes a registry number containing characters other
// than digits and the ASCII hyphen.
type IdentifierIssue struct {
	Title   string
	Value   string
	Reasons []string
}

// Reason joins the individual reasons for display.
func (i IdentifierIssue) Reason() string {
	return strings.Join(i.Reasons, ", ")
}

// ValidateIdentifier checks a single value. The bool result is true if the
// value is empty or contains only digits and hyphens.
func ValidateIdentifier(value string) ([]string, bool) {
	value = strings.TrimSpace(value)
	if value == "" || validIdentifierRe.MatchString(value) {
		return nil, true
	}

	var reasons []string
	if lettersRe.MatchString(value) {
		reasons = append(reasons, "obsahuje písmena")
	}
	if spacesRe.MatchString(value) {
		reasons = append(reasons, "obsahuje mezery")
	}
	if strings.ContainsRune(value, '–') {
		reasons = append(reasons, "obsahuje půlčtvercovou pomlčku (–)")
	}
	if strings.ContainsRune(value, '—') {
		reasons = append(reasons, "obsahuje čtvercovou pomlčku (—)")
	}
	if strings.ContainsRune(value, '−') {
		reasons = append(reasons, "obsahuje typografické mínus (−)")
	}
	if strings.ContainsRune(value, ',') {
		reasons = append(reasons, "obsahuje čárky")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "obsahuje nepovolené znaky")
	}
	return reasons, false
}

// ValidateIdentifiers checks param in every record and returns the values
// that fail ValidateIdentifier, in record order. Each value of a
// multi-valued field is checked on its own.
func ValidateIdentifiers(records []*Record, param string) []IdentifierIssue {
	var issues []IdentifierIssue
	for _, rec := range records {
		if rec == nil || rec.Infobox == nil {
			continue
		}
		for _, value := range rec.Infobox.Values(param) {
			value = strings.TrimSpace(value)
			if reasons, ok := ValidateIdentifier(value); !ok {
				issues = append(issues, IdentifierIssue{
					Title:   recordTitle(rec, UnknownArticle),
					Value:   value,
					Reasons: reasons,
				})
			}
		}
	}
	return issues
}

// FormatIdentifierReport renders issues as a wikitext bullet list.
func FormatIdentifierReport(issues []IdentifierIssue) string {
	if len(issues) == 0 {
		return "Nebyly nalezeny žádné chyby."
	}

	lines := make([]string, 0, len(issues))
	for _, issue := range issues {
		lines = append(lines, fmt.Sprintf("* [[%s]] – CAS: <nowiki>%s</nowiki> (%s)",
			issue.Title, issue.Value, issue.Reason()))
	}
	return strings.Join(lines, "\n")
}

package infobox

import (
	"regexp"
	"strings"
)

// DefaultTemplate is the infobox extracted when no template name is configured.
const DefaultTemplate = "Infobox - chemická sloučenina"

// Span is the source extent of one template invocation, including its
// outer braces. Start and End are byte offsets into the page text.
type Span struct {
	Start int
	End   int
	Text  string
}

// Template locates and tokenizes invocations of a single named template.
// A Template is safe for concurrent use.
type Template struct {
	name   string
	open   *regexp.Regexp
	prefix *regexp.Regexp
}

// space matches whitespace the way wikitext editors produce it, including
// no-break spaces and the byte order mark.
const space = `[\s\p{Z}\x{FEFF}]`

// NewTemplate returns a Template matching name case-insensitively.
func NewTemplate(name string) *Template {
	quoted := regexp.QuoteMeta(name)
	return &Template{
		name:   name,
		open:   regexp.MustCompile(`(?i)\{\{` + space + `*` + quoted),
		prefix: regexp.MustCompile(`(?i)^` + space + `*` + quoted + space + `*`),
	}
}

// Name returns the template name as configured.
func (t *Template) Name() string {
	return t.name
}

// Locate finds the first invocation of the template in text and returns its
// brace-balanced span. Braces are counted one character at a time starting
// at the opening "{{"; the span closes where the count returns to zero.
// The bool result is false if the template is absent or never closes.
func (t *Template) Locate(text string) (Span, bool) {
	loc := t.open.FindStringIndex(text)
	if loc == nil {
		return Span{}, false
	}

	start := loc[0]
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth == 0 {
			return Span{Start: start, End: i + 1, Text: text[start : i+1]}, true
		}
	}
	return Span{}, false
}

// Inner returns the span text without its outer delimiters and with the
// leading template name removed.
func (t *Template) Inner(span Span) string {
	s := span.Text
	if len(s) < 4 {
		return ""
	}
	return t.prefix.ReplaceAllLiteralString(s[2:len(s)-2], "")
}

// Extract locates the template in the page and tokenizes its parameters.
// The bool result is false if no balanced invocation exists.
func (t *Template) Extract(page *Page) (*Record, bool) {
	span, ok := t.Locate(page.Text)
	if !ok {
		return nil, false
	}
	return &Record{
		Title:   page.Title,
		Infobox: Tokenize(t.Inner(span)),
	}, true
}

// Locate is a convenience wrapper for NewTemplate(name).Locate(text).
func Locate(text, name string) (Span, bool) {
	return NewTemplate(name).Locate(text)
}

// InnerText is a convenience wrapper for NewTemplate(name).Inner(span).
func InnerText(span Span, name string) string {
	return NewTemplate(name).Inner(span)
}

// Extract is a convenience wrapper for NewTemplate(name).Extract(page).
func Extract(page *Page, name string) (*Record, bool) {
	return NewTemplate(name).Extract(page)
}

// Tokenize splits the inner text of a template invocation into its named
// parameters. Only "|" characters outside nested "{{...}}" and "[[...]]"
// separate parameters. Segments without a "name=" prefix are dropped.
// A later parameter with the same name replaces the earlier value.
func Tokenize(inner string) *ParameterMap {
	params := NewParameterMap()
	scanParameters(inner,
		func(key, value string) { params.Set(key, value) },
		nil,
	)
	return params
}

// AnonymousSegments returns the trimmed, non-empty segments of inner that
// Tokenize drops because they carry no parameter name.
func AnonymousSegments(inner string) []string {
	var segments []string
	scanParameters(inner, nil, func(segment string) {
		segment = strings.TrimSpace(strings.TrimPrefix(segment, "|"))
		if segment != "" {
			segments = append(segments, segment)
		}
	})
	return segments
}

// scanParameters runs the parameter state machine over inner. It calls emit
// for every named parameter and drop for every buffered segment that is
// discarded for lack of a name.
//
// Nesting depth is tracked with a two-character window at every position,
// so runs of three or more identical brackets are counted once per
// overlapping pair.
func scanParameters(inner string, emit func(key, value string), drop func(segment string)) {
	var (
		buf           strings.Builder
		key           string
		templateDepth int
		linkDepth     int
	)

	flush := func() {
		if key != "" {
			if emit != nil {
				emit(strings.TrimSpace(key), strings.TrimSpace(buf.String()))
			}
		} else if drop != nil {
			drop(buf.String())
		}
	}

	for i := 0; i < len(inner); i++ {
		c := inner[i]
		var next byte
		if i+1 < len(inner) {
			next = inner[i+1]
		}

		switch {
		case c == '{' && next == '{':
			templateDepth++
		case c == '}' && next == '}':
			templateDepth--
		case c == '[' && next == '[':
			linkDepth++
		case c == ']' && next == ']':
			linkDepth--
		}

		if c != '|' || templateDepth > 0 || linkDepth > 0 {
			buf.WriteByte(c)
			continue
		}

		flush()
		key = ""
		buf.Reset()

		if name, end, ok := scanKey(inner, i+1); ok {
			key = name
			i = end
		} else {
			buf.WriteByte(c)
		}
	}

	flush()
}

// scanKey looks for the "=" that ends a parameter name starting at from.
// A "=" directly followed by another "=" does not count. The search stops
// at the next "|" or "}". It returns the raw name and the index of the "=".
func scanKey(s string, from int) (string, int, bool) {
	for j := from; j < len(s); j++ {
		switch s[j] {
		case '=':
			if j+1 >= len(s) || s[j+1] != '=' {
				return s[from:j], j, true
			}
		case '|', '}':
			return "", 0, false
		}
	}
	return "", 0, false
}

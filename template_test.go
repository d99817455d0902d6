package infobox_test

import (
	"testing"

	"github.com/fwojciec/infobox"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// extract runs the locator and tokenizer the way the batch driver does.
func extract(t *testing.T, text, name string) *infobox.ParameterMap {
	t.Helper()
	rec, ok := infobox.Extract(&infobox.Page{Title: "Test", Text: text}, name)
	require.True(t, ok, "template %q not located", name)
	return rec.Infobox
}

func params(pairs ...string) []infobox.Parameter {
	out := make([]infobox.Parameter, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, infobox.Parameter{Name: pairs[i], Value: pairs[i+1]})
	}
	return out
}

func TestLocate(t *testing.T) {
	t.Parallel()

	t.Run("returns balanced span of first invocation", func(t *testing.T) {
		t.Parallel()

		text := "Intro {{Name|a={{X|y=1}}}} outro {{Name|b=2}}"

		span, ok := infobox.Locate(text, "Name")

		require.True(t, ok)
		assert.Equal(t, "{{Name|a={{X|y=1}}}}", span.Text)
		assert.Equal(t, 6, span.Start)
		assert.Equal(t, span.Text, text[span.Start:span.End])
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		t.Parallel()

		span, ok := infobox.Locate("{{name|a=1}}", "Name")

		require.True(t, ok)
		assert.Equal(t, "{{name|a=1}}", span.Text)
	})

	t.Run("tolerates whitespace between braces and name", func(t *testing.T) {
		t.Parallel()

		span, ok := infobox.Locate("x {{ \n Name\n|a=1\n}} y", "Name")

		require.True(t, ok)
		assert.Equal(t, "{{ \n Name\n|a=1\n}}", span.Text)
	})

	t.Run("tolerates unicode spaces between braces and name", func(t *testing.T) {
		t.Parallel()

		span, ok := infobox.Locate("{{\u00a0Name|a=1}}", "Name")

		require.True(t, ok)
		assert.Equal(t, "{{\u00a0Name|a=1}}", span.Text)

		span, ok = infobox.Locate("{{\ufeff\u2003Name|a=1}}", "Name")

		require.True(t, ok)
		assert.Equal(t, "{{\ufeff\u2003Name|a=1}}", span.Text)
	})

	t.Run("matches non-ASCII names case-insensitively", func(t *testing.T) {
		t.Parallel()

		span, ok := infobox.Locate("{{infobox - CHEMICKÁ sloučenina|vzorec=H2O}}", infobox.DefaultTemplate)

		require.True(t, ok)
		assert.Contains(t, span.Text, "vzorec=H2O")
	})

	t.Run("treats regex metacharacters in name literally", func(t *testing.T) {
		t.Parallel()

		_, ok := infobox.Locate("{{Info.box|a=1}}", "Info(box")
		assert.False(t, ok)

		span, ok := infobox.Locate("{{Info(box|a=1}}", "Info(box")
		require.True(t, ok)
		assert.Equal(t, "{{Info(box|a=1}}", span.Text)
	})

	t.Run("reports not found when template is absent", func(t *testing.T) {
		t.Parallel()

		_, ok := infobox.Locate("{{Other|a=1}}", "Name")

		assert.False(t, ok)
	})

	t.Run("reports not found when template never closes", func(t *testing.T) {
		t.Parallel()

		_, ok := infobox.Locate("{{Name|a=1", "Name")

		assert.False(t, ok)
	})

	t.Run("reports not found when nested template is unbalanced", func(t *testing.T) {
		t.Parallel()

		_, ok := infobox.Locate("{{Name|a={{X|y=1}|b=2}}", "Name")

		assert.False(t, ok)
	})

	t.Run("counts braces per character", func(t *testing.T) {
		t.Parallel()

		// A single stray "}" closes the span one character early.
		span, ok := infobox.Locate("{{Name|a=}x}}", "Name")

		require.True(t, ok)
		assert.Equal(t, "{{Name|a=}x}", span.Text)
	})
}

func TestInnerText(t *testing.T) {
	t.Parallel()

	t.Run("strips delimiters and name", func(t *testing.T) {
		t.Parallel()

		span, ok := infobox.Locate("{{ Name |a=1}}", "Name")
		require.True(t, ok)

		assert.Equal(t, "|a=1", infobox.InnerText(span, "Name"))
	})

	t.Run("strips unicode spaces around name", func(t *testing.T) {
		t.Parallel()

		span, ok := infobox.Locate("{{\u00a0Name\u00a0|a=1}}", "Name")
		require.True(t, ok)

		assert.Equal(t, "|a=1", infobox.InnerText(span, "Name"))
	})

	t.Run("strips only the leading name", func(t *testing.T) {
		t.Parallel()

		span, ok := infobox.Locate("{{Name|a=Name}}", "Name")
		require.True(t, ok)

		assert.Equal(t, "|a=Name", infobox.InnerText(span, "Name"))
	})

	t.Run("returns empty string for degenerate span", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, infobox.InnerText(infobox.Span{Text: "{}"}, "Name"))
	})
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	t.Run("extracts parameters in order", func(t *testing.T) {
		t.Parallel()

		got := extract(t, "{{Name|a=1|b=2}}", "Name")

		if diff := cmp.Diff(params("a", "1", "b", "2"), got.Parameters()); diff != "" {
			t.Errorf("parameters mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("keeps nested template intact", func(t *testing.T) {
		t.Parallel()

		got := extract(t, "{{Name|a={{X|y=1}}|b=2}}", "Name")

		if diff := cmp.Diff(params("a", "{{X|y=1}}", "b", "2"), got.Parameters()); diff != "" {
			t.Errorf("parameters mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("keeps piped link intact", func(t *testing.T) {
		t.Parallel()

		got := extract(t, "{{Name|a=[[Page|Alt text]]|b=2}}", "Name")

		if diff := cmp.Diff(params("a", "[[Page|Alt text]]", "b", "2"), got.Parameters()); diff != "" {
			t.Errorf("parameters mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("last write wins for repeated key", func(t *testing.T) {
		t.Parallel()

		got := extract(t, "{{Name|a=1|a=2}}", "Name")

		v, ok := got.Get("a")
		require.True(t, ok)
		assert.Equal(t, "2", v)
		assert.Equal(t, 1, got.Len())
	})

	t.Run("drops segments without a key", func(t *testing.T) {
		t.Parallel()

		got := extract(t, "{{Name|a=1|justflag|b=2}}", "Name")

		if diff := cmp.Diff(params("a", "1", "b", "2"), got.Parameters()); diff != "" {
			t.Errorf("parameters mismatch (-want +got):\n%s", diff)
		}
		for _, p := range got.Parameters() {
			assert.NotContains(t, p.Name, "justflag")
			assert.NotContains(t, p.Value, "justflag")
		}
	})

	t.Run("trims keys and values across lines", func(t *testing.T) {
		t.Parallel()

		text := "{{Infobox - chemická sloučenina\n| název = Voda \n| vzorec = H<sub>2</sub>O\n| číslo CAS = 7732-18-5\n}}"

		got := extract(t, text, infobox.DefaultTemplate)

		want := params("název", "Voda", "vzorec", "H<sub>2</sub>O", "číslo CAS", "7732-18-5")
		if diff := cmp.Diff(want, got.Parameters()); diff != "" {
			t.Errorf("parameters mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("keeps equals signs inside values", func(t *testing.T) {
		t.Parallel()

		got := extract(t, "{{Name|smiles=C=C=O|b=2}}", "Name")

		v, _ := got.Get("smiles")
		assert.Equal(t, "C=C=O", v)
	})

	t.Run("keeps empty values", func(t *testing.T) {
		t.Parallel()

		got := extract(t, "{{Name|a=|b=2}}", "Name")

		v, ok := got.Get("a")
		require.True(t, ok)
		assert.Empty(t, v)
	})

	t.Run("does not split on doubled equals", func(t *testing.T) {
		t.Parallel()

		got := Tokenize("|a==b|c=d")

		v, ok := got.Get("a=")
		require.True(t, ok)
		assert.Equal(t, "b", v)
	})

	t.Run("ignores key without name", func(t *testing.T) {
		t.Parallel()

		got := Tokenize("|=orphan|b=2")

		if diff := cmp.Diff(params("b", "2"), got.Parameters()); diff != "" {
			t.Errorf("parameters mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("key lookahead stops at closing brace", func(t *testing.T) {
		t.Parallel()

		got := Tokenize("|a=1|x}y=2")

		if diff := cmp.Diff(params("a", "1"), got.Parameters()); diff != "" {
			t.Errorf("parameters mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("returns empty map for empty input", func(t *testing.T) {
		t.Parallel()

		got := Tokenize("")

		assert.Equal(t, 0, got.Len())
	})

	t.Run("never fails on malformed input", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"}}}}|a=1",
			"]]]]|a=[[[[|b",
			"|||||",
			"=|=|=",
			"{{{{{{|a=1",
			"|a=1|b=[[x|y",
		}
		for _, in := range inputs {
			assert.NotPanics(t, func() { _ = Tokenize(in) }, in)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		text := "{{Name|a={{X|y=1}}|b=[[P|Q]]|flag|c=3}}"
		span, ok := infobox.Locate(text, "Name")
		require.True(t, ok)
		inner := infobox.InnerText(span, "Name")

		first := infobox.Tokenize(inner)
		second := infobox.Tokenize(inner)

		assert.Equal(t, first.Parameters(), second.Parameters())
	})
}

// Tokenize is a local alias to keep table-like subtests short.
func Tokenize(inner string) *infobox.ParameterMap {
	return infobox.Tokenize(inner)
}

func TestTokenize_HeuristicDepth(t *testing.T) {
	t.Parallel()

	t.Run("three closing braces count as two closings", func(t *testing.T) {
		t.Parallel()

		// "{{{x}}}" opens twice and closes twice in a sliding window.
		got := Tokenize("|a={{{x}}}|b=2")

		v, _ := got.Get("a")
		assert.Equal(t, "{{{x}}}", v)
		v, _ = got.Get("b")
		assert.Equal(t, "2", v)
	})

	t.Run("four closing braces over-count", func(t *testing.T) {
		t.Parallel()

		// Two openings, three closings: depth goes negative and the
		// following "|" still counts as top level.
		got := Tokenize("|a={{x}}}}|b=2")

		v, _ := got.Get("b")
		assert.Equal(t, "2", v)
	})
}

func TestAnonymousSegments(t *testing.T) {
	t.Parallel()

	t.Run("lists dropped segments", func(t *testing.T) {
		t.Parallel()

		got := infobox.AnonymousSegments("|a=1|justflag|b=2| other |c=3")

		assert.Equal(t, []string{"justflag", "other"}, got)
	})

	t.Run("includes text before first delimiter", func(t *testing.T) {
		t.Parallel()

		got := infobox.AnonymousSegments("leading|a=1")

		assert.Equal(t, []string{"leading"}, got)
	})

	t.Run("returns nil when every segment is named", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, infobox.AnonymousSegments("\n|a=1\n|b=2\n"))
	})
}

func TestTemplate_Extract(t *testing.T) {
	t.Parallel()

	tmpl := infobox.NewTemplate("Name")

	t.Run("builds record with page title", func(t *testing.T) {
		t.Parallel()

		rec, ok := tmpl.Extract(&infobox.Page{Title: "Voda", Text: "{{Name|a=1}}"})

		require.True(t, ok)
		assert.Equal(t, "Voda", rec.Title)
		assert.Equal(t, 1, rec.Infobox.Len())
	})

	t.Run("returns false for missing template", func(t *testing.T) {
		t.Parallel()

		rec, ok := tmpl.Extract(&infobox.Page{Title: "Voda", Text: "plain text"})

		assert.False(t, ok)
		assert.Nil(t, rec)
	})

	t.Run("returns false for unbalanced template", func(t *testing.T) {
		t.Parallel()

		_, ok := tmpl.Extract(&infobox.Page{Title: "Voda", Text: "{{Name|a=1"})

		assert.False(t, ok)
	})

	t.Run("reports configured name", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Name", tmpl.Name())
	})
}

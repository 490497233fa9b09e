package wpaparse

import (
	"testing"

	"github.com/wpasession/p2pctl/internal/wpaevent"
)

func TestParseAllKindsRoundTrip(t *testing.T) {
	for k, prefix := range wpaevent.AllKindPrefixes() {
		line := "<2>" + prefix + " a b c"
		var rec wpaevent.EventRecord
		ok, err := Parse(line, &rec)
		if err != nil || !ok {
			t.Fatalf("Parse(%q) = (%v, %v), want (true, nil)", line, ok, err)
		}
		if rec.Priority != wpaevent.Info {
			t.Errorf("%q: priority = %v, want Info", line, rec.Priority)
		}
		if rec.Kind != k {
			t.Errorf("%q: kind = %v, want %v", line, rec.Kind, k)
		}
		want := []string{"a", "b", "c"}
		if !equalSlices(rec.Positional, want) {
			t.Errorf("%q: positional = %v, want %v", line, rec.Positional, want)
		}
		if len(rec.Named) != 0 {
			t.Errorf("%q: named = %v, want empty", line, rec.Named)
		}
	}
}

func TestParseRejectsMissingAngleBracket(t *testing.T) {
	var rec wpaevent.EventRecord
	rec.Positional = append(rec.Positional, "stale")
	ok, err := Parse("not-an-event-line", &rec)
	if ok || err == nil {
		t.Fatalf("Parse() = (%v, %v), want (false, non-nil)", ok, err)
	}
	if len(rec.Positional) != 0 {
		t.Errorf("record was not cleared on failure: %+v", rec)
	}
}

func TestParseEmptyLineIsNoEvent(t *testing.T) {
	var rec wpaevent.EventRecord
	rec.RawKind = "untouched"
	ok, err := Parse("", &rec)
	if ok || err != nil {
		t.Fatalf("Parse(\"\") = (%v, %v), want (false, nil)", ok, err)
	}
	if rec.RawKind != "untouched" {
		t.Errorf("empty line modified the record: %+v", rec)
	}
}

func TestParsePromptEchoConsumedSilently(t *testing.T) {
	var rec wpaevent.EventRecord
	ok, err := Parse(">", &rec)
	if ok || err != nil {
		t.Fatalf("Parse(\">\") = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestParseOutOfRangePriorityFails(t *testing.T) {
	var rec wpaevent.EventRecord
	ok, err := Parse("<9>CTRL-EVENT-CONNECTED", &rec)
	if ok || err == nil {
		t.Fatalf("Parse() = (%v, %v), want (false, non-nil) for out-of-range priority", ok, err)
	}
}

func TestParseQuotedTokenPreservesDelimiters(t *testing.T) {
	var rec wpaevent.EventRecord
	ok, err := Parse(`<2>CTRL-EVENT-EAP-PEER-CERT subject='/CN=foo bar'`, &rec)
	if err != nil || !ok {
		t.Fatalf("Parse() = (%v, %v), want (true, nil)", ok, err)
	}
	// The right-hand side of "subject=" opens a balanced quote, so per the
	// §4.1 token-scanner contract (and the original implementation's
	// structure) this is a named parameter whose value retains its
	// delimiters verbatim, not a bare positional token.
	if got := rec.GetNamed("subject"); got != `'/CN=foo bar'` {
		t.Errorf("GetNamed(subject) = %q, want %q", got, `'/CN=foo bar'`)
	}
}

func TestParseNamedParameterExtraction(t *testing.T) {
	var rec wpaevent.EventRecord
	line := `<2>P2P-DEVICE-FOUND 02:11:22:33:44:55 name="Foo" pri_dev_type=1-0050F204-1`
	ok, err := Parse(line, &rec)
	if err != nil || !ok {
		t.Fatalf("Parse() = (%v, %v), want (true, nil)", ok, err)
	}
	if !equalSlices(rec.Positional, []string{"02:11:22:33:44:55"}) {
		t.Errorf("positional = %v", rec.Positional)
	}
	if got := rec.GetNamed("name"); got != `"Foo"` {
		t.Errorf("GetNamed(name) = %q, want %q", got, `"Foo"`)
	}
	if got := rec.GetNamed("pri_dev_type"); got != "1-0050F204-1" {
		t.Errorf("GetNamed(pri_dev_type) = %q, want 1-0050F204-1", got)
	}
}

func TestParseUnknownKindSetsRawKind(t *testing.T) {
	var rec wpaevent.EventRecord
	ok, err := Parse("<2>CTRL-EVENT-NOVEL-THING alpha=1", &rec)
	if err != nil || !ok {
		t.Fatalf("Parse() = (%v, %v), want (true, nil)", ok, err)
	}
	if rec.Kind != wpaevent.Unknown {
		t.Errorf("kind = %v, want Unknown", rec.Kind)
	}
	if rec.RawKind != "CTRL-EVENT-NOVEL-THING" {
		t.Errorf("rawKind = %q, want CTRL-EVENT-NOVEL-THING", rec.RawKind)
	}
	if got := rec.GetNamed("alpha"); got != "1" {
		t.Errorf("GetNamed(alpha) = %q, want 1", got)
	}
}

func TestParseUnterminatedBracketToleratesToEndOfString(t *testing.T) {
	var rec wpaevent.EventRecord
	ok, err := Parse(`<2>P2P-DEVICE-FOUND [unterminated`, &rec)
	if err != nil || !ok {
		t.Fatalf("Parse() = (%v, %v), want (true, nil)", ok, err)
	}
	if !equalSlices(rec.Positional, []string{"[unterminated"}) {
		t.Errorf("positional = %v, want [\"[unterminated\"]", rec.Positional)
	}
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package wpaevent

import (
	"math"
	"strconv"
	"strings"
)

// NamedParam is one key=value pair captured from an event line, in the
// order it appeared on the wire. Duplicate keys are retained; GetNamed
// resolves duplicates first-wins.
type NamedParam struct {
	Key   string
	Value string
}

// EventRecord is one parsed supplicant event. Positional order and named
// insertion order are preserved. An EventRecord is produced by the parser,
// handed to listeners and tasks by the session manager, and is not reused
// across events — each fire gets its own record.
type EventRecord struct {
	Priority Priority
	Kind     MessageKind

	// RawKind holds the literal wire prefix and is populated only when
	// Kind == Unknown.
	RawKind string

	Positional []string
	Named      []NamedParam
}

// Reset clears r back to its zero value in place, reusing the backing
// arrays of Positional and Named. The parser calls this before attempting
// to populate a record so a failed parse leaves the record cleared.
func (r *EventRecord) Reset() {
	r.Priority = MsgDump
	r.Kind = Unknown
	r.RawKind = ""
	r.Positional = r.Positional[:0]
	r.Named = r.Named[:0]
}

// GetNamed returns the first value whose key equals name, or "" if absent.
func (r *EventRecord) GetNamed(name string) string {
	for _, p := range r.Named {
		if p.Key == name {
			return p.Value
		}
	}
	return ""
}

// GetNamedNumeric parses the named value as a signed integer: an optional
// leading '+'/'-', then either decimal digits or a "0x"/"0X" hex run
// (case-insensitive for the hex digits). A missing key, an empty value, or
// any malformed value returns def. Out-of-range values saturate to
// math.MaxInt64 / math.MinInt64 rather than wrapping.
func (r *EventRecord) GetNamedNumeric(name string, def int64) int64 {
	v := r.GetNamed(name)
	if v == "" {
		return def
	}

	neg := false
	i := 0
	switch v[0] {
	case '+':
		i = 1
	case '-':
		neg = true
		i = 1
	}
	if i >= len(v) {
		return def
	}

	rest := v[i:]
	base := 10
	if len(rest) > 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') {
		base = 16
		rest = rest[2:]
	}
	if rest == "" {
		return def
	}

	n, err := strconv.ParseUint(rest, base, 64)
	if err != nil {
		// Any malformed digit run falls through to def; a pure
		// magnitude overflow is handled below via saturation instead.
		if numErr, ok := err.(*strconv.NumError); !ok || numErr.Err != strconv.ErrRange {
			return def
		}
		n = math.MaxUint64
	}

	const (
		maxPositive = uint64(math.MaxInt64)     // 2^63-1
		minNegative = uint64(math.MaxInt64) + 1 // 2^63, magnitude of math.MinInt64
	)
	switch {
	case neg && n >= minNegative:
		return math.MinInt64
	case neg:
		return -int64(n)
	case n > maxPositive:
		return math.MaxInt64
	default:
		return int64(n)
	}
}

// String renders a compact one-line debug form: "<prio> kind pos... key=val...".
func (r *EventRecord) String() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(strconv.Itoa(int(r.Priority)))
	b.WriteByte('>')
	if r.Kind == Unknown && r.RawKind != "" {
		b.WriteString(r.RawKind)
	} else {
		b.WriteString(r.Kind.String())
	}
	for _, p := range r.Positional {
		b.WriteByte(' ')
		b.WriteString(p)
	}
	for _, kv := range r.Named {
		b.WriteByte(' ')
		b.WriteString(kv.Key)
		b.WriteByte('=')
		b.WriteString(kv.Value)
	}
	return b.String()
}

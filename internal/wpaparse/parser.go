// Package wpaparse turns one line of supplicant control-interface output
// into a wpaevent.EventRecord. The parser is pure: it allocates nothing
// beyond the output record's slices and performs no I/O.
package wpaparse

import (
	"errors"

	"github.com/wpasession/p2pctl/internal/wpaevent"
)

// ErrMalformed is returned for a line that is not a prompt echo, not an
// empty line, and not a well-formed "<priority>kind ..." event line.
var ErrMalformed = errors.New("wpaparse: malformed event line")

// Parse populates rec from line and reports whether an event was produced.
// A return of (false, nil) means line was an empty line (or bare prompt
// echo) and carries no event — rec is left unmodified. A return of
// (false, err) means line was rejected outright; rec is cleared. A return
// of (true, nil) means rec now holds the parsed event.
func Parse(line string, rec *wpaevent.EventRecord) (bool, error) {
	s := line
	if len(s) > 0 && s[0] == '>' {
		s = s[1:]
	}
	if s == "" {
		return false, nil
	}
	if s[0] != '<' {
		rec.Reset()
		return false, ErrMalformed
	}
	rec.Reset()

	i := 1
	priority := 0
	for i < len(s) && s[i] != '>' {
		c := s[i]
		if c < '0' || c > '9' {
			rec.Reset()
			return false, ErrMalformed
		}
		priority = priority*10 + int(c-'0')
		i++
	}
	if i >= len(s) {
		rec.Reset()
		return false, ErrMalformed
	}
	i++ // consume '>'

	rec.Priority = wpaevent.Priority(priority)
	if !rec.Priority.Valid() {
		rec.Reset()
		return false, ErrMalformed
	}

	kindStart := i
	for i < len(s) && !isSpace(s[i]) {
		i++
	}
	kindText := s[kindStart:i]
	if kind, ok := wpaevent.GetWpaEventMessage(kindText); ok {
		rec.Kind = kind
	} else {
		rec.Kind = wpaevent.Unknown
		rec.RawKind = kindText
	}

	for i < len(s) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}

		if isBalancedOpen(s[i]) {
			tok, next := scanBalanced(s, i)
			rec.Positional = append(rec.Positional, tok)
			i = next
			continue
		}

		wordStart := i
		for i < len(s) && !isSpace(s[i]) && s[i] != '=' {
			i++
		}
		if i == wordStart && i < len(s) && s[i] == '=' {
			// A stray leading '=' with no key; emit it verbatim rather
			// than looping forever.
			rec.Positional = append(rec.Positional, "=")
			i++
			continue
		}
		word := s[wordStart:i]

		if i < len(s) && s[i] == '=' {
			key := word
			i++ // consume '='
			var value string
			if i < len(s) && isBalancedOpen(s[i]) {
				value, i = scanBalanced(s, i)
			} else {
				valStart := i
				for i < len(s) && !isSpace(s[i]) {
					i++
				}
				value = s[valStart:i]
			}
			rec.Named = append(rec.Named, wpaevent.NamedParam{Key: key, Value: value})
			continue
		}

		rec.Positional = append(rec.Positional, word)
	}

	return true, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isBalancedOpen(c byte) bool {
	return c == '"' || c == '\'' || c == '['
}

// scanBalanced consumes a quoted or bracketed token starting at s[i], which
// must satisfy isBalancedOpen. It returns the token including its opening
// and (if present) closing delimiter, and the index following it. An
// unterminated pair consumes to the end of the string without error.
func scanBalanced(s string, i int) (string, int) {
	var closer byte
	switch s[i] {
	case '"':
		closer = '"'
	case '\'':
		closer = '\''
	case '[':
		closer = ']'
	}

	j := i + 1
	for j < len(s) && s[j] != closer {
		j++
	}
	if j < len(s) {
		j++ // include the closing delimiter
	}
	return s[i:j], j
}

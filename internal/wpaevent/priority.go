// Package wpaevent defines the typed representation of one supplicant
// control-interface event: its priority, its message kind, and its
// positional and named parameters.
package wpaevent

import "fmt"

// Priority is the severity the supplicant attached to an event, carried as
// the numeric prefix inside the leading "<N>" marker. Higher values are more
// severe; MsgDump is the least severe (raw wire dump) and Error the most.
type Priority int

const (
	MsgDump Priority = iota
	Debug
	Info
	Warning
	Error
)

// String renders the priority the way wpa_cli names these levels.
func (p Priority) String() string {
	switch p {
	case MsgDump:
		return "MSGDUMP"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// Valid reports whether p falls within the closed [MsgDump, Error] range.
// A parsed event carrying a priority outside this range is a parse error.
func (p Priority) Valid() bool {
	return p >= MsgDump && p <= Error
}

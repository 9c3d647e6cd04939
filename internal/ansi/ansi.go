// Package ansi holds the escape codes centerbrain uses for plain terminal
// messages. Rendered cards go through lipgloss instead.
package ansi

// SGR (Select Graphic Rendition) codes.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

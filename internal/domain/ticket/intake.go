package ticket

import "strings"

// IntakeFields are the fields derived from the free-text intake note.
type IntakeFields struct {
	Subject    string
	TicketType string
	Solution   string
	Site       string
}

// ParseIntake derives subject, type, solution and site from the raw
// intake text. The note is split on commas; the first four segments map
// in order, each trimmed, and missing segments default to the empty
// string. Derivation happens exactly once at creation and is never
// re-applied on update.
func ParseIntake(rawText string) IntakeFields {
	parts := strings.Split(rawText, ",")
	segment := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}

	return IntakeFields{
		Subject:    segment(0),
		TicketType: segment(1),
		Solution:   segment(2),
		Site:       segment(3),
	}
}

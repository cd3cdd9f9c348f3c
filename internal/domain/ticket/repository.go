package ticket

import (
	"context"
	"strconv"
	"strings"
	"time"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)

	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

// TicketFilter describes the composable listing criteria. All
// categories combine with AND; the search clauses combine with OR among
// themselves (identifier equality joins the OR set only when the
// search text parses to a positive integer once leading zeros are
// stripped).
type TicketFilter struct {
	// Status filters by equality. Empty or "all" disables the filter;
	// unrecognized values pass through as a literal match.
	Status string
	// Search is matched case-insensitively against caller name, subject
	// and agent name, and against the identifier when numeric.
	Search string
	// DateFrom / DateTo bound the creation timestamp inclusively.
	DateFrom *time.Time
	DateTo   *time.Time
	// SortOrder is "asc" or "desc" on creation time; anything else
	// means "desc".
	SortOrder string
}

// SearchID reports the identifier the search text targets, if any.
// Leading zeros are stripped before parsing; only a strictly positive
// integer participates in the identifier match, so "007" targets ticket
// 7 while "0" targets nothing.
func (f TicketFilter) SearchID() (uint, bool) {
	term := strings.TrimSpace(f.Search)
	if term == "" {
		return 0, false
	}

	stripped := strings.TrimLeft(term, "0")
	if stripped == "" {
		stripped = "0"
	}

	n, err := strconv.Atoi(stripped)
	if err != nil || n <= 0 {
		return 0, false
	}
	return uint(n), true
}

// SortAscending reports whether the listing should be oldest-first.
// Only the exact value "asc" flips the default newest-first order.
func (f TicketFilter) SortAscending() bool {
	return f.SortOrder == "asc"
}

package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "mesaayuda/internal/domain/ticket/valueobjects"
)

// Ticket is one logged phone-support interaction. The intake-derived
// fields (subject, ticket type, solution, site) are computed from the
// raw text at creation; only status, agent name and solution may change
// afterwards.
type Ticket struct {
	id           uint
	callerName   string
	callDuration string
	rawText      string
	subject      string
	ticketType   string
	solution     string
	site         string
	agentName    *string
	status       vo.Status
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTicket(callerName, callDuration, rawText string, agentName *string) (*Ticket, error) {
	if len(callerName) == 0 {
		return nil, fmt.Errorf("caller name is required")
	}
	if len(callDuration) == 0 {
		return nil, fmt.Errorf("call duration is required")
	}
	if len(rawText) == 0 {
		return nil, fmt.Errorf("raw text is required")
	}

	if agentName != nil {
		trimmed := strings.TrimSpace(*agentName)
		if trimmed == "" {
			agentName = nil
		} else {
			agentName = &trimmed
		}
	}

	fields := ParseIntake(rawText)
	now := time.Now().UTC()

	return &Ticket{
		callerName:   callerName,
		callDuration: callDuration,
		rawText:      rawText,
		subject:      fields.Subject,
		ticketType:   fields.TicketType,
		solution:     fields.Solution,
		site:         fields.Site,
		agentName:    agentName,
		status:       vo.StatusPendiente,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence. Derived fields
// are taken as stored; they are never re-parsed from the raw text.
func ReconstructTicket(
	id uint,
	callerName string,
	callDuration string,
	rawText string,
	subject string,
	ticketType string,
	solution string,
	site string,
	agentName *string,
	status vo.Status,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:           id,
		callerName:   callerName,
		callDuration: callDuration,
		rawText:      rawText,
		subject:      subject,
		ticketType:   ticketType,
		solution:     solution,
		site:         site,
		agentName:    agentName,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

// Number is the zero-padded display number derived from the identifier.
func (t *Ticket) Number() string {
	return fmt.Sprintf("%06d", t.id)
}

func (t *Ticket) CallerName() string {
	return t.callerName
}

func (t *Ticket) CallDuration() string {
	return t.callDuration
}

func (t *Ticket) RawText() string {
	return t.rawText
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) TicketType() string {
	return t.ticketType
}

func (t *Ticket) Solution() string {
	return t.solution
}

func (t *Ticket) Site() string {
	return t.site
}

func (t *Ticket) AgentName() *string {
	return t.agentName
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.updatedAt = time.Now().UTC()
	return nil
}

func (t *Ticket) SetAgentName(agentName *string) {
	if agentName != nil {
		trimmed := strings.TrimSpace(*agentName)
		if trimmed == "" {
			agentName = nil
		} else {
			agentName = &trimmed
		}
	}
	t.agentName = agentName
	t.updatedAt = time.Now().UTC()
}

func (t *Ticket) SetSolution(solution string) {
	t.solution = solution
	t.updatedAt = time.Now().UTC()
}

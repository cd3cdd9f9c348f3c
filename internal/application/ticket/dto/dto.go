package dto

import (
	"time"

	"mesaayuda/internal/domain/ticket"
)

// TicketDTO is the full ticket record returned to clients.
type TicketDTO struct {
	ID           uint      `json:"id"`
	Number       string    `json:"number"`
	CallerName   string    `json:"caller_name"`
	CallDuration string    `json:"call_duration"`
	RawText      string    `json:"raw_text"`
	Subject      string    `json:"subject"`
	TicketType   string    `json:"ticket_type"`
	Solution     string    `json:"solution"`
	Site         string    `json:"site"`
	AgentName    *string   `json:"agent_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromEntity(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:           t.ID(),
		Number:       t.Number(),
		CallerName:   t.CallerName(),
		CallDuration: t.CallDuration(),
		RawText:      t.RawText(),
		Subject:      t.Subject(),
		TicketType:   t.TicketType(),
		Solution:     t.Solution(),
		Site:         t.Site(),
		AgentName:    t.AgentName(),
		Status:       t.Status().String(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

func FromEntities(tickets []*ticket.Ticket) []TicketDTO {
	out := make([]TicketDTO, len(tickets))
	for i, t := range tickets {
		out[i] = FromEntity(t)
	}
	return out
}

// TicketStatsDTO is the rollup over the ticket set. Cerrados is derived
// as total minus pendientes rather than counted directly.
type TicketStatsDTO struct {
	Pendientes    int64 `json:"pendientes"`
	Cerrados      int64 `json:"cerrados"`
	Total         int64 `json:"total"`
	TicketsHoy    int64 `json:"tickets_hoy"`
	TicketsSemana int64 `json:"tickets_semana"`
	TicketsMes    int64 `json:"tickets_mes"`
}

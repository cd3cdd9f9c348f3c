package mappers

import (
	"time"

	"mesaayuda/internal/domain/ticket"
	vo "mesaayuda/internal/domain/ticket/valueobjects"
	"mesaayuda/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:           t.ID(),
		CallerName:   t.CallerName(),
		CallDuration: t.CallDuration(),
		RawText:      t.RawText(),
		Subject:      t.Subject(),
		TicketType:   t.TicketType(),
		Solution:     t.Solution(),
		Site:         t.Site(),
		AgentName:    t.AgentName(),
		Status:       t.Status().String(),
		CreatedAt:    t.CreatedAt().UnixMilli(),
		UpdatedAt:    t.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts a ticket persistence model to a domain entity.
// The derived fields are read back as stored; the raw text is never re-parsed.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.CallerName,
		model.CallDuration,
		model.RawText,
		model.Subject,
		model.TicketType,
		model.Solution,
		model.Site,
		model.AgentName,
		status,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}

func convertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}

package usecases

import (
	"context"

	"mesaayuda/internal/application/ticket/dto"
	"mesaayuda/internal/domain/ticket"
	"mesaayuda/internal/shared/errors"
	"mesaayuda/internal/shared/logger"
)

type CreateTicketCommand struct {
	CallerName   string
	CallDuration string
	RawText      string
	AgentName    *string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(
	ctx context.Context,
	cmd CreateTicketCommand,
) (*dto.TicketDTO, error) {
	if cmd.CallerName == "" || cmd.CallDuration == "" || cmd.RawText == "" {
		return nil, errors.NewValidationError(
			"caller_name, call_duration and raw_text are required")
	}

	t, err := ticket.NewTicket(cmd.CallerName, cmd.CallDuration, cmd.RawText, cmd.AgentName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "caller_name", cmd.CallerName)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created",
		"ticket_id", t.ID(),
		"subject", t.Subject())

	result := dto.FromEntity(t)
	return &result, nil
}

package usecases

import (
	"context"

	"mesaayuda/internal/application/ticket/dto"
	"mesaayuda/internal/domain/ticket"
	vo "mesaayuda/internal/domain/ticket/valueobjects"
	"mesaayuda/internal/shared/errors"
	"mesaayuda/internal/shared/logger"
)

// UpdateTicketCommand is a partial patch. Only status, agent name and
// solution are settable after creation; nil means "leave unchanged".
type UpdateTicketCommand struct {
	TicketID  uint
	Status    *string
	AgentName *string
	Solution  *string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(
	ctx context.Context,
	cmd UpdateTicketCommand,
) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load ticket for update", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	if cmd.Status != nil {
		status, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status", err.Error())
		}
		if err := t.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.AgentName != nil {
		t.SetAgentName(cmd.AgentName)
	}

	if cmd.Solution != nil {
		t.SetSolution(*cmd.Solution)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "status", t.Status().String())

	result := dto.FromEntity(t)
	return &result, nil
}

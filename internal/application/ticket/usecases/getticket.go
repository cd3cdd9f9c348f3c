package usecases

import (
	"context"

	"mesaayuda/internal/application/ticket/dto"
	"mesaayuda/internal/domain/ticket"
	"mesaayuda/internal/shared/errors"
	"mesaayuda/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(
	ctx context.Context,
	query GetTicketQuery,
) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", query.TicketID)
		return nil, errors.NewInternalError("failed to get ticket")
	}

	result := dto.FromEntity(t)
	return &result, nil
}

package usecases

import (
	"context"
	"strings"

	"mesaayuda/internal/application/ticket/dto"
	"mesaayuda/internal/domain/ticket"
	vo "mesaayuda/internal/domain/ticket/valueobjects"
	"mesaayuda/internal/shared/biztime"
	"mesaayuda/internal/shared/errors"
	"mesaayuda/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status    string
	Search    string
	SortOrder string
	DateFrom  string
	DateTo    string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(
	ctx context.Context,
	query ListTicketsQuery,
) ([]dto.TicketDTO, error) {
	filter := ticket.TicketFilter{
		Search:    strings.TrimSpace(query.Search),
		SortOrder: query.SortOrder,
	}

	// "all" (and empty) disables the status filter; any other value is a
	// literal equality match, deliberately not validated against the enum.
	if query.Status != "" && query.Status != vo.StatusAll {
		filter.Status = query.Status
	}

	if query.DateFrom != "" {
		from, err := biztime.StartOfDateUTC(query.DateFrom)
		if err != nil {
			return nil, errors.NewValidationError("invalid dateFrom", err.Error())
		}
		filter.DateFrom = &from
	}

	if query.DateTo != "" {
		to, err := biztime.EndOfDateUTC(query.DateTo)
		if err != nil {
			return nil, errors.NewValidationError("invalid dateTo", err.Error())
		}
		filter.DateTo = &to
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return dto.FromEntities(tickets), nil
}

package usecases

import (
	"context"

	"mesaayuda/internal/application/ticket/dto"
	"mesaayuda/internal/domain/ticket"
	vo "mesaayuda/internal/domain/ticket/valueobjects"
	"mesaayuda/internal/shared/biztime"
	"mesaayuda/internal/shared/errors"
	"mesaayuda/internal/shared/logger"
)

// nowFunc is replaceable in tests.
var nowFunc = biztime.NowUTC

type GetTicketStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute computes the rollup. "Cerrados" is total minus pendientes, so
// any stray status value outside the enum folds into the closed bucket.
// The day/week/month windows open at business-timezone boundaries.
func (uc *GetTicketStatsUseCase) Execute(ctx context.Context) (*dto.TicketStatsDTO, error) {
	now := nowFunc()

	pendientes, err := uc.ticketRepo.CountByStatus(ctx, vo.StatusPendiente.String())
	if err != nil {
		return nil, uc.statsError("count pending tickets", err)
	}

	total, err := uc.ticketRepo.Count(ctx)
	if err != nil {
		return nil, uc.statsError("count tickets", err)
	}

	hoy, err := uc.ticketRepo.CountCreatedSince(ctx, biztime.StartOfDayUTC(now))
	if err != nil {
		return nil, uc.statsError("count today's tickets", err)
	}

	semana, err := uc.ticketRepo.CountCreatedSince(ctx, biztime.StartOfWeekUTC(now))
	if err != nil {
		return nil, uc.statsError("count this week's tickets", err)
	}

	mes, err := uc.ticketRepo.CountCreatedSince(ctx, biztime.StartOfMonthUTC(now))
	if err != nil {
		return nil, uc.statsError("count this month's tickets", err)
	}

	return &dto.TicketStatsDTO{
		Pendientes:    pendientes,
		Cerrados:      total - pendientes,
		Total:         total,
		TicketsHoy:    hoy,
		TicketsSemana: semana,
		TicketsMes:    mes,
	}, nil
}

func (uc *GetTicketStatsUseCase) statsError(op string, err error) error {
	uc.logger.Errorw("failed to compute ticket stats", "op", op, "error", err)
	return errors.NewInternalError("failed to compute ticket stats")
}

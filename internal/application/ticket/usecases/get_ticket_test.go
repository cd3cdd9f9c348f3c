package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesaayuda/internal/domain/ticket"
	vo "mesaayuda/internal/domain/ticket/valueobjects"
	apperrors "mesaayuda/internal/shared/errors"
)

func TestGetTicketUseCase_Execute_Success(t *testing.T) {
	created := time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			assert.Equal(t, uint(7), ticketID)
			tk, err := ticket.ReconstructTicket(
				7, "Juan", "5m", "Printer down, Hardware, Replaced cartridge, HQ",
				"Printer down", "Hardware", "Replaced cartridge", "HQ",
				nil, vo.StatusCerrado, created, created,
			)
			require.NoError(t, err)
			return tk, nil
		},
	}

	useCase := NewGetTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetTicketQuery{TicketID: 7})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.ID)
	assert.Equal(t, "000007", result.Number)
	assert.Equal(t, "cerrado", result.Status)
	assert.Nil(t, result.AgentName)
}

func TestGetTicketUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		},
	}

	useCase := NewGetTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetTicketQuery{TicketID: 999})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGetTicketUseCase_Execute_RepositoryError(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, errors.New("connection refused")
		},
	}

	useCase := NewGetTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetTicketQuery{TicketID: 1})

	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

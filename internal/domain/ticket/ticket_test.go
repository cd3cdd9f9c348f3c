package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "mesaayuda/internal/domain/ticket/valueobjects"
)

func strPtr(s string) *string {
	return &s
}

func TestNewTicket(t *testing.T) {
	t.Run("derives intake fields and starts pendiente", func(t *testing.T) {
		tk, err := NewTicket("Juan Perez", "5m", "Printer down, Hardware, Replaced cartridge, HQ", strPtr("Maria"))
		require.NoError(t, err)

		assert.Equal(t, "Printer down", tk.Subject())
		assert.Equal(t, "Hardware", tk.TicketType())
		assert.Equal(t, "Replaced cartridge", tk.Solution())
		assert.Equal(t, "HQ", tk.Site())
		assert.Equal(t, vo.StatusPendiente, tk.Status())
		require.NotNil(t, tk.AgentName())
		assert.Equal(t, "Maria", *tk.AgentName())
		assert.False(t, tk.CreatedAt().IsZero())
	})

	t.Run("blank agent name becomes nil", func(t *testing.T) {
		tk, err := NewTicket("Juan Perez", "5m", "nota", strPtr("   "))
		require.NoError(t, err)
		assert.Nil(t, tk.AgentName())
	})

	t.Run("missing required fields", func(t *testing.T) {
		tests := []struct {
			name         string
			callerName   string
			callDuration string
			rawText      string
		}{
			{"missing caller name", "", "5m", "nota"},
			{"missing call duration", "Juan", "", "nota"},
			{"missing raw text", "Juan", "5m", ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewTicket(tt.callerName, tt.callDuration, tt.rawText, nil)
				assert.Error(t, err)
			})
		}
	})
}

func TestTicket_DerivedFieldsStableUnderUpdates(t *testing.T) {
	tk, err := NewTicket("Juan", "3m", "Correo caido, Software, Reinicio de servicio, Surco", nil)
	require.NoError(t, err)

	require.NoError(t, tk.ChangeStatus(vo.StatusCerrado))
	tk.SetAgentName(strPtr("Carlos"))
	tk.SetSolution("Se reinstalo el cliente")

	// Updates touch status/agent/solution only; the other derived fields
	// keep their creation-time values.
	assert.Equal(t, "Correo caido", tk.Subject())
	assert.Equal(t, "Software", tk.TicketType())
	assert.Equal(t, "Surco", tk.Site())
	assert.Equal(t, "Se reinstalo el cliente", tk.Solution())
	assert.Equal(t, vo.StatusCerrado, tk.Status())
}

func TestTicket_ChangeStatus(t *testing.T) {
	tk, err := NewTicket("Juan", "3m", "nota", nil)
	require.NoError(t, err)

	assert.Error(t, tk.ChangeStatus(vo.Status("abierto")))
	assert.Equal(t, vo.StatusPendiente, tk.Status())

	require.NoError(t, tk.ChangeStatus(vo.StatusCerrado))
	assert.Equal(t, vo.StatusCerrado, tk.Status())
}

func TestTicket_Number(t *testing.T) {
	tk, err := NewTicket("Juan", "3m", "nota", nil)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(7))

	assert.Equal(t, "000007", tk.Number())
}

func TestTicket_SetID(t *testing.T) {
	tk, err := NewTicket("Juan", "3m", "nota", nil)
	require.NoError(t, err)

	assert.Error(t, tk.SetID(0))
	require.NoError(t, tk.SetID(12))
	assert.Error(t, tk.SetID(13))
}

func TestReconstructTicket(t *testing.T) {
	tk, err := NewTicket("Juan", "3m", "a, b, c, d", nil)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(4))

	rebuilt, err := ReconstructTicket(
		tk.ID(), tk.CallerName(), tk.CallDuration(), tk.RawText(),
		tk.Subject(), tk.TicketType(), tk.Solution(), tk.Site(),
		tk.AgentName(), tk.Status(), tk.CreatedAt(), tk.UpdatedAt(),
	)
	require.NoError(t, err)
	assert.Equal(t, tk.ID(), rebuilt.ID())
	assert.Equal(t, tk.Subject(), rebuilt.Subject())

	_, err = ReconstructTicket(0, "x", "x", "x", "", "", "", "", nil, vo.StatusPendiente, tk.CreatedAt(), tk.UpdatedAt())
	assert.Error(t, err)

	_, err = ReconstructTicket(1, "x", "x", "x", "", "", "", "", nil, vo.Status("otro"), tk.CreatedAt(), tk.UpdatedAt())
	assert.Error(t, err)
}

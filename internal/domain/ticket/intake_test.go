package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntake(t *testing.T) {
	tests := []struct {
		name     string
		rawText  string
		expected IntakeFields
	}{
		{
			name:    "four segments map in order",
			rawText: "Printer down, Hardware, Replaced cartridge, HQ",
			expected: IntakeFields{
				Subject:    "Printer down",
				TicketType: "Hardware",
				Solution:   "Replaced cartridge",
				Site:       "HQ",
			},
		},
		{
			name:    "missing segments default to empty",
			rawText: "VPN no conecta, Red",
			expected: IntakeFields{
				Subject:    "VPN no conecta",
				TicketType: "Red",
				Solution:   "",
				Site:       "",
			},
		},
		{
			name:    "single segment",
			rawText: "Sin acceso al correo",
			expected: IntakeFields{
				Subject: "Sin acceso al correo",
			},
		},
		{
			name:    "extra segments beyond the fourth are ignored",
			rawText: "a, b, c, d, e, f",
			expected: IntakeFields{
				Subject:    "a",
				TicketType: "b",
				Solution:   "c",
				Site:       "d",
			},
		},
		{
			name:    "segments are trimmed",
			rawText: "  subject  ,  type  ,  solution  ,  site  ",
			expected: IntakeFields{
				Subject:    "subject",
				TicketType: "type",
				Solution:   "solution",
				Site:       "site",
			},
		},
		{
			name:    "empty segments stay empty",
			rawText: ",,,",
			expected: IntakeFields{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseIntake(tt.rawText))
		})
	}
}

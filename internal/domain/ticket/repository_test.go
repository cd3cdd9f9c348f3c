package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketFilter_SearchID(t *testing.T) {
	tests := []struct {
		search string
		wantID uint
		wantOK bool
	}{
		{"7", 7, true},
		{"007", 7, true},
		{"0", 0, false},
		{"000", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"juan", 0, false},
		{"7a", 0, false},
		{"-5", 0, false},
		{" 42 ", 42, true},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			id, ok := TicketFilter{Search: tt.search}.SearchID()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestTicketFilter_SortAscending(t *testing.T) {
	assert.True(t, TicketFilter{SortOrder: "asc"}.SortAscending())
	assert.False(t, TicketFilter{SortOrder: "desc"}.SortAscending())
	assert.False(t, TicketFilter{SortOrder: "ASC"}.SortAscending())
	assert.False(t, TicketFilter{}.SortAscending())
}

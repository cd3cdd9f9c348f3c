package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"mesaayuda/internal/application/ticket/usecases"
	"mesaayuda/internal/shared/errors"
)

type CreateTicketRequest struct {
	CallerName   string  `json:"caller_name" binding:"required,max=200"`
	CallDuration string  `json:"call_duration" binding:"required,max=50"`
	RawText      string  `json:"raw_text" binding:"required,max=5000"`
	AgentName    *string `json:"agent_name,omitempty"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		CallerName:   r.CallerName,
		CallDuration: r.CallDuration,
		RawText:      r.RawText,
		AgentName:    r.AgentName,
	}
}

type UpdateTicketRequest struct {
	Status    *string `json:"status,omitempty" validate:"omitempty,max=20"`
	AgentName *string `json:"agent_name,omitempty" validate:"omitempty,max=255"`
	Solution  *string `json:"solution,omitempty" validate:"omitempty,max=5000"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:  ticketID,
		Status:    r.Status,
		AgentName: r.AgentName,
		Solution:  r.Solution,
	}
}

type ListTicketsRequest struct {
	Status    string
	Search    string
	SortOrder string
	DateFrom  string
	DateTo    string
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:    r.Status,
		Search:    r.Search,
		SortOrder: r.SortOrder,
		DateFrom:  r.DateFrom,
		DateTo:    r.DateTo,
	}
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	return &ListTicketsRequest{
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		SortOrder: c.Query("sort"),
		DateFrom:  c.Query("dateFrom"),
		DateTo:    c.Query("dateTo"),
	}
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}

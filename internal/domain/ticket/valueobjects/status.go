package valueobjects

import "fmt"

type Status string

const (
	StatusPendiente Status = "pendiente"
	StatusCerrado   Status = "cerrado"
)

// StatusAll is the list-filter sentinel meaning "no status filter".
// It is never a valid stored status.
const StatusAll = "all"

var validStatuses = map[Status]bool{
	StatusPendiente: true,
	StatusCerrado:   true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsPendiente() bool {
	return s == StatusPendiente
}

func (s Status) IsCerrado() bool {
	return s == StatusCerrado
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return st, nil
}

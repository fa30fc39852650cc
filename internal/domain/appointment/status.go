package appointment

import (
	"strings"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
	StatusCompleted Status = "completed"
)

// transitions lists, per state, the states it may move to.
var transitions = map[Status][]Status{
	StatusScheduled: {StatusConfirmed, StatusCanceled, StatusCompleted},
	StatusConfirmed: {StatusCompleted, StatusCanceled},
	StatusCanceled:  nil,
	StatusCompleted: nil,
}

func InitialStatus() Status {
	return StatusScheduled
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := transitions[st]; !ok {
		return "", httperr.ErrValidation(
			"invalid_status",
			"Status inválido.",
			"status deve ser um de: scheduled confirmed canceled completed",
		)
	}
	return st, nil
}

func (s Status) IsTerminal() bool {
	return s == StatusCanceled || s == StatusCompleted
}

// Active statuses still occupy a slot on the agenda.
func (s Status) IsActive() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

// ===============================
// Validations
// ===============================

// CanTransition reports whether from may move to to. Staying in the same
// status is always allowed and treated as a no-op by Transition.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrValidation(
		"invalid_transition",
		"Não é possível alterar o status de "+string(from)+" para "+string(to)+".",
	)
}

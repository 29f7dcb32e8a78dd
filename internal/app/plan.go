package app

import "time"

type PlanRequest struct {
	PersonID string
	// Now pins the clock for tier derivation and timestamps. Nil means
	// time.Now().UTC().
	Now *time.Time
	// DryRun computes a result without persisting placements.
	DryRun bool
}

func NewPlanRequest(personID string) PlanRequest {
	return PlanRequest{PersonID: personID}
}

// PlanResponse is the SchedulingResult surfaced to the caller. Immutable
// after return.
type PlanResponse struct {
	GeneratedAt  time.Time
	PersonID     string
	DryRun       bool
	Scheduled    []Placement
	Unscheduled  []UnplacedItem
	Warnings     []string
	BacklogCount int
	PlacedMin    int
}

type PlanErrorCode string

const (
	PlanErrUnknownPerson PlanErrorCode = "UNKNOWN_PERSON"
	PlanErrEmptyBacklog  PlanErrorCode = "EMPTY_BACKLOG"
	PlanErrNoRoutine     PlanErrorCode = "NO_ROUTINE"
	PlanErrBadRoutine    PlanErrorCode = "MALFORMED_ROUTINE"
	PlanErrInternal      PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Package lifecycle validates driver status transitions and computes the
// exact payload submitted to the record store. Pure logic, no I/O.
package lifecycle

import (
	"fmt"

	"github.com/Amaspm/driver-management/internal/domain"
)

// InvalidTransitionError reports a (current, target) pair outside the
// allowed-transition table.
type InvalidTransitionError struct {
	From domain.Status
	To   domain.Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transition %s -> %s is not allowed", e.From, e.To)
}

// allowedTargets lists the admissible target statuses per current status.
// A pending application is a decision point: it can only be approved or
// rejected. An active driver cannot be sent back to training. Everything
// else is open to the generic editor.
var allowedTargets = map[domain.Status][]domain.Status{
	domain.StatusPending:   {domain.StatusActive, domain.StatusRejected},
	domain.StatusTraining:  {domain.StatusActive, domain.StatusPending, domain.StatusTraining, domain.StatusSuspended, domain.StatusRejected},
	domain.StatusActive:    {domain.StatusActive, domain.StatusPending, domain.StatusSuspended, domain.StatusRejected},
	domain.StatusSuspended: {domain.StatusActive, domain.StatusPending, domain.StatusTraining, domain.StatusSuspended, domain.StatusRejected},
	domain.StatusRejected:  {domain.StatusActive, domain.StatusPending, domain.StatusTraining, domain.StatusSuspended, domain.StatusRejected},
	// Legacy rows; same policy as suspended.
	domain.StatusInactive: {domain.StatusActive, domain.StatusPending, domain.StatusTraining, domain.StatusSuspended, domain.StatusRejected},
}

// Allowed reports whether target is an admissible transition from current.
func Allowed(current, target domain.Status) bool {
	for _, t := range allowedTargets[current] {
		if t == target {
			return true
		}
	}
	return false
}

// Input is an administrator's requested status change for one driver.
// Category, Documents and Reason matter only when Target is rejected.
type Input struct {
	DriverID  int64
	Target    domain.Status
	Category  domain.RejectionCategory
	Documents []domain.DocumentKind
	Reason    string
}

// Transition is the validated PATCH payload for the record store.
// Reason is nil for every non-rejected target so a prior rejection reason is
// cleared on the way out of rejected.
type Transition struct {
	DriverID int64         `json:"-"`
	Status   domain.Status `json:"status"`
	Reason   *string       `json:"alasan_penolakan"`
}

// Evaluate validates the requested change against the current status and
// builds the transition payload. It never performs I/O; callers submit the
// result through the record-store client only when err is nil.
func Evaluate(current domain.Status, in Input) (Transition, error) {
	if !in.Target.Valid() || !Allowed(current, in.Target) {
		return Transition{}, &InvalidTransitionError{From: current, To: in.Target}
	}

	t := Transition{DriverID: in.DriverID, Status: in.Target}
	if in.Target != domain.StatusRejected {
		return t, nil
	}

	reason, err := BuildRejectionReason(in.Category, in.Documents, in.Reason)
	if err != nil {
		return Transition{}, err
	}
	t.Reason = &reason
	return t, nil
}

package promotion

// Status tracks the lifecycle of a code application attempt for one
// cart session
type Status string

const (
	StatusNone              Status = "NONE"
	StatusPendingValidation Status = "PENDING_VALIDATION"
	StatusApplied           Status = "APPLIED"
	StatusRejected          Status = "REJECTED"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusNone, StatusPendingValidation, StatusApplied, StatusRejected:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target.
// APPLIED re-enters PENDING_VALIDATION when a new code is submitted;
// a rejection never clears a previously applied promotion, so REJECTED
// may move back to APPLIED as well as to PENDING_VALIDATION.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusNone:
		return target == StatusPendingValidation
	case StatusPendingValidation:
		return target == StatusApplied || target == StatusRejected
	case StatusApplied:
		return target == StatusPendingValidation || target == StatusNone
	case StatusRejected:
		return target == StatusPendingValidation || target == StatusApplied || target == StatusNone
	}
	return false
}

package service

import "errors"

// Validation sentinels map to 400, ErrForbidden to 403, ErrNotFound to
// 404 and the business-rule sentinels to 409 at the HTTP layer.
var (
	ErrIDRequired    = errors.New("id is required")
	ErrActorRequired = errors.New("acting user id is required")
	ErrInvalidInput  = errors.New("invalid input")
	ErrReaderNil     = errors.New("reader is nil")

	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("action not allowed for this user")

	ErrAnimalUnavailable   = errors.New("animal is not available for this operation")
	ErrRequestAlreadyOpen  = errors.New("an open ownership request already exists")
	ErrIllegalTransition   = errors.New("illegal status transition")
	ErrNoApprovedRequest   = errors.New("no approved ownership request for this animal")
	ErrSlotUnavailable     = errors.New("slot is not available")
	ErrSlotWrongShelter    = errors.New("slot does not belong to the animal's shelter")
	ErrSlotTooSoon         = errors.New("visits must be booked at least 24 hours in advance")
	ErrSlotOutsideHours    = errors.New("slot falls outside shelter opening hours")
	ErrSlotBeforeLastVisit = errors.New("slot starts before the animal's last completed visit ended")
	ErrActivityNotActive   = errors.New("activity is not active")
	ErrActivityStarted     = errors.New("activity has already started")
	ErrActivityNotStarted  = errors.New("activity has not started yet")
	ErrFosteringNotActive  = errors.New("fostering is not active")
)

// IsConflict reports whether the error is one of the business-rule
// rejections surfaced as HTTP 409.
func IsConflict(err error) bool {
	for _, target := range []error{
		ErrAnimalUnavailable,
		ErrRequestAlreadyOpen,
		ErrIllegalTransition,
		ErrNoApprovedRequest,
		ErrSlotUnavailable,
		ErrSlotWrongShelter,
		ErrSlotTooSoon,
		ErrSlotOutsideHours,
		ErrSlotBeforeLastVisit,
		ErrActivityNotActive,
		ErrActivityStarted,
		ErrActivityNotStarted,
		ErrFosteringNotActive,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidDeliveryMethod = errors.New("invalid delivery method")
	ErrInvalidDate           = errors.New("invalid date, expected YYYY-MM-DD")
	ErrFieldTooLong          = errors.New("field too long")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidWindow         = errors.New("invalid sales window")
	ErrTransitionNotAllowed  = errors.New("status transition not allowed")

	ErrSessionRequired = errors.New("session required")
	ErrAdminRequired   = errors.New("admin access required")

	ErrOrderNotFound    = errors.New("order not found")
	ErrMutationInFlight = errors.New("another change of this order is in progress")
	ErrAttachmentUpload = errors.New("attachment upload failed")
	ErrReloadFailed     = errors.New("order saved but reload failed")
)

// IsValidation reports whether err rejects the caller's input. Most of these
// are raised before any storage call. ErrTransitionNotAllowed is raised after
// the current status is read, and a money overflow may surface from storage.
// None of them change stored state.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrMissingRequiredFields,
		ErrInvalidOrderID,
		ErrInvalidStatus,
		ErrInvalidDeliveryMethod,
		ErrInvalidDate,
		ErrFieldTooLong,
		ErrInvalidAmount,
		ErrInvalidWindow,
		ErrTransitionNotAllowed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

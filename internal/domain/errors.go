package domain

// Domain error taxonomy. Handlers map these onto HTTP statuses:
// NotFoundError -> 404, BookingError and StateError -> 400,
// ForbiddenError -> 403, anything else -> 500.

// NotFoundError marks a missing entity. It also covers ownership
// mismatches that the domain hides as absence (self-booking, viewing a
// foreign booking).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFound(message string) error {
	return &NotFoundError{Message: message}
}

// BookingError marks a business-rule violation on a booking or comment.
type BookingError struct {
	Message string
}

func (e *BookingError) Error() string { return e.Message }

func NewBookingError(message string) error {
	return &BookingError{Message: message}
}

// ForbiddenError marks an action the acting user is not allowed to take.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

func NewForbidden(message string) error {
	return &ForbiddenError{Message: message}
}

// StateError marks an unrecognized booking state filter keyword.
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }

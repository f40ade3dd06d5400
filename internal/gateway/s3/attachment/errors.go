package attachment

import "errors"

var (
	ErrForeignURL   = errors.New("attachment url does not belong to the bucket")
	ErrEmptyPayload = errors.New("attachment is empty")
)

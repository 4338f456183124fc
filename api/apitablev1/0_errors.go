package apitablev1

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest    = errors.New("bad request")
	ErrEntryNotFound = errors.New("entry not found")
)

func badRequest(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, a...))
}

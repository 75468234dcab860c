package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when an identifier is not well-formed for the
// backing store. It is always returned before the store is touched.
var ErrInvalidID = errors.New("invalid identifier")

func parseUUID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return parsed, nil
}

package timer

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMode  = errors.New("unknown mode")
	ErrUnknownColor = errors.New("unknown color")
)

// PersistError reports a failed write of one persisted key.
type PersistError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

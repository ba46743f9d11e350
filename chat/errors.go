package chat

import "errors"

// ErrInvalidID rejects an action before any request is issued.
var ErrInvalidID = errors.New("invalid identifier")

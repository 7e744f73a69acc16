package chat

import "errors"

var (
	ErrEmptyQuery = errors.New("query must not be empty")
)

package table

import "errors"

var (
	// ErrEmptyInput is returned when the uploaded text contains no non-blank lines
	ErrEmptyInput = errors.New("input contains no data")

	// ErrNoHeaders is returned when the header line yields no columns
	ErrNoHeaders = errors.New("input has no header row")
)

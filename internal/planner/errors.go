package planner

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoMatch      = errors.New("no plannable work item found")
)

package definition

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse state machine definition")
	ErrParsingCancelled  = errors.New("definition parsing cancelled")
	ErrReadingDefinition = errors.New("failed to read state machine definition")
	ErrUnknownDecider    = errors.New("unknown decider")
	ErrInvalidNext       = errors.New("invalid next: expected a state name, a branch or a list of branches")
)

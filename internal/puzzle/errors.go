package puzzle

import "fmt"

// A Kind names the category of a parse or validation failure, in the
// style of the teacher package's Error taxonomy (scope/condition
// codes rather than ad hoc strings), adapted here to the smaller
// vocabulary a text-format board parser actually needs.
type Kind int

const (
	UnknownKind Kind = iota
	EmptyPuzzle
	MissingExit
	MalformedExit
	EmptyBoard
	MalformedBoard
	MissingGoalVehicle
	InvalidBoardData
)

func (k Kind) String() string {
	switch k {
	case EmptyPuzzle:
		return "EmptyPuzzle"
	case MissingExit:
		return "MissingExit"
	case MalformedExit:
		return "MalformedExit"
	case EmptyBoard:
		return "EmptyBoard"
	case MalformedBoard:
		return "MalformedBoard"
	case MissingGoalVehicle:
		return "MissingGoalVehicle"
	case InvalidBoardData:
		return "InvalidBoardData"
	default:
		return "UnknownKind"
	}
}

// Error describes a problem with a puzzle's text or its parsed
// structure. It carries a Kind so callers can switch on the failure
// category instead of matching error strings, and a free-form Detail
// for the human-readable part of the message.
type Error struct {
	Kind   Kind
	Detail string
}

func (e Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind.String(), e.Detail)
}

func parseError(kind Kind, format string, args ...interface{}) error {
	return Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

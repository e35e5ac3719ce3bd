package tiled

// ErrorCode classifies fatal map decoding failures.
type ErrorCode int

const (
	CodeInvalidJSON ErrorCode = iota + 1
	CodeInvalidFormat
	CodeNoOrientation
)

// Error is returned by Decode when a document cannot be used as a Tiled map.
// Compare with errors.Is against the exported sentinels.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return "tiled: " + e.Message
}

var (
	ErrInvalidJSON   = &Error{Code: CodeInvalidJSON, Message: "invalid json"}
	ErrInvalidFormat = &Error{Code: CodeInvalidFormat, Message: "invalid json: expected an object at the top-most level"}
	ErrNoOrientation = &Error{Code: CodeNoOrientation, Message: "no orientation: all Tiled tile maps must have an orientation"}
)

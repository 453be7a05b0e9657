package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK              Code = "OK"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"

	// Domain codes

	// CodeInvalidDiceExpression indicates dice notation that does not match
	// the <count>d<sides>[+|-<modifier>] grammar.
	CodeInvalidDiceExpression Code = "INVALID_DICE_EXPRESSION"
	// CodeNotStarted indicates a director operation attempted before Start.
	CodeNotStarted Code = "NOT_STARTED"
	// CodeContentFormat indicates malformed campaign content.
	CodeContentFormat Code = "CONTENT_FORMAT"
	// CodeSnapshotFormat indicates a malformed save document.
	CodeSnapshotFormat Code = "SNAPSHOT_FORMAT"
	// CodeIO indicates a filesystem access failure.
	CodeIO Code = "IO_ERROR"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

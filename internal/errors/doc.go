// Package errors provides structured error handling for dungeonmaster.
//
// Errors carry a Code, a message, an optional cause, and optional metadata.
// Leaf components (dice roller, story loader, snapshot repositories) raise
// coded errors that propagate unhandled through the director to whatever
// surface drives it; the CLI is responsible for presenting them.
//
// Creating errors:
//
//	err := errors.ContentFormat("scene is missing an id")
//	err := errors.InvalidDiceExpressionf("invalid dice expression: %q", notation)
//
// Wrapping errors:
//
//	if err := os.WriteFile(path, data, 0o600); err != nil {
//	    return errors.WrapWithCodef(err, errors.CodeIO, "failed to write save file %s", path)
//	}
//
// Checking errors:
//
//	if errors.IsNotStarted(err) {
//	    // campaign has not been started yet
//	}
package errors

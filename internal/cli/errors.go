package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/uelog/uelog/internal/domain"
	"github.com/uelog/uelog/internal/output"
	"github.com/uelog/uelog/internal/search"
	"github.com/uelog/uelog/internal/session"
)

// outputErrorCommon normalizes error emission across commands, respecting
// ndjson vs text formats so scripted consumers always get a coded failure
func outputErrorCommon(globals *Globals, code, message string) error {
	if globals != nil && globals.Format == "ndjson" {
		output.NewNDJSONWriter(globals.Stdout).WriteError(code, message)
	} else if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
	}
	return errors.New(message)
}

// errorCode maps core errors onto the stable command-layer codes
func errorCode(err error) string {
	switch {
	case errors.Is(err, session.ErrNoFileOpen):
		return domain.ErrCodeNoFileOpen
	case errors.Is(err, search.ErrInvalidPattern):
		return domain.ErrCodePattern
	case errors.Is(err, os.ErrNotExist):
		return domain.ErrCodeNotFound
	default:
		return domain.ErrCodeIO
	}
}

// outputError emits an error with its mapped code
func outputError(globals *Globals, err error) error {
	return outputErrorCommon(globals, errorCode(err), err.Error())
}

// Package errs holds the fault tags shared across the repo and the mapping
// from a tagged error to what a client sees.
package errs

import (
	"net/http"

	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

const (
	DataUnavailable ftag.Kind = "data_unavailable"
	InvalidNote     ftag.Kind = "invalid_note"
	InvalidArgument           = ftag.InvalidArgument
	NotFound                  = ftag.NotFound
)

func Is(err error, kind ftag.Kind) bool {
	return err != nil && ftag.Get(err) == kind
}

func StatusCode(err error) int {
	switch ftag.Get(err) {
	case DataUnavailable:
		return http.StatusServiceUnavailable
	case InvalidArgument, InvalidNote:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message prefers the user-facing description and falls back to the
// error text.
func Message(err error) string {
	if issue := fmsg.GetIssue(err); issue != "" {
		return issue
	}
	return err.Error()
}

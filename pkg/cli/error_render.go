package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jlrickert/glue/pkg/fnv"
	"github.com/jlrickert/glue/pkg/glue"
	"github.com/jlrickert/glue/pkg/sitemap"
)

// userError carries the message shown to the user while keeping the
// underlying error for errors.Is checks.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }

func (e *userError) Unwrap() error { return e.err }

func renderUserError(err error, deps *Deps) string {
	if err == nil {
		return ""
	}

	var widthErr *fnv.InvalidWidthError
	if errors.As(err, &widthErr) {
		return widthErr.Error()
	}

	var cfgErr *glue.InvalidConfigError
	if errors.As(err, &cfgErr) {
		if isDebugLogLevel(deps) {
			return err.Error()
		}
		return cfgErr.Error()
	}

	var routeErr *sitemap.RouteError
	if errors.As(err, &routeErr) {
		return fmt.Sprintf("routes file is invalid: %s", routeErr.Error())
	}

	if errors.Is(err, glue.ErrNoInput) && !isDebugLogLevel(deps) {
		msg := err.Error()
		if i := strings.LastIndex(msg, ": "+glue.ErrNoInput.Error()); i > 0 {
			return msg[:i]
		}
		return msg
	}

	return err.Error()
}

func isDebugLogLevel(deps *Deps) bool {
	if deps == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(deps.LogLevel), "debug")
}

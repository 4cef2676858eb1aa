package glue

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jlrickert/glue/pkg/timeutil"
)

type NowOptions struct {
	// Seconds prints whole seconds instead of milliseconds.
	Seconds bool
	// Human prints the ctime layout instead of an epoch number.
	Human bool
}

// Now prints the runtime clock's current epoch time.
func (g *Glue) Now(ctx context.Context, opts NowOptions) (string, error) {
	clk := g.Runtime.Clock()
	if opts.Human {
		return timeutil.FormatTimestamp(timeutil.NowSeconds(clk)) + "\n", nil
	}
	if opts.Seconds {
		return strconv.FormatInt(timeutil.NowSeconds(clk), 10) + "\n", nil
	}
	return strconv.FormatInt(timeutil.NowMillis(clk), 10) + "\n", nil
}

type FormatTimeOptions struct {
	// Value is an epoch timestamp. Fractional seconds are accepted.
	Value string
	// Millis treats Value as milliseconds.
	Millis bool
}

// FormatTime renders an epoch timestamp in the ctime layout.
func (g *Glue) FormatTime(ctx context.Context, opts FormatTimeOptions) (string, error) {
	raw := strings.TrimSpace(opts.Value)
	if raw == "" {
		return "", fmt.Errorf("no timestamp given: %w", ErrNoInput)
	}
	ts, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", &InputError{Value: opts.Value, Err: err}
	}
	if opts.Millis {
		return timeutil.FormatMillis(int64(ts)) + "\n", nil
	}
	return timeutil.FormatTimestamp(timeutil.SecondsSince(ts)) + "\n", nil
}

type ConvertTimeOptions struct {
	// Value is an epoch timestamp in (possibly fractional) seconds.
	Value string
	// Millis converts to milliseconds instead of truncating to seconds.
	Millis bool
}

// ConvertTime normalises a fractional epoch timestamp to integer seconds or
// milliseconds.
func (g *Glue) ConvertTime(ctx context.Context, opts ConvertTimeOptions) (string, error) {
	raw := strings.TrimSpace(opts.Value)
	if raw == "" {
		return "", fmt.Errorf("no timestamp given: %w", ErrNoInput)
	}
	ts, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", &InputError{Value: opts.Value, Err: err}
	}
	if opts.Millis {
		return strconv.FormatInt(timeutil.MillisSince(ts), 10) + "\n", nil
	}
	return strconv.FormatInt(timeutil.SecondsSince(ts), 10) + "\n", nil
}

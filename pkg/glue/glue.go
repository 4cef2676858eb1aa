// Package glue is the application layer behind the glue command. Each
// operation takes an options struct and returns the text to print.
package glue

import (
	"context"
	"fmt"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/glue/pkg/vericode"
)

type Glue struct {
	// Runtime carries process-level dependencies.
	Runtime *toolkit.Runtime

	Config    *Config
	Vericodes *vericode.Generator
}

type Options struct {
	// ConfigPath is an explicit config file. Empty uses the default location.
	ConfigPath string
	Runtime    *toolkit.Runtime

	// Config skips config loading when set.
	Config *Config
	// Source overrides the random source used for codes.
	Source vericode.Source
}

func New(ctx context.Context, opts Options) (*Glue, error) {
	rt := opts.Runtime
	if rt == nil {
		var err error
		rt, err = toolkit.NewRuntime()
		if err != nil {
			return nil, fmt.Errorf("unable to create runtime: %w", err)
		}
	}
	if err := rt.Validate(); err != nil {
		return nil, fmt.Errorf("invalid runtime: %w", err)
	}

	cfg := opts.Config
	if cfg == nil {
		var err error
		cfg, err = ReadConfig(ctx, rt, opts.ConfigPath)
		if err != nil {
			return nil, err
		}
	}

	return &Glue{
		Runtime:   rt,
		Config:    cfg,
		Vericodes: vericode.New(opts.Source),
	}, nil
}

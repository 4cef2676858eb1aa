package cli_test

import (
	"context"
	"embed"
	"testing"

	tu "github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/glue/pkg/cli"
	"github.com/stretchr/testify/require"
)

//go:embed all:data/**
var testdata embed.FS

func NewSandbox(t *testing.T, opts ...tu.Option) *tu.Sandbox {
	return tu.NewSandbox(t, &tu.Options{
		Data: testdata,
		Home: "/home/testuser",
		User: "testuser",
	}, opts...)
}

// NewProjectSandbox seeds the home directory with the project fixture and
// points XDG_CONFIG_HOME at its config.
func NewProjectSandbox(t *testing.T) *tu.Sandbox {
	t.Helper()
	sb := NewSandbox(t, tu.WithFixture("project", "~"))
	require.NoError(t, sb.Runtime().Set("XDG_CONFIG_HOME", "/home/testuser/.config"))
	return sb
}

func NewProcess(t *testing.T, isTTY bool, args ...string) *tu.Process {
	return tu.NewProcess(func(ctx context.Context, rt *toolkit.Runtime) (int, error) {
		return cli.Run(ctx, rt, args)
	}, isTTY)
}

package glue_test

import (
	"embed"
	"path/filepath"
	"testing"

	"github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/jlrickert/glue/pkg/glue"
	"github.com/stretchr/testify/require"
)

//go:embed all:data/**
var testdata embed.FS

func NewSandbox(t *testing.T, opts ...sandbox.Option) *sandbox.Sandbox {
	return sandbox.NewSandbox(t,
		&sandbox.Options{
			Data: testdata,
			Home: filepath.FromSlash("/home/testuser"),
			User: "testuser",
		}, opts...)
}

// newProject returns a sandbox seeded with the project fixture and a Glue
// reading the fixture's user config.
func newProject(t *testing.T) (*sandbox.Sandbox, *glue.Glue) {
	t.Helper()
	sb := NewSandbox(t, sandbox.WithFixture("project", "~"))
	require.NoError(t, sb.Runtime().Set("XDG_CONFIG_HOME", "/home/testuser/.config"))

	g, err := glue.New(sb.Context(), glue.Options{Runtime: sb.Runtime()})
	require.NoError(t, err)
	return sb, g
}

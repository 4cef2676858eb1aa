package glue_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/glue/pkg/fnv"
	"github.com/jlrickert/glue/pkg/glue"
	"github.com/jlrickert/glue/pkg/pack"
	"github.com/jlrickert/glue/pkg/sitemap"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fixedSource int

func (s fixedSource) IntN(int) int { return int(s) }

func TestNew_UsesDefaultsWithoutUserConfig(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t)
	require.NoError(t, sb.Runtime().Set("XDG_CONFIG_HOME", "/home/testuser/.config"))

	g, err := glue.New(sb.Context(), glue.Options{Runtime: sb.Runtime()})
	require.NoError(t, err)
	require.Equal(t, glue.DefaultConfig(), g.Config)
	require.Equal(t, fnv.Width64, g.Config.HashWidth())
}

func TestNew_ReadsUserConfig(t *testing.T) {
	t.Parallel()

	_, g := newProject(t)
	require.Equal(t, fnv.Width128, g.Config.HashWidth())
	require.Equal(t, "darkly", g.Config.Sitemap.Theme)
	require.Equal(t, "/backoffice/", g.Config.Sitemap.AdminLink)
	require.Equal(t, "~/app/routes.yaml", g.Config.Sitemap.Routes)
}

func TestNew_ExplicitConfig(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t)
	_, err := glue.New(sb.Context(), glue.Options{Runtime: sb.Runtime(), ConfigPath: "~/missing.yaml"})
	require.Error(t, err)

	sb.MustWriteFile("~/glue.yaml", []byte("hash:\n  width: 100\n"), 0o644)
	_, err = glue.New(sb.Context(), glue.Options{Runtime: sb.Runtime(), ConfigPath: "~/glue.yaml"})
	require.True(t, glue.IsInvalidConfig(err))
	require.ErrorContains(t, err, "hash.width")

	sb.MustWriteFile("~/glue.yaml", []byte("hash: [\n"), 0o644)
	_, err = glue.New(sb.Context(), glue.Options{Runtime: sb.Runtime(), ConfigPath: "~/glue.yaml"})
	require.ErrorIs(t, err, glue.ErrInvalidConfig)

	sb.MustWriteFile("~/glue.yaml", []byte("hash:\n  width: 256\n"), 0o644)
	g, err := glue.New(sb.Context(), glue.Options{Runtime: sb.Runtime(), ConfigPath: "~/glue.yaml"})
	require.NoError(t, err)
	require.Equal(t, fnv.Width256, g.Config.HashWidth())
	require.Equal(t, sitemap.DefaultTheme, g.Config.Sitemap.Theme)
}

func TestHash(t *testing.T) {
	t.Parallel()

	sb, g := newProject(t)
	ctx := sb.Context()

	// configured width is 128
	out, err := g.Hash(ctx, glue.HashOptions{Values: []string{"foobar"}})
	require.NoError(t, err)
	require.Equal(t, "7896bfea9c3c64bf6dc58353d2c293aa\n", out)

	out, err = g.Hash(ctx, glue.HashOptions{Values: []string{"a", "foobar"}, Width: 32})
	require.NoError(t, err)
	require.Equal(t, "050c5d7e\n31f0b262\n", out)

	out, err = g.Hash(ctx, glue.HashOptions{Values: []string{"foobar"}, Width: 32, Decimal: true})
	require.NoError(t, err)
	require.Equal(t, "837857890\n", out)

	_, err = g.Hash(ctx, glue.HashOptions{Values: []string{"x"}, Width: 48})
	require.True(t, fnv.IsInvalidArgument(err))
}

func TestHash_Stream(t *testing.T) {
	t.Parallel()

	sb, g := newProject(t)
	ctx := sb.Context()

	_, err := g.Hash(ctx, glue.HashOptions{})
	require.ErrorIs(t, err, glue.ErrNoInput)

	_, err = g.Hash(ctx, glue.HashOptions{Stream: &toolkit.Stream{In: strings.NewReader("a")}})
	require.ErrorIs(t, err, glue.ErrNoInput)

	out, err := g.Hash(ctx, glue.HashOptions{
		Stream: &toolkit.Stream{In: strings.NewReader("a"), IsPiped: true},
		Width:  64,
	})
	require.NoError(t, err)
	require.Equal(t, "af63bd4c8601b7be\n", out)
}

func TestHashFiles(t *testing.T) {
	t.Parallel()

	sb, g := newProject(t)
	ctx := sb.Context()
	sb.MustWriteFile("~/app/a.txt", []byte("a"), 0o644)

	out, err := g.HashFiles(ctx, glue.HashFilesOptions{
		Paths:  []string{"~/app/words.txt", "~/app/a.txt", "-"},
		Stream: &toolkit.Stream{In: strings.NewReader("foobar"), IsPiped: true},
		Width:  32,
		Jobs:   2,
	})
	require.NoError(t, err)
	require.Equal(t,
		"31f0b262  ~/app/words.txt\n"+
			"050c5d7e  ~/app/a.txt\n"+
			"31f0b262  -\n", out)

	out, err = g.HashFiles(ctx, glue.HashFilesOptions{
		Paths:  []string{"-", "~/app/a.txt", "-"},
		Stream: &toolkit.Stream{In: strings.NewReader("foobar"), IsPiped: true},
		Width:  32,
		Jobs:   4,
	})
	require.NoError(t, err)
	require.Equal(t,
		"31f0b262  -\n"+
			"050c5d7e  ~/app/a.txt\n"+
			"31f0b262  -\n", out)

	_, err = g.HashFiles(ctx, glue.HashFilesOptions{Paths: []string{"-"}})
	require.ErrorIs(t, err, glue.ErrNoInput)

	_, err = g.HashFiles(ctx, glue.HashFilesOptions{Paths: []string{"~/app/words.txt", "~/app/nope.txt"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "nope.txt")

	_, err = g.HashFiles(ctx, glue.HashFilesOptions{})
	require.ErrorIs(t, err, glue.ErrNoInput)
}

func TestParseValues(t *testing.T) {
	t.Parallel()

	sb, g := newProject(t)
	ctx := sb.Context()

	tests := []struct {
		name string
		run  func() (string, error)
		want string
	}{
		{"int", func() (string, error) { return g.ParseInt(ctx, glue.ParseIntOptions{Value: " -42 "}) }, "-42\n"},
		{"int default", func() (string, error) { return g.ParseInt(ctx, glue.ParseIntOptions{Value: "4x", Default: 7}) }, "7\n"},
		{"bool word", func() (string, error) { return g.ParseBool(ctx, glue.ParseBoolOptions{Value: "Claro"}) }, "true\n"},
		{"bool digits", func() (string, error) { return g.ParseBool(ctx, glue.ParseBoolOptions{Value: "000"}) }, "false\n"},
		{"bool default", func() (string, error) { return g.ParseBool(ctx, glue.ParseBoolOptions{Default: true}) }, "true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPackUnpack(t *testing.T) {
	t.Parallel()

	sb, g := newProject(t)
	ctx := sb.Context()

	out, err := g.Pack(ctx, glue.PackOptions{Values: []string{"1", "258", "4294967295"}})
	require.NoError(t, err)
	var decoded struct {
		Count int    `yaml:"count"`
		Hex   string `yaml:"hex"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Equal(t, 3, decoded.Count)
	require.Equal(t, "0000000100000102ffffffff", decoded.Hex)

	out, err = g.Unpack(ctx, glue.UnpackOptions{Hex: "00000001 00000102\nffffffff"})
	require.NoError(t, err)
	require.Equal(t, "1\n258\n4294967295\n", out)

	_, err = g.Pack(ctx, glue.PackOptions{Values: []string{"-1"}})
	var rangeErr *pack.RangeError
	require.ErrorAs(t, err, &rangeErr)

	_, err = g.Pack(ctx, glue.PackOptions{Values: []string{"one"}})
	var inputErr *glue.InputError
	require.ErrorAs(t, err, &inputErr)

	_, err = g.Unpack(ctx, glue.UnpackOptions{Hex: "000001"})
	require.ErrorIs(t, err, pack.ErrTruncated)

	_, err = g.Unpack(ctx, glue.UnpackOptions{Hex: "zz"})
	require.ErrorAs(t, err, &inputErr)

	_, err = g.Unpack(ctx, glue.UnpackOptions{Hex: "  "})
	require.ErrorIs(t, err, glue.ErrNoInput)
}

func TestTime(t *testing.T) {
	t.Parallel()

	sb, g := newProject(t)
	ctx := sb.Context()

	out, err := g.FormatTime(ctx, glue.FormatTimeOptions{Value: "1700000000"})
	require.NoError(t, err)
	require.Equal(t, "Tue Nov 14 22:13:20 2023\n", out)

	out, err = g.FormatTime(ctx, glue.FormatTimeOptions{Value: "1700000000000", Millis: true})
	require.NoError(t, err)
	require.Equal(t, "Tue Nov 14 22:13:20 2023\n", out)

	out, err = g.ConvertTime(ctx, glue.ConvertTimeOptions{Value: "1700000000.9876", Millis: true})
	require.NoError(t, err)
	require.Equal(t, "1700000000987\n", out)

	out, err = g.ConvertTime(ctx, glue.ConvertTimeOptions{Value: "1700000000.9876"})
	require.NoError(t, err)
	require.Equal(t, "1700000000\n", out)

	_, err = g.FormatTime(ctx, glue.FormatTimeOptions{Value: "soon"})
	var inputErr *glue.InputError
	require.ErrorAs(t, err, &inputErr)

	want := sb.Runtime().Clock().Now().UTC().Unix()
	out, err = g.Now(ctx, glue.NowOptions{Seconds: true})
	require.NoError(t, err)
	got, err := strconv.ParseInt(strings.TrimSpace(out), 10, 64)
	require.NoError(t, err)
	require.InDelta(t, want, got, 2)

	out, err = g.Now(ctx, glue.NowOptions{})
	require.NoError(t, err)
	require.Regexp(t, `^\d{13,}\n$`, out)

	out, err = g.Now(ctx, glue.NowOptions{Human: true})
	require.NoError(t, err)
	require.Regexp(t, `^\w{3} \w{3} [ \d]\d \d{2}:\d{2}:\d{2} \d{4}\n$`, out)
}

func TestVericode(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t)
	g, err := glue.New(sb.Context(), glue.Options{
		Runtime: sb.Runtime(),
		Config:  glue.DefaultConfig(),
		Source:  fixedSource(0),
	})
	require.NoError(t, err)

	out, err := g.Vericode(sb.Context(), glue.VericodeOptions{Count: 2})
	require.NoError(t, err)
	require.Equal(t, "313922\n313922\n", out)

	out, err = g.Vericode(sb.Context(), glue.VericodeOptions{Passcode: true})
	require.NoError(t, err)
	require.Equal(t, "07340021\n", out)
}

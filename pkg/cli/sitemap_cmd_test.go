package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSitemapCmd(t *testing.T) {
	t.Parallel()
	sb := NewProjectSandbox(t)

	res := NewProcess(t, false, "sitemap").Run(sb.Context(), sb.Runtime())
	require.NoError(t, res.Err)
	out := string(res.Stdout)
	require.Contains(t, out, "<title>-- BACKEND --</title>")
	require.Contains(t, out, "swatch/slate/")
	require.Contains(t, out, "<li><a href='/api/boards/1'>/api/boards/1</a></li>")
}

func TestSitemapCmd_V2(t *testing.T) {
	t.Parallel()
	sb := NewProjectSandbox(t)

	res := NewProcess(t, false, "sitemap", "--v2", "--theme", "flatly",
		"--entity-type", "/api/entities/teams", "~/app/routes.yaml").Run(sb.Context(), sb.Runtime())
	require.NoError(t, res.Err)
	out := string(res.Stdout)
	require.Contains(t, out, "swatch/flatly/")
	require.Contains(t, out, `href="/api/entities/users"`)
	require.Contains(t, out, `href="/api/entities/teams"`)
	require.Contains(t, out, `<div class="method method-get">GET</div>/api/accounts/&lt;int:id&gt;`)
}

func TestSitemapCmd_ThemeFromEnv(t *testing.T) {
	t.Parallel()
	sb := NewProjectSandbox(t)
	require.NoError(t, sb.Runtime().Set("BOOTSTRAP_THEME", "cyborg"))

	res := NewProcess(t, false, "sitemap").Run(sb.Context(), sb.Runtime())
	require.NoError(t, res.Err)
	require.Contains(t, string(res.Stdout), "swatch/cyborg/")
}

func TestSitemapCmd_Output(t *testing.T) {
	t.Parallel()
	sb := NewProjectSandbox(t)

	res := NewProcess(t, false, "sitemap", "--v2", "-o", "~/site/index.html").Run(sb.Context(), sb.Runtime())
	require.NoError(t, res.Err)
	require.Contains(t, string(res.Stdout), "sitemap written to")
	require.Contains(t, string(res.Stdout), "index.html")

	page := string(sb.MustReadFile("~/site/index.html"))
	require.Contains(t, page, `<a class="admin" href="/admin/">`)
}

func TestSitemapCmd_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		routes      string
		args        []string
		expectedErr string
	}{
		{
			name:        "watch without output",
			args:        []string{"sitemap", "--watch"},
			expectedErr: "--watch requires --output",
		},
		{
			name:        "invalid routes",
			routes:      "routes:\n  - path: api\n",
			args:        []string{"sitemap", "~/bad.yaml"},
			expectedErr: "routes file is invalid",
		},
		{
			name:        "missing routes",
			args:        []string{"sitemap", "~/missing.yaml"},
			expectedErr: "read routes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sb := NewProjectSandbox(t)
			if tt.routes != "" {
				sb.MustWriteFile("~/bad.yaml", []byte(tt.routes), 0o644)
			}

			res := NewProcess(t, false, tt.args...).Run(sb.Context(), sb.Runtime())
			require.Error(t, res.Err)
			require.ErrorContains(t, res.Err, tt.expectedErr)
		})
	}
}

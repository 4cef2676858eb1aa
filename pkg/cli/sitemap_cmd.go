package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/glue/pkg/glue"
	"github.com/spf13/cobra"
)

// NewSitemapCmd returns the `sitemap` cobra command.
//
// Usage examples:
//
//	glue sitemap routes.yaml
//	glue sitemap --v2 --theme darkly routes.yaml -o site/index.html
//	glue sitemap --v2 --watch -o site/index.html
func NewSitemapCmd(deps *Deps) *cobra.Command {
	var (
		opts       glue.SitemapOptions
		outputPath string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "sitemap [routes.yaml]",
		Short: "render an HTML index of a routes file",
		Long: `Render an HTML page listing the routes of a backend.

The routes file is YAML with a "routes" list (path, endpoint, methods,
defaults, summary) and optional "entity_types". When no file is given,
sitemap.routes from the config file is used. The bootstrap theme resolves from
--theme, then $BOOTSTRAP_THEME, then sitemap.theme.

With --watch the page is re-rendered whenever the routes file changes until
interrupted; --output is required.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 1 {
				opts.RoutesPath = args[0]
			}

			if watch {
				if strings.TrimSpace(outputPath) == "" {
					return fmt.Errorf("--watch requires --output")
				}
				lg := deps.Runtime.Logger()
				return deps.Glue.WatchSitemap(ctx, opts, func(page string) error {
					path, err := writeOutput(deps.Runtime, outputPath, page)
					if err != nil {
						return err
					}
					lg.Info("sitemap written", "path", path)
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "sitemap written to %s\n", path)
					return err
				})
			}

			page, err := deps.Glue.Sitemap(ctx, opts)
			if err != nil {
				return err
			}

			if strings.TrimSpace(outputPath) == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), page)
				return err
			}
			path, err := writeOutput(deps.Runtime, outputPath, page)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "sitemap written to %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.V2, "v2", false, "render the styled sitemap")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "bootstrap swatch name")
	cmd.Flags().StringVar(&opts.AdminLink, "admin-link", "", "link listed first (default /admin/)")
	cmd.Flags().StringSliceVar(&opts.EntityTypes, "entity-type", nil, "extra API URL listed as a GET link (repeatable)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write HTML to file (default: stdout)")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-render when the routes file changes")

	return cmd
}

func writeOutput(rt *toolkit.Runtime, outputPath, content string) (string, error) {
	path := toolkit.ExpandEnv(rt, outputPath)
	path, err := toolkit.ExpandPath(rt, path)
	if err != nil {
		return "", fmt.Errorf("unable to resolve output path %q: %w", outputPath, err)
	}
	dir := filepath.Dir(path)
	if err := rt.Mkdir(dir, 0o755, true); err != nil {
		return "", fmt.Errorf("unable to create output directory %q: %w", dir, err)
	}
	if err := rt.AtomicWriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("unable to write output file %q: %w", path, err)
	}
	return path, nil
}

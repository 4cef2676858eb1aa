package cli

// NewRootCmd builds the root cobra command and wires persistent flags. The
// PersistentPreRunE installs a logger when logging flags are given and builds
// the glue service from the resolved config.
import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jlrickert/cli-toolkit/mylog"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/glue/pkg/glue"
	"github.com/spf13/cobra"
)

type Deps struct {
	Shutdown func()
	Runtime  *toolkit.Runtime

	ConfigPath string
	LogFile    string
	LogLevel   string
	LogJSON    bool

	Glue *glue.Glue
}

func NewRootCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = &Deps{}
	}
	if deps.Shutdown == nil {
		deps.Shutdown = func() {}
	}

	cmd := &cobra.Command{
		Use:   "glue",
		Short: "small developer utilities: FNV hashing, value parsing, packing, codes, sitemaps",
		Long: `glue bundles the helpers a backend leans on day to day.

It computes FNV-1 digests at 32 to 1024 bits, coerces loosely typed values,
packs integer arrays, formats epoch timestamps, generates verification codes,
and renders an HTML sitemap from a routes file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt := deps.Runtime
			if rt == nil {
				return fmt.Errorf("runtime is required")
			}

			if deps.LogFile != "" || deps.LogJSON || deps.LogLevel != "" {
				// create a logger out-> stderr or file
				out := rt.Stream().Err
				if deps.LogFile != "" {
					path, err := hostPath(rt, deps.LogFile)
					if err != nil {
						return fmt.Errorf("unable to resolve log file %q: %w", deps.LogFile, err)
					}
					f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
					if err != nil {
						return err
					}
					prev := deps.Shutdown
					deps.Shutdown = func() {
						_ = f.Close()
						prev()
					}
					out = f
				}
				lg := mylog.NewLogger(mylog.LoggerConfig{
					Out:     out,
					Level:   mylog.ParseLevel(deps.LogLevel),
					JSON:    deps.LogJSON,
					Version: Version,
				})
				if err := rt.SetLogger(lg); err != nil {
					return err
				}
			}

			g, err := glue.New(ctx, glue.Options{
				ConfigPath: deps.ConfigPath,
				Runtime:    rt,
			})
			if err != nil {
				return err
			}
			deps.Glue = g
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&deps.LogFile, "log-file", "", "write logs to file (default stderr)")
	cmd.PersistentFlags().StringVar(&deps.LogLevel, "log-level", "", "minimum log level")
	cmd.PersistentFlags().BoolVar(&deps.LogJSON, "log-json", false, "output logs as JSON")
	cmd.PersistentFlags().StringVarP(&deps.ConfigPath, "config", "c", "", "path to config file")

	cmd.AddCommand(
		NewHashCmd(deps),
		NewParseCmd(deps),
		NewPackCmd(deps),
		NewUnpackCmd(deps),
		NewTimeCmd(deps),
		NewVericodeCmd(deps),
		NewSitemapCmd(deps),
		NewVersionCmd(deps),
	)

	return cmd
}

// hostPath resolves path against the runtime and maps it into the runtime's
// jail, if any, so it can be opened with the os package. The parent directory
// is created when missing.
func hostPath(rt *toolkit.Runtime, path string) (string, error) {
	abs, err := rt.AbsPath(path)
	if err != nil {
		return "", err
	}
	if err := rt.Mkdir(filepath.Dir(abs), 0o755, true); err != nil {
		return "", err
	}
	if jail := strings.TrimSpace(rt.GetJail()); jail != "" {
		trimmed := strings.TrimPrefix(abs, string(filepath.Separator))
		return filepath.Join(jail, trimmed), nil
	}
	return abs, nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/jlrickert/glue/pkg/fnv"
	"github.com/jlrickert/glue/pkg/glue"
	"github.com/spf13/cobra"
)

// NewHashCmd returns the `hash` cobra command.
//
// Usage examples:
//
//	glue hash foobar
//	glue hash --width 256 foobar
//	echo -n foobar | glue hash
//	glue hash --file go.mod go.sum
func NewHashCmd(deps *Deps) *cobra.Command {
	var (
		width   string
		decimal bool
		files   bool
		jobs    int
	)

	cmd := &cobra.Command{
		Use:   "hash [value...]",
		Short: "compute FNV-1 digests",
		Long: `Compute FNV-1 digests of text, piped input, or files.

Digests are printed as zero-padded lowercase hex (width/4 digits) or, with
--decimal, as base-10 integers. Supported widths are 32, 64, 128, 256, 512 and
1024 bits; the default comes from hash.width in the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			bits := 0
			if strings.TrimSpace(width) != "" {
				w, err := fnv.ParseWidth(width)
				if err != nil {
					return err
				}
				bits = int(w)
			}

			var (
				output string
				err    error
			)
			if files {
				output, err = deps.Glue.HashFiles(ctx, glue.HashFilesOptions{
					Paths:   args,
					Stream:  deps.Runtime.Stream(),
					Width:   bits,
					Decimal: decimal,
					Jobs:    jobs,
				})
			} else {
				output, err = deps.Glue.Hash(ctx, glue.HashOptions{
					Values:  args,
					Stream:  deps.Runtime.Stream(),
					Width:   bits,
					Decimal: decimal,
				})
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&width, "width", "w", "", "digest width in bits (32, 64, 128, 256, 512, 1024)")
	cmd.Flags().BoolVarP(&decimal, "decimal", "d", false, "print digests as base-10 integers")
	cmd.Flags().BoolVarP(&files, "file", "f", false, "treat arguments as file paths (- reads stdin)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "files hashed concurrently (default GOMAXPROCS)")

	return cmd
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jlrickert/glue/pkg/glue"
	"github.com/spf13/cobra"
)

// NewPackCmd returns the `pack` cobra command.
//
// Usage examples:
//
//	glue pack 1 2 3
func NewPackCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <int>...",
		Short: "pack unsigned 32-bit integers as big-endian bytes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := deps.Glue.Pack(cmd.Context(), glue.PackOptions{Values: args})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}
	return cmd
}

// NewUnpackCmd returns the `unpack` cobra command.
//
// Usage examples:
//
//	glue unpack 000000010000000200000003
//	echo 0000000a | glue unpack
func NewUnpackCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpack [hex...]",
		Short: "decode packed big-endian integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.Join(args, "")
			if len(args) == 0 {
				if stream := deps.Runtime.Stream(); stream.IsPiped {
					b, err := io.ReadAll(stream.In)
					if err != nil {
						return fmt.Errorf("read stdin: %w", err)
					}
					raw = string(b)
				}
			}
			output, err := deps.Glue.Unpack(cmd.Context(), glue.UnpackOptions{Hex: raw})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}
	return cmd
}

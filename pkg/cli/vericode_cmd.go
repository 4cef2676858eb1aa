package cli

import (
	"fmt"

	"github.com/jlrickert/glue/pkg/glue"
	"github.com/spf13/cobra"
)

// NewVericodeCmd returns the `vericode` cobra command.
func NewVericodeCmd(deps *Deps) *cobra.Command {
	var opts glue.VericodeOptions

	cmd := &cobra.Command{
		Use:   "vericode",
		Short: "generate 6-digit verification codes or 8-digit passcodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := deps.Glue.Vericode(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.Passcode, "passcode", "p", false, "generate password-recovery passcodes")
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1, "number of codes")
	return cmd
}

// NewVersionCmd returns the `version` cobra command.
func NewVersionCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the glue version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
			return nil
		},
	}
}

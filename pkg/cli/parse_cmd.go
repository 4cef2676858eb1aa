package cli

import (
	"fmt"

	"github.com/jlrickert/glue/pkg/glue"
	"github.com/spf13/cobra"
)

// NewParseCmd returns the `parse` command group.
//
// Usage examples:
//
//	glue parse int " 42 "
//	glue parse bool yep
func NewParseCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "coerce loosely typed values",
	}
	cmd.AddCommand(newParseIntCmd(deps), newParseBoolCmd(deps))
	return cmd
}

func newParseIntCmd(deps *Deps) *cobra.Command {
	var opts glue.ParseIntOptions

	cmd := &cobra.Command{
		Use:   "int <value>",
		Short: "parse a base-10 integer, falling back to --default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Value = args[0]
			output, err := deps.Glue.ParseInt(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.Default, "default", 0, "value printed when parsing fails")
	return cmd
}

func newParseBoolCmd(deps *Deps) *cobra.Command {
	var opts glue.ParseBoolOptions

	cmd := &cobra.Command{
		Use:   "bool [value]",
		Short: "parse an affirmative word or number, falling back to --default",
		Long: `Parse a value as a boolean.

All-digit values are true when greater than zero. Anything else is true when
it is one of the accepted affirmatives (true, yes, y, ok, sure, yep, ...).
An empty value prints --default.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Value = args[0]
			}
			output, err := deps.Glue.ParseBool(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Default, "default", false, "value printed for empty input")
	return cmd
}

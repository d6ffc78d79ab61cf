package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rzbill/uniq/pkg/uid"
)

// NewWellKnownCommand constructs the `wellknown` command. Well-known
// identifiers carry a zero discriminant and timestamp, so the rendering
// is pure and needs no server.
func NewWellKnownCommand() *cobra.Command {
	wkCmd := &cobra.Command{
		Use:   "wellknown NUM",
		Short: "Render the well-known identifier for a small number",
		Long: "Render the well-known identifier for a small number.\n\n" +
			"NUM must fit a 16-bit signed integer. Pass negative numbers after\n" +
			"a `--` separator, e.g. `uniq wellknown -- -5`.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			n, err := strconv.ParseInt(args[0], 10, 16)
			if err != nil {
				return fmt.Errorf("num must fit a 16-bit signed integer: %w", err)
			}
			return renderUIDs(cmd.OutOrStdout(), format, []uidJSON{uidView(uid.WellKnown(int16(n)))})
		},
	}
	wkCmd.Flags().StringP("output", "o", "text", "Output format: text|json|hex")
	return wkCmd
}

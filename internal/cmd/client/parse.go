package client

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rzbill/uniq/pkg/guid"
	"github.com/rzbill/uniq/pkg/uid"
)

type parsedUID struct {
	uidJSON
	TimeUTC string `json:"timeUtc"`
}

type parsedGUID struct {
	guidJSON
	TimeUTC string `json:"timeUtc"`
}

// NewParseCommand constructs the `parse` command, which decodes an
// identifier from its text or hex form and prints the fields as JSON.
func NewParseCommand() *cobra.Command {
	parseCmd := &cobra.Command{
		Use:   "parse IDENTIFIER",
		Short: "Decode an identifier into its fields",
		Long: "Decode an identifier into its fields.\n\n" +
			"IDENTIFIER may be a UID in text form (unique:time:count), a GUID in\n" +
			"text form (addr/uid), or either one hex-encoded.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			out := cmd.OutOrStdout()
			switch {
			case strings.Contains(in, "/"):
				g, err := guid.Parse(in)
				if err != nil {
					return err
				}
				return encodeIndented(out, parsedGUID{guidJSON: guidView(g), TimeUTC: msToUTC(g.UID().Time())})
			case strings.Contains(in, ":"):
				u, err := uid.Parse(in)
				if err != nil {
					return err
				}
				return encodeIndented(out, parsedUID{uidJSON: uidView(u), TimeUTC: msToUTC(u.Time())})
			default:
				raw, err := hex.DecodeString(in)
				if err != nil {
					return fmt.Errorf("not a text identifier and not hex: %w", err)
				}
				switch len(raw) {
				case uid.Size:
					var u uid.UID
					if err := u.UnmarshalBinary(raw); err != nil {
						return err
					}
					return encodeIndented(out, parsedUID{uidJSON: uidView(u), TimeUTC: msToUTC(u.Time())})
				case guid.Size:
					var g guid.GUID
					if err := g.UnmarshalBinary(raw); err != nil {
						return err
					}
					return encodeIndented(out, parsedGUID{guidJSON: guidView(g), TimeUTC: msToUTC(g.UID().Time())})
				default:
					return fmt.Errorf("hex must encode %d bytes for a uid or %d for a guid, got %d", uid.Size, guid.Size, len(raw))
				}
			}
		},
	}
	return parseCmd
}

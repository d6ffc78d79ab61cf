package client

import (
	"github.com/spf13/cobra"
)

// BaseURLFunc provides the base HTTP API URL (e.g., from env or flag).
type BaseURLFunc func() string

// NewRoot constructs a root Cobra command for the uniq client.
// It registers the new, wellknown and parse commands.
func NewRoot(baseURL BaseURLFunc) *cobra.Command {
	root := &cobra.Command{
		Use:   "uniq",
		Short: "uniq client commands",
	}
	root.AddCommand(NewNewCommand(baseURL))
	root.AddCommand(NewWellKnownCommand())
	root.AddCommand(NewParseCommand())
	return root
}

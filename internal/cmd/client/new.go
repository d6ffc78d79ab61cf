package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/rzbill/uniq/pkg/guid"
	"github.com/rzbill/uniq/pkg/uid"
)

// NewNewCommand constructs the `new` command, which mints identifiers
// either with the in-process generators or on a remote uniq server.
func NewNewCommand(baseURL BaseURLFunc) *cobra.Command {
	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Mint fresh identifiers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetInt("count")
			global, _ := cmd.Flags().GetBool("global")
			remote, _ := cmd.Flags().GetBool("remote")
			format, _ := cmd.Flags().GetString("output")

			if count < 1 {
				return fmt.Errorf("count must be at least 1")
			}
			if remote {
				return mintRemote(cmd, baseURL(), count, global, format)
			}
			if global {
				gen := guid.NewGenerator(nil)
				views := make([]guidJSON, 0, count)
				for i := 0; i < count; i++ {
					views = append(views, guidView(gen.Next(cmd.Context())))
				}
				return renderGUIDs(cmd.OutOrStdout(), format, views)
			}
			views := make([]uidJSON, 0, count)
			for i := 0; i < count; i++ {
				views = append(views, uidView(uid.Next(cmd.Context())))
			}
			return renderUIDs(cmd.OutOrStdout(), format, views)
		},
	}
	newCmd.Flags().IntP("count", "c", 1, "How many identifiers to mint")
	newCmd.Flags().Bool("global", false, "Mint GUIDs (host-qualified) instead of UIDs")
	newCmd.Flags().Bool("remote", false, "Mint on a uniq server instead of in-process")
	newCmd.Flags().StringP("output", "o", "text", "Output format: text|json|hex")
	return newCmd
}

func mintRemote(cmd *cobra.Command, base string, count int, global bool, format string) error {
	kind := "uids"
	if global {
		kind = "guids"
	}
	body, _ := json.Marshal(map[string]int{"count": count})
	resp, err := http.Post(fmt.Sprintf("%s/v1/%s/new", base, kind), "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("http error: %s", resp.Status)
	}

	if global {
		var data struct {
			GUIDs []guidJSON `json:"guids"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return err
		}
		return renderGUIDs(cmd.OutOrStdout(), format, data.GUIDs)
	}
	var data struct {
		UIDs []uidJSON `json:"uids"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return err
	}
	return renderUIDs(cmd.OutOrStdout(), format, data.UIDs)
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aisafe/aisafe/internal/output"
)

// NewPathCommand creates the path command
func NewPathCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the resolved credentials file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}

			p := GlobalConfig.Store.Path()
			_, statErr := os.Stat(p)
			return w.WriteOK(format, map[string]any{
				"path":   p,
				"exists": statErr == nil,
			})
		},
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/aisafe/aisafe/internal/output"
	"github.com/aisafe/aisafe/internal/store"
)

// NewListCommand creates the list command
func NewListCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list [section]",
		Short: "List sections and keys (never values)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args, w)
		},
	}
}

func runList(args []string, w *output.Writer) error {
	format, err := parseOutputFormat(GlobalConfig.FormatStr)
	if err != nil {
		return err
	}

	sections, ae := GlobalConfig.Store.List()
	if ae != nil {
		return ae
	}

	// 裸 section 名过滤；不存在的 section 宽容返回空列表
	if len(args) == 1 {
		keys := []string{}
		for _, s := range sections {
			if s.Section == args[0] {
				keys = s.Keys
				break
			}
		}
		return w.WriteOK(format, map[string]any{"section": args[0], "keys": keys})
	}

	if sections == nil {
		sections = []store.SectionKeys{}
	}
	return w.WriteOK(format, map[string]any{"sections": sections})
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/aisafe/aisafe/internal/output"
	"github.com/aisafe/aisafe/internal/secret"
	"github.com/aisafe/aisafe/internal/store"
)

// NewRemoveCommand creates the remove command
func NewRemoveCommand(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <section.key>",
		Short: "Remove a credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args, w)
		},
	}
}

func runRemove(args []string, w *output.Writer) error {
	key := args[0]
	format, err := parseOutputFormat(GlobalConfig.FormatStr)
	if err != nil {
		return err
	}

	// 先读旧值：keyring 引用需要一并清理
	v, ae := GlobalConfig.Store.Get(key)
	if ae != nil {
		return ae
	}

	if ae := GlobalConfig.Store.Remove(key); ae != nil {
		return ae
	}

	if v.Kind() == store.KindString && secret.IsRef(v.String()) {
		// 文件条目已删除；keyring 清理失败只记警告，不回滚
		if ae := secret.Forget(v.String(), secret.Options{}); ae != nil {
			GlobalConfig.Logger.Warn("keyring entry not removed", "key", key, "err", ae.Message)
		}
	}

	return w.WriteOK(format, map[string]any{"key": key})
}

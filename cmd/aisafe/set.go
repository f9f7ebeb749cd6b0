package main

import (
	"github.com/spf13/cobra"

	"github.com/aisafe/aisafe/internal/output"
	"github.com/aisafe/aisafe/internal/secret"
	"github.com/aisafe/aisafe/internal/store"
)

// SetFlags holds the flags for the set command
type SetFlags struct {
	Keyring bool
}

// NewSetCommand creates the set command
func NewSetCommand(w *output.Writer) *cobra.Command {
	flags := &SetFlags{}

	cmd := &cobra.Command{
		Use:   "set <section.key> [value]",
		Short: "Set a credential (prompts hidden when value omitted)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args, flags, w)
		},
	}

	cmd.Flags().BoolVar(&flags.Keyring, "keyring", false, "Store the secret in the OS keyring and write a keyring: reference")

	return cmd
}

func runSet(args []string, flags *SetFlags, w *output.Writer) error {
	key := args[0]
	format, err := parseOutputFormat(GlobalConfig.FormatStr)
	if err != nil {
		return err
	}

	// 键先校验，再提示输入
	if _, _, ae := store.SplitKey(key); ae != nil {
		return ae
	}

	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		v, err := promptSecret(key)
		if err != nil {
			return err
		}
		value = v
	}

	if flags.Keyring {
		ref, ae := secret.Store(key, value, secret.Options{})
		if ae != nil {
			return ae
		}
		value = ref
	}

	if ae := GlobalConfig.Store.Set(key, store.String(value)); ae != nil {
		return ae
	}

	// 不回显值，避免 secret 进入终端历史/日志
	return w.WriteOK(format, map[string]any{"key": key, "keyring": flags.Keyring})
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/aisafe/aisafe/internal/errors"
	"github.com/aisafe/aisafe/internal/output"
	"github.com/aisafe/aisafe/internal/secret"
	"github.com/aisafe/aisafe/internal/store"
)

// GetFlags holds the flags for the get command
type GetFlags struct {
	Default    string
	DefaultSet bool
	Raw        bool
}

// NewGetCommand creates the get command
func NewGetCommand(w *output.Writer) *cobra.Command {
	flags := &GetFlags{}

	cmd := &cobra.Command{
		Use:   "get <section.key>",
		Short: "Get a single credential value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.DefaultSet = cmd.Flags().Changed("default")
			return runGet(args, flags, w)
		},
	}

	cmd.Flags().StringVar(&flags.Default, "default", "", "Fallback value when the key is missing")
	cmd.Flags().BoolVar(&flags.Raw, "raw", false, "Do not resolve keyring: references")

	return cmd
}

func runGet(args []string, flags *GetFlags, w *output.Writer) error {
	key := args[0]
	format, err := parseOutputFormat(GlobalConfig.FormatStr)
	if err != nil {
		return err
	}

	var v store.Value
	var ae *errors.AError
	if flags.DefaultSet {
		v, ae = GlobalConfig.Store.GetDefault(key, store.String(flags.Default))
	} else {
		v, ae = GlobalConfig.Store.Get(key)
	}
	if ae != nil {
		return ae
	}

	value := v.Go()
	if !flags.Raw && v.Kind() == store.KindString {
		resolved, ae := secret.Resolve(v.String(), secret.Options{})
		if ae != nil {
			return ae
		}
		value = resolved
	}

	return w.WriteOK(format, map[string]any{"key": key, "value": value})
}

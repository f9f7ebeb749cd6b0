package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aisafe/aisafe/internal/log"
	"github.com/aisafe/aisafe/internal/paths"
	"github.com/aisafe/aisafe/internal/store"
)

// Build-time variables (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Config holds the resolved per-invocation state
type Config struct {
	FileStr   string
	FormatStr string
	Verbose   bool

	Path   string
	Store  *store.Store
	Logger *slog.Logger
}

// GlobalConfig holds the global configuration state
var GlobalConfig = &Config{}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "aisafe",
		Short:         "Keep credentials in a per-user file outside any project tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// CLI > ENV > default
			if !cmd.Flags().Changed("format") {
				if env := os.Getenv("AISAFE_FORMAT"); env != "" {
					GlobalConfig.FormatStr = env
				}
			}

			// 路径每进程解析一次并缓存在 Store 里
			GlobalConfig.Path = paths.Default(GlobalConfig.FileStr)
			GlobalConfig.Store = store.Open(GlobalConfig.Path)
			GlobalConfig.Logger = log.New(os.Stderr, GlobalConfig.Verbose)
			GlobalConfig.Logger.Debug("resolved credentials file", "path", GlobalConfig.Path)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&GlobalConfig.FileStr, "file", "", "Credentials file path; default: $AISAFE_FILE or <user config dir>/aisafe/credentials.toml")
	root.PersistentFlags().StringVarP(&GlobalConfig.FormatStr, "format", "f", "auto", "Output format: json|yaml|table|csv|auto")
	root.PersistentFlags().BoolVar(&GlobalConfig.Verbose, "verbose", false, "Debug logging to stderr")

	return root
}

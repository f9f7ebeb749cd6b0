package app

import (
	"github.com/aisafe/aisafe/internal/errors"
	"github.com/aisafe/aisafe/internal/output"
	"github.com/aisafe/aisafe/internal/paths"
	"github.com/aisafe/aisafe/internal/spec"
)

type App struct {
	Version string
	Commit  string
	Date    string
}

func New(version, commit, date string) App {
	return App{Version: version, Commit: commit, Date: date}
}

func (a App) BuildSpec() spec.Spec {
	globalFlags := []spec.FlagSpec{
		{Name: "file", Env: paths.EnvFile, Default: "", Description: "Credentials file path; default: <user config dir>/aisafe/credentials.toml"},
		{Name: "format", Shorthand: "f", Env: "AISAFE_FORMAT", Default: "auto", Description: "Output format: json|yaml|table|csv|auto"},
		{Name: "verbose", Default: "false", Description: "Debug logging to stderr"},
	}
	return spec.Spec{
		SchemaVersion: output.SchemaVersion,
		Commands: []spec.CommandSpec{
			{
				Name:        "set",
				Description: "Set a credential (prompts hidden when value omitted)",
				Flags: append(globalFlags,
					spec.FlagSpec{Name: "keyring", Default: "false", Description: "Store the secret in the OS keyring and write a keyring: reference"},
				),
			},
			{
				Name:        "get",
				Description: "Get a single credential value",
				Flags: append(globalFlags,
					spec.FlagSpec{Name: "default", Default: "", Description: "Fallback value when the key is missing"},
					spec.FlagSpec{Name: "raw", Default: "false", Description: "Do not resolve keyring: references"},
				),
			},
			{
				Name:        "list",
				Description: "List sections and keys (never values)",
				Flags:       globalFlags,
			},
			{
				Name:        "remove",
				Description: "Remove a credential",
				Flags:       globalFlags,
			},
			{
				Name:        "path",
				Description: "Show the resolved credentials file location",
				Flags:       globalFlags,
			},
			{
				Name:        "version",
				Description: "Print version information",
				Flags:       globalFlags,
			},
			{
				Name:        "spec",
				Description: "Export tool spec for AI/agents",
				Flags:       globalFlags,
			},
		},
		ErrorCodes: errors.AllCodes(),
	}
}

type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

func (a App) VersionInfo() VersionInfo {
	return VersionInfo{Version: a.Version, Commit: a.Commit, Date: a.Date}
}

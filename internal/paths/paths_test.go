package paths

import (
	"path/filepath"
	"testing"
)

func TestResolve_Precedence(t *testing.T) {
	opts := Options{
		Explicit:  "/explicit/creds.toml",
		EnvFile:   "/env/creds.toml",
		ConfigDir: "/cfg",
		HomeDir:   "/home/u",
	}

	// All three present -> explicit wins
	if got := Resolve(opts); got != "/explicit/creds.toml" {
		t.Fatalf("got %q, want explicit override", got)
	}

	// Drop explicit -> env var wins
	opts.Explicit = ""
	if got := Resolve(opts); got != "/env/creds.toml" {
		t.Fatalf("got %q, want env override", got)
	}

	// Drop env -> platform default
	opts.EnvFile = ""
	want := filepath.Join("/cfg", AppName, FileName)
	if got := Resolve(opts); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolve_TildeExpansion(t *testing.T) {
	got := Resolve(Options{Explicit: "~/secrets/c.toml", HomeDir: "/home/u"})
	want := filepath.Join("/home/u", "secrets", "c.toml")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	got = Resolve(Options{EnvFile: "~", HomeDir: "/home/u"})
	if got != "/home/u" {
		t.Fatalf("got %q, want home", got)
	}

	// No home known -> path passed through verbatim
	got = Resolve(Options{Explicit: "~/x.toml"})
	if got != "~/x.toml" {
		t.Fatalf("got %q, want verbatim", got)
	}
}

func TestResolve_ConfigDirFallback(t *testing.T) {
	got := Resolve(Options{HomeDir: "/home/u"})
	want := filepath.Join("/home/u", ".config", AppName, FileName)
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDefault_NeverEmpty(t *testing.T) {
	if got := Default(""); got == "" {
		t.Fatal("Default should always produce a path")
	}
	if got := Default("/x/y.toml"); got != "/x/y.toml" {
		t.Fatalf("got %q, want explicit", got)
	}
}

package main

import (
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := newRootCmd()

	want := map[string]bool{
		"version":   false,
		"browse":    false,
		"search":    false,
		"movie":     false,
		"genres":    false,
		"watchlist": false,
		"cache":     false,
		"config":    false,
		"bot":       false,
		"mcp-serve": false,
	}

	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommand_ConfigFlag(t *testing.T) {
	root := newRootCmd()
	flag := root.PersistentFlags().Lookup("config")
	if flag == nil {
		t.Fatal("--config flag not registered")
	}
	if flag.DefValue != "configs/clickmovie.yaml" {
		t.Errorf("--config default = %q, want %q", flag.DefValue, "configs/clickmovie.yaml")
	}
	if flag.Shorthand != "c" {
		t.Errorf("--config shorthand = %q, want %q", flag.Shorthand, "c")
	}
}

func TestSearchCommand_RequiresArgs(t *testing.T) {
	cmd := newSearchCmd()
	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("search command should require at least 1 argument")
	}
	if err := cmd.Args(cmd, []string{"dune"}); err != nil {
		t.Errorf("search command should accept args: %v", err)
	}
}

func TestMovieCommand_RequiresOneArg(t *testing.T) {
	cmd := newMovieCmd()
	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("movie command should require an argument")
	}
	if err := cmd.Args(cmd, []string{"550", "603"}); err == nil {
		t.Error("movie command should reject extra arguments")
	}
}

func TestConfigCommand_Subcommands(t *testing.T) {
	cmd := newConfigCmd()

	want := map[string]bool{"validate": false, "show": false, "set": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("config command missing %q subcommand", name)
		}
	}
}

func TestRedact(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "(not set)"},
		{"ab", "****"},
		{"0123456789", "****6789"},
	}
	for _, tt := range tests {
		if got := redact(tt.in); got != tt.want {
			t.Errorf("redact(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReleaseYear(t *testing.T) {
	if got := releaseYear("2010-07-16"); got != "2010" {
		t.Errorf("releaseYear = %q, want 2010", got)
	}
	if got := releaseYear(""); got != "?" {
		t.Errorf("releaseYear = %q, want ?", got)
	}
}

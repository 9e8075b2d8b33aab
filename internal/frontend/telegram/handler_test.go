package telegram

import (
	"testing"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		in          string
		wantCommand string
		wantArgs    string
	}{
		{"/start", "start", ""},
		{"/search dune part two", "search", "dune part two"},
		{"/trending 3", "trending", "3"},
		{"/SEARCH dune", "search", "dune"},
		{"/search@clickmovie_bot dune", "search", "dune"},
		{"/movie  550 ", "movie", "550"},
		{"plain text", "", "plain text"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			command, args := splitCommand(tt.in)
			if command != tt.wantCommand || args != tt.wantArgs {
				t.Errorf("splitCommand(%q) = (%q, %q), want (%q, %q)",
					tt.in, command, args, tt.wantCommand, tt.wantArgs)
			}
		})
	}
}

func TestBuildPageKeyboard(t *testing.T) {
	t.Run("single page", func(t *testing.T) {
		if kb := buildPageKeyboard(catalog.State{Page: 1, TotalPages: 1}); kb != nil {
			t.Error("expected nil keyboard for single page")
		}
	})

	t.Run("first page", func(t *testing.T) {
		kb := buildPageKeyboard(catalog.State{Page: 1, TotalPages: 3})
		if kb == nil {
			t.Fatal("expected keyboard")
		}
		row := kb.InlineKeyboard[0]
		if len(row) != 1 {
			t.Fatalf("expected only a next button, got %d", len(row))
		}
		if *row[0].CallbackData != "pg:2" {
			t.Errorf("expected pg:2, got %q", *row[0].CallbackData)
		}
	})

	t.Run("middle page", func(t *testing.T) {
		kb := buildPageKeyboard(catalog.State{Page: 2, TotalPages: 3})
		if kb == nil {
			t.Fatal("expected keyboard")
		}
		row := kb.InlineKeyboard[0]
		if len(row) != 2 {
			t.Fatalf("expected prev and next buttons, got %d", len(row))
		}
		if *row[0].CallbackData != "pg:1" || *row[1].CallbackData != "pg:3" {
			t.Errorf("unexpected callbacks: %q, %q", *row[0].CallbackData, *row[1].CallbackData)
		}
	})

	t.Run("last page", func(t *testing.T) {
		kb := buildPageKeyboard(catalog.State{Page: 3, TotalPages: 3})
		if kb == nil {
			t.Fatal("expected keyboard")
		}
		row := kb.InlineKeyboard[0]
		if len(row) != 1 {
			t.Fatalf("expected only a prev button, got %d", len(row))
		}
		if *row[0].CallbackData != "pg:2" {
			t.Errorf("expected pg:2, got %q", *row[0].CallbackData)
		}
	})
}

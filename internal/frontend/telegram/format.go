package telegram

import (
	"fmt"
	"strings"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
)

// mdV2Replacer escapes special characters for Telegram MarkdownV2.
var mdV2Replacer = strings.NewReplacer(
	`\`, `\\`,
	"_", "\\_",
	"*", "\\*",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	"~", "\\~",
	"`", "\\`",
	">", "\\>",
	"#", "\\#",
	"+", "\\+",
	"-", "\\-",
	"=", "\\=",
	"|", "\\|",
	"{", "\\{",
	"}", "\\}",
	".", "\\.",
	"!", "\\!",
)

// EscapeMdV2 escapes a string for safe use in Telegram MarkdownV2.
func EscapeMdV2(s string) string {
	return mdV2Replacer.Replace(s)
}

// FormatBold returns MarkdownV2 bold text.
func FormatBold(s string) string {
	return "*" + EscapeMdV2(s) + "*"
}

// FormatItalic returns MarkdownV2 italic text.
func FormatItalic(s string) string {
	return "_" + EscapeMdV2(s) + "_"
}

// releaseYear extracts the year from a YYYY-MM-DD release date.
func releaseYear(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return "?"
}

// FormatMovieList renders a listing page as plain text: a title line,
// numbered movie lines, and a page footer.
func FormatMovieList(heading string, state catalog.State) string {
	var sb strings.Builder
	sb.WriteString(heading)
	sb.WriteString("\n\n")

	if len(state.Items) == 0 {
		sb.WriteString("No movies found.")
		return sb.String()
	}

	for i, m := range state.Items {
		fmt.Fprintf(&sb, "%d. %s (%s) - %.1f [id %d]\n",
			i+1, m.Title, releaseYear(m.ReleaseDate), m.VoteAverage, m.ID)
	}

	if state.TotalPages > 1 {
		fmt.Fprintf(&sb, "\nPage %d of %d", state.Page, state.TotalPages)
	}
	return sb.String()
}

// FormatMovieDetail renders a movie's detail fields as plain text.
func FormatMovieDetail(m catalog.Movie) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", m.Title, releaseYear(m.ReleaseDate))
	if m.Tagline != "" {
		fmt.Fprintf(&sb, "%s\n", m.Tagline)
	}
	fmt.Fprintf(&sb, "\nRating: %.1f (%d votes)\n", m.VoteAverage, m.VoteCount)
	if m.Runtime > 0 {
		fmt.Fprintf(&sb, "Runtime: %d min\n", m.Runtime)
	}
	if len(m.Genres) > 0 {
		names := make([]string, len(m.Genres))
		for i, g := range m.Genres {
			names[i] = g.Name
		}
		fmt.Fprintf(&sb, "Genres: %s\n", strings.Join(names, ", "))
	}
	if m.Overview != "" {
		fmt.Fprintf(&sb, "\n%s\n", m.Overview)
	}
	if len(m.Cast) > 0 {
		names := make([]string, 0, len(m.Cast))
		for _, c := range m.Cast {
			names = append(names, c.Name)
		}
		fmt.Fprintf(&sb, "\nCast: %s\n", strings.Join(names, ", "))
	}
	return sb.String()
}

// FormatGenres renders the genre vocabulary as plain text.
func FormatGenres(genres []catalog.Genre) string {
	if len(genres) == 0 {
		return "No genres available."
	}
	var sb strings.Builder
	sb.WriteString("Genres:\n")
	for _, g := range genres {
		fmt.Fprintf(&sb, "- %s [id %d]\n", g.Name, g.ID)
	}
	return sb.String()
}

package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
)

const (
	unauthorizedMsg = "Sorry, you are not authorized to use this bot."
	errorMsg        = "An error occurred while processing your request. Please try again."

	pagePrefix = "pg:" // prefix for pagination callback data

	welcomeMsg = `Welcome to clickmovie! Browse the movie catalog:

/trending [page] - trending movies
/nowplaying [page] - movies in theaters
/toprated [page] - all-time top rated
/upcoming [page] - upcoming releases
/search <text> - search by title or overview
/movie <id> - movie details
/genres - genre vocabulary
/save <id> - add a movie to your watchlist
/unsave <id> - remove a movie from your watchlist
/watchlist - show your watchlist`
)

// categoryCommands maps slash commands to browse categories.
var categoryCommands = map[string]catalog.Category{
	"trending":   catalog.Trending,
	"nowplaying": catalog.NowPlaying,
	"toprated":   catalog.TopRated,
	"upcoming":   catalog.Upcoming,
}

// categoryHeadings are the display titles for listing pages.
var categoryHeadings = map[catalog.Category]string{
	catalog.Trending:   "Trending this week",
	catalog.NowPlaying: "Now playing",
	catalog.TopRated:   "Top rated",
	catalog.Upcoming:   "Upcoming",
}

// handleMessage processes an incoming text message.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	b.logger.Debug("received message",
		slog.Int64("user_id", userID),
	)

	if !b.sessions.isAllowed(userID) {
		b.sendText(chatID, unauthorizedMsg)
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	command, args := splitCommand(text)

	if cat, ok := categoryCommands[command]; ok {
		page := 1
		if n, err := strconv.Atoi(args); err == nil && n > 0 {
			page = n
		}
		b.showCategory(ctx, chatID, cat, page)
		return
	}

	switch command {
	case "start", "help":
		b.sendText(chatID, welcomeMsg)
	case "reset":
		b.sessions.reset(chatID)
		b.sendText(chatID, "Browsing state cleared.")
	case "search":
		b.showSearch(ctx, chatID, args, 1)
	case "movie":
		b.showDetail(ctx, chatID, args)
	case "genres":
		b.showGenres(ctx, chatID)
	case "save":
		b.saveMovie(ctx, chatID, args)
	case "unsave":
		b.unsaveMovie(chatID, args)
	case "watchlist":
		b.showWatchlist(chatID)
	default:
		if command != "" {
			b.sendText(chatID, "Unknown command. Send /help for the command list.")
			return
		}
		// Bare text is a search.
		b.showSearch(ctx, chatID, text, 1)
	}
}

// handleCallback processes inline keyboard pagination.
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID

	b.logger.Debug("received callback",
		slog.Int64("user_id", userID),
		slog.String("data", cq.Data),
	)

	// Acknowledge the callback immediately.
	callback := tgbotapi.NewCallback(cq.ID, "")
	b.api.Send(callback) //nolint:errcheck // best-effort ack

	if !b.sessions.isAllowed(userID) {
		return
	}

	if !strings.HasPrefix(cq.Data, pagePrefix) {
		return
	}
	page, err := strconv.Atoi(strings.TrimPrefix(cq.Data, pagePrefix))
	if err != nil || page < 1 {
		return
	}

	v, ok := b.sessions.currentView(chatID)
	if !ok {
		return
	}

	if v.Category != "" {
		b.showCategory(ctx, chatID, v.Category, page)
		return
	}
	b.showSearch(ctx, chatID, v.Query, page)
}

// showCategory loads and renders a category listing page.
func (b *Bot) showCategory(ctx context.Context, chatID int64, cat catalog.Category, page int) {
	slice := b.catalog.Category(cat)
	if slice == nil {
		b.sendText(chatID, errorMsg)
		return
	}

	b.sendTyping(chatID)
	state := slice.Load(ctx, catalog.Request{Page: page})
	if state.Err != "" {
		b.sendText(chatID, state.Err)
		return
	}

	b.sessions.setView(chatID, view{Category: cat, Page: state.Page})
	b.sendListing(chatID, FormatMovieList(categoryHeadings[cat], state), state)
}

// showSearch loads and renders a search results page.
func (b *Bot) showSearch(ctx context.Context, chatID int64, query string, page int) {
	query = strings.TrimSpace(query)
	if query == "" {
		b.sendText(chatID, "Usage: /search <text>")
		return
	}

	b.sendTyping(chatID)
	state := b.catalog.Search().Load(ctx, catalog.Request{Page: page, Query: query})
	if state.Err != "" {
		b.sendText(chatID, state.Err)
		return
	}

	b.sessions.setView(chatID, view{Query: query, Page: state.Page})
	b.sendListing(chatID, FormatMovieList(fmt.Sprintf("Results for %q", query), state), state)
}

// showDetail renders a movie's detail view with its poster.
func (b *Bot) showDetail(ctx context.Context, chatID int64, args string) {
	id, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		b.sendText(chatID, "Usage: /movie <id>")
		return
	}

	b.sendTyping(chatID)
	movie, err := b.catalog.Detail(ctx, id)
	if err != nil {
		b.sendText(chatID, catalog.ErrorMessage(err))
		return
	}

	b.sendPoster(chatID, movie.PosterPath)
	b.sendText(chatID, FormatMovieDetail(movie))
}

func (b *Bot) showGenres(ctx context.Context, chatID int64) {
	b.sendTyping(chatID)
	genres, err := b.catalog.Genres(ctx)
	if err != nil {
		b.sendText(chatID, catalog.ErrorMessage(err))
		return
	}
	b.sendText(chatID, FormatGenres(genres))
}

func (b *Bot) saveMovie(ctx context.Context, chatID int64, args string) {
	id, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		b.sendText(chatID, "Usage: /save <id>")
		return
	}

	movie, err := b.catalog.Detail(ctx, id)
	if err != nil {
		b.sendText(chatID, catalog.ErrorMessage(err))
		return
	}

	b.watchlist.Add(movie)
	b.sendText(chatID, fmt.Sprintf("Added %s to your watchlist.", movie.Title))
}

func (b *Bot) unsaveMovie(chatID int64, args string) {
	id, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		b.sendText(chatID, "Usage: /unsave <id>")
		return
	}

	if b.watchlist.Remove(id) {
		b.sendText(chatID, "Removed from your watchlist.")
		return
	}
	b.sendText(chatID, "That movie is not on your watchlist.")
}

func (b *Bot) showWatchlist(chatID int64) {
	items := b.watchlist.Items()
	if len(items) == 0 {
		b.sendText(chatID, "Your watchlist is empty. Use /save <id> to bookmark movies.")
		return
	}

	var sb strings.Builder
	sb.WriteString("Your watchlist:\n\n")
	for i, m := range items {
		fmt.Fprintf(&sb, "%d. %s (%s) [id %d]\n", i+1, m.Title, releaseYear(m.ReleaseDate), m.ID)
	}
	b.sendText(chatID, sb.String())
}

// sendListing sends a listing page with prev/next pagination buttons.
func (b *Bot) sendListing(chatID int64, text string, state catalog.State) {
	msg := tgbotapi.NewMessage(chatID, text)
	if kb := buildPageKeyboard(state); kb != nil {
		msg.ReplyMarkup = kb
	}
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send listing",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
	}
}

// buildPageKeyboard returns prev/next buttons for a multi-page listing,
// or nil when there is nothing to page through.
func buildPageKeyboard(state catalog.State) *tgbotapi.InlineKeyboardMarkup {
	var buttons []tgbotapi.InlineKeyboardButton
	if state.Page > 1 {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			"« Prev", pagePrefix+strconv.Itoa(state.Page-1)))
	}
	if state.Page < state.TotalPages {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			"Next »", pagePrefix+strconv.Itoa(state.Page+1)))
	}
	if len(buttons) == 0 {
		return nil
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(buttons...))
	return &kb
}

// sendText sends a plain text message (no parse mode).
func (b *Bot) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
	}
}

func (b *Bot) sendTyping(chatID int64) {
	typing := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	b.api.Send(typing) //nolint:errcheck // best-effort typing indicator
}

// sendPoster sends a movie poster photo. Best effort: a missing path or
// a send failure is silently ignored.
func (b *Bot) sendPoster(chatID int64, posterPath string) {
	url := b.catalog.PosterURL(posterPath, "w500")
	if url == "" {
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(url))
	if _, err := b.api.Send(photo); err != nil {
		b.logger.Debug("failed to send poster",
			slog.String("url", url),
			slog.String("error", err.Error()),
		)
	}
}

// splitCommand splits "/search dune 2" into ("search", "dune 2").
// Non-command text returns ("", text).
func splitCommand(text string) (command, args string) {
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	rest := strings.TrimPrefix(text, "/")
	command, args, _ = strings.Cut(rest, " ")
	// Strip bot-name suffix: "/search@clickmovie_bot".
	command, _, _ = strings.Cut(command, "@")
	return strings.ToLower(command), strings.TrimSpace(args)
}

package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
	"github.com/ykigathi/click-movie-studios-sub000/internal/search"
	"github.com/ykigathi/click-movie-studios-sub000/internal/watchlist"
)

// newBrowseCmd returns the "browse" subcommand for the interactive TUI.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: "Start the interactive catalog browser.\n" +
			"Use arrow keys to navigate, / to search, w to bookmark, q to quit.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBrowse()
		},
	}
}

// runBrowse wires the services and starts the Bubble Tea browser.
func runBrowse() error {
	a, err := initApp(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p := tea.NewProgram(newBrowseModel(ctx, a), tea.WithAltScreen())

	// Bridge OS signal cancellation into the Bubble Tea event loop.
	go func() {
		<-ctx.Done()
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}

// browseMode is the active screen of the browser.
type browseMode int

const (
	modeList browseMode = iota
	modeSearch
	modeDetail
)

// watchlistTab is the pseudo-tab index after the category tabs.
const watchlistTab = -1

// listLoadedMsg carries a finished listing load back to the TUI.
type listLoadedMsg struct {
	state catalog.State
}

// searchResultMsg carries a debounced search commit back to the TUI.
type searchResultMsg struct {
	state catalog.State
}

// detailLoadedMsg carries a detail fetch back to the TUI.
type detailLoadedMsg struct {
	movie catalog.Movie
	err   error
}

// browseModel is the Bubble Tea model for the catalog browser.
type browseModel struct {
	ctx       context.Context
	catalog   *catalog.Catalog
	watchlist *watchlist.Watchlist
	searcher  *search.Controller
	resultCh  chan catalog.State

	mode     browseMode
	tabs     []catalog.Category
	tabIdx   int // watchlistTab selects the watchlist view
	state    catalog.State
	cursor   int
	detail   catalog.Movie
	input    textinput.Model
	spinner  spinner.Model
	loading  bool
	errLine  string
	width    int
	height   int
}

// newBrowseModel creates a browseModel over the wired services.
func newBrowseModel(ctx context.Context, a *app) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.CharLimit = 200

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleInfo

	resultCh := make(chan catalog.State, 1)
	searcher := search.New(a.catalog.Search(), a.dataStore, a.catalog.Namespace(), search.DefaultDebounce, a.logger)
	searcher.OnResult = func(st catalog.State) { resultCh <- st }

	return browseModel{
		ctx:       ctx,
		catalog:   a.catalog,
		watchlist: a.watchlist,
		searcher:  searcher,
		resultCh:  resultCh,
		tabs:      catalog.Categories(),
		input:     ti,
		spinner:   s,
	}
}

// Init loads the first category.
func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.loadCategory(m.tabs[0], 1), m.spinner.Tick)
}

// Update handles incoming messages and user input.
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.width - 4
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case listLoadedMsg:
		m.loading = false
		m.state = msg.state
		m.errLine = msg.state.Err
		m.clampCursor()
		return m, nil

	case searchResultMsg:
		// A stale commit can land after leaving search mode.
		if m.mode != modeSearch {
			return m, m.waitForSearch()
		}
		m.loading = false
		m.state = msg.state
		m.errLine = msg.state.Err
		m.clampCursor()
		return m, m.waitForSearch()

	case detailLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errLine = catalog.ErrorMessage(msg.err)
			m.mode = modeList
			return m, nil
		}
		m.detail = msg.movie
		m.mode = modeDetail
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Forward remaining messages (cursor blink) to the search input.
	if m.mode == modeSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches key events per mode.
func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeSearch {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc":
		if m.mode == modeDetail {
			m.mode = modeList
		}
		return m, nil

	case "left", "shift+tab":
		if m.mode == modeList {
			return m.switchTab(-1)
		}
	case "right", "tab":
		if m.mode == modeList {
			return m.switchTab(1)
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.currentItems())-1 {
			m.cursor++
		}
		return m, nil

	case "n":
		return m.turnPage(1)
	case "p":
		return m.turnPage(-1)

	case "enter":
		if m.mode == modeList {
			return m.openDetail()
		}

	case "w":
		return m.toggleWatchlist()

	case "/":
		m.mode = modeSearch
		m.input.SetValue("")
		m.input.Focus()
		m.state = m.searcher.State()
		m.cursor = 0
		return m, tea.Batch(textinput.Blink, m.waitForSearch())
	}

	return m, nil
}

// handleSearchKey handles input while the search field is focused.
func (m browseModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.mode = modeList
		m.input.Blur()
		m.searcher.SetInput(m.ctx, "")
		m.tabIdx = 0
		m.cursor = 0
		return m, m.loadCategory(m.tabs[0], 1)

	case "enter":
		// One search waiter is always armed; no need for another.
		m.searcher.Commit(m.ctx)
		m.loading = true
		return m, m.spinner.Tick

	case "up", "down":
		// Let the list keys work while results are shown.
		if msg.String() == "up" && m.cursor > 0 {
			m.cursor--
		}
		if msg.String() == "down" && m.cursor < len(m.currentItems())-1 {
			m.cursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.searcher.SetInput(m.ctx, m.input.Value())
	m.loading = strings.TrimSpace(m.input.Value()) != ""
	return m, tea.Batch(cmd, m.spinner.Tick)
}

// switchTab moves between category tabs and the watchlist tab.
func (m browseModel) switchTab(delta int) (tea.Model, tea.Cmd) {
	// Order: categories, then watchlist at the end.
	idx := m.tabIdx
	if idx == watchlistTab {
		idx = len(m.tabs)
	}
	idx = (idx + delta + len(m.tabs) + 1) % (len(m.tabs) + 1)

	m.cursor = 0
	m.errLine = ""
	if idx == len(m.tabs) {
		m.tabIdx = watchlistTab
		m.state = catalog.State{}
		return m, nil
	}
	m.tabIdx = idx
	m.loading = true
	return m, tea.Batch(m.loadCategory(m.tabs[idx], 1), m.spinner.Tick)
}

// turnPage loads the adjacent page of the current listing.
func (m browseModel) turnPage(delta int) (tea.Model, tea.Cmd) {
	if m.tabIdx == watchlistTab || m.mode == modeDetail {
		return m, nil
	}
	page := m.state.Page + delta
	if page < 1 || (m.state.TotalPages > 0 && page > m.state.TotalPages) {
		return m, nil
	}

	m.loading = true
	m.cursor = 0
	if m.mode == modeSearch {
		st := m.searcher.LoadPage(m.ctx, page)
		m.loading = false
		m.state = st
		m.errLine = st.Err
		return m, nil
	}
	return m, tea.Batch(m.loadCategory(m.tabs[m.tabIdx], page), m.spinner.Tick)
}

// openDetail fetches the selected movie's detail view.
func (m browseModel) openDetail() (tea.Model, tea.Cmd) {
	items := m.currentItems()
	if m.cursor >= len(items) {
		return m, nil
	}
	id := items[m.cursor].ID
	m.loading = true
	return m, tea.Batch(m.loadDetail(id), m.spinner.Tick)
}

// toggleWatchlist bookmarks or unbookmarks the selected movie.
func (m browseModel) toggleWatchlist() (tea.Model, tea.Cmd) {
	var movie catalog.Movie
	switch m.mode {
	case modeDetail:
		movie = m.detail
	default:
		items := m.currentItems()
		if m.cursor >= len(items) {
			return m, nil
		}
		movie = items[m.cursor]
	}

	if m.watchlist.Contains(movie.ID) {
		m.watchlist.Remove(movie.ID)
	} else {
		m.watchlist.Add(movie)
	}
	if m.tabIdx == watchlistTab {
		m.clampCursor()
	}
	return m, nil
}

// currentItems returns the rows of the active view.
func (m browseModel) currentItems() []catalog.Movie {
	if m.tabIdx == watchlistTab && m.mode != modeSearch {
		return m.watchlist.Items()
	}
	return m.state.Items
}

func (m *browseModel) clampCursor() {
	if n := len(m.currentItems()); m.cursor >= n {
		m.cursor = 0
	}
}

// loadCategory returns a command that loads a category listing page.
func (m browseModel) loadCategory(cat catalog.Category, page int) tea.Cmd {
	slice := m.catalog.Category(cat)
	return func() tea.Msg {
		return listLoadedMsg{state: slice.Load(m.ctx, catalog.Request{Page: page})}
	}
}

// loadDetail returns a command that fetches a movie's detail fields.
func (m browseModel) loadDetail(id int) tea.Cmd {
	return func() tea.Msg {
		movie, err := m.catalog.Detail(m.ctx, id)
		return detailLoadedMsg{movie: movie, err: err}
	}
}

// waitForSearch returns a command that delivers the next debounced
// search result.
func (m browseModel) waitForSearch() tea.Cmd {
	return func() tea.Msg {
		return searchResultMsg{state: <-m.resultCh}
	}
}

// View renders the browser.
func (m browseModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")

	switch m.mode {
	case modeDetail:
		sb.WriteString(m.renderDetail())
	case modeSearch:
		sb.WriteString(m.input.View())
		sb.WriteString("\n\n")
		sb.WriteString(m.renderList())
	default:
		sb.WriteString(m.renderList())
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())
	return sb.String()
}

var (
	styleTabActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")).Underline(true)
	styleTab       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleCursor    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

// tabLabels are the display names of the category tabs.
var tabLabels = map[catalog.Category]string{
	catalog.Trending:   "Trending",
	catalog.NowPlaying: "Now Playing",
	catalog.TopRated:   "Top Rated",
	catalog.Upcoming:   "Upcoming",
}

func (m browseModel) renderTabs() string {
	if m.mode == modeSearch {
		return styleTabActive.Render("Search")
	}

	parts := make([]string, 0, len(m.tabs)+1)
	for i, cat := range m.tabs {
		label := tabLabels[cat]
		if i == m.tabIdx {
			parts = append(parts, styleTabActive.Render(label))
		} else {
			parts = append(parts, styleTab.Render(label))
		}
	}
	wlLabel := "Watchlist"
	if m.tabIdx == watchlistTab {
		parts = append(parts, styleTabActive.Render(wlLabel))
	} else {
		parts = append(parts, styleTab.Render(wlLabel))
	}
	return strings.Join(parts, styleDim.Render(" | "))
}

func (m browseModel) renderList() string {
	if m.loading {
		return m.spinner.View() + styleDim.Render(" Loading...")
	}
	if m.errLine != "" {
		return styleError.Render(m.errLine)
	}

	items := m.currentItems()
	if len(items) == 0 {
		if m.tabIdx == watchlistTab && m.mode != modeSearch {
			return styleDim.Render("Your watchlist is empty. Press w on a movie to bookmark it.")
		}
		return styleDim.Render("No movies found.")
	}

	var sb strings.Builder
	for i, movie := range items {
		prefix := "  "
		if i == m.cursor {
			prefix = styleCursor.Render("> ")
		}
		mark := " "
		if m.watchlist.Contains(movie.ID) {
			mark = styleSuccess.Render("*")
		}
		sb.WriteString(fmt.Sprintf("%s%s %s %s %s\n",
			prefix,
			mark,
			styleTitle.Render(movie.Title),
			styleDim.Render("("+releaseYear(movie.ReleaseDate)+")"),
			styleInfo.Render(fmt.Sprintf("%.1f", movie.VoteAverage)),
		))
	}

	if m.state.TotalPages > 1 && !(m.tabIdx == watchlistTab && m.mode != modeSearch) {
		sb.WriteString(styleDim.Render(fmt.Sprintf("\nPage %d of %d", m.state.Page, m.state.TotalPages)))
	}
	return sb.String()
}

func (m browseModel) renderDetail() string {
	d := m.detail
	var sb strings.Builder

	sb.WriteString(styleHeader.Render(d.Title) + " " + styleDim.Render("("+releaseYear(d.ReleaseDate)+")") + "\n")
	if d.Tagline != "" {
		sb.WriteString(styleDim.Render(d.Tagline) + "\n")
	}
	sb.WriteString(fmt.Sprintf("\n%s %.1f (%d votes)\n", styleDim.Render("Rating:"), d.VoteAverage, d.VoteCount))
	if d.Runtime > 0 {
		sb.WriteString(fmt.Sprintf("%s %d min\n", styleDim.Render("Runtime:"), d.Runtime))
	}
	if len(d.Genres) > 0 {
		names := make([]string, len(d.Genres))
		for i, g := range d.Genres {
			names[i] = g.Name
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", styleDim.Render("Genres:"), strings.Join(names, ", ")))
	}
	if m.watchlist.Contains(d.ID) {
		sb.WriteString(styleSuccess.Render("On your watchlist") + "\n")
	}
	if d.Overview != "" {
		sb.WriteString("\n" + d.Overview + "\n")
	}
	if len(d.Cast) > 0 {
		names := make([]string, 0, len(d.Cast))
		for _, c := range d.Cast {
			names = append(names, c.Name)
		}
		sb.WriteString("\n" + styleDim.Render("Cast: ") + strings.Join(names, ", ") + "\n")
	}
	return sb.String()
}

func (m browseModel) renderFooter() string {
	switch m.mode {
	case modeDetail:
		return styleDim.Render("esc back · w watchlist · q quit")
	case modeSearch:
		return styleDim.Render("enter search now · n/p page · esc back · ctrl+c quit")
	default:
		return styleDim.Render("←/→ tabs · ↑/↓ move · enter details · n/p page · / search · w watchlist · q quit")
	}
}

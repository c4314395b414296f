// Package tui provides the interactive Bubble Tea dashboard for cashburn.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/theirongolddev/cashburn/internal/cli"
	"github.com/theirongolddev/cashburn/internal/config"
	"github.com/theirongolddev/cashburn/internal/model"
	"github.com/theirongolddev/cashburn/internal/pipeline"
	"github.com/theirongolddev/cashburn/internal/session"
	"github.com/theirongolddev/cashburn/internal/tui/components"
	"github.com/theirongolddev/cashburn/internal/tui/theme"
)

// DataLoadedMsg is sent when the seed files finish loading.
type DataLoadedMsg struct {
	Expenses []model.Expense
	Files    int
	Errors   []error
	LoadTime time.Duration
}

// ProgressMsg reports seed file parsing progress.
type ProgressMsg struct {
	Current int
	Total   int
}

type exportDoneMsg struct {
	path string
	err  error
}

type flashExpiredMsg struct {
	id int
}

// Options configures a new App.
type Options struct {
	Session   *session.Session
	Config    config.Config
	Seeds     []string // CSV files or directories loaded at startup
	Days      int
	Category  model.Category
	NeedSetup bool
	Logger    *zap.Logger
}

// App is the root Bubble Tea model.
type App struct {
	sess  *session.Session
	cfg   config.Config
	log   *zap.Logger
	seeds []string

	// Recomputed on every ledger or filter change
	report   pipeline.Report
	loaded   bool
	loadTime time.Duration
	loadErrs []error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Filter state
	days     int
	category model.Category

	// Per-tab state
	expCursor int
	expOffset int

	// Add-expense form (huh), nil when closed
	addForm *huh.Form
	addVals *expenseValues

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool

	flash   string
	flashID int

	// Loading: channel-based progress subscription
	spinner     spinner.Model
	progress    int
	progressMax int
	loadSub     chan tea.Msg
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5
	flashDuration    = 3 * time.Second
)

const (
	tabOverview = iota
	tabExpenses
	tabCategories
	tabProjection
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	sess := opts.Session
	if sess == nil {
		sess = session.New(nil)
	}

	return App{
		sess:      sess,
		cfg:       opts.Config,
		log:       log.With(zap.String("session_id", sess.ID.String())),
		seeds:     opts.Seeds,
		days:      opts.Days,
		category:  opts.Category,
		needSetup: opts.NeedSetup,
		spinner:   sp,
		loadSub:   make(chan tea.Msg, 1),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.seeds, a.loadSub),
		a.spinner.Tick,
	)
}

func (a *App) reportOptions() pipeline.Options {
	return pipeline.Options{
		Days:     a.days,
		Category: a.category,
		Horizon:  a.cfg.Projection.HorizonDays,
	}
}

func (a *App) recompute() {
	a.report = a.sess.Report(a.reportOptions())

	if errors.Is(a.report.ProjectionErr, pipeline.ErrProjectionUnavailable) {
		a.log.Warn("projection unavailable", zap.Error(a.report.ProjectionErr),
			zap.Int("days", a.days), zap.String("category", string(a.category)))
	}

	// Clamp expenses cursor to the new list bounds
	a.expCursor = max(0, min(a.expCursor, len(a.report.Expenses)-1))
	a.expOffset = min(a.expOffset, a.expCursor)
}

// addExpense appends e to the session ledger and recomputes every view.
func (a *App) addExpense(e model.Expense) {
	a.sess.Add(e)
	a.log.Debug("expense added",
		zap.String("category", string(e.Category)),
		zap.String("amount", e.Amount.StringFixed(2)),
		zap.String("date", e.Date.Format(model.DateLayout)))
	a.recompute()
}

// submitExpense converts completed form values into an expense and adds it.
// The form is already closed, so the next add starts from cleared fields.
func (a *App) submitExpense(vals *expenseValues) tea.Cmd {
	e, err := vals.expense()
	if err != nil {
		return a.setFlash("Invalid expense: " + err.Error())
	}
	a.addExpense(e)
	return a.setFlash("Expense added!")
}

func (a *App) setFlash(msg string) tea.Cmd {
	a.flashID++
	a.flash = msg
	id := a.flashID
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{id: id}
	})
}

// cycleCategory steps the filter through all categories, then back to none.
func (a *App) cycleCategory() {
	if a.category == "" {
		a.category = model.Categories[0]
		return
	}
	for i, c := range model.Categories {
		if c == a.category {
			if i+1 < len(model.Categories) {
				a.category = model.Categories[i+1]
			} else {
				a.category = ""
			}
			return
		}
	}
	a.category = ""
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(formWidth(msg.Width))
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.setupForm != nil || a.addForm != nil {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return a, tea.Quit
		}
		if !a.loaded {
			return a, nil
		}

		// Forms intercept all keys while open
		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.addForm != nil {
			if msg.String() == "esc" {
				a.addForm = nil
				a.addVals = nil
				return a, nil
			}
			return a.updateAddForm(msg)
		}

		if key.Matches(msg, keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.updateKeys(msg)

	case DataLoadedMsg:
		for _, e := range msg.Expenses {
			a.sess.Add(e)
		}
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.loadErrs = msg.Errors
		a.recompute()

		a.log.Info("seed files loaded",
			zap.Int("files", msg.Files),
			zap.Int("expenses", len(msg.Expenses)),
			zap.Int("errors", len(msg.Errors)),
			zap.Duration("load_time", msg.LoadTime))
		for _, err := range msg.Errors {
			a.log.Warn("seed file skipped", zap.Error(err))
		}

		if a.needSetup {
			a.setupVals = newSetupValues(a.cfg)
			a.setupForm = newSetupForm(a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}

		var cmd tea.Cmd
		if len(msg.Errors) > 0 {
			cmd = a.setFlash(fmt.Sprintf("%s could not be loaded", cli.Pluralize(len(msg.Errors), "seed file")))
		}
		return a, cmd

	case ProgressMsg:
		a.progress = msg.Current
		a.progressMax = msg.Total
		return a, waitForLoadMsg(a.loadSub)

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case exportDoneMsg:
		if msg.err != nil {
			a.log.Error("export failed", zap.Error(msg.err))
			return a, a.setFlash("Export failed: " + msg.err.Error())
		}
		a.log.Info("ledger exported", zap.String("path", msg.path), zap.Int("expenses", a.sess.Len()))
		return a, a.setFlash("Exported to " + msg.path)

	case flashExpiredMsg:
		if msg.id == a.flashID {
			a.flash = ""
		}
		return a, nil
	}

	// Forward unhandled messages to open forms (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}

	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Add):
		a.addVals = newExpenseValues(time.Now())
		a.addForm = newExpenseForm(a.addVals, a.cfg.Display.CurrencySymbol)
		if a.width > 0 {
			a.addForm = a.addForm.WithWidth(formWidth(a.width))
		}
		return a, a.addForm.Init()

	case key.Matches(msg, keys.Filter):
		a.cycleCategory()
		a.recompute()
		return a, nil

	case key.Matches(msg, keys.Export):
		return a, exportCmd(a.sess.Expenses(), a.cfg.General.ExportDir, time.Now())

	case key.Matches(msg, keys.PrevTab):
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil

	case key.Matches(msg, keys.NextTab):
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if a.activeTab == tabExpenses {
		n := len(a.report.Expenses)
		switch {
		case key.Matches(msg, keys.Down):
			if a.expCursor < n-1 {
				a.expCursor++
			}
			return a, nil
		case key.Matches(msg, keys.Up):
			if a.expCursor > 0 {
				a.expCursor--
			}
			return a, nil
		case key.Matches(msg, keys.Top):
			a.expCursor, a.expOffset = 0, 0
			return a, nil
		case key.Matches(msg, keys.Bottom):
			a.expCursor = max(0, n-1)
			return a, nil
		}
	}

	if runes := msg.Runes; len(runes) == 1 {
		if idx := components.TabIdxByKey(runes[0]); idx >= 0 {
			a.activeTab = idx
		}
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabExpenses && a.expCursor > 0 {
			a.expCursor--
		}
	case tea.MouseButtonWheelDown:
		if a.activeTab == tabExpenses && a.expCursor < len(a.report.Expenses)-1 {
			a.expCursor++
		}
	case tea.MouseButtonLeft:
		// Tab bar is the first line
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	switch a.addForm.State {
	case huh.StateCompleted:
		vals := a.addVals
		a.addForm = nil
		a.addVals = nil
		return a, a.submitExpense(vals)

	case huh.StateAborted:
		a.addForm = nil
		a.addVals = nil
		return a, nil
	}

	return a, cmd
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		var flashCmd tea.Cmd
		if err := a.applySetup(); err != nil {
			a.log.Error("saving setup config", zap.Error(err))
			flashCmd = a.setFlash("Could not save config: " + err.Error())
		}
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, flashCmd

	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func (a App) currency() string {
	return a.cfg.Display.CurrencySymbol
}

func (a App) horizon() int {
	if a.cfg.Projection.HorizonDays > 0 {
		return a.cfg.Projection.HorizonDays
	}
	return 30
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  cashburn needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spinnerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	countStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ cashburn"))
	b.WriteString(subtitleStyle.Render(" · Expense Dashboard"))
	b.WriteString("\n\n")

	if a.progressMax > 0 {
		barW := max(20, min(40, a.width-30))
		pct := float64(a.progress) / float64(a.progressMax)
		b.WriteString(spinnerStyle.Render(a.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Loading seed files\n\n"))
		b.WriteString(components.ProgressBar(pct, barW))
		b.WriteString("\n")
		b.WriteString(countStyle.Render(cli.FormatNumber(int64(a.progress))))
		b.WriteString(subtitleStyle.Render(" / "))
		b.WriteString(countStyle.Render(cli.FormatNumber(int64(a.progressMax))))
	} else {
		b.WriteString(spinnerStyle.Render(a.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Starting session..."))
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")

	for _, section := range helpSections() {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(section.title))
		b.WriteString("\n")
		for _, bind := range section.bindings {
			h := bind.Help()
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", h.Key)),
				descStyle.Render(h.Desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + filter pill
	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pillAccent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	window := "all time"
	if a.days > 0 {
		window = fmt.Sprintf("%dd", a.days)
	}
	category := "all categories"
	if a.category != "" {
		category = string(a.category)
	}
	filterStr := pillStyle.Render(" ") + pillAccent.Render(window) +
		pillStyle.Render(" │ ") + pillAccent.Render(category) +
		pillStyle.Render(" │ "+cli.Pluralize(a.sess.Len(), "expense")+" logged ")

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Background(t.Surface).Width(w).Render(filterStr)

	// 2. Status bar
	info := fmt.Sprintf("session %s", a.sess.ID.String()[:8])
	statusBar := components.RenderStatusBar(w, a.flash, info)

	// 3. Content zone height
	contentH := max(minContentHeight, h-lipgloss.Height(header)-lipgloss.Height(statusBar))

	// 4. Tab content; the add form overlays the active tab
	var content string
	switch {
	case a.addForm != nil:
		content = a.renderAddForm(cw)
	case a.activeTab == tabOverview:
		content = a.renderOverviewTab(cw)
	case a.activeTab == tabExpenses:
		content = a.renderExpensesTab(cw, contentH)
	case a.activeTab == tabCategories:
		content = a.renderCategoriesTab(cw)
	case a.activeTab == tabProjection:
		content = a.renderProjectionTab(cw, contentH)
	}

	// 5. Truncate + pad to exactly contentH lines, fill backgrounds
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// infoMessage renders muted informational text inside a card.
func infoMessage(title, msg string, cw int) string {
	style := lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Background(theme.Active.Surface)
	return components.ContentCard(title, style.Render(msg), cw)
}

// chartDateLabels builds compact X-axis labels for a chronological date
// series. First label and month boundaries get "Jan 2", others the day only.
func chartDateLabels(dates []time.Time) []string {
	labels := make([]string, len(dates))
	prevMonth := time.Month(0)
	for i, dt := range dates {
		if i == 0 || dt.Month() != prevMonth {
			labels[i] = dt.Format("Jan 2")
		} else {
			labels[i] = dt.Format("2")
		}
		prevMonth = dt.Month()
	}
	return labels
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

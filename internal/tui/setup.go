package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/cashburn/internal/config"
	"github.com/theirongolddev/cashburn/internal/tui/theme"
)

// setupValues backs the first-run huh form.
type setupValues struct {
	currency string
	days     int
	horizon  string
	theme    string
}

var daysOptions = []struct {
	label string
	value int
}{
	{"All expenses", 0},
	{"Last 7 days", 7},
	{"Last 30 days", 30},
	{"Last 90 days", 90},
}

func newSetupValues(cfg config.Config) *setupValues {
	return &setupValues{
		currency: cfg.Display.CurrencySymbol,
		days:     cfg.General.DefaultDays,
		horizon:  strconv.Itoa(cfg.Projection.HorizonDays),
		theme:    cfg.Appearance.Theme,
	}
}

func validateHorizon(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 365 {
		return errHorizon
	}
	return nil
}

func newSetupForm(vals *setupValues) *huh.Form {
	dayOpts := make([]huh.Option[int], 0, len(daysOptions))
	for _, d := range daysOptions {
		dayOpts = append(dayOpts, huh.NewOption(d.label, d.value))
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to cashburn!").
				Description("Log expenses, see where the money goes, and how fast it is going.\nLet's set up a few things."),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Currency symbol").
				Value(&vals.currency).
				CharLimit(4),
			huh.NewSelect[int]().
				Title("Default time range").
				Options(dayOpts...).
				Value(&vals.days),
			huh.NewInput().
				Title("Projection horizon (days)").
				Value(&vals.horizon).
				Validate(validateHorizon),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	).WithTheme(theme.Active.Form()).WithShowHelp(false)
}

// apply copies the form values onto cfg.
func (v *setupValues) apply(cfg *config.Config) {
	if c := strings.TrimSpace(v.currency); c != "" {
		cfg.Display.CurrencySymbol = c
	}
	cfg.General.DefaultDays = v.days
	if n, err := strconv.Atoi(strings.TrimSpace(v.horizon)); err == nil && n > 0 {
		cfg.Projection.HorizonDays = n
	}
	cfg.Appearance.Theme = v.theme
}

// applySetup applies the completed setup form to the running app and
// saves it to disk.
func (a *App) applySetup() error {
	a.setupVals.apply(&a.cfg)
	a.days = a.cfg.General.DefaultDays
	theme.SetActive(a.cfg.Appearance.Theme)
	return config.Save(a.cfg)
}

var errHorizon = errors.New("enter a whole number of days between 1 and 365")

// RunSetup runs the setup wizard outside the dashboard and saves the result.
func RunSetup(cfg config.Config) (config.Config, error) {
	vals := newSetupValues(cfg)
	if err := newSetupForm(vals).Run(); err != nil {
		return cfg, err
	}
	vals.apply(&cfg)
	return cfg, config.Save(cfg)
}

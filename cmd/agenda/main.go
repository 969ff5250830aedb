package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/agenda"
	"github.com/smileynet/agenda/internal/app"
	"github.com/smileynet/agenda/internal/config"
	"github.com/smileynet/agenda/internal/contact"
	"github.com/smileynet/agenda/internal/dashboard"
	"github.com/smileynet/agenda/internal/logging"
	"github.com/smileynet/agenda/internal/seed"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// localSeedDir overrides embedded seeds with files of the same name.
const localSeedDir = ".agenda/seeds"

// errNoTTY is returned when the interactive screen is started without a terminal.
var errNoTTY = errors.New("ui: requires a terminal (TTY)")

// CLI is the top-level command structure for agenda.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	UI      UICmd            `cmd:"" help:"Open the interactive contact screen."`
	List    ListCmd          `cmd:"" help:"Print the preloaded contacts as plain text."`
}

// SeedFlags selects the contacts preloaded at startup. Nothing is written back.
type SeedFlags struct {
	Seed string `help:"YAML file of contacts to preload (read-only)." type:"path" xor:"seed"`
	Demo bool   `help:"Preload the embedded demo contacts." xor:"seed"`
}

// apply overrides the config seed settings with any flags given.
func (f SeedFlags) apply(cfg *config.Config) {
	if f.Seed != "" {
		cfg.Seed.Path = f.Seed
		cfg.Seed.Demo = false
	}
	if f.Demo {
		cfg.Seed.Demo = true
		cfg.Seed.Path = ""
	}
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/agenda/config.yaml"),
		".agenda/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSeed returns the contacts selected by s. A local file under
// localSeedDir shadows the embedded demo seed.
func loadSeed(s config.Seed) ([]contact.Contact, error) {
	switch {
	case s.Path != "":
		return seed.Load(s.Path)
	case s.Demo:
		return seed.LoadFS(agenda.OverlayFS(localSeedDir, agenda.Seeds), agenda.DemoSeed)
	default:
		return nil, nil
	}
}

// setup resolves config, opens the log and builds the application state.
// The returned close function releases the log file.
func setup(flags SeedFlags) (*config.Config, *app.State, func() error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	logger, closeLog, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, nil, nil, err
	}

	contacts, err := loadSeed(cfg.Seed)
	if err != nil {
		_ = closeLog()
		return nil, nil, nil, err
	}
	logger.Info("starting", "version", version, "contacts", len(contacts), "seed", cfg.Seed.Path, "demo", cfg.Seed.Demo)

	state := app.New(app.WithLogger(logger), app.WithContacts(contacts...))
	return cfg, state, closeLog, nil
}

// --- UI command ---

// UICmd opens the interactive contact screen.
type UICmd struct {
	SeedFlags `embed:""`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds the state and launches the contact screen.
func (u *UICmd) Run() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errNoTTY
	}

	cfg, state, closeLog, err := setup(u.SeedFlags)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	defer func() { _ = closeLog() }()

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	prog := tea.NewProgram(dashboard.NewModel(state), opts...)
	return u.run(true, prog)
}

// run executes the tea program, enabling testable wiring.
func (u *UICmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return errNoTTY
	}
	_, err := prog.Run()
	return err
}

// --- List command ---

// ListCmd prints the preloaded contacts, one per line.
type ListCmd struct {
	SeedFlags `embed:""`
}

// Run builds the state and prints it to stdout.
func (l *ListCmd) Run() error {
	_, state, closeLog, err := setup(l.SeedFlags)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	defer func() { _ = closeLog() }()
	return l.run(os.Stdout, state)
}

// run writes the contacts in state to w.
func (l *ListCmd) run(w io.Writer, state *app.State) error {
	contacts := state.Contacts()
	if len(contacts) == 0 {
		_, err := fmt.Fprintln(w, dashboard.EmptyListText)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range contacts {
		_, _ = fmt.Fprintf(tw, "[%s]\t%s\t%s\t%s\n", contact.Initial(c.Name), c.Name, c.Number, c.Category)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d contacts\n", len(contacts))
	return err
}

const (
	exitSuccess = 0
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code. Every failure is a
// setup failure: the screen itself never ends with an error.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("agenda"),
		kong.Description("A terminal contact list."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

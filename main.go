package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"

	"justfetch/internal/color"
	"justfetch/internal/config"
	"justfetch/internal/engine"
	"justfetch/internal/errors"
	"justfetch/internal/logging"
	"justfetch/internal/model"
	"justfetch/internal/report"
	"justfetch/internal/shell"
	"justfetch/internal/sysinfo"
	"justfetch/internal/tui"
	"justfetch/internal/web"
)

//go:embed help.md
var helpMD string

// Flag value meaning "use the interval or address from settings".
const fromSettings = "settings"

// Upstream repository checked by --update.
const (
	repoOwner = "vars1ty"
	repoName  = "JustFetch"
)

func releasesURL() string {
	return fmt.Sprintf("https://github.com/%s/%s/releases", repoOwner, repoName)
}

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      repoOwner,
		Repository: repoName,
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from " + releasesURL())
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func printHelp(w io.Writer, tty bool) {
	if tty {
		renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
		if err == nil {
			if out, err := renderer.Render(helpMD); err == nil {
				fmt.Fprint(w, out)
				return
			}
		}
	}
	fmt.Fprint(w, helpMD)
}

type options struct {
	config  string
	raw     bool
	elapsed bool
	color   string
	json    bool
	report  bool
	output  string
	watch   string
	serve   string
	verbose int
}

func main() {
	var opts options
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: justfetch [options]\n\n")
		fmt.Fprintf(os.Stderr, "justfetch prints system information from a template.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  justfetch              # Print the resolved template\n")
		fmt.Fprintf(os.Stderr, "  justfetch --elapsed    # ...and how long it took\n")
		fmt.Fprintf(os.Stderr, "  justfetch --report     # Describe the template\n")
		fmt.Fprintf(os.Stderr, "  justfetch --watch=5s   # Refresh every five seconds\n")
	}

	pflag.StringVarP(&opts.config, "config", "c", "", "Template file to resolve")
	pflag.BoolVar(&opts.raw, "raw", false, "Skip command substitution")
	pflag.BoolVar(&opts.elapsed, "elapsed", false, "Print how long resolving took")
	pflag.StringVar(&opts.color, "color", "", "Color mode: auto, always or never")
	pflag.BoolVarP(&opts.json, "json", "j", false, "Print the collected facts as JSON")
	pflag.BoolVarP(&opts.report, "report", "r", false, "Describe the template without running commands")
	pflag.StringVarP(&opts.output, "output", "o", "", "Save the report to the specified file (combined with --report)")
	pflag.StringVarP(&opts.watch, "watch", "w", "", "Re-resolve the template every interval in a full-screen view")
	pflag.Lookup("watch").NoOptDefVal = fromSettings
	pflag.StringVar(&opts.serve, "serve", "", "Serve the resolved template over HTTP on addr")
	pflag.Lookup("serve").NoOptDefVal = fromSettings
	pflag.CountVarP(&opts.verbose, "verbose", "v", "Increase log verbosity (-v, -vv, -vvv)")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		printHelp(os.Stdout, isatty.IsTerminal(os.Stdout.Fd()))
		return
	}

	if *versionFlag {
		fmt.Printf("justfetch version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		stop()
		os.Exit(1)
	}
}

// app holds the collaborators shared by every mode.
type app struct {
	cfg       *config.Config
	facts     engine.FactProvider
	executor  *shell.Executor
	resolver  *engine.Resolver
	colorless *engine.Resolver
	logger    zerolog.Logger
}

func run(ctx context.Context, opts options) error {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[JustFetch]: %v\n", err)
		return err
	}
	logging.SetupLogger(opts.verbose, env.LogLevel)
	logger := logging.GetLogger("main")

	cfg, err := config.Load(env, opts.config, logger)
	if err != nil {
		printError(os.Stderr, err, "")
		return err
	}

	a, err := newApp(cfg, opts, logger)
	if err != nil {
		printError(os.Stderr, err, "")
		return err
	}

	switch {
	case opts.json:
		err = a.runJSON(ctx, os.Stdout)
	case opts.report:
		err = a.runReport(ctx, opts.output, opts.verbose > 0)
	case opts.watch != "":
		err = a.runWatch(ctx, opts.watch)
	case opts.serve != "":
		err = a.runServe(ctx, opts.serve)
	default:
		err = a.runOnce(ctx, os.Stdout, opts.elapsed)
	}
	if err != nil {
		printError(os.Stderr, err, cfg.Template.Text)
	}
	return err
}

func newApp(cfg *config.Config, opts options, logger zerolog.Logger) (*app, error) {
	mode := cfg.Settings.ColorMode()
	if opts.color != "" {
		m, err := color.ParseMode(opts.color)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid --color")
		}
		mode = m
	}

	engineLogger := logging.GetLogger("engine")
	shellLogger := logging.GetLogger("shell")
	engineOpts := engine.Options{
		Marker:       cfg.Settings.Marker,
		Sentinel:     cfg.Settings.Sentinel,
		Colorizer:    color.New(mode, os.Stdout, cfg.Env.ColorDisabled()),
		SkipCommands: opts.raw,
		Logger:       &engineLogger,
	}
	plain := engineOpts
	plain.Colorizer = color.Plain()

	return &app{
		cfg:       cfg,
		facts:     sysinfo.New(cfg.Env.Shell),
		executor:  &shell.Executor{Shell: cfg.Settings.Shell, Logger: &shellLogger},
		resolver:  engine.New(engineOpts),
		colorless: engine.New(plain),
		logger:    logger,
	}, nil
}

func (a *app) runOnce(ctx context.Context, w io.Writer, showElapsed bool) error {
	start := time.Now()
	out, err := a.resolver.Resolve(ctx, a.cfg.Template.Text, a.facts, a.executor)
	if err != nil {
		return err
	}
	fmt.Fprint(w, withNewline(out))
	if showElapsed {
		fmt.Fprintln(w, formatElapsed(time.Since(start)))
	}
	return nil
}

func (a *app) runJSON(ctx context.Context, w io.Writer) error {
	facts, err := a.facts.Facts(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(facts)
}

func (a *app) buildReport(ctx context.Context) (report.Report, error) {
	in, err := a.resolver.Inspect(a.cfg.Template.Text)
	if err != nil {
		return report.Report{}, err
	}
	var facts *model.Facts
	if len(in.Tags) > 0 {
		f, err := a.facts.Facts(ctx)
		if err != nil {
			a.logger.Warn().Err(err).Msg("Could not collect facts for the report")
		} else {
			facts = &f
		}
	}
	return report.New(a.cfg.Template.Path, a.cfg.Template.Default, in, facts), nil
}

func (a *app) runReport(ctx context.Context, outputFile string, verbose bool) error {
	rep, err := a.buildReport(ctx)
	if err != nil {
		return err
	}
	text := report.Generate(rep, verbose)

	if outputFile == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "failed to write report to %s", outputFile)
	}
	fmt.Printf("Report saved to %s\n", outputFile)
	return nil
}

func (a *app) runWatch(ctx context.Context, interval string) error {
	every := a.cfg.Settings.WatchInterval
	if interval != fromSettings {
		d, err := time.ParseDuration(interval)
		if err != nil || d <= 0 {
			return errors.Newf(errors.ErrInvalidInput, "invalid --watch interval %q", interval)
		}
		every = d
	}

	render := func(ctx context.Context) (string, error) {
		return a.resolver.Resolve(ctx, a.cfg.Template.Text, a.facts, a.executor)
	}
	m := tui.InitialModel(ctx, render, every)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return errors.Wrap(err, errors.ErrInternal, "watch mode failed")
	}
	return nil
}

func (a *app) runServe(ctx context.Context, addr string) error {
	if addr == fromSettings {
		addr = a.cfg.Settings.Listen
	}
	render := func(ctx context.Context) (string, error) {
		return a.colorless.Resolve(ctx, a.cfg.Template.Text, a.facts, a.executor)
	}
	srv := web.NewServer(render, a.facts, a.buildReport, logging.GetLogger("web"))
	fmt.Printf("Serving justfetch at http://%s\n", addr)
	return srv.ListenAndServe(ctx, addr)
}

// formatElapsed renders d the way --elapsed prints it.
func formatElapsed(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000
	return fmt.Sprintf("[JustFetch]: Took %.3fms, %s in total", ms, d.Round(10*time.Microsecond))
}

func withNewline(s string) string {
	if s == "" || s[len(s)-1] == '\n' {
		return s
	}
	return s + "\n"
}

// printError writes err and, when it names a template line, that line with
// its neighbours.
func printError(w io.Writer, err error, template string) {
	fmt.Fprintf(w, "[JustFetch]: %v\n", err)
	if line := errors.Line(err); line > 0 && template != "" {
		fmt.Fprint(w, model.LineContextAt(template, line).String())
	}
}

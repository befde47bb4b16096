package main

import (
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	charmLog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hylla/syssla/internal/adapters/server"
	"github.com/hylla/syssla/internal/adapters/storage/sqlite"
	"github.com/hylla/syssla/internal/app"
	"github.com/hylla/syssla/internal/config"
	"github.com/hylla/syssla/internal/platform"
	"github.com/hylla/syssla/internal/tui"
)

// version stores a package-level helper value.
var version = "dev"

// program represents program data used by this package.
type program interface {
	Run() (tea.Model, error)
}

// programFactory stores a package-level helper value.
var programFactory = func(m tea.Model) program {
	return tea.NewProgram(m)
}

// rootFlags holds values bound to persistent flags.
type rootFlags struct {
	configPath string
	dbPath     string
	devMode    bool
}

// runtimeEnv is the resolved config/path/logger state every command starts from.
type runtimeEnv struct {
	configPath string
	dbPath     string
	devMode    bool
	paths      platform.Paths
	cfg        config.Config
	logger     *runtimeLogger
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fang.Execute(ctx, newRootCmd(os.Stdout, os.Stderr), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the syssla command tree.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "syssla",
		Short:         "A three-pane terminal todo manager",
		Long:          "syssla manages tasks and projects in a three-pane terminal interface backed by a local sqlite database.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), flags, stderr)
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config TOML")
	root.PersistentFlags().StringVar(&flags.dbPath, "db", "", "path to sqlite database")
	root.PersistentFlags().BoolVar(&flags.devMode, "dev", defaultDevMode(), "use dev mode paths (syssla-dev)")

	root.AddCommand(newPathsCmd(flags, stdout))
	root.AddCommand(newExportCmd(flags, stdout, stderr))
	root.AddCommand(newImportCmd(flags, stderr))
	root.AddCommand(newServeCmd(flags, stderr))
	root.AddCommand(newThemesCmd(stdout))
	return root
}

// newThemesCmd previews every registered theme's color tokens.
func newThemesCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "Preview the registered color themes",
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, name := range tui.ThemeNames() {
				theme := tui.ThemeByName(name)
				label := lipgloss.NewStyle().Bold(true).Width(18).Render(name)
				swatches := make([]string, 0, 7)
				for _, token := range []struct {
					name  string
					color color.Color
				}{
					{"primary", theme.Primary},
					{"accent", theme.Accent},
					{"error", theme.Error},
					{"surface", theme.Surface},
					{"background", theme.Background},
					{"text", theme.Text},
					{"muted", theme.Muted},
				} {
					swatch := lipgloss.NewStyle().
						Background(token.color).
						Padding(0, 1).
						Render(token.name)
					swatches = append(swatches, swatch)
				}
				_, _ = fmt.Fprintln(stdout, label+strings.Join(swatches, " "))
			}
			return nil
		},
	}
}

// defaultDevMode resolves the --dev default from build version and environment.
func defaultDevMode() bool {
	def := version == "dev"
	if env, ok := parseBoolEnv("SYSSLA_DEV_MODE"); ok {
		def = env
	}
	return def
}

// newPathsCmd prints resolved config and data locations.
func newPathsCmd(flags *rootFlags, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print resolved config and data paths",
		RunE: func(_ *cobra.Command, _ []string) error {
			paths, err := platform.DefaultPathsWithOptions(platform.Options{
				AppName: "syssla",
				DevMode: flags.devMode,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(stdout, "dev_mode: %t\n", flags.devMode)
			_, _ = fmt.Fprintf(stdout, "config: %s\n", paths.ConfigPath)
			_, _ = fmt.Fprintf(stdout, "data_dir: %s\n", paths.DataDir)
			_, _ = fmt.Fprintf(stdout, "db: %s\n", paths.DBPath)
			return nil
		},
	}
}

// newExportCmd writes a JSON snapshot of every project and task.
func newExportCmd(flags *rootFlags, stdout, stderr io.Writer) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export projects and tasks as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := resolveRuntime(flags, stderr, "export")
			if err != nil {
				return err
			}
			defer env.close(stderr)

			svc, closeRepo, err := env.openService()
			if err != nil {
				return err
			}
			defer closeRepo()

			snap, err := svc.ExportSnapshot(cmd.Context())
			if err != nil {
				return fmt.Errorf("export snapshot: %w", err)
			}
			encoded, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return fmt.Errorf("encode snapshot json: %w", err)
			}
			encoded = append(encoded, '\n')

			if outPath == "-" {
				if _, err := stdout.Write(encoded); err != nil {
					return fmt.Errorf("write snapshot to stdout: %w", err)
				}
				return nil
			}
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return fmt.Errorf("create export output dir: %w", err)
			}
			if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			env.logger.Info("snapshot exported", "path", outPath, "projects", len(snap.Projects), "tasks", len(snap.Tasks))
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "-", "output file path ('-' for stdout)")
	return cmd
}

// newImportCmd loads a JSON snapshot into the database.
func newImportCmd(flags *rootFlags, stderr io.Writer) *cobra.Command {
	var inPath string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a JSON snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(inPath) == "" {
				return fmt.Errorf("--in is required")
			}
			env, err := resolveRuntime(flags, stderr, "import")
			if err != nil {
				return err
			}
			defer env.close(stderr)

			svc, closeRepo, err := env.openService()
			if err != nil {
				return err
			}
			defer closeRepo()

			content, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}
			var snap app.Snapshot
			if err := json.Unmarshal(content, &snap); err != nil {
				return fmt.Errorf("decode snapshot json: %w", err)
			}
			if err := svc.ImportSnapshot(cmd.Context(), snap); err != nil {
				return fmt.Errorf("import snapshot: %w", err)
			}
			env.logger.Info("snapshot imported", "path", inPath, "projects", len(snap.Projects), "tasks", len(snap.Tasks))
			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "input snapshot JSON file")
	return cmd
}

// newServeCmd exposes the task store over a local MCP endpoint.
func newServeCmd(flags *rootFlags, stderr io.Writer) *cobra.Command {
	var (
		bind     string
		endpoint string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve tasks over a local MCP endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := resolveRuntime(flags, stderr, "serve")
			if err != nil {
				return err
			}
			defer env.close(stderr)

			svc, closeRepo, err := env.openService()
			if err != nil {
				return err
			}
			defer closeRepo()

			env.logger.Info("serving mcp", "bind", bind, "endpoint", endpoint)
			return server.Run(cmd.Context(), server.Config{
				HTTPBind:      bind,
				MCPEndpoint:   endpoint,
				ServerName:    "syssla",
				ServerVersion: version,
			}, svc)
		},
	}
	cmd.Flags().StringVar(&bind, "bind", "", "listen address (default 127.0.0.1:8080)")
	cmd.Flags().StringVar(&endpoint, "mcp-endpoint", "/mcp", "MCP endpoint path")
	return cmd
}

// runTUI resolves runtime state and runs the interactive program loop.
func runTUI(_ context.Context, flags *rootFlags, stderr io.Writer) error {
	env, err := resolveRuntime(flags, stderr, "tui")
	if err != nil {
		return err
	}
	// Keep TUI rendering clean: runtime logs stay in the dev-file sink while
	// the panes are active.
	env.logger.SetConsoleEnabled(false)
	defer env.close(stderr)

	svc, closeRepo, err := env.openService()
	if err != nil {
		return err
	}
	defer closeRepo()

	configPath := env.configPath
	m := tui.NewModel(
		svc,
		tui.WithTheme(env.cfg.Theme.Name),
		tui.WithDateFormat(env.cfg.UI.DateFormat),
		tui.WithShowDescriptions(env.cfg.UI.ShowDescriptions),
		tui.WithConfirmDeletions(env.cfg.Confirm.Deletions),
		tui.WithThemeSaver(func(name string) error {
			env.logger.Info("theme update requested", "theme", name, "config_path", configPath)
			if err := config.UpsertTheme(configPath, name); err != nil {
				env.logger.Error("theme update failed", "theme", name, "err", err)
				return err
			}
			return nil
		}),
		tui.WithLogger(env.logger.ModelSink()),
	)

	env.logger.Info("starting tui program loop")
	if _, err := programFactory(m).Run(); err != nil {
		env.logger.Error("tui program terminated with error", "err", err)
		return fmt.Errorf("run tui program: %w", err)
	}
	env.logger.Info("command flow complete", "command", "tui")
	return nil
}

// resolveRuntime merges flags, environment, and the config file into one state.
func resolveRuntime(flags *rootFlags, stderr io.Writer, command string) (*runtimeEnv, error) {
	paths, err := platform.DefaultPathsWithOptions(platform.Options{
		AppName: "syssla",
		DevMode: flags.devMode,
	})
	if err != nil {
		return nil, err
	}

	configPath := strings.TrimSpace(flags.configPath)
	if configPath == "" {
		if envPath := strings.TrimSpace(os.Getenv("SYSSLA_CONFIG")); envPath != "" {
			configPath = envPath
		} else {
			configPath = paths.ConfigPath
		}
	}
	dbPath := strings.TrimSpace(flags.dbPath)
	dbOverridden := dbPath != ""
	if !dbOverridden {
		if envPath := strings.TrimSpace(os.Getenv("SYSSLA_DB_PATH")); envPath != "" {
			dbPath = envPath
			dbOverridden = true
		} else {
			dbPath = paths.DBPath
		}
	}

	cfg, err := config.Load(configPath, config.Default(dbPath))
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", configPath, err)
	}
	if dbOverridden {
		cfg.Database.Path = dbPath
	}

	logger, err := newRuntimeLogger(stderr, flags.devMode, cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("configure runtime logger: %w", err)
	}
	logger.Info("startup configuration resolved", "command", command, "dev_mode", flags.devMode)
	logger.Debug("runtime paths resolved", "config_path", configPath, "db_path", cfg.Database.Path)

	return &runtimeEnv{
		configPath: configPath,
		dbPath:     cfg.Database.Path,
		devMode:    flags.devMode,
		paths:      paths,
		cfg:        cfg,
		logger:     logger,
	}, nil
}

// openService opens the sqlite repository and wraps it in the app service.
func (e *runtimeEnv) openService() (*app.Service, func(), error) {
	e.logger.Info("opening sqlite repository", "db_path", e.cfg.Database.Path)
	repo, err := sqlite.Open(e.cfg.Database.Path)
	if err != nil {
		e.logger.Error("sqlite open failed", "db_path", e.cfg.Database.Path, "err", err)
		return nil, nil, fmt.Errorf("open sqlite repository: %w", err)
	}
	closeRepo := func() {
		if closeErr := repo.Close(); closeErr != nil {
			e.logger.Warn("sqlite close failed", "db_path", e.cfg.Database.Path, "err", closeErr)
		}
	}
	svc := app.NewService(repo, uuid.NewString, nil, app.ServiceConfig{
		ConfirmDeletions: e.cfg.Confirm.Deletions,
	})
	return svc, closeRepo, nil
}

// close flushes the runtime logger sinks.
func (e *runtimeEnv) close(stderr io.Writer) {
	if err := e.logger.Close(); err != nil && e.logger.consoleEnabled {
		_, _ = fmt.Fprintf(stderr, "warning: close runtime log sink: %v\n", err)
	}
}

// parseBoolEnv parses input into a normalized form.
func parseBoolEnv(name string) (bool, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// runtimeLogger fans log events to a styled console sink and an optional dev-file sink.
type runtimeLogger struct {
	sinks          []*charmLog.Logger
	consoleSink    *charmLog.Logger
	fileSink       *charmLog.Logger
	consoleEnabled bool
	closeFile      func() error
	devLog         string
}

// newRuntimeLogger configures runtime log sinks from CLI/config state.
func newRuntimeLogger(stderr io.Writer, devMode bool, cfg config.LoggingConfig) (*runtimeLogger, error) {
	level, err := charmLog.ParseLevel(levelOrDefault(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", cfg.Level, err)
	}
	if stderr == nil {
		stderr = io.Discard
	}

	consoleLogger := charmLog.NewWithOptions(stderr, charmLog.Options{
		Level:           level,
		Prefix:          "syssla",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       charmLog.TextFormatter,
	})

	logger := &runtimeLogger{
		sinks:          []*charmLog.Logger{consoleLogger},
		consoleSink:    consoleLogger,
		consoleEnabled: true,
	}
	devLogPath := strings.TrimSpace(cfg.DevFile)
	if !devMode || devLogPath == "" {
		return logger, nil
	}

	if err := os.MkdirAll(filepath.Dir(devLogPath), 0o755); err != nil {
		return nil, fmt.Errorf("create dev log dir: %w", err)
	}
	logFile, err := os.OpenFile(devLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open dev log file: %w", err)
	}

	// Keep file output parseable and unstyled while preserving styled console logs.
	fileLogger := charmLog.NewWithOptions(logFile, charmLog.Options{
		Level:           level,
		Prefix:          "syssla",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       charmLog.LogfmtFormatter,
	})
	logger.sinks = append(logger.sinks, fileLogger)
	logger.fileSink = fileLogger
	logger.closeFile = logFile.Close
	logger.devLog = devLogPath
	return logger, nil
}

// levelOrDefault maps an empty configured level to info.
func levelOrDefault(level string) string {
	level = strings.TrimSpace(level)
	if level == "" {
		return "info"
	}
	return level
}

// ModelSink returns the logger the TUI model should use for diagnostics.
// The dev-file sink keeps rendering clean; without one, logs are dropped.
func (l *runtimeLogger) ModelSink() *charmLog.Logger {
	if l != nil && l.fileSink != nil {
		return l.fileSink
	}
	return charmLog.New(io.Discard)
}

// DevLogPath returns the active dev log file path.
func (l *runtimeLogger) DevLogPath() string {
	if l == nil {
		return ""
	}
	return l.devLog
}

// Close closes the optional dev-file sink.
func (l *runtimeLogger) Close() error {
	if l == nil || l.closeFile == nil {
		return nil
	}
	return l.closeFile()
}

// SetConsoleEnabled toggles whether the console sink receives runtime events.
func (l *runtimeLogger) SetConsoleEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.consoleEnabled = enabled
}

// shouldLogToSink reports whether one sink should receive runtime output.
func (l *runtimeLogger) shouldLogToSink(sink *charmLog.Logger) bool {
	if l == nil || sink == nil {
		return false
	}
	if sink == l.consoleSink && !l.consoleEnabled {
		return false
	}
	return true
}

// Debug logs a debug event to all configured sinks.
func (l *runtimeLogger) Debug(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	for _, sink := range l.sinks {
		if !l.shouldLogToSink(sink) {
			continue
		}
		sink.Debug(msg, keyvals...)
	}
}

// Info logs an informational event to all configured sinks.
func (l *runtimeLogger) Info(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	for _, sink := range l.sinks {
		if !l.shouldLogToSink(sink) {
			continue
		}
		sink.Info(msg, keyvals...)
	}
}

// Warn logs a warning event to all configured sinks.
func (l *runtimeLogger) Warn(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	for _, sink := range l.sinks {
		if !l.shouldLogToSink(sink) {
			continue
		}
		sink.Warn(msg, keyvals...)
	}
}

// Error logs an error event to all configured sinks.
func (l *runtimeLogger) Error(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	for _, sink := range l.sinks {
		if !l.shouldLogToSink(sink) {
			continue
		}
		sink.Error(msg, keyvals...)
	}
}

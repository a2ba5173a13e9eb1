package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"jsonstore/internal/config"
	"jsonstore/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Flags and JSONSTORE_* variables, read when the App is built.
	v   *viper.Viper
	Out io.Writer
	Err io.Writer
}

// NewProvider creates a provider that builds its App from flags and
// environment variables.
func NewProvider(out, errOut io.Writer) *AppProvider {
	return &AppProvider{
		v:   config.NewViper(),
		Out: out,
		Err: errOut,
	}
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a test App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app: app,
		Out: app.Out,
		Err: app.Err,
	}
}

// JSONOutput reports whether --json was requested, without opening the store.
func (p *AppProvider) JSONOutput() bool {
	if p.v == nil {
		return p.app != nil && p.app.JSON
	}
	return p.v.GetBool(config.KeyJSON)
}

func (p *AppProvider) init() (*App, error) {
	cfg := config.FromViper(p.v)

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	dir, err := cfg.ResolveDir()
	if err != nil {
		return nil, err
	}

	validator, err := cfg.LoadSchema()
	if err != nil {
		return nil, err
	}

	var defaults any
	if cfg.DefaultsFile != "" {
		d, err := config.LoadDefaults(cfg.DefaultsFile)
		if err != nil {
			return nil, err
		}
		defaults = d
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	s, err := store.New(store.Options{
		Name:     cfg.Name,
		Dir:      dir,
		Schema:   validator,
		Defaults: defaults,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("store opened", "path", s.Path())

	return &App{
		Store: s,
		Out:   out,
		Err:   errOut,
		JSON:  cfg.JSON,
	}, nil
}

// Execute runs the CLI.
func Execute() error {
	config.LoadEnvFiles(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := NewProvider(os.Stdout, os.Stderr)
	rootCmd, err := newRootCmd(provider)
	if err != nil {
		return err
	}
	return rootCmd.ExecuteContext(ctx)
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "jsonstore",
		Short: "Read and write a schema-validated JSON file",
		Long: `jsonstore manages a single JSON object stored in a file.

Every command re-reads the file, so hand edits are always visible. A file
that cannot be parsed or fails schema validation is copied to <file>.bak
and reset to the defaults.

By default the file lives in the project root (the nearest parent directory
containing go.mod or .git), or in the OS config directory outside a project.

Flags may also be set through JSONSTORE_* environment variables or a .env
file in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - bound to viper so JSONSTORE_* variables apply too
	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyDir, "", "Directory holding the store file (default: project root)")
	flags.String(config.KeyName, store.DefaultName, "Store file name")
	flags.String(config.KeySchema, "", "Path to a JSON Schema document")
	flags.String(config.KeyDefaults, "", "Path to a defaults file (.json, .yaml, .yml, .toml)")
	flags.Bool(config.KeyStrict, false, "Reject keys not declared in the schema")
	flags.Bool(config.KeyJSON, false, "Output in JSON format")
	flags.BoolP(config.KeyVerbose, "v", false, "Log debug output to stderr")
	if provider.v != nil {
		if err := config.Bind(provider.v, flags); err != nil {
			return nil, err
		}
	}

	rootCmd.AddCommand(newPathCmd(provider))
	rootCmd.AddCommand(newReadCmd(provider))
	rootCmd.AddCommand(newGetCmd(provider))
	rootCmd.AddCommand(newSetCmd(provider))
	rootCmd.AddCommand(newHasCmd(provider))
	rootCmd.AddCommand(newDeleteCmd(provider))
	rootCmd.AddCommand(newKeysCmd(provider))
	rootCmd.AddCommand(newResetCmd(provider))
	rootCmd.AddCommand(newRmCmd(provider))
	rootCmd.AddCommand(newWatchCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd, nil
}

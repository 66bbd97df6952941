package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Protocol-Lattice/sdl/config"
	"github.com/Protocol-Lattice/sdl/errs"
	"github.com/Protocol-Lattice/sdl/logging"
)

var (
	cfgFile  string
	logLevel string

	cfg      *config.Config
	logger   *slog.Logger
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "sdlparse",
	Short: "Parse, format and check SDL schemas and query documents",
	Long: `sdlparse reads a GraphQL-like schema definition language and its
query-selection companion.

Input is read from the file named as argument, or from stdin when the
argument is missing or "-".

Commands:
  tokens  - print the token stream
  parse   - print the AST as JSON, or as normalized source
  fmt     - rewrite a document in canonical layout
  check   - compare both parsers and a reference parser
  serve   - run the HTTP and WebSocket parse service`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: func(*cobra.Command, []string) error { return closeLog() },
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $"+config.EnvVar+" or ./sdlparse.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	l, closer, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Writer:  cmd.ErrOrStderr(),
		File:    cfg.Log.File,
		Journal: cfg.Log.Journal,
	})
	if err != nil {
		return err
	}
	logger, closeLog = l, closer
	return nil
}

// readSource returns the input name and text.
func readSource(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read source: %w", err)
	}
	return args[0], string(data), nil
}

// describe formats a parse error as "name:line:col: kind: message".
func describe(name string, err error) error {
	if e, ok := err.(*errs.Error); ok && e.Line > 0 {
		return fmt.Errorf("%s:%d:%d: %s: %s", name, e.Line, e.Column, e.Kind, e.Message)
	}
	return fmt.Errorf("%s: %w", name, err)
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Protocol-Lattice/sdl/config"
	"github.com/Protocol-Lattice/sdl/crosscheck"
	"github.com/Protocol-Lattice/sdl/printer"
)

var errCheckFailed = errors.New("check failed")

var checkSkipReference bool

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Compare both parsers and a reference parser",
	Long: `Parses a schema with the token parser and the grammar engine and
reports any difference between the two readings. The schema is then
compared with an independent GraphQL parser.

Examples:
  sdlparse check schema.graphql
  sdlparse check --no-reference schema.graphql`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkSkipReference, "no-reference", false, "skip the reference parser comparison")
}

func runCheck(cmd *cobra.Command, args []string) error {
	name, src, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	tokens, err := parseSource(name, src, config.EngineTokens)
	if err != nil {
		return err
	}
	grammar, err := parseSource(name, src, config.EngineGrammar)
	if err != nil {
		return err
	}
	failed := false
	if a, b := printer.Print(tokens), printer.Print(grammar); a != b {
		failed = true
		fmt.Fprintf(out, "%s: token parser and grammar engine disagree\n--- tokens\n%s--- grammar\n%s", name, a, b)
	}

	if !checkSkipReference {
		mismatches, err := crosscheck.Compare(name, src, tokens)
		if err != nil {
			return err
		}
		for _, m := range mismatches {
			fmt.Fprintf(out, "%s: %s\n", name, m)
		}
		failed = failed || len(mismatches) > 0
	}

	if failed {
		return errCheckFailed
	}
	fmt.Fprintf(out, "%s: ok (%d declarations)\n", name, len(tokens.Declarations()))
	return nil
}

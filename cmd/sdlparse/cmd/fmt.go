package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Protocol-Lattice/sdl/lexer"
	"github.com/Protocol-Lattice/sdl/printer"
	"github.com/Protocol-Lattice/sdl/token"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Rewrite a document in canonical layout",
	Long: `Parses the input and prints it in canonical layout. With --write the
file is rewritten in place.

Examples:
  sdlparse fmt schema.graphql
  sdlparse fmt --write schema.graphql
  sdlparse fmt --query query.graphql`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write the result back to the file")
	fmtCmd.Flags().BoolVarP(&parseQuery, "query", "q", false, "format a query document")
}

func runFmt(cmd *cobra.Command, args []string) error {
	name, src, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	doc, err := parseSource(name, src, "")
	if err != nil {
		return err
	}
	out := printer.Print(doc)
	toFile := fmtWrite && len(args) > 0 && args[0] != "-"
	if lost := countTrivia(src) - countTrivia(out); lost > 0 {
		if toFile {
			return fmt.Errorf("%s: refusing to rewrite: %d comments or descriptions inside declarations would be lost", name, lost)
		}
		logger.Warn("comments or descriptions inside declarations are not printed", "source", name, "count", lost)
	}
	if !toFile {
		_, err := fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}
	if out == src {
		return nil
	}
	logger.Info("formatted", "file", name)
	return os.WriteFile(name, []byte(out), 0o644)
}

// countTrivia counts the comment and string tokens of s. Printing keeps
// every string value and every top-level comment, so a shortfall in the
// output is trivia inside a declaration.
func countTrivia(s string) int {
	tokens, err := lexer.Tokenize(s)
	if err != nil {
		return 0
	}
	n := 0
	for _, tok := range tokens {
		switch tok.Type {
		case token.COMMENT, token.STRING, token.BLOCK_STRING:
			n++
		}
	}
	return n
}

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Protocol-Lattice/sdl/errs"
	"github.com/Protocol-Lattice/sdl/lexer"
)

var tokensJSON bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream",
	Long: `Tokenizes the input and prints one token per line as
"line:col kind value".

Examples:
  sdlparse tokens schema.graphql
  echo 'type A { id: ID }' | sdlparse tokens --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "print tokens as a JSON array")
}

func runTokens(cmd *cobra.Command, args []string) error {
	name, src, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return describe(name, err)
	}
	logger.Debug("tokenized", "source", name, "tokens", len(tokens))

	out := cmd.OutOrStdout()
	if tokensJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tokens)
	}
	for _, tok := range tokens {
		line, col := errs.LineCol(src, tok.Pos)
		fmt.Fprintf(out, "%d:%d\t%s\t%q\n", line, col, tok.Type, tok.Literal)
	}
	return nil
}

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Protocol-Lattice/sdl/ast"
	"github.com/Protocol-Lattice/sdl/errs"
	"github.com/Protocol-Lattice/sdl/handler"
	"github.com/Protocol-Lattice/sdl/printer"
)

var (
	parseQuery  bool
	parseEngine string
	parseOutput string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a document and print its AST",
	Long: `Parses an SDL schema, or a query document with --query, and prints
the AST as JSON or as normalized source.

Examples:
  sdlparse parse schema.graphql
  sdlparse parse --engine grammar schema.graphql
  sdlparse parse --query --output sdl query.graphql`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&parseQuery, "query", "q", false, "parse a query document")
	parseCmd.Flags().StringVarP(&parseEngine, "engine", "e", "", "parser: tokens or grammar (default from config)")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "json", "output format: json or sdl")
}

func mode() string {
	if parseQuery {
		return handler.ModeQuery
	}
	return handler.ModeSchema
}

// parseSource parses src with the selected engine and logs the outcome.
func parseSource(name, src, engine string) (*ast.Document, error) {
	if engine == "" {
		engine = cfg.Parser.Engine
	}
	if engine != handler.EngineTokens && engine != handler.EngineGrammar {
		return nil, fmt.Errorf("unknown engine %q", engine)
	}
	doc, err := handler.ParseWith(mode(), engine, src)
	if err != nil {
		logger.Debug("parse failed", "source", name, "engine", engine, "kind", errs.KindOf(err))
		return nil, describe(name, err)
	}
	logger.Debug("parsed", "source", name, "engine", engine, "declarations", len(doc.Declarations()))
	return doc, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	name, src, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	doc, err := parseSource(name, src, parseEngine)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	switch parseOutput {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "sdl":
		_, err := fmt.Fprint(out, printer.Print(doc))
		return err
	}
	return fmt.Errorf("unknown output format %q", parseOutput)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"simpleui/internal"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file.sui>",
	Short: "Print the token stream of a SimpleUI file",
	Long: `Print the token stream of a SimpleUI file, one token per line
with its source position. Useful for debugging the source before
compiling it.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	tokens, err := internal.NewLexer(string(source)).Tokenize()
	for _, tok := range tokens {
		fmt.Printf("%4d:%-4d %s\n", tok.Line, tok.Column, tok)
	}
	if err != nil {
		reportError(err)
		return err
	}
	return nil
}

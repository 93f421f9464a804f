package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"simpleui/internal"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "simpleui",
	Short: "Compiler for the SimpleUI shape language",
	Long: `simpleui compiles declarative shape descriptions into drawing
commands. A source file is a list of semicolon-terminated statements,
each describing one rectangle, circle or line:

    100px left, 50px top, w:200px, h:100px, fill:#FF0000, rounded, rectangle;
    w:100px, h:100px, fill:blue, circle;`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show compilation stages")
}

// reportError prints a compile failure with its kind made visible:
// lexical and syntax errors in red, semantic errors in yellow.
func reportError(err error) {
	var lexErr *internal.LexicalError
	var synErr *internal.SyntaxError
	var semErr *internal.SemanticError
	switch {
	case errors.As(err, &lexErr):
		fmt.Fprintln(os.Stderr, color.Red(lexErr.Error()))
	case errors.As(err, &synErr):
		fmt.Fprintln(os.Stderr, color.Red(synErr.Error()))
	case errors.As(err, &semErr):
		fmt.Fprintln(os.Stderr, color.Yellow(semErr.Error()))
	default:
		fmt.Fprintln(os.Stderr, err)
	}
}

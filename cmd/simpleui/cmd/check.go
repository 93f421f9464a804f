package cmd

import (
	"fmt"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/spf13/cobra"

	"simpleui/internal"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.sui>",
	Short: "Parse a SimpleUI file without generating output",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	shapes, err := internal.Parse(string(source))
	if err != nil {
		reportError(err)
		return err
	}

	fmt.Printf("%s %s: %d shape(s)\n", color.Green("ok"), args[0], len(shapes))
	return nil
}

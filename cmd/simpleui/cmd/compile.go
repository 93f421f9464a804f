package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"simpleui/internal"
)

var (
	outputPath string
	configPath string
)

var compileCmd = &cobra.Command{
	Use:   "compile <file.sui>",
	Short: "Compile a SimpleUI file to SVG",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: input with .svg extension)")
	compileCmd.Flags().StringVarP(&configPath, "config", "c", "", "canvas configuration file")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	input := args[0]

	source, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	logrus.Debugf("parsing %s (%d bytes)", input, len(source))
	shapes, err := internal.Parse(string(source))
	if err != nil {
		reportError(err)
		return err
	}
	logrus.Debugf("parsed %d shapes", len(shapes))

	gen := internal.NewGenerator(cfg.Canvas.Width, cfg.Canvas.Height, cfg.background())
	svg := gen.GenerateSVG(shapes)
	logrus.Debugf("generated %d bytes of SVG", len(svg))

	out := outputPath
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
	}
	if err := os.WriteFile(out, []byte(svg), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	fmt.Printf("compiled %s -> %s\n", input, out)
	return nil
}

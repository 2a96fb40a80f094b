package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossroad/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the built-in configuration",
	Long: `Prints the embedded default configuration as YAML. Save it to
~/.arcade/configs/crossroad.yaml or ./configs/crossroad.yaml and edit it
to tune the game, or pass any file with --config.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	id := "crossroad"
	if len(args) == 1 {
		id = args[0]
	}

	data := config.GetDefaultYAML(id)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no built-in config for %q\n", id)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

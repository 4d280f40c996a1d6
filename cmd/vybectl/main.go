package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "vybectl",
	Short:        "vybectl operates a Vybe deployment from the terminal",
	Long:         "vybectl runs database migrations, scores a day offline, inspects persisted workouts and issues development tokens.",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Command jsonrepair is the CLI front end for the repair engine: repair a
// file or stdin, run the HTTP API, run the JSON-RPC stdio service, or
// scaffold a starter config.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	_ "github.com/jsonrepair-go/jsonrepair/internal/repair/rules"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsonrepair",
		Short: "Tolerant JSON repair engine",
		Long: color.CyanString(`jsonrepair turns near-JSON text into strict JSON.

It tokenizes arbitrary text, runs a priority-ordered rule rewrite system to
a fixed point, finalizes the token stream back into text, and verifies the
result with a strict JSON parse.`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newRepairCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRPCCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newBenchCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)
			titleColor.Print("jsonrepair version: ")
			valueColor.Println(Version)
			titleColor.Print("Git commit: ")
			valueColor.Println(GitCommit)
			titleColor.Print("Build date: ")
			valueColor.Println(BuildDate)
		},
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

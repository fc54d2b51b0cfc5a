package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	ierrors "github.com/jsonrepair-go/jsonrepair/internal/errors"
	"github.com/jsonrepair-go/jsonrepair/internal/obslog"
	"github.com/jsonrepair-go/jsonrepair/internal/repair"
	"github.com/jsonrepair-go/jsonrepair/internal/repairconfig"
)

func newRepairCmd() *cobra.Command {
	var dryRun bool
	var mode string
	var autoFlow string
	var format string
	var debug bool

	cmd := &cobra.Command{
		Use:   "repair [file]",
		Short: "Repair a JSON-ish file (or stdin) into strict JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := repairconfig.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if mode == "" {
				mode = cfg.Mode
			}
			if autoFlow == "" {
				autoFlow = cfg.AutoFlow
			}

			var input []byte
			if len(args) == 1 {
				input, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("reading %s: %w", args[0], err)
				}
			} else {
				input, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
			}

			logger := obslog.New(debug)
			engine := repair.New(repair.DefaultRegistry,
				repair.WithLogger(logger),
				repair.WithMode(repair.Mode(mode)),
				repair.WithAutoFlow(autoFlow),
				repair.WithMaxIterations(cfg.MaxIterations),
			)

			report := engine.Parse(string(input), dryRun)
			return printReport(cmd, report, format)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "preview rule firings without treating the parse as final")
	cmd.Flags().StringVar(&mode, "mode", "", "fallback policy: strict or lax (default from config)")
	cmd.Flags().StringVar(&autoFlow, "flow", "", "minimal, standard, or aggressive (default from config)")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or pretty")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable verbose per-rule logging")

	return cmd
}

func printReport(cmd *cobra.Command, report *repair.RepairReport, format string) error {
	if format == "pretty" {
		return printReportPretty(cmd, report)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func printReportPretty(cmd *cobra.Command, report *repair.RepairReport) error {
	out := cmd.OutOrStdout()

	if report.Success {
		color.New(color.FgGreen, color.Bold).Fprintf(out, "%s\n", report.Status)
	} else {
		color.New(color.FgRed, color.Bold).Fprintf(out, "%s\n", report.Status)
		for _, msg := range report.Errors {
			rerr := ierrors.New("facade", ierrors.ErrStrictModeDecode, msg, ierrors.TokenLocation{}, ierrors.Error)
			fmt.Fprint(out, rerr.FormatForTerminal())
		}
		return nil
	}

	color.New(color.FgCyan).Fprintf(out, "quality: %.2f  iterations: %d  rules applied: %d\n",
		report.QualityScore, report.Iterations, len(report.AppliedRules))

	if len(report.AppliedRules) > 0 {
		color.New(color.FgYellow).Fprintln(out, "applied rules:")
		for _, name := range report.AppliedRules {
			fmt.Fprintf(out, "  - %s\n", name)
		}
	}

	if len(report.DetectedIssues) > 0 {
		color.New(color.FgYellow).Fprintln(out, "detected issues:")
		for _, issue := range report.DetectedIssues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, report.JSONText)
	return nil
}

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jsonrepair-go/jsonrepair/internal/obslog"
	"github.com/jsonrepair-go/jsonrepair/internal/repair"
	"github.com/jsonrepair-go/jsonrepair/internal/repairconfig"
)

// sampleCorpus is a small fixed set of malformed inputs spanning the rule
// catalog's concerns (unquoted keys, trailing commas, tuples, bare words,
// markdown fences), used when no --file is given.
var sampleCorpus = []string{
	`{name: 'Alice', age: 30,}`,
	`{'items': (1, 2, 3,)}`,
	"```json\n{foo=bar}\n```",
	`{a:1 b:2 c:3}`,
	`{date: 2024-01-05, active: True}`,
}

func newBenchCmd() *cobra.Command {
	var iterations int
	var flow string
	var file string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure repair throughput over a sample or file-backed corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := repairconfig.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if flow == "" {
				flow = cfg.AutoFlow
			}

			corpus := sampleCorpus
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading %s: %w", file, err)
				}
				corpus = strings.Split(string(data), "\n---\n")
			}

			engine := repair.New(repair.DefaultRegistry,
				repair.WithLogger(obslog.Nop()),
				repair.WithAutoFlow(flow),
				repair.WithMaxIterations(cfg.MaxIterations),
			)

			printBenchHeader(cmd, flow, len(corpus), iterations)

			var total time.Duration
			var parses, successes int
			for round := 0; round < iterations; round++ {
				for _, text := range corpus {
					if strings.TrimSpace(text) == "" {
						continue
					}
					start := time.Now()
					report := engine.Parse(text)
					total += time.Since(start)
					parses++
					if report.Success {
						successes++
					}
				}
			}

			printBenchResults(cmd, parses, successes, total)
			return nil
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", 200, "number of passes over the corpus")
	cmd.Flags().StringVar(&flow, "flow", "", "minimal, standard, or aggressive (default from config)")
	cmd.Flags().StringVar(&file, "file", "", "corpus file with inputs separated by a line containing only ---")

	return cmd
}

func printBenchHeader(cmd *cobra.Command, flow string, corpusSize, iterations int) {
	out := cmd.OutOrStdout()
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Fprintln(out, strings.Repeat("=", 50))
	cyan.Fprintln(out, "  JSONREPAIR BENCHMARK")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintf(out, "flow: %s  corpus: %d inputs  rounds: %d\n\n", flow, corpusSize, iterations)
}

func printBenchResults(cmd *cobra.Command, parses, successes int, total time.Duration) {
	out := cmd.OutOrStdout()
	if parses == 0 {
		fmt.Fprintln(out, "no inputs to benchmark")
		return
	}

	avg := total / time.Duration(parses)
	throughput := float64(parses) / total.Seconds()

	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Fprintf(out, "parses:        %d\n", parses)
	fmt.Fprintf(out, "successes:     %d (%.1f%%)\n", successes, 100*float64(successes)/float64(parses))
	fmt.Fprintf(out, "total time:    %s\n", total)
	fmt.Fprintf(out, "avg per parse: %s\n", avg)
	if throughput >= 1000 {
		green.Fprintf(out, "throughput:    %.0f parses/sec\n", throughput)
	} else {
		yellow.Fprintf(out, "throughput:    %.0f parses/sec\n", throughput)
	}
}

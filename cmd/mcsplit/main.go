// Command mcsplit enumerates maximal common induced subgraphs between two
// labelled graphs read from the text format documented in mcgraph.ReadGraph.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcsplit/mcgraph"
	"github.com/katalvlaran/mcsplit/search"
)

var (
	quiet     bool
	verbose   bool
	connected bool
	timeoutS  int
)

var rootCmd = &cobra.Command{
	Use:   "mcsplit FILENAME1 FILENAME2",
	Short: "Enumerate maximal common induced subgraphs of two labelled graphs",
	Args:  cobra.ExactArgs(2),
	RunE:  runSearch,
}

func init() {
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-solution output; the solution counter still increments")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "dump the current mapping and every bidomain at every recursion node")
	rootCmd.Flags().BoolVarP(&connected, "connected", "c", false, "restrict to connected common subgraphs")
	rootCmd.Flags().IntVarP(&timeoutS, "timeout", "t", 0, "abort after N wall-clock seconds; 0 means none")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	g0, err := mcgraph.ReadGraphFile(args[0])
	if err != nil {
		return reportOpenFailure(cmd, args[0], err)
	}
	g1, err := mcgraph.ReadGraphFile(args[1])
	if err != nil {
		return reportOpenFailure(cmd, args[1], err)
	}

	opts := search.Options{
		Connected: connected,
		Timeout:   time.Duration(timeoutS) * time.Second,
	}
	if verbose {
		opts.Trace = cmd.OutOrStdout()
	}
	if !quiet {
		opts.OnSolution = func(mapping []search.VtxPair) {
			printMapping(cmd, mapping)
		}
	}

	start := time.Now()
	res, err := search.Run(g0, g1, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintf(cmd.OutOrStdout(), "Solutions:                  %d\n", res.Solutions)
	fmt.Fprintf(cmd.OutOrStdout(), "Nodes:                      %d\n", res.Nodes)
	fmt.Fprintf(cmd.OutOrStdout(), "CPU time (ms):              %d\n", elapsed.Milliseconds())
	if res.TimedOut {
		fmt.Fprintln(cmd.OutOrStdout(), "TIMEOUT")
	}
	return nil
}

func printMapping(cmd *cobra.Command, mapping []search.VtxPair) {
	out := cmd.OutOrStdout()
	for _, p := range mapping {
		fmt.Fprintf(out, "  (%d %d)", p.V, p.W)
	}
	fmt.Fprintln(out)
}

// reportOpenFailure prints the "Cannot open file" diagnostic and returns an
// error that makes cobra exit non-zero without also printing cobra's own
// usage block for what is an I/O failure, not an argument error.
func reportOpenFailure(cmd *cobra.Command, path string, err error) error {
	if errors.Is(err, mcgraph.ErrCannotOpenFile) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Cannot open file: %s\n", path)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return err
}

// Package main provides the reverse-api command line tool: it captures
// browser traffic into HAR archives and optionally reverse engineers the
// recorded APIs into a client script.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &captureOptions{}

	root := &cobra.Command{
		Use:   "reverse-api",
		Short: "Capture browser traffic for API reverse engineering",
		Long: `Start a manual browser session with HAR recording.

Opens a Chromium browser where you can interact with websites. All network
traffic is recorded to a HAR file for later analysis. Close the browser or
press Ctrl+C when done.

If --prompt is omitted, enters interactive mode. Use -r to auto-generate a
Python API client after capture.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(cmd, opts)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.prompt, "prompt", "p", "", "description of what APIs you want to capture; omit for interactive mode")
	flags.StringVarP(&opts.url, "url", "u", "", "optional starting URL to navigate to")
	flags.BoolVarP(&opts.reverseEngineer, "reverse-engineer", "r", false, "reverse engineer APIs using Claude after capture")
	flags.StringVarP(&opts.model, "model", "m", "", "Claude model for reverse engineering (sonnet, opus, haiku)")
	flags.StringVarP(&opts.instructions, "instructions", "i", "", "additional instructions for Claude")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")

	root.AddCommand(newEngineerCmd(&opts.debug))
	return root
}

// validateModel rejects unknown model tiers up front so the operator does
// not sit through a capture only to have analysis fail.
func validateModel(model string) error {
	switch model {
	case "", "sonnet", "opus", "haiku":
		return nil
	}
	return fmt.Errorf("unknown model %q: must be sonnet, opus, or haiku", model)
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/codehornets/reverse-api-engineer/pkg/config"
	"github.com/codehornets/reverse-api-engineer/pkg/engineer"
	"github.com/codehornets/reverse-api-engineer/pkg/engineer/claudecli"
	"github.com/codehornets/reverse-api-engineer/pkg/logging"
	"github.com/codehornets/reverse-api-engineer/pkg/run"
	"github.com/codehornets/reverse-api-engineer/pkg/ui"
)

// fallbackPrompt is used when a run's metadata record is missing or empty.
const fallbackPrompt = "Reverse engineer the captured APIs"

func newEngineerCmd(debug *bool) *cobra.Command {
	var model, instructions string

	cmd := &cobra.Command{
		Use:   "engineer <run-id>",
		Short: "Reverse engineer APIs from a previous capture",
		Long: `Analyze the HAR file from a previous run and generate a Python API
client script using Claude. The original capture prompt is recovered from
the run's metadata.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEngineer(cmd.Context(), args[0], model, instructions, *debug)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Claude model to use (sonnet, opus, haiku)")
	cmd.Flags().StringVarP(&instructions, "instructions", "i", "", "additional instructions for Claude")
	return cmd
}

func runEngineer(ctx context.Context, runID, model, instructions string, debug bool) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	log := logging.New(debug || cfg.Debug)
	defer log.Sync() //nolint:errcheck

	if model == "" {
		model = cfg.Model
	}
	if err := validateModel(model); err != nil {
		return err
	}

	layout, err := run.NewLayout("")
	if err != nil {
		return err
	}
	console := ui.NewConsole()

	harPath := layout.HARPath(runID)
	if _, err := os.Stat(harPath); err != nil {
		console.Error(fmt.Sprintf("HAR file not found for run ID: %s", runID))
		console.Hint("Expected path: " + harPath)
		return nil
	}

	analyze(ctx, analyzeParams{
		runID:        runID,
		harPath:      harPath,
		prompt:       recoverPrompt(layout, runID),
		model:        model,
		instructions: instructions,
		layout:       layout,
		console:      console,
		log:          log,
	})
	return nil
}

// recoverPrompt reads the original capture intent back from the run's
// metadata record.
func recoverPrompt(layout run.Layout, runID string) string {
	meta, err := run.LoadMetadata(layout.MetadataPath(runID))
	if err != nil || meta.Prompt == "" {
		return fallbackPrompt
	}
	return meta.Prompt
}

type analyzeParams struct {
	runID        string
	harPath      string
	prompt       string
	model        string
	instructions string
	layout       run.Layout
	console      *ui.Console
	log          *zap.Logger
}

// analyze runs the orchestrator; outcomes are reported by the presenter, so
// a failed analysis does not fail the command.
func analyze(ctx context.Context, p analyzeParams) {
	eng := engineer.New(engineer.Params{
		RunID:        p.runID,
		HARPath:      p.harPath,
		Prompt:       p.prompt,
		Model:        p.model,
		Instructions: p.instructions,
		Layout:       p.layout,
		Runtime:      claudecli.New(p.log),
		Presenter:    p.console,
		Logger:       p.log,
	})
	eng.Analyze(ctx)
}

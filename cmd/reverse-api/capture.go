package main

import (
	"errors"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/codehornets/reverse-api-engineer/pkg/config"
	"github.com/codehornets/reverse-api-engineer/pkg/logging"
	"github.com/codehornets/reverse-api-engineer/pkg/recorder"
	"github.com/codehornets/reverse-api-engineer/pkg/run"
	"github.com/codehornets/reverse-api-engineer/pkg/ui"
	"github.com/codehornets/reverse-api-engineer/pkg/ui/prompt"
)

type captureOptions struct {
	prompt          string
	url             string
	reverseEngineer bool
	model           string
	instructions    string
	debug           bool
}

func runCapture(cmd *cobra.Command, opts *captureOptions) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	log := logging.New(opts.debug || cfg.Debug)
	defer log.Sync() //nolint:errcheck

	if opts.prompt == "" {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return errors.New("a capture description is required; pass --prompt or run in a terminal")
		}
		answers, err := prompt.Run(prompt.Options{
			URL:             opts.url,
			Model:           opts.model,
			ReverseEngineer: opts.reverseEngineer,
		})
		if errors.Is(err, prompt.ErrAborted) {
			return errors.New("aborted: a capture description is required")
		}
		if err != nil {
			return err
		}
		opts.prompt = answers.Prompt
		opts.url = answers.URL
		opts.reverseEngineer = answers.ReverseEngineer
		opts.model = answers.Model
	}

	if opts.model == "" {
		opts.model = cfg.Model
	}
	if err := validateModel(opts.model); err != nil {
		return err
	}

	layout, err := run.NewLayout("")
	if err != nil {
		return err
	}
	runID := run.NewID()
	console := ui.NewConsole()

	rec := recorder.New(runID, opts.prompt, layout,
		recorder.WithNotifier(console),
		recorder.WithLogger(log),
		recorder.WithPollInterval(time.Duration(cfg.PollIntervalMS)*time.Millisecond),
	)

	console.SessionBanner(runID, layout.HARPath(runID), opts.prompt)
	harPath, err := rec.Start(opts.url)
	if err != nil {
		return err
	}

	if opts.reverseEngineer {
		analyze(cmd.Context(), analyzeParams{
			runID:        runID,
			harPath:      harPath,
			prompt:       opts.prompt,
			model:        opts.model,
			instructions: opts.instructions,
			layout:       layout,
			console:      console,
			log:          log,
		})
	}
	return nil
}

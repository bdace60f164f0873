package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/valentine-arcade/internal/config"
	"github.com/vovakirdan/valentine-arcade/internal/core"
	"github.com/vovakirdan/valentine-arcade/internal/platform/tui"
	"github.com/vovakirdan/valentine-arcade/internal/submit"
)

var (
	flagScene    string
	flagLogFile  string
	flagNoSubmit bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Play all four scenes in order. The answer to the final question is
posted to VALENTINE_FORM_URL in the background.

Controls:
  Mouse        - Click, drag and throw
  Enter/Space  - Play next scene (when shown)
  ?            - Toggle help
  Ctrl+S       - Save screenshot
  Q/Ctrl+C     - Quit

Examples:
  valentine play
  valentine play --scene jigsaw
  valentine play --difficulty hard --seed 42
  valentine play --log-file /tmp/valentine.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScene, "scene", "", "Scene to start in (memory, jigsaw, tomato, valentine)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	playCmd.Flags().BoolVar(&flagNoSubmit, "no-submit", false, "Do not post the answer anywhere")
}

func runPlay(_ *cobra.Command, _ []string) error {
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "valentine",
	})

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	answers := submit.Discard
	var submitter *submit.FormSubmitter
	if !flagNoSubmit {
		submitCfg, err := config.LoadSubmitFromEnv()
		if err != nil {
			return err
		}
		submitter = submit.NewFormSubmitter(submitCfg, submit.WithLogger(logger))
		answers = submitter
	}

	h, err := newHost(runtime, flagScene, answers, logger)
	if err != nil {
		return err
	}

	runErr := tui.Run(h, runtime)

	// Let an in-flight answer finish; each post is bounded by its timeout.
	if submitter != nil {
		submitter.Wait()
	}
	return runErr
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/valentine-arcade/internal/config"
	"github.com/vovakirdan/valentine-arcade/internal/core"
	"github.com/vovakirdan/valentine-arcade/internal/platform/tui"
	"github.com/vovakirdan/valentine-arcade/internal/submit"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection is mounted as its own session and unmounted when the
connection closes. Answers are posted to VALENTINE_FORM_URL.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.valentine/host_key

Examples:
  valentine serve                           # Listen on :23234
  valentine serve --ssh :2222               # Listen on port 2222
  valentine serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "valentine",
	})

	submitCfg, err := config.LoadSubmitFromEnv()
	if err != nil {
		return err
	}
	submitter := submit.NewFormSubmitter(submitCfg, submit.WithLogger(logger))

	// Size and seed are set per connection.
	runtime := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	h, err := newHost(runtime, "", submitter, logger)
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, h)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	fmt.Printf("Starting valentine SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	err = server.ListenAndServe()
	submitter.Wait()
	return err
}

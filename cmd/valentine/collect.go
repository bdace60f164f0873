package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/valentine-arcade/internal/collect"
	"github.com/vovakirdan/valentine-arcade/internal/config"
)

var (
	flagCollectAddr string
	flagCollectPath string
	flagCollectDB   string
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run the answer collector",
	Long: `Run an HTTP endpoint that accepts the form POST sent after the final
question and stores every answer in SQLite.

Settings come from the environment (VALENTINE_COLLECT_ADDR,
VALENTINE_COLLECT_PATH, VALENTINE_FORM_FIELD, VALENTINE_COLLECT_DB);
flags override them.

Examples:
  valentine collect
  valentine collect --addr :9000 --db ./responses.db`,
	Args: cobra.NoArgs,
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().StringVar(&flagCollectAddr, "addr", "", "Listen address (default from VALENTINE_COLLECT_ADDR or :8087)")
	collectCmd.Flags().StringVar(&flagCollectPath, "path", "", "Form path (default from VALENTINE_COLLECT_PATH or /formResponse)")
	collectCmd.Flags().StringVar(&flagCollectDB, "db", "", "Responses database (default ~/.valentine/responses.db)")
}

// collectConfig loads the collector settings with flag overrides.
func collectConfig() (config.CollectConfig, error) {
	cfg, err := config.LoadCollectFromEnv()
	if err != nil {
		return cfg, err
	}
	if flagCollectAddr != "" {
		cfg.Addr = flagCollectAddr
	}
	if flagCollectPath != "" {
		cfg.Path = flagCollectPath
	}
	if flagCollectDB != "" {
		cfg.DBPath = flagCollectDB
	}
	return cfg, nil
}

func runCollect(_ *cobra.Command, _ []string) error {
	cfg, err := collectConfig()
	if err != nil {
		return err
	}

	server, err := collect.NewServer(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Collecting answers on %s%s\n", cfg.Addr, cfg.Path)
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe()
}

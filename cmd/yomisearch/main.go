package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("yomisearch")

func main() {
	cfg, err := loadConfig()
	if err != nil {
		commonlog.Configure(1, nil)
		log.Errorf("%s", err)
		os.Exit(1)
	}
	verbosity := 1
	if cfg.Verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	rootCmd := &cobra.Command{
		Use:   "yomisearch",
		Short: "Segment Japanese text and search reading candidates",
	}

	rootCmd.AddCommand(newTokenizeCmd(cfg))
	rootCmd.AddCommand(newCandidatesCmd(cfg))
	rootCmd.AddCommand(newCostCmd(cfg))
	rootCmd.AddCommand(newCompareCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

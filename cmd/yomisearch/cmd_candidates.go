package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func newCandidatesCmd(cfg config) *cobra.Command {
	var maxResults int
	var minTokens int

	cmd := &cobra.Command{
		Use:   "candidates <text> <reading>",
		Short: "List segmentations of text whose reading matches",
		Long: `Enumerates token segmentations of <text> whose concatenated read
forms equal <reading> after width, case, and kana normalization,
cheapest first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := cfg.tokenizer(false)
			if err != nil {
				return err
			}
			cands, err := tk.ReadingCandidates(args[0], args[1], maxResults, minTokens)
			if err != nil {
				return err
			}
			log.Debugf("found %d candidates for %q / %q", len(cands), args[0], args[1])

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(cands)
		},
	}
	cmd.Flags().IntVar(&maxResults, "max", cfg.MaxResults, "maximum number of candidates")
	cmd.Flags().IntVar(&minTokens, "min-tokens", 1, "discard candidates with fewer tokens")
	return cmd
}

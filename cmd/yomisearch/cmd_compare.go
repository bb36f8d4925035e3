package main

import (
	"fmt"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/spf13/cobra"
)

// newCompareCmd tokenizes with both this module's lattice and the
// kagome reference tokenizer over the same dictionary, for eyeballing
// divergences in segmentation.
func newCompareCmd(cfg config) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <text>",
		Short: "Compare segmentation against the kagome tokenizer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kd *dict.Dict
			switch cfg.Dict {
			case "ipa":
				kd = ipa.Dict()
			case "uni":
				kd = uni.Dict()
			default:
				return fmt.Errorf("unknown dictionary %q (want ipa or uni)", cfg.Dict)
			}

			ref, err := tokenizer.New(kd, tokenizer.OmitBosEos())
			if err != nil {
				return fmt.Errorf("kagome tokenizer: %w", err)
			}

			tk, err := cfg.tokenizer(false)
			if err != nil {
				return err
			}
			path, err := tk.Tokenize(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "yomisearch:")
			for _, e := range path {
				fmt.Fprintf(out, "  %s\t%s\n", e.Surface, e.Reading)
			}
			fmt.Fprintln(out, "kagome:")
			for _, tok := range ref.Tokenize(args[0]) {
				reading, _ := tok.Reading()
				fmt.Fprintf(out, "  %s\t%s\n", tok.Surface, reading)
			}
			return nil
		},
	}
}

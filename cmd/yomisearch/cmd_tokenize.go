package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func newTokenizeCmd(cfg config) *cobra.Command {
	var bridge bool

	cmd := &cobra.Command{
		Use:   "tokenize <text>",
		Short: "Segment text into the minimal-cost token sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := cfg.tokenizer(bridge)
			if err != nil {
				return err
			}
			path, err := tk.Tokenize(args[0])
			if err != nil {
				return err
			}
			log.Debugf("tokenized %d runes into %d tokens", len([]rune(args[0])), len(path))

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(path)
		},
	}
	cmd.Flags().BoolVar(&bridge, "bridge", false, "price transitions across separator runs against the preceding context")
	return cmd
}

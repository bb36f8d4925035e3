package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCostCmd(cfg config) *cobra.Command {
	return &cobra.Command{
		Use:   "cost <text>",
		Short: "Show internal and separator-bridged path costs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := cfg.tokenizer(false)
			if err != nil {
				return err
			}
			path, err := tk.Tokenize(args[0])
			if err != nil {
				return err
			}
			internal, err := tk.InternalCost(path)
			if err != nil {
				return err
			}
			bridged, err := tk.BridgedInternalCost(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "tokens:   %d\n", len(path))
			fmt.Fprintf(cmd.OutOrStdout(), "internal: %d\n", internal)
			fmt.Fprintf(cmd.OutOrStdout(), "bridged:  %d\n", bridged)
			return nil
		},
	}
}

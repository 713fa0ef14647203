package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/kvcache"
)

var callsCmd = &cobra.Command{
	Use:   "calls [op]",
	Short: "Print how many times an operation was called",
	Long:  "Print the call counter of op (default " + kvcache.OpStore + ").",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		op := kvcache.OpStore
		if len(args) == 1 {
			op = args[0]
		}
		return withCache(cmd, false, func(ctx context.Context, c kvcache.Cache) error {
			n, err := c.Calls(ctx, op)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", op, n)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(callsCmd)
}

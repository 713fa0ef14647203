package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/kvcache"
)

var getAs string

var errNotFound = errors.New("key not found")

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Read a value by key",
	Long: `Read a value by key. Exits with status 2 when the key does not exist.

--as selects the coercion: raw (default, bytes as-is), str, int, float.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCache(cmd, false, func(ctx context.Context, c kvcache.Cache) error {
			out, ok, err := readAs(ctx, c, getAs, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s", errNotFound, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		})
	},
}

func init() {
	getCmd.Flags().StringVar(&getAs, "as", "raw", "coercion: raw, str, int, float")
	rootCmd.AddCommand(getCmd)
}

func readAs(ctx context.Context, c kvcache.Cache, as, key string) (any, bool, error) {
	switch as {
	case "raw":
		b, ok, err := c.Get(ctx, key)
		return fmt.Sprintf("%q", b), ok, err
	case "str":
		return c.GetStr(ctx, key)
	case "int":
		return c.GetInt(ctx, key)
	case "float":
		return c.GetFloat(ctx, key)
	default:
		return nil, false, fmt.Errorf("unknown coercion %q", as)
	}
}

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/kvcache"
)

var (
	storeType string
	fresh     bool
)

var storeCmd = &cobra.Command{
	Use:   "store <value>",
	Short: "Store a value and print its generated key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseValue(storeType, args[0])
		if err != nil {
			return err
		}
		return withCache(cmd, fresh, func(ctx context.Context, c kvcache.Cache) error {
			key, err := c.Store(ctx, v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		})
	},
}

func init() {
	storeCmd.Flags().StringVarP(&storeType, "type", "t", "text", "value type: text, bytes, int, float")
	storeCmd.Flags().BoolVar(&fresh, "fresh", false, "FLUSHDB before storing (drops all data in the database)")
	rootCmd.AddCommand(storeCmd)
}

func parseValue(typ, s string) (kvcache.Value, error) {
	switch typ {
	case "text":
		return kvcache.Text(s), nil
	case "bytes":
		return kvcache.Bytes(s), nil
	case "int":
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid int %q: %w", s, err)
		}
		return kvcache.Int(n), nil
	case "float":
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float %q: %w", s, err)
		}
		return kvcache.Float(f), nil
	default:
		return nil, fmt.Errorf("%w: %q", kvcache.ErrUnsupportedValue, typ)
	}
}

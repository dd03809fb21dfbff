package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-bladed/bladed"
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir> <prefix>",
	Short: "List the headers and variables of a run",
	Args:  cobra.ExactArgs(2),
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	rs, err := openRun(args[0], args[1])
	if err != nil {
		return err
	}

	var current *bladed.Header
	err = bladed.Walk(rs, func(h *bladed.Header, v string) error {
		if h != current {
			current = h
			fmt.Printf("%s  %q  NDIMENS=%d  DIMENS=%v  FORMAT=%s\n",
				h.Name(), h.Content(), h.Rank(), h.Dimensions(), formatOf(h))
			if missing := h.Missing(); len(missing) > 0 {
				fmt.Printf("  incomplete header, missing: %s\n", strings.Join(missing, " "))
			}
		}
		if v != "" {
			fmt.Printf("  %s\n", v)
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n%d headers, %d variables\n", len(rs.Headers()), len(rs.Variables()))
	return nil
}

func formatOf(h *bladed.Header) string {
	code, ok := h.DType()
	if !ok {
		return "?"
	}
	return code.String()
}

func openRun(dir, prefix string) (*bladed.ResultSet, error) {
	opts := []bladed.Option{bladed.WithLogger(logger)}
	if unload {
		opts = append(opts, bladed.WithUnload())
	}
	rs := bladed.Open(dir, prefix, opts...)
	if err := rs.Scan(); err != nil {
		return nil, err
	}
	return rs, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/robert-malhotra/go-bladed/bladed"
)

var (
	dumpMeta  bool
	dumpLimit int
)

var dumpCmd = &cobra.Command{
	Use:   "dump <dir> <prefix> <variable>",
	Short: "Print the values of one variable",
	Long: `Print the values stored for one variable, as named in the header's VARIAB
list. With --meta the decoded header is emitted as YAML instead of the data,
which is the easy way to get at axis metadata for 3-D datasets.`,
	Args: cobra.ExactArgs(3),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpMeta, "meta", false, "emit the variable's decoded header as YAML")
	dumpCmd.Flags().IntVar(&dumpLimit, "limit", 0, "print at most this many values (0 = all)")
}

func runDump(cmd *cobra.Command, args []string) error {
	rs, err := openRun(args[0], args[1])
	if err != nil {
		return err
	}

	res, err := rs.Get(args[2])
	if err != nil {
		return err
	}
	if res.Campbell != nil {
		return fmt.Errorf("%q is Campbell data; use the campbell command", args[2])
	}

	if dumpMeta {
		header := res.Header
		if header == nil {
			header = headerFor(rs, args[2])
		}
		if header == nil {
			return fmt.Errorf("no header metadata for %q", args[2])
		}
		return dumpHeaderYAML(header)
	}

	data := res.Data.Data()
	n := len(data)
	if dumpLimit > 0 && dumpLimit < n {
		n = dumpLimit
	}
	fmt.Printf("# %s  shape=%v\n", args[2], res.Data.Shape())
	for i := 0; i < n; i++ {
		fmt.Printf("%v\n", data[i])
	}
	if n < len(data) {
		fmt.Printf("# ... %d more values\n", len(data)-n)
	}
	return nil
}

// headerFor finds the header record listing the variable.
func headerFor(rs *bladed.ResultSet, name string) *bladed.Header {
	for _, h := range rs.Headers() {
		for _, v := range h.Variables() {
			if v == name {
				return h
			}
		}
	}
	return nil
}

func dumpHeaderYAML(h *bladed.Header) error {
	doc := map[string]interface{}{}
	for _, kw := range h.Keywords() {
		v, _ := h.Value(kw)
		doc[kw] = v.Interface()
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling header: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}

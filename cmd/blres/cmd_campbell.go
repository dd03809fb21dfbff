package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-bladed/bladed"
)

var campbellCmd = &cobra.Command{
	Use:   "campbell <dir> <prefix>",
	Short: "Print the Campbell diagram data of a run",
	Args:  cobra.ExactArgs(2),
	RunE:  runCampbell,
}

func runCampbell(cmd *cobra.Command, args []string) error {
	rs, err := openRun(args[0], args[1])
	if err != nil {
		return err
	}

	diag, err := rs.GetCampbell()
	if err != nil {
		return err
	}
	if !diag.Available {
		fmt.Println("no Campbell data for this run")
		return nil
	}

	for _, tr := range diag.Tracks {
		status := ""
		if !tr.Consistent {
			status = "  [frequency mismatch]"
		}
		fmt.Printf("%s  (%d points)%s\n", tr.Name, len(tr.Points), status)
		for _, p := range tr.Points {
			fmt.Printf("  op=%-10g f=%-10g d=%-10g %s\n",
				p.Operating, p.Frequency, p.Damping, p.Participation)
		}
	}

	if !diag.ShapesAvailable {
		return nil
	}

	keys := make([]bladed.ShapeKey, 0, len(diag.Shapes))
	for k := range diag.Shapes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].OperatingPoint != keys[j].OperatingPoint {
			return keys[i].OperatingPoint < keys[j].OperatingPoint
		}
		return keys[i].Mode < keys[j].Mode
	})

	fmt.Println("\nparticipation shapes:")
	for _, k := range keys {
		fmt.Printf("%s / %s\n", k.OperatingPoint, k.Mode)
		for _, row := range diag.Shapes[k] {
			fmt.Printf("  %-40s %8.4f %8.2f%%\n", row.Mode, row.Amplitude, row.Phase)
		}
	}
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/resfile/unsmry"
	"github.com/resfile/unsmry/summary"
)

var infoCmd = &cobra.Command{
	Use:   "info ROOT",
	Short: "Print run metadata and the derived name lists",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ds := open(args[0])
		spec := ds.Spec()

		nx, ny, nz := ds.GridDims()
		fmt.Printf("start date:  %s\n", ds.StartDate().Format("2006-01-02 15:04:05"))
		fmt.Printf("grid:        %d x %d x %d\n", nx, ny, nz)
		fmt.Printf("vectors/row: %d\n", spec.NList)
		if spec.RestartOrigin != "" {
			fmt.Printf("restarted from: %s (step %d)\n", spec.RestartOrigin, spec.RestartStep)
		}

		steps, err := ds.Steps()
		if err != nil {
			logrus.Fatalf("counting report steps: %v", err)
		}
		fmt.Printf("report steps: %d\n", steps)

		fmt.Printf("wells (%d):   %s\n", len(ds.WellNames()), strings.Join(ds.WellNames(), " "))
		fmt.Printf("groups (%d):  %s\n", len(ds.GroupNames()), strings.Join(ds.GroupNames(), " "))
		fmt.Printf("keywords (%d): %s\n", len(ds.VectorNames()), strings.Join(ds.VectorNames(), " "))
	},
}

// open opens the dataset in the mode selected by the global flag, fatally
// logging failures; every subcommand starts here.
func open(root string) *unsmry.Dataset {
	mode := summary.Eager
	if onDemand {
		mode = summary.OnDemand
	}

	ds, err := summary.Open(root, mode)
	if err != nil {
		logrus.Fatalf("opening dataset %s: %v", root, err)
	}
	logrus.Debugf("opened %s in %s mode", root, mode)

	return ds
}

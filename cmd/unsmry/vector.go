package main

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var vectorCmd = &cobra.Command{
	Use:   "vector ROOT KEYWORD [IDENTIFIER]",
	Short: "Print one vector, one value per line",
	Long: "Print the time series of one vector. The identifier shape depends on\n" +
		"the keyword category: a well/group/node/region name, \"ix iy iz\" for\n" +
		"block vectors, \"name number\" for completions and segments, \"r1 r2\"\n" +
		"for inter-region flows, or nothing for field and scalar vectors.",
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		ds := open(args[0])
		keyword := args[1]
		identifier := ""
		if len(args) == 3 {
			identifier = args[2]
		}

		values, err := ds.Vector(keyword, identifier)
		if err != nil {
			logrus.Fatalf("reading vector: %v", err)
		}

		unit, err := ds.Unit(keyword, identifier)
		if err == nil && unit != "" {
			logrus.Infof("unit: %s", unit)
		}
		for _, v := range values {
			fmt.Println(strconv.FormatFloat(v, 'g', -1, 64))
		}
	},
}

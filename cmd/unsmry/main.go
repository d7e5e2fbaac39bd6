// Command unsmry prints diagnostics from reservoir-simulation summary
// datasets: run metadata, derived name lists, single vectors, and CSV
// exports of vector selections.
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var onDemand bool

var rootCmd = &cobra.Command{
	Use:   "unsmry",
	Short: "Inspect reservoir-simulation summary datasets",
	Long: "unsmry decodes paired .SMSPEC/.UNSMRY summary files and prints run\n" +
		"metadata, vector names, and vector values. Dataset roots are given\n" +
		"without extension; archived files (.zst, .s2, .lz4) are picked up\n" +
		"transparently.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&onDemand, "on-demand", false,
		"seek vectors out of the data file instead of reading it whole")
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(vectorCmd)
	rootCmd.AddCommand(exportCmd)
}

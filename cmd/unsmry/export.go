package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/resfile/unsmry/summary"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export ROOT KEYWORD[:IDENTIFIER]...",
	Short: "Write selected vectors as CSV",
	Long: "Extract the selected vectors into a table and write it as CSV, one\n" +
		"column per vector, one row per report step. Identifiers with spaces\n" +
		"(block coordinates, region pairs) go after the colon, quoted:\n" +
		"\"BPR:2 3 1\".",
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ds := open(args[0])

		refs := make([]summary.VectorRef, 0, len(args)-1)
		for _, arg := range args[1:] {
			keyword, identifier, _ := strings.Cut(arg, ":")
			refs = append(refs, summary.VectorRef{Keyword: keyword, Identifier: identifier})
		}

		frame, err := ds.Frame(refs...)
		if err != nil {
			logrus.Fatalf("building frame: %v", err)
		}

		out := os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				logrus.Fatalf("creating %s: %v", exportOut, err)
			}
			defer f.Close()
			out = f
		}

		if err := frame.WriteCSV(out); err != nil {
			logrus.Fatalf("writing CSV: %v", err)
		}
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	goflat "github.com/reoring/goflat"
	"github.com/reoring/goflat/schemafile"
)

func newDescribeCmd() *cobra.Command {
	var params schemaParams
	var format string
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the field offsets of a schema, or the schema in canonical form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := params.loadSchema()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch format {
			case "table":
				printTable(out, s)
				for _, l := range s.Layouts() {
					fmt.Fprintf(out, "\nlayout %s (rows %d)\n", l.Name(), l.Rows())
					printTable(out, l.Schema())
				}
				return nil
			case string(schemafile.FormatYAML), string(schemafile.FormatJSON):
				data, err := schemafile.Marshal(schemafile.FromSchema(s), schemafile.Format(format))
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}
			return fmt.Errorf("unknown format %q", format)
		},
	}
	params.bind(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, yaml or json")
	return cmd
}

func printTable(w io.Writer, s *goflat.Schema) {
	fmt.Fprintf(w, "%-16s %5s %5s %5s  %s\n", "FIELD", "START", "END", "WIDTH", "FLAGS")
	for _, f := range s.Fields() {
		start, end, _ := s.Offset(f.Name())
		flags := []string{f.Policy().String()}
		if f.IsPadding() {
			flags = []string{"pad"}
		}
		if n := len(f.Filters()) + len(f.Formatters()); n > 0 {
			flags = append(flags, fmt.Sprintf("%d transforms", n))
		}
		fmt.Fprintf(w, "%-16s %5d %5d %5d  %s\n", f.Name(), start+1, end, f.Width(), strings.Join(flags, ","))
	}
	fmt.Fprintf(w, "%-16s %5s %5d %5d\n", "total", "", s.Width(), s.Width())
}

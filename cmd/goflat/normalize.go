package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	goflat "github.com/reoring/goflat"
	"github.com/reoring/goflat/sink"
)

func newNormalizeCmd() *cobra.Command {
	var params schemaParams
	var outPath, outEncoding string
	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Parse a data file and write it back through the schema formatters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := params.loadSchema()
			if err != nil {
				return err
			}
			in := "-"
			if len(args) == 1 {
				in = args[0]
			}
			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			var opts []sink.Option
			if outEncoding != "" {
				opts = append(opts, sink.WithEncoding(outEncoding))
			}
			// one writer per codec, all sharing out
			writers := map[*goflat.Schema]*sink.Writer{}
			var order []*sink.Writer
			writerFor := func(rec *goflat.Record) (*sink.Writer, error) {
				if w, ok := writers[rec.Schema()]; ok {
					return w, nil
				}
				w, err := sink.NewWriter(out, rec.Schema().Codec(), opts...)
				if err != nil {
					return nil, err
				}
				writers[rec.Schema()] = w
				order = append(order, w)
				return w, nil
			}
			err = params.eachRecord(cmd.Context(), in, s, false, func(_ string, rec *goflat.Record) error {
				w, err := writerFor(rec)
				if err != nil {
					return err
				}
				if err := w.Write(rec); err != nil {
					return err
				}
				// keep line order across layouts
				return w.Flush()
			})
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			for _, w := range order {
				if err := w.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}
	params.bind(cmd)
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVar(&outEncoding, "output-encoding", "", "Charset of the output file")
	return cmd
}

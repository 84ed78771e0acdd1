package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	goflat "github.com/reoring/goflat"
)

var errInvalidLines = errors.New("invalid lines found")

func newCheckCmd() *cobra.Command {
	var params schemaParams
	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate data files against a schema and report every invalid line",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := params.loadSchema()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"-"}
			}
			out := cmd.OutOrStdout()
			total := 0
			for _, path := range args {
				n := 0
				err := params.eachRecord(cmd.Context(), path, s, true, func(string, *goflat.Record) error {
					n++
					return nil
				})
				if iss, ok := goflat.AsIssues(err); ok {
					for _, it := range iss {
						fmt.Fprintf(out, "%s:%d: %s %s\n", path, it.Line, it.Code, it.Message)
					}
					total += len(iss)
				} else if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				logger.Verbose(fmt.Sprintf("%s: %d valid records", path, n))
			}
			if total > 0 {
				return fmt.Errorf("%w: %d", errInvalidLines, total)
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
	params.bind(cmd)
	return cmd
}

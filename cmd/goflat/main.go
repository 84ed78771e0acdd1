package main

import (
	"fmt"
	"os"

	"github.com/untillpro/goutils/cobrau"
)

var version = "dev"

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"goflat",
		"Fixed-width flat file utility",
		args,
		ver,
		newCheckCmd(),
		newNormalizeCmd(),
		newDescribeCmd(),
	)

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}

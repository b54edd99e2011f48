// SPDX-License-Identifier: MIT

// Command lpsolve solves small linear programs from YAML files.
package main

import (
	goflag "flag"
	"fmt"
	"os"

	log "github.com/golang/glog"

	"github.com/katalvlaran/lplab/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	// glog writes to stderr unless --logtostderr=false is passed.
	_ = goflag.Set("logtostderr", "true")
	_ = goflag.CommandLine.Parse(nil)
	defer log.Flush()

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lpsolve:", err)
		return cli.GetExitCode(err)
	}
	return cli.ExitSuccess
}

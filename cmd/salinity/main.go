// Command salinity estimates seawater salinity from measured ion concentrations.
package main

import (
	"fmt"
	"os"

	"github.com/guttosm/salinity-service/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}

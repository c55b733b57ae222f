// Command reflbin bins detector scan files into ICP or VTK volumes.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arloliu/reflbin"
	"github.com/arloliu/reflbin/internal/monitoring"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the command and returns the exit code: 0 on success, 1 on a
// configuration error or if any file failed.
func run(args []string, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 0
	}

	cli, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "reflbin: %v\n", err)
		return 1
	}

	res, err := reflbin.ConvertFiles(cli.files, cli.opts...)
	if err != nil {
		fmt.Fprintf(stderr, "reflbin: %v\n", err)
		return 1
	}
	if res.Failed() {
		monitoring.Logf("reflbin: %d of %d files failed", len(res.Failures), len(cli.files))
		return 1
	}

	return 0
}

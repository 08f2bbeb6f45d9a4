// Command hrscreen screens a stream of candidate profiles against a job
// description and writes a scored, gated pass/borderline/reject decision
// for each candidate.
package main

import (
	"os"

	"github.com/learnbot/hrscreening/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

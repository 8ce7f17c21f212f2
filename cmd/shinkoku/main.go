// Command shinkoku is an interactive terminal guide that helps Japanese
// income tax filers figure out which 確定申告 tasks apply to them.
package main

import (
	"os"

	"github.com/hmuraoka/shinkoku-navi/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

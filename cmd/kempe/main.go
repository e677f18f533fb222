// Command kempe runs the honeycomb three-colour Kempe-chain updater.
package main

import (
	"os"

	"honeycomb/internal/logging"
)

func main() {
	err := newRootCmd().Execute()
	logging.Flush()
	if err != nil {
		os.Exit(1)
	}
}

// main is the entry point for the teampulse CLI.
package main

import (
	"os"

	"github.com/teampulse/teampulse/cmd"
	"github.com/teampulse/teampulse/internal/contract"
	"github.com/teampulse/teampulse/internal/iocache"
)

func main() {
	// The run store is initialized lazily in command setup; close it on the
	// way out regardless of which command ran.
	defer iocache.CloseStore()

	cmd.SetStoreManager(iocache.Manager)

	err := cmd.Execute()

	if profErr := cmd.StopProfiling(); profErr != nil {
		contract.LogWarn("Failed to stop profiling", profErr)
	}

	if err != nil {
		contract.LogWarn("Command failed", err)
		iocache.CloseStore()
		os.Exit(1)
	}
}

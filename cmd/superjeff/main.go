// superjeff is a small platformer: reach the monkey at the end of the level and stomp it.
//
// Usage:
//
//	superjeff play              - Play in a window (or --term for the terminal)
//	superjeff replay <file>     - Re-simulate a recording headless
//	superjeff scores [level]    - Show the best completed runs
//	superjeff check             - Validate the tuning and a level
//	superjeff init <dir>        - Write the built-in tuning and levels to dir
//
// Global flags:
//
//	--config <dir>     - Directory with tuning.yaml and levels/ (default: built-in)
//	--level <name>     - Level to load (default: level1)
//	--seed <value>     - RNG seed (0 = random based on time)
//	--fixed            - Step 1/60 s per frame instead of the wall clock
//	--db <path>        - Runs database (default: ~/.superjeff/runs.db)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

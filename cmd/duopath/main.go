// Command duopath solves two-agent safe-distance path problems.
//
//	duopath solve testcases/1.in
//	duopath batch --folder testcases --out results.csv --workers 4
//	duopath generate --kind grid --rows 4 --cols 5 --d 1 --t 30 --out g.in
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

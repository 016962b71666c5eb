// SPDX-License-Identifier: MIT

// Command magiccouple couples catalog entities through the magic-square
// coupling engine and inspects candidate squares.
//
//	magiccouple couple electron electron --force electromagnetic
//	magiccouple batch jobs.yaml --metrics
//	magiccouple check square.yaml
//	magiccouple parity 3 4 5 7
//	magiccouple forces
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

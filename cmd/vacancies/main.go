// cmd/vacancies/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/law-makers/vacancies/internal/cli"
)

func main() {
	// Interrupts cancel the in-flight request; the run then fails and writes nothing
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}

// Command server runs the peer-review HTTP API.
//
// Configuration is read from config.yaml (CONFIG_PATH), .env (DOTENV_PATH)
// and the environment. SIGINT or SIGTERM triggers a graceful shutdown.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tarsojabbes/science/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"log"

	"github.com/okarpov/taskdeck/internal/client/config"
	"github.com/okarpov/taskdeck/internal/client/tui"
)

func main() {
	cfg := config.LoadConfig()

	app, err := tui.NewApp(context.Background(), cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("%v", err)
	}
}

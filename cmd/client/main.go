package main

import (
	"context"
	"log"

	"github.com/foodprint-app/foodprint/internal/client/cli"
	"github.com/foodprint-app/foodprint/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}

package main

import (
	"context"
	"log"
	"os"

	"github.com/LukeSky25/Material-Share-App/internal"
)

func main() {
	ctx := context.Background()

	app, err := internal.NewApp(ctx)
	if err != nil {
		log.Fatalf("init app failed: %v", err)
	}
	defer app.Close()

	if err = app.InitControllers(); err != nil {
		app.Logger().Sugar().Errorf("init controllers failed: %v", err)
		os.Exit(1)
	}

	if err = app.Run(ctx); err != nil {
		app.Logger().Sugar().Errorf("materialshare stopped with error: %v", err)
		os.Exit(1)
	}
}

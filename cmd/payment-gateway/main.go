package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeffleon2/draftea-settlement-pipeline/config"
	"github.com/jeffleon2/draftea-settlement-pipeline/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}

	myApp, err := app.NewPaymentGateway(cfg)
	if err != nil {
		fmt.Println("Error initializing payment-gateway", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := myApp.Run(ctx); err != nil {
		myApp.Log.WithError(err).Error("payment-gateway stopped with error")
		os.Exit(1)
	}
	myApp.Log.Info("payment-gateway stopped")
}

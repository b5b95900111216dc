package main

import (
	"context"
	"log"

	api "github.com/Mr-dragon5/invoice-dashboard/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("invoice dashboard API exited: %v", err)
	}
}

package main

import (
	"log"

	"github.com/BruksfildServices01/quickcut/internal/config"
	"github.com/BruksfildServices01/quickcut/internal/server"
)

func main() {
	cfg := config.MustLoad()

	if err := server.Run(cfg); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

package main

import (
	"log"

	"github.com/siddrai7/communebackend-sub001/internal/app"
	"github.com/siddrai7/communebackend-sub001/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}

package main

import (
	"log"

	"github.com/NateDevIO/MacroMeter/config"
	"github.com/NateDevIO/MacroMeter/routes"
)

func main() {
	cfg := config.Load()
	r := routes.SetupRouter(cfg)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

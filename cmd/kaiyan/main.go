package main

import (
	"log"

	"github.com/1739467001-svg/kaiyan/internal/app"
	"github.com/1739467001-svg/kaiyan/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}

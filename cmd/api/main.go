package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/karbhat74/Aikyam/internal/config"
	"github.com/karbhat74/Aikyam/internal/db"
	"github.com/karbhat74/Aikyam/internal/server"
)

func main() {
	_ = godotenv.Load()

	// Config is strict: a missing JWT_SECRET or DB setting refuses to
	// start rather than running with a guessable signing key.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	srv := server.New(conn, cfg)

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

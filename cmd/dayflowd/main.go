package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/alecthomas/kong"

	"dayflow/internal/errors"
	"dayflow/internal/logger"
	"dayflow/internal/server"
	"dayflow/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Addr    string `help:"Listen address." env:"DAYFLOWD_ADDR" default:"localhost:3004"`
	DB      string `help:"SQLite database path." env:"DAYFLOWD_DB" type:"path" default:"~/.config/dayflow/dayflow.db"`
	Config  string `help:"Config directory for logs." env:"DAYFLOW_CONFIG" type:"path" default:"~/.config/dayflow"`
	Debug   bool   `help:"Enable debug logging."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("dayflowd"),
		kong.Description("Resource server for the dayflow client"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := os.MkdirAll(CLI.Config, 0o700); err != nil {
		errors.Fatal(err)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: CLI.Config}); err != nil {
		errors.Fatal(err)
	}

	db, err := store.Open(CLI.DB)
	if err != nil {
		errors.Fatal(fmt.Errorf("open database: %w", err))
	}
	defer db.Close()

	logger.Info("listening", "addr", CLI.Addr, "db", CLI.DB)
	errors.Fatal(http.ListenAndServe(CLI.Addr, server.New(db).Handler()))
}

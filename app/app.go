package app

import (
	"os"

	"go-bank-client/cli"
	"go-bank-client/client"
	"go-bank-client/config"
	"go-bank-client/logger"
	"go-bank-client/session"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Debug("Configuration loaded")

	// --- Wiring All Layers Together ---
	// The session store feeds the API client its bearer credential; the
	// CLI builds the core services on top of the client per command.
	store := session.NewStore(config.AppConfig.Session.TokenFile)
	api := client.New(config.AppConfig.API.BaseURL, store)
	shell := cli.New(api, store, config.AppConfig.API.TransactionLimit)

	if err := shell.Root().Execute(); err != nil {
		logger.Log.WithError(err).Debug("Command failed")
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

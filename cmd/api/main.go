package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title Representantes API
// @version 1.0
// @description CRUD over representantes backed by a relational store.
// @BasePath /
func main() {
	root := &cobra.Command{
		Use:           "representantes",
		Short:         "Representantes REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(serveCmd(), migrateCmd(), seedCmd())

	if err := root.Execute(); err != nil {
		log := bootLogger()
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

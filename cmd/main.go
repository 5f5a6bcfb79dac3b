package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Tomas-vilte/MateNotes/internal/cli"
	cfg "github.com/Tomas-vilte/MateNotes/internal/config"
	"github.com/Tomas-vilte/MateNotes/internal/i18n"
	"github.com/Tomas-vilte/MateNotes/internal/ui"
	ucli "github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error iniciando la cli: %v\n", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.PrintError(err)
		os.Exit(1)
	}
}

func initializeApp() (*ucli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	return cli.NewApp(cfgApp, translations), nil
}

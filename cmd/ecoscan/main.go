package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/ecoscan/internal/version"
)

func main() {
	_ = godotenv.Load()

	var app app
	defer app.Close()

	rootCmd := &cobra.Command{
		Use:               "ecoscan [image]",
		Short:             "Receipt sustainability scores in your terminal",
		Version:           version.Get(),
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: app.setup,
		RunE:              app.runTUI,
	}

	rootCmd.AddCommand(scanCmd(&app))
	rootCmd.AddCommand(historyCmd(&app))
	rootCmd.AddCommand(showCmd(&app))
	rootCmd.AddCommand(deleteCmd(&app))
	addDevCommands(rootCmd, &app)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		app.Close()
		os.Exit(1)
	}
}

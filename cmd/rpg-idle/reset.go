package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the save slot",
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	_, err = a.svc.DeleteSave(cmd.Context(), &game.DeleteSaveInput{})
	switch {
	case errors.IsNotFound(err):
		fmt.Fprintf(cmd.OutOrStdout(), "No save in slot %q\n", a.cfg.Storage.Slot)
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted save slot %q\n", a.cfg.Storage.Slot)
	return nil
}

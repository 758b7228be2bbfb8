package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/repositories/saves"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Scan every save slot for unreadable data",
	Long: `Scan every save slot in the configured backend and report slots that cannot be
decoded or were written by another save version. With --fix, unreadable slots are
deleted so the next load starts a new game cleanly.`,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "delete unreadable slots")
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	list, err := a.repo.List(ctx, saves.ListInput{})
	if err != nil {
		return err
	}

	var corrupted []string
	for _, slot := range list.Slots {
		loaded, err := a.repo.Load(ctx, saves.LoadInput{Slot: slot})
		switch {
		case errors.IsDataLoss(err):
			fmt.Fprintf(out, "✗ %s: %v\n", slot, err)
			corrupted = append(corrupted, slot)
		case err != nil:
			return err
		case loaded.Data.Version != saves.CurrentVersion:
			fmt.Fprintf(out, "! %s: save version %d, current is %d\n",
				slot, loaded.Data.Version, saves.CurrentVersion)
		default:
			fmt.Fprintf(out, "✓ %s: level %d, saved %s\n",
				slot, loaded.Data.Character.Level, loaded.Data.SavedAt().Format("2006-01-02 15:04"))
		}
	}

	fmt.Fprintf(out, "\nChecked %d slots, %d unreadable\n", len(list.Slots), len(corrupted))
	if !doctorFix {
		return nil
	}

	for _, slot := range corrupted {
		if _, err := a.repo.Delete(ctx, saves.DeleteInput{Slot: slot}); err != nil {
			return err
		}
		a.logger.Info("deleted unreadable save", zap.String("slot", slot))
	}
	if len(corrupted) > 0 {
		fmt.Fprintf(out, "Deleted %d slots\n", len(corrupted))
	}
	return nil
}

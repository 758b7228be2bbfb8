package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
)

var wavesCmd = &cobra.Command{
	Use:   "waves [select <wave-id>]",
	Short: "List waves or select the next one to fight",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runWaves,
}

func runWaves(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if _, err := a.session(ctx); err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) > 0 {
		if args[0] != "select" || len(args) != 2 {
			return errors.InvalidArgument("usage: waves select <wave-id>")
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.InvalidArgumentf("invalid wave id %q", args[1])
		}
		selected, err := a.svc.SelectWave(ctx, &game.SelectWaveInput{WaveID: id})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Selected wave %d: %s\n", selected.Wave.ID, selected.Wave.Name)
		return a.persist(ctx)
	}

	list, err := a.svc.ListWaves(ctx, &game.ListWavesInput{})
	if err != nil {
		return err
	}
	for _, w := range list.Waves {
		marker := " "
		if w.Selected {
			marker = ">"
		}
		status := "locked"
		switch {
		case w.Completed:
			status = "completed"
		case w.Unlocked:
			status = "unlocked"
		}
		fmt.Fprintf(out, "%s %d. %-20s lvl %-2d %-9s %s\n",
			marker, w.Wave.ID, w.Wave.Name, w.Wave.Level, status, w.Wave.Description)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-idle/internal/engine/combat"
	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
)

var (
	simWaveID   int
	simMaxTicks int
	simRealtime bool
	simPotionAt int
	simLogSize  int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Fight a wave and print the combat log",
	Long: `Fight one wave with the saved character. By default the fight is stepped as fast
as possible; --realtime paces it with combat.tick_interval. Ctrl-C stops the fight.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simWaveID, "wave", 0, "wave to fight (default: selected wave)")
	simulateCmd.Flags().IntVar(&simMaxTicks, "max-ticks", 100000, "give up after this many ticks")
	simulateCmd.Flags().BoolVar(&simRealtime, "realtime", false, "pace ticks with the configured tick interval")
	simulateCmd.Flags().IntVar(&simPotionAt, "potion-at", 25, "drink a potion when health drops to this percent (0 disables)")
	simulateCmd.Flags().IntVar(&simLogSize, "log-size", 200, "combat log entries to keep")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			a.logger.Info("received signal, stopping fight", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	if _, err := a.session(ctx); err != nil {
		return err
	}

	combatLog := combat.NewLog(simLogSize)
	unsubscribe := a.svc.Subscribe(combatLog.Listen)
	defer unsubscribe()

	started, err := a.svc.StartWave(ctx, &game.StartWaveInput{WaveID: simWaveID})
	if err != nil {
		return err
	}
	a.logger.Info("fight started",
		zap.Int("wave_id", started.Wave.WaveID),
		zap.Int("enemies", len(started.Wave.Enemies)))

	var summary *game.WaveSummary
	if simRealtime {
		summary, err = runRealtime(ctx, a)
	} else {
		summary, err = runStepped(ctx, a)
	}
	if err != nil {
		// leave the engine idle so a partial fight is not saved mid-combat
		if _, stopErr := a.svc.StopCombat(context.Background(), &game.StopCombatInput{}); stopErr != nil {
			a.logger.Warn("failed to stop combat", zap.Error(stopErr))
		}
		return err
	}

	out := cmd.OutOrStdout()
	printLog(out, combatLog.Entries())
	if summary == nil {
		fmt.Fprintf(out, "\nfight did not finish within %d ticks\n", simMaxTicks)
		return nil
	}
	printSummary(out, summary)

	return a.persist(context.Background())
}

func runRealtime(ctx context.Context, a *app) (*game.WaveSummary, error) {
	// the potion policy only applies to stepped fights; a realtime fight is
	// left to run on its own
	out, err := a.svc.RunCombat(ctx, &game.RunCombatInput{MaxTicks: simMaxTicks})
	if err != nil {
		return nil, err
	}
	return out.Summary, nil
}

func runStepped(ctx context.Context, a *app) (*game.WaveSummary, error) {
	char, err := a.svc.GetCharacter(ctx, &game.GetCharacterInput{})
	if err != nil {
		return nil, err
	}
	maxHealth := char.EffectiveStats.Health

	for i := 0; i < simMaxTicks; i++ {
		out, err := a.svc.TickCombat(ctx, &game.TickCombatInput{})
		if err != nil {
			return nil, err
		}
		if out.Summary != nil {
			return out.Summary, nil
		}
		if out.Phase.IsTerminal() {
			return nil, nil
		}

		if shouldDrink(out.State.PlayerHealth, maxHealth) {
			used, err := a.svc.UsePotion(ctx, &game.UsePotionInput{})
			if err != nil {
				return nil, err
			}
			if used.Used {
				a.logger.Debug("drank potion",
					zap.Int("healed", used.Healed),
					zap.Int("remaining", used.Remaining))
			}
		}
	}
	return nil, nil
}

func shouldDrink(health, maxHealth int) bool {
	if simPotionAt <= 0 || maxHealth <= 0 || health <= 0 {
		return false
	}
	return health*100 <= maxHealth*simPotionAt
}

func printLog(w io.Writer, entries []combat.LogEntry) {
	for _, e := range entries {
		fmt.Fprintf(w, "[%-13s] %s\n", e.Type, e.Message)
	}
}

func printSummary(w io.Writer, s *game.WaveSummary) {
	fmt.Fprintf(w, "\n== %s: %s ==\n", s.WaveName, strings.ToUpper(string(s.Outcome)))
	fmt.Fprintf(w, "Enemies defeated: %d\n", s.EnemiesDefeated)
	fmt.Fprintf(w, "Gold earned:      %d\n", s.GoldEarned)
	fmt.Fprintf(w, "Experience:       %d\n", s.ExperienceEarned)
	if s.LeveledUp() {
		fmt.Fprintf(w, "Level up! %d -> %d\n", s.PreviousLevel, s.Level)
	}
	if len(s.LootCollected) > 0 {
		names := make([]string, 0, len(s.LootCollected))
		for _, item := range s.LootCollected {
			names = append(names, item.Name())
		}
		fmt.Fprintf(w, "Loot:             %s\n", strings.Join(names, ", "))
	}
	if s.NextWaveUnlocked != 0 {
		fmt.Fprintf(w, "Unlocked wave %d\n", s.NextWaveUnlocked)
	}
}

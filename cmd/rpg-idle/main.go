// Package main is the entry point for the rpg-idle command line game
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	slotName   string
)

var rootCmd = &cobra.Command{
	Use:   "rpg-idle",
	Short: "Idle action RPG",
	Long: `rpg-idle runs an incremental action RPG headless: fight enemy waves, collect loot,
level up and manage equipment. Progress is kept in a save slot.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&slotName, "slot", "", "save slot (overrides storage.slot)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(wavesCmd)
	rootCmd.AddCommand(characterCmd)
	rootCmd.AddCommand(equipCmd)
	rootCmd.AddCommand(unequipCmd)
	rootCmd.AddCommand(allocateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(doctorCmd)
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
)

var characterCmd = &cobra.Command{
	Use:   "character",
	Short: "Show the character sheet",
	RunE:  runCharacter,
}

var equipCmd = &cobra.Command{
	Use:   "equip <item-id>",
	Short: "Equip an item from the inventory",
	Args:  cobra.ExactArgs(1),
	RunE:  runEquip,
}

var unequipCmd = &cobra.Command{
	Use:   "unequip <slot>",
	Short: "Move an equipped item back to the inventory",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnequip,
}

var allocateCmd = &cobra.Command{
	Use:   "allocate <strength|dexterity|intelligence>",
	Short: "Spend an attribute point",
	Args:  cobra.ExactArgs(1),
	RunE:  runAllocate,
}

func runCharacter(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if _, err := a.session(ctx); err != nil {
		return err
	}

	out, err := a.svc.GetCharacter(ctx, &game.GetCharacterInput{})
	if err != nil {
		return err
	}
	printCharacter(cmd.OutOrStdout(), out)
	return nil
}

func runEquip(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if _, err := a.session(ctx); err != nil {
		return err
	}

	out, err := a.svc.EquipItem(ctx, &game.EquipItemInput{ItemID: args[0]})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Equipped %s\n", out.Equipped.Name())
	if out.Displaced != nil {
		fmt.Fprintf(w, "Moved %s to the inventory\n", out.Displaced.Name())
	}
	return a.persist(ctx)
}

func runUnequip(cmd *cobra.Command, args []string) error {
	slot, err := entities.ParseEquipmentSlot(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if _, err := a.session(ctx); err != nil {
		return err
	}

	out, err := a.svc.UnequipItem(ctx, &game.UnequipItemInput{Slot: slot})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if out.Item == nil {
		fmt.Fprintf(w, "Nothing equipped in %s\n", slot)
		return nil
	}
	fmt.Fprintf(w, "Unequipped %s\n", out.Item.Name())
	return a.persist(ctx)
}

func runAllocate(cmd *cobra.Command, args []string) error {
	attr, err := entities.ParseAttribute(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if _, err := a.session(ctx); err != nil {
		return err
	}

	out, err := a.svc.AllocateAttribute(ctx, &game.AllocateAttributeInput{Attribute: attr})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if !out.Allocated {
		fmt.Fprintln(w, "No attribute points to spend")
		return nil
	}
	fmt.Fprintf(w, "Increased %s (%d points left)\n", attr, out.PointsRemaining)
	return a.persist(ctx)
}

func printCharacter(w io.Writer, out *game.GetCharacterOutput) {
	c := out.Character
	s := out.EffectiveStats

	fmt.Fprintf(w, "%s  level %d  (%d/%d xp)  %d gold\n",
		c.ID, c.Level, c.Experience, out.ExperienceToNextLevel, c.Gold)
	if c.UnallocAttrPts > 0 {
		fmt.Fprintf(w, "Unspent attribute points: %d\n", c.UnallocAttrPts)
	}
	fmt.Fprintf(w, "\nHealth %d  Mana %d  Damage %d  Speed %.2f  Armor %d\n",
		s.Health, s.Mana, s.Damage, s.AttackSpeed, s.Armor)
	fmt.Fprintf(w, "STR %d  DEX %d  INT %d\n", s.Strength, s.Dexterity, s.Intelligence)

	fmt.Fprintln(w, "\nEquipment:")
	for _, slot := range entities.EquipmentSlots {
		item, _ := c.Equipment.Get(slot)
		name := "-"
		if item != nil {
			name = fmt.Sprintf("%s (%s)", item.Name(), item.ID)
		}
		fmt.Fprintf(w, "  %-7s %s\n", slot, name)
	}
	if out.PotionCount > 0 {
		fmt.Fprintf(w, "Potions: %d\n", out.PotionCount)
	}

	fmt.Fprintf(w, "\nInventory (%d):\n", len(c.Inventory))
	for _, item := range c.Inventory {
		fmt.Fprintf(w, "  %-24s %s\n", item.ID, item.Name())
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-drone/internal/profile"
	"github.com/vovakirdan/neon-drone/internal/registry"
	"github.com/vovakirdan/neon-drone/internal/skins"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "List drone variants",
	Long: `Show every drone variant with its price and whether the current
player owns or has equipped it.

Examples:
  drone shop
  drone shop buy enforcer
  drone shop equip enforcer`,
	Args: cobra.NoArgs,
	Run:  runShop,
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <variant>",
	Short: "Buy a drone variant with data-bits",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runShopChange(args[0], skins.Buy, "Unlocked")
	},
}

var shopEquipCmd = &cobra.Command{
	Use:   "equip <variant>",
	Short: "Equip an owned drone variant",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runShopChange(args[0], skins.Equip, "Equipped")
	},
}

func init() {
	shopCmd.AddCommand(shopBuyCmd)
	shopCmd.AddCommand(shopEquipCmd)
}

func runShop(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()
	p := mustLoadProfile(store)

	variants := registry.List()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("Shop - %s (%d data-bits)\n", flagPlayer, p.DataBits)
	fmt.Println()
	fmt.Printf("  %-*s  %-12s  %-8s  %s\n", maxIDLen, "ID", "Title", "Price", "Status")
	fmt.Printf("  %-*s  %-12s  %-8s  %s\n", maxIDLen, "--", "-----", "-----", "------")

	for _, v := range variants {
		fmt.Printf("  %-*s  %-12s  %-8d  %s\n", maxIDLen, v.ID, v.Title, v.Price, variantStatus(p, v.ID))
	}

	fmt.Println()
	fmt.Println("Run 'drone shop buy <id>' or 'drone shop equip <id>'.")
}

// variantStatus describes the player's relation to a variant.
func variantStatus(p profile.Profile, id string) string {
	switch {
	case p.EquippedVariant == id:
		return "equipped"
	case p.Unlocked(id):
		return "owned"
	default:
		return "locked"
	}
}

// runShopChange applies a shop operation to the player's profile and saves it.
func runShopChange(id string, op func(*profile.Profile, string) error, verb string) {
	v, err := registry.Get(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'drone shop' to see available variants.")
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()
	p := mustLoadProfile(store)

	if err := op(&p, v.ID); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := store.SaveProfile(flagPlayer, p); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s %s. Data-bits: %d\n", verb, v.Title, p.DataBits)
}

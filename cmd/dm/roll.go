package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tavernkeep/dungeonmaster/internal/dice"
)

var rollSeed uint64

var rollCmd = &cobra.Command{
	Use:   "roll <notation>",
	Short: "Roll dice notation like 2d6+3",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoll,
}

func init() {
	rollCmd.Flags().Uint64Var(&rollSeed, "seed", 0, "dice seed (random when omitted)")
}

func runRoll(cmd *cobra.Command, args []string) error {
	seed := rollSeed
	if !cmd.Flags().Changed("seed") {
		var err error
		seed, err = dice.NewSeed()
		if err != nil {
			return err
		}
	}

	result, err := dice.NewRoller(seed).Roll(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s -> %v", result.Notation, result.Rolls)
	if result.Modifier != 0 {
		fmt.Printf(" %+d", result.Modifier)
	}
	fmt.Printf(" = %d\n", result.Total)
	return nil
}

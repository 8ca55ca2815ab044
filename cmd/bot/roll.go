package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/herald-bot/internal/dice"
)

type rollFlags struct {
	attribute   string
	skill       string
	edge        string
	difficulty  string
	desperation string
	seed        int64
}

func newRollCmd() *cobra.Command {
	flags := &rollFlags{}

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll a dice pool locally",
		Example: `  herald-bot roll --attribute 3 --skill 2 --edge 1 --desperation
  herald-bot roll --attribute 4 --skill 1 --difficulty 2 --seed 42`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoll(cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.attribute, "attribute", "0", "attribute rating")
	cmd.Flags().StringVar(&flags.skill, "skill", "0", "skill rating")
	cmd.Flags().StringVar(&flags.edge, "edge", "0", "edge dice to add")
	cmd.Flags().StringVar(&flags.difficulty, "difficulty", "0", "dice removed from the base pool")
	cmd.Flags().StringVar(&flags.desperation, "desperation", "false", "add a desperation die")
	cmd.Flags().Lookup("desperation").NoOptDefVal = "true"
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "seed for repeatable rolls (0 uses crypto dice)")

	return cmd
}

func runRoll(out io.Writer, flags *rollFlags) error {
	attribute, err := dice.ParseCount("attribute", flags.attribute)
	if err != nil {
		return err
	}
	skill, err := dice.ParseCount("skill", flags.skill)
	if err != nil {
		return err
	}
	edge, err := dice.ParseCount("edge", flags.edge)
	if err != nil {
		return err
	}
	difficulty, err := dice.ParseCount("difficulty", flags.difficulty)
	if err != nil {
		return err
	}
	desperate, err := dice.ParseFlag("desperation", flags.desperation)
	if err != nil {
		return err
	}

	result, err := dice.NewEngine(newRoller(flags.seed)).RollPool(attribute, skill, desperate, edge, difficulty)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Pool: %d\n", len(result.Dice()))
	fmt.Fprintf(out, "Dice: %s\n", joinFaces(result.Dice()))
	if len(result.EdgeDice()) > 0 {
		fmt.Fprintf(out, "Edge: %s\n", joinFaces(result.EdgeDice()))
	}
	if len(result.DesperationDice()) > 0 {
		fmt.Fprintf(out, "Desperation: %s\n", joinFaces(result.DesperationDice()))
	}
	fmt.Fprintf(out, "Successes: %d (crits %d)\n", result.TotalSuccesses(), result.Crits())
	if result.MessyCritical() {
		fmt.Fprintln(out, "MESSY CRITICAL")
	}
	if result.HasOverreach() {
		fmt.Fprintf(out, "Overreach or Despair (%d desperation ones)\n", result.DesperationOnes())
	}

	return nil
}

func newRouseCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "rouse",
		Short: "Make a rouse check locally",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := dice.NewEngine(newRoller(seed)).RollRouseCheck()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Die: %d\n", result.Die)
			if result.Success {
				fmt.Fprintln(out, "Success: no desperation gained")
				return nil
			}
			fmt.Fprintf(out, "Failure: desperation +%d\n", result.DesperationGained)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for a repeatable check (0 uses crypto dice)")

	return cmd
}

func joinFaces(faces []int) string {
	parts := make([]string, len(faces))
	for i, face := range faces {
		parts[i] = fmt.Sprint(face)
	}
	return strings.Join(parts, " ")
}

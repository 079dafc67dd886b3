package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the construction order and boolean steps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := load(cmd)
		if err != nil {
			return err
		}
		plan, err := e.reactor.Plan()
		if err != nil {
			return err
		}
		comps := plan.Components()
		t := newTable(nil, "#", "component", "method", "steps")
		t.StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case comps[row].Hidden:
				return styleHidden
			}
			return styleCell
		})
		for i, c := range comps {
			steps := make([]string, len(c.Steps))
			for j, s := range c.Steps {
				steps[j] = s.String()
			}
			method := c.Method.String()
			if c.Copies > 1 {
				method += fmt.Sprintf(" x%d", c.Copies)
			}
			t.Row(fmt.Sprint(i), c.Name, method, strings.Join(steps, ", "))
		}
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("Construction plan, %g degrees", plan.Angle())))
		fmt.Fprintln(w, t)
		fmt.Fprintln(w, styleMuted.Render("highlighted components are construction aids, not parts"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile <component>",
	Short: "Print the connection tagged points of a component profile",
	Long:  "Print the connection tagged points of a component profile. Without arguments the component names are listed.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := load(cmd)
		if err != nil {
			return err
		}
		plan, err := e.reactor.Plan()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, c := range plan.Components() {
				fmt.Fprintln(w, c.Name)
			}
			return nil
		}
		c, ok := plan.Component(args[0])
		if !ok {
			var names []string
			for _, c := range plan.Components() {
				names = append(names, c.Name)
			}
			return fmt.Errorf("no component %q, have %s", args[0], strings.Join(names, ", "))
		}
		p, err := c.Profile()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, styleTitle.Render(c.Name))
		t := newTable(nil, "#", "x", "z", "connection")
		for i, pt := range p {
			t.Row(fmt.Sprint(i), num(pt.X), num(pt.Y), pt.Conn.String())
		}
		fmt.Fprintln(w, t)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pulseguard-backend/internal/healthmetrics"
)

func newBloodGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bloodgroup PARENT1 PARENT2",
		Short: "List the ABO groups a child of two parents could have",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p1, err := healthmetrics.ParseBloodGroup(args[0])
			if err != nil {
				return err
			}
			p2, err := healthmetrics.ParseBloodGroup(args[1])
			if err != nil {
				return err
			}
			groups := healthmetrics.OffspringBloodGroups(p1, p2)
			names := make([]string, len(groups))
			for i, g := range groups {
				names[i] = string(g)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, ", "))
			return nil
		},
	}
}

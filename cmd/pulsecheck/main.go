package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pulseguard-backend/internal/healthmetrics"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pulsecheck",
		Short:         "Evaluate health records with the PulseGuard rule engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newEvaluateCmd(),
		newWeatherCmd(),
		newBloodGroupCmd(),
		newTokenCmd(),
	)
	return root
}

// severityColor maps an engine severity onto a terminal color.
func severityColor(s healthmetrics.Severity) func(a ...any) string {
	switch s {
	case healthmetrics.SeveritySuccess:
		return color.New(color.FgGreen).SprintFunc()
	case healthmetrics.SeverityWarning:
		return color.New(color.FgYellow).SprintFunc()
	case healthmetrics.SeverityDanger:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	default:
		return color.New(color.FgHiBlack).SprintFunc()
	}
}

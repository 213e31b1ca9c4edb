package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pulseguard-backend/internal/dashboard"
	"pulseguard-backend/internal/healthmetrics"
	"pulseguard-backend/internal/records"
)

func newEvaluateCmd() *cobra.Command {
	var (
		file   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Classify a health record read from YAML",
		Long: `Reads a health record from a YAML file (or "-" for stdin). Fields left out
of the file keep the assessment form defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			hr, err := loadRecord(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			analysis := dashboard.Analyze(records.Record{HealthRecord: hr}, healthmetrics.DefaultRandom)
			calc := dashboard.Calculate(hr)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Analysis    dashboard.Analysis    `json:"analysis"`
					Calculators dashboard.Calculators `json:"calculators"`
				}{analysis, calc})
			}
			printAnalysis(cmd.OutOrStdout(), hr, analysis, calc)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML health record (- for stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func loadRecord(stdin io.Reader, path string) (healthmetrics.HealthRecord, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return healthmetrics.HealthRecord{}, fmt.Errorf("read record: %w", err)
	}

	hr := records.Defaults()
	if err := yaml.Unmarshal(data, &hr); err != nil {
		return healthmetrics.HealthRecord{}, fmt.Errorf("parse record: %w", err)
	}
	hr = records.Normalize(hr)
	if err := records.Validate(hr); err != nil {
		return healthmetrics.HealthRecord{}, err
	}
	return hr, nil
}

func printAnalysis(w io.Writer, hr healthmetrics.HealthRecord, a dashboard.Analysis, calc dashboard.Calculators) {
	bold := color.New(color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()
	stage := severityColor(a.BloodPressure.Severity)

	fmt.Fprintf(w, "%s %d/%d mmHg  %s\n", bold("Blood pressure:"), hr.Systolic, hr.Diastolic, stage(a.BloodPressure.Stage))
	fmt.Fprintf(w, "  %s\n", a.BloodPressure.Description)
	if a.Emergency {
		fmt.Fprintf(w, "  %s\n", color.New(color.FgRed, color.Bold).Sprint("Seek medical attention."))
	}

	fmt.Fprintf(w, "%s %s | Stability %d%% | Readiness %d%%\n",
		bold("Risk score:"), severityColor(a.RiskColor)(fmt.Sprintf("%d/100", a.RiskScore)), a.Stability, a.Readiness)
	fmt.Fprintf(w, "%s genetic %d%% | metabolic %d%% | sodium limit %dmg\n",
		bold("Indices:"), a.GeneticRisk, a.MetabolicRisk, a.SodiumLimit)
	fmt.Fprintf(w, "%s ideal weight %gkg | body fat %g%% | water %gL\n",
		bold("Body:"), calc.IdealWeight, calc.BodyFat, calc.Water)

	if len(a.Patterns) > 0 {
		fmt.Fprintf(w, "%s %s\n", bold("Patterns:"), strings.Join(a.Patterns, ", "))
	}

	fmt.Fprintln(w, bold("Insights:"))
	for _, in := range a.Insights {
		fmt.Fprintf(w, "  [%s] %s: %s\n", in.Priority, in.Category, in.Message)
	}

	fmt.Fprintln(w, bold("Trend:"))
	for _, p := range a.Trend {
		fmt.Fprintf(w, "  %s %s\n", p.Day, gray(fmt.Sprintf("%d/%d", p.Systolic, p.Diastolic)))
	}
}

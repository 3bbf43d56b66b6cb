package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"coanalyst/adapters/excel"
	"coanalyst/adapters/sampler"
	"coanalyst/app"
	"coanalyst/domain/analysis"
	"coanalyst/internal"
	"coanalyst/internal/api"
	"coanalyst/internal/compute"
	"coanalyst/internal/config"
	"coanalyst/internal/report"
)

var (
	analyzeFile         string
	analyzeMethod       string
	analyzeInstructions string
	analyzeParams       []string
	analyzeJSON         bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one analysis against a dataset file and print the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return fmt.Errorf("could not read %s: %w", analyzeFile, err)
		}
		t, err := excel.NewDataReader().ReadTable(analyzeFile, data)
		if err != nil {
			return err
		}

		logger := internal.NewDefaultLogger()
		session := app.NewSession()
		session.SetDataset(analyzeFile, t)

		registry := compute.NewRegistry(sampler.New(cfg.Sampler.Seed))
		// The CLI skips the simulated step delays entirely
		service := app.NewAnalysisService(
			logger, session, registry, api.NewSSEHub(), nil, 0)

		analysisCfg := analysis.Config{
			Method:       service.ResolveMethod(analyzeMethod, analyzeInstructions),
			Instructions: analyzeInstructions,
			Parameters:   parseParams(analyzeParams),
		}

		result, err := service.ExecuteSync(context.Background(), analysisCfg)
		if err != nil {
			return err
		}

		if analyzeJSON {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}
		fmt.Print(report.Markdown(analyzeFile, result))
		return nil
	},
}

// parseParams turns repeated key=value flags into the parameter map.
// Repeating a key collects multiple values.
func parseParams(pairs []string) map[string][]string {
	params := make(map[string][]string)
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			continue
		}
		params[key] = append(params[key], value)
	}
	return params
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "dataset file (.csv or .xlsx)")
	analyzeCmd.Flags().StringVarP(&analyzeMethod, "method", "m", "", "analysis method identifier (detected from instructions when empty)")
	analyzeCmd.Flags().StringVarP(&analyzeInstructions, "instructions", "i", "", "free-text analysis instructions")
	analyzeCmd.Flags().StringArrayVarP(&analyzeParams, "param", "p", nil, "method parameter as key=value, repeatable")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the raw result JSON instead of the report")
	analyzeCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(analyzeCmd)
}

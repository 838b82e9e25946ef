package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ppssp_datagen/src/ppssp"
)

var rootCmd = &cobra.Command{
	Use:   "ppssp-datagen",
	Short: "Generate random PPSSP benchmark instances",
	Long: "ppssp-datagen synthesizes project portfolio selection and scheduling instances:\n" +
		"correlated cost/duration profiles, prerequisite, exclusion and synergy constraints,\n" +
		"and a linear multi-period budget, written as a JSON file for downstream solvers.",
	RunE: runGenerate,
}

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))

	cobra.OnInitialize(initConfig)

	rootCmd.Flags().String("config", "", "config file (default .ppssp-datagen.yaml)")
	rootCmd.Flags().String("out", "instance.json", "the output file")
	rootCmd.Flags().String("name", "Instance", "the problem instance name")
	rootCmd.Flags().Int("projects", 0, "the number of projects to generate")
	rootCmd.Flags().Int("window", 0, "the planning window in periods")
	rootCmd.Flags().Float64("base-budget", 0, "the first-period budget")
	rootCmd.Flags().Float64("budget-increase", 0, "the per-period budget increase")
	rootCmd.Flags().Float64("initiation-proportion", 0.25, "initiation budget ceiling as a proportion of the budget")
	rootCmd.Flags().Float64("ongoing-proportion", 0.75, "ongoing budget ceiling as a proportion of the budget")
	rootCmd.Flags().Float64("discount-rate", 0, "the discount rate recorded on the instance")
	rootCmd.Flags().Int64("seed", 1, "the random seed")
	rootCmd.Flags().String("prerequisites", "", "prerequisite group directives, e.g. 2:0.1,3:0.05")
	rootCmd.Flags().String("exclusions", "", "mutual exclusion group directives, e.g. 2:0.1")
	rootCmd.Flags().String("synergies", "", "synergy group directives, e.g. 2:0.1")

	_ = viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".ppssp-datagen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("PPSSP")
	viper.AutomaticEnv()

	// It's fine if no config file is found; flags and defaults apply.
	_ = viper.ReadInConfig()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	params := ppssp.NewInstanceParameters(
		viper.GetInt("projects"),
		viper.GetInt("window"),
		viper.GetFloat64("base-budget"),
		viper.GetFloat64("budget-increase"),
	)
	params.InitiationMaxProportion = viper.GetFloat64("initiation-proportion")
	params.OngoingMaxProportion = viper.GetFloat64("ongoing-proportion")
	params.DiscountRate = viper.GetFloat64("discount-rate")

	var err error
	if params.PrerequisiteTuples, err = parseGroupTuples(viper.GetString("prerequisites")); err != nil {
		return fmt.Errorf("invalid prerequisites: %w", err)
	}
	if params.ExclusionTuples, err = parseGroupTuples(viper.GetString("exclusions")); err != nil {
		return fmt.Errorf("invalid exclusions: %w", err)
	}
	if params.SynergyTuples, err = parseGroupTuples(viper.GetString("synergies")); err != nil {
		return fmt.Errorf("invalid synergies: %w", err)
	}

	start := time.Now()
	instance, err := ppssp.GenerateInstance(params, viper.GetInt64("seed"), viper.GetString("name"))
	if err != nil {
		return err
	}

	data, err := instance.ToJSON()
	if err != nil {
		return err
	}
	outPath := viper.GetString("out")
	if err := os.WriteFile(outPath, data, 0666); err != nil {
		return err
	}

	slog.Info("instance written",
		"path", outPath,
		"projects", instance.NumProjects,
		"synergies", len(instance.Synergies),
		"budget_window", instance.BudgetWindow,
		"elapsed", time.Since(start))
	for _, p := range ppssp.TopProjects(instance.Projects, 3) {
		slog.Info("top cost project", "id", p.ID, "total_cost", p.TotalCost, "duration", p.Duration)
	}
	return nil
}

// parseGroupTuples parses a comma-separated list of size:proportion
// directives, e.g. "2:0.1,3:0.05".
func parseGroupTuples(s string) ([]ppssp.GroupTuple, error) {
	if s == "" {
		return nil, nil
	}

	var tuples []ppssp.GroupTuple
	for _, field := range strings.Split(s, ",") {
		parts := strings.Split(strings.TrimSpace(field), ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("directive %q is not of the form size:proportion", field)
		}
		size, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("directive %q: %v", field, err)
		}
		proportion, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("directive %q: %v", field, err)
		}
		tuples = append(tuples, ppssp.GroupTuple{Size: size, Proportion: proportion})
	}
	return tuples, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"lifeplan/entities"
	"lifeplan/pkg/clock"
	"lifeplan/pkg/generator"
	kvRepoImp "lifeplan/pkg/kv/repositoryImp"
	planRepoImp "lifeplan/pkg/plan/repositoryImp"
	planSvc "lifeplan/pkg/plan/serviceImp"
	"lifeplan/pkg/plan/types"
	"lifeplan/pkg/provider"
)

var rootCmd = &cobra.Command{
	Use:          "planctl",
	Short:        "Generate, share and export weekly life plans offline",
	SilenceUsage: true,
}

func init() {
	var (
		in       entities.PlanInput
		currency string
		seed     string
		artifact bool
	)
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a plan and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Currency = entities.Currency(currency)
			var sp *string
			if cmd.Flags().Changed("seed") {
				sp = &seed
			}
			return runGenerate(cmd.Context(), in, sp, artifact, cmd.OutOrStdout())
		},
	}
	generateCmd.Flags().IntVarP(&in.Weeks, "weeks", "w", 1, "Number of weeks (1-4)")
	generateCmd.Flags().StringVarP(&in.Location, "location", "l", "", "City or area (required)")
	generateCmd.Flags().Float64VarP(&in.Budget, "budget", "b", 0, "Total budget (required)")
	generateCmd.Flags().StringVarP(&currency, "currency", "c", string(entities.CurrencyUSD), "USD, THB or EUR")
	generateCmd.Flags().StringVarP(&seed, "seed", "s", "", "Seed; defaults to location-weeks-budget-now")
	generateCmd.Flags().BoolVar(&artifact, "artifact", false, "Print a stored plan (id, title, versions) instead of the bare output")
	_ = generateCmd.MarkFlagRequired("location")
	_ = generateCmd.MarkFlagRequired("budget")
	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runGenerate goes through the same validation and seeding as the HTTP service,
// against a throwaway in-memory store.
func runGenerate(ctx context.Context, in entities.PlanInput, seed *string, artifact bool, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	clk := clock.System()
	repo := planRepoImp.New(kvRepoImp.NewMemory(), clk, zerolog.Nop())
	svc := planSvc.NewPlanService(generator.New(provider.NewMock(), clk), repo, clk, zerolog.Nop())

	req := &types.GenerateRequest{Input: &in, Seed: seed}
	var v any
	var err error
	if artifact {
		v, err = svc.Create(ctx, req)
	} else {
		v, err = svc.Generate(ctx, req)
	}
	if err != nil {
		return err
	}
	return writeJSON(w, v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

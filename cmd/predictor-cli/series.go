package main

import (
	"github.com/spf13/cobra"

	"stock-predictor/internal/predictor/dto"
	"stock-predictor/internal/predictor/service"
	"stock-predictor/pkg/ohlcv"
	"stock-predictor/pkg/validator"
)

func newSeriesCmd() *cobra.Command {
	var (
		req  dto.SeriesRequest
		days int
		seed uint64
	)

	cmd := &cobra.Command{
		Use:   "series",
		Short: "Generate a synthetic OHLCV series",
		Example: `  predictor-cli series --profile dashboard --days 15
  predictor-cli series --days 5 --seed 42 -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if cmd.Flags().Changed("days") {
				req.Days = &days
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Series.Seed
			}

			svc := service.NewSeriesService(cfg, ohlcv.NewGenerator(ohlcv.NewSource(seed)), validator.New(), log)
			resp, err := svc.Generate(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return writeSeries(cmd.OutOrStdout(), outputFmt, resp)
		},
	}

	cmd.Flags().StringVarP(&req.Profile, "profile", "p", "", "Generator profile (defaults to series.default_profile)")
	cmd.Flags().IntVarP(&days, "days", "d", 0, "Days before the end date; days+1 bars are generated")
	cmd.Flags().Float64Var(&req.BasePrice, "base-price", 0, "Open of the first bar (defaults to the profile's base price)")
	cmd.Flags().StringVar(&req.EndDate, "end-date", "", "Date of the last bar, YYYY-MM-DD (defaults to today)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed; 0 draws from entropy")
	return cmd
}

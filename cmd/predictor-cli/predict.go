package main

import (
	"time"

	"github.com/spf13/cobra"

	"stock-predictor/internal/predictor/dto"
	"stock-predictor/internal/predictor/repository"
	"stock-predictor/internal/predictor/service"
	"stock-predictor/pkg/ohlcv"
	"stock-predictor/pkg/utils"
	"stock-predictor/pkg/validator"
)

func newPredictCmd() *cobra.Command {
	var (
		req         dto.PredictionRequest
		latency     time.Duration
		failureRate float64
		changeMode  string
		seed        uint64
	)

	cmd := &cobra.Command{
		Use:     "predict",
		Short:   "Run one simulated next-day prediction",
		Example: `  predictor-cli predict --symbol AAPL --close-price 168.00 --date 2024-03-15`,
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

			sim := cfg.Simulator
			if cmd.Flags().Changed("latency") {
				sim.Latency = latency
			}
			if cmd.Flags().Changed("failure-rate") {
				sim.FailureRate = failureRate
			}
			if cmd.Flags().Changed("change-mode") {
				sim.ChangeMode = changeMode
			}
			if cmd.Flags().Changed("seed") {
				sim.Seed = seed
			}
			if req.Date == "" {
				req.Date = utils.FormatDate(utils.Today(utils.LoadLocation(cfg.App.TimeZone)))
			}
			cfg.Prediction.Timeout = max(cfg.Prediction.Timeout, sim.Latency+time.Second)

			predictionRepo := repository.NewSimulatedPredictionRepository(sim, log, ohlcv.NewSource(sim.Seed))
			sessionRepo := repository.NewSessionRepository(cfg.Prediction.SessionTTL, cfg.Prediction.CleanupInterval)
			svc := service.NewPredictionService(cfg, predictionRepo, sessionRepo, validator.New(), log)

			resp, err := svc.Submit(cmd.Context(), "", &req)
			if err != nil {
				return err
			}
			return writePrediction(cmd.OutOrStdout(), outputFmt, resp.Prediction)
		},
	}

	cmd.Flags().StringVarP(&req.Symbol, "symbol", "s", "", "Ticker symbol, 1 to 5 letters")
	cmd.Flags().StringVar(&req.ClosePrice, "close-price", "", "Last close price, at most 2 decimals")
	cmd.Flags().StringVar(&req.Date, "date", "", "Date of the close, YYYY-MM-DD (defaults to today)")
	cmd.Flags().DurationVar(&latency, "latency", 0, "Simulated provider latency")
	cmd.Flags().Float64Var(&failureRate, "failure-rate", 0, "Probability in [0,1] that the provider fails")
	cmd.Flags().StringVar(&changeMode, "change-mode", "", "derived or independent")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed; 0 draws from entropy")
	_ = cmd.MarkFlagRequired("symbol")
	_ = cmd.MarkFlagRequired("close-price")
	return cmd
}

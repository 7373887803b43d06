package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/internradar/internradar/internal/logger"
	"github.com/internradar/internradar/internal/recommend"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the recommendation pass on a schedule and log the top results",
	Run: func(cmd *cobra.Command, _ []string) {
		watch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringP("schedule", "s", "@every 6h", "cron schedule for recommendation passes")
	watchCmd.Flags().IntP("limit", "n", 0, "maximum number of results per pass")
}

func watch(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil || config.Profile == nil {
		logger.Fatal("a profile section with your skills is required")
	}

	engine, err := newEngine(config, logger)
	if err != nil {
		logger.Fatal("building the recommendation engine", zap.Error(err))
	}

	profile := profileFromConfig(config.Profile)

	limit := config.Results
	if n, _ := cmd.Flags().GetInt("limit"); n > 0 {
		limit = n
	}

	pass := func() {
		result, err := engine.Recommend(ctx, profile, limit)
		if err != nil {
			logger.Error("recommendation pass failed", zap.Error(err))
			return
		}
		logPass(logger, result)
	}

	schedule, _ := cmd.Flags().GetString("schedule")

	c := cron.New()
	if _, err := c.AddFunc(schedule, pass); err != nil {
		logger.Fatal("invalid schedule", zap.String("schedule", schedule), zap.Error(err))
	}

	logger.Info("starting watch mode", zap.String("schedule", schedule))

	// First pass right away, then on the schedule.
	pass()
	c.Start()

	<-ctx.Done()

	cronCtx := c.Stop()
	<-cronCtx.Done()

	logger.Info("exiting", zap.String("reason", "signal received"))
}

func logPass(logger *zap.Logger, result *recommend.Result) {
	logger.Info("recommendation pass finished",
		zap.Int("results", len(result.Results)),
		zap.Int("filtered_out", result.FilteredOutCount),
		zap.Bool("fallback", result.IsFallback),
	)

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	top := result.Results
	if len(top) > 5 {
		top = top[:5]
	}
	for _, r := range top {
		logger.Info("top listing",
			zap.String("title", r.Listing.Title),
			zap.String("company", r.Listing.Company),
			zap.Float64("composite_score", r.CompositeScore),
			zap.String("url", r.Listing.URL),
		)
	}
}

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/internradar/internradar/internal/ingest"
	"github.com/internradar/internradar/internal/listing"
	"github.com/internradar/internradar/internal/logger"
	"github.com/internradar/internradar/internal/recommend"
	"github.com/internradar/internradar/internal/scoring"
	"github.com/internradar/internradar/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptReportByCompany = "Report by company"
	PromptSummary         = "Show summary"
	PromptDumpToFile      = "Dump results to file"
	PromptExit            = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptReportByCompany, PromptSummary, PromptDumpToFile, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one recommendation pass",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("limit", "n", 0, "maximum number of results (default from config, then 25)")
	runCmd.Flags().BoolP("yes", "y", false, "print results and exit without the interactive menu")
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the internradar", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil || config.Profile == nil {
		logger.Fatal("a profile section with your skills is required")
	}

	engine, err := newEngine(config, logger)
	if err != nil {
		logger.Fatal("building the recommendation engine", zap.Error(err))
	}

	profile := profileFromConfig(config.Profile)
	if len(profile.Skills) == 0 {
		logger.Warn("profile has no skills; every listing gets a neutral relevance score")
	}

	limit := config.Results
	if n, _ := cmd.Flags().GetInt("limit"); n > 0 {
		limit = n
	}

	result, err := engine.Recommend(ctx, profile, limit)
	if err != nil {
		logger.Fatal("recommendation pass failed", zap.Error(err))
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	if result.IsFallback {
		logger.Warn("live sources returned nothing; the results below are illustrative sample data")
	}

	logger.Info("recommendation pass finished",
		zap.Int("results", len(result.Results)),
		zap.Int("filtered_out", result.FilteredOutCount),
		zap.Bool("fallback", result.IsFallback),
	)

	printResults(result)

	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, result); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, result *recommend.Result) error {
	switch action {
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(resultListings(result).ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("results", len(result.Results)))
		return nil
	case PromptSummary:
		pretty, _ := json.MarshalIndent(recommend.Summarize(result.Results), "", "  ")
		logger.Info(string(pretty))
		return nil
	case PromptDumpToFile:
		filename, err := resultListings(result).DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping results to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func printResults(result *recommend.Result) {
	for i, r := range result.Results {
		l := r.Listing

		stipend := "stipend n/a"
		if l.StipendAmount != nil {
			stipend = fmt.Sprintf("$%.0f/month", *l.StipendAmount)
		}

		posted := "posted n/a"
		if l.PostingDate != nil {
			posted = "posted " + l.PostingDate.Format("2006-01-02")
		}

		fmt.Printf("%2d. [%.3f] %s — %s / %s / %s / %s\n", i+1, r.CompositeScore, l.Title, l.Company, l.Location, stipend, posted)
		fmt.Printf("    relevance %.1f/10 / %s / %s\n", r.RelevanceScore, l.SourceSite, l.URL)
	}
}

func resultListings(result *recommend.Result) *listing.Listings {
	ls := &listing.Listings{}
	for _, r := range result.Results {
		ls.Append(r.Listing)
	}
	return ls
}

func profileFromConfig(cfg *ProfileConfig) *listing.Profile {
	return &listing.Profile{
		Skills:            listing.NormalizeSkills(cfg.Skills),
		PreferredLocation: cfg.Location,
		MinStipend:        cfg.MinStipend,
		MaxAgeDays:        cfg.MaxAgeDays,
		ExperienceLevel:   cfg.Experience,
	}
}

// newEngine wires sources, fallback and ranking configuration into an engine.
func newEngine(config *Config, logger *zap.Logger) (*recommend.Engine, error) {
	var (
		sites    []*SiteConfig
		timeout  = ingest.DefaultSourceTimeout
		keywords []string
	)
	if config.Sources != nil {
		sites = config.Sources.Sites
		keywords = config.Sources.Keywords
		if config.Sources.Timeout > 0 {
			timeout = config.Sources.Timeout
		}
	}

	sources := make([]ingest.Source, 0, len(sites))
	for _, site := range sites {
		apiKey, err := resolveAPIKey(site)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", site.Name, err)
		}
		sources = append(sources, ingest.NewHTTPSource(site.Name, site.URL, apiKey, site.Delay, logger))
	}

	var generator *ingest.Generator
	if config.Fallback == nil || !config.Fallback.Disabled {
		count := 0
		if config.Fallback != nil {
			count = config.Fallback.Count
		}
		generator = ingest.NewGenerator(count, nil)
	}

	orch := ingest.NewOrchestrator(sources, timeout, generator, logger)

	engineCfg := &recommend.Config{
		Weights:  scoring.DefaultWeights(),
		Keywords: keywords,
	}
	if config.Ranking != nil {
		weights, err := scoring.WeightsFromMap(config.Ranking.Weights)
		if err != nil {
			return nil, err
		}
		engineCfg.Weights = weights
		engineCfg.StipendCeiling = config.Ranking.StipendCeiling
		engineCfg.Reputation = config.Ranking.Reputation
	}
	if config.Filters != nil {
		engineCfg.DisabledFilters = config.Filters.Disable
	}

	return recommend.New(engineCfg, orch, logger)
}

func resolveAPIKey(site *SiteConfig) (string, error) {
	if site.APIKeyFile == "" && site.APIKeyEnv == "" {
		return "", nil
	}

	return secrets.Load(secrets.Source{
		Name: fmt.Sprintf("%s api key", site.Name),
		File: site.APIKeyFile,
		Env:  site.APIKeyEnv,
	})
}

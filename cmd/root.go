package cmd

import (
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "internradar"
)

type Config struct {
	Profile  *ProfileConfig  `mapstructure:"profile"`
	Sources  *SourcesConfig  `mapstructure:"sources"`
	Ranking  *RankingConfig  `mapstructure:"ranking"`
	Filters  *FiltersConfig  `mapstructure:"filters"`
	Fallback *FallbackConfig `mapstructure:"fallback"`
	Results  int             `mapstructure:"results"`
}

type ProfileConfig struct {
	Skills     []string `mapstructure:"skills"`
	Location   string   `mapstructure:"location"`
	MinStipend float64  `mapstructure:"min-stipend"`
	MaxAgeDays int      `mapstructure:"max-age-days"`
	Experience string   `mapstructure:"experience"`
}

type SourcesConfig struct {
	Sites    []*SiteConfig `mapstructure:"sites"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Keywords []string      `mapstructure:"keywords"`
}

type SiteConfig struct {
	Name       string        `mapstructure:"name"`
	URL        string        `mapstructure:"url"`
	APIKeyFile string        `mapstructure:"api-key-file"`
	APIKeyEnv  string        `mapstructure:"api-key-env"`
	Delay      time.Duration `mapstructure:"delay"`
}

type RankingConfig struct {
	Weights        map[string]float64 `mapstructure:"weights"`
	StipendCeiling float64            `mapstructure:"stipend-ceiling"`
	Reputation     map[string]float64 `mapstructure:"reputation"`
}

type FiltersConfig struct {
	Disable []string `mapstructure:"disable"`
}

type FallbackConfig struct {
	Disabled bool `mapstructure:"disabled"`
	Count    int  `mapstructure:"count"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "internradar is a cli for finding and ranking internship listings against your profile",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is internradar.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config is needed only for the run and watch commands. If neither was
	// called, initialization can be skipped.
	if runCmd.CalledAs() == "" && watchCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

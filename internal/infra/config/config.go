package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SALES_REPORT"

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Output   OutputConfig   `mapstructure:"output"`
	Chart    ChartConfig    `mapstructure:"chart"`
	App      AppConfig      `mapstructure:"app"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type OutputConfig struct {
	Dir           string        `mapstructure:"dir"`
	Show          bool          `mapstructure:"show"`
	Viewer        string        `mapstructure:"viewer"` // empty = platform default
	ViewerTimeout time.Duration `mapstructure:"viewer_timeout"`
}

type ChartConfig struct {
	DPI          int     `mapstructure:"dpi"`
	DecemberYMin float64 `mapstructure:"december_y_min"`
	DecemberYMax float64 `mapstructure:"december_y_max"`
}

type AppConfig struct {
	LogsDir string `mapstructure:"logs_dir"`
}

// Load resolves the configuration in this order, later sources winning:
// 1. defaults
// 2. config.yaml in the working directory
// 3. .env file
// 4. SALES_REPORT_* environment variables
// 5. flags that were set explicitly on the command line
func Load(flags *pflag.FlagSet) (*Config, error) {
	godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindFlags(v, flags)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "sales.db")

	v.SetDefault("output.dir", ".")
	v.SetDefault("output.show", true)
	v.SetDefault("output.viewer", "")
	v.SetDefault("output.viewer_timeout", 10*time.Second)

	v.SetDefault("chart.dpi", 100)
	v.SetDefault("chart.december_y_min", 125000.0)
	v.SetDefault("chart.december_y_max", 175000.0)

	v.SetDefault("app.logs_dir", "logs")
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"db":       "database.path",
	"out":      "output.dir",
	"show":     "output.show",
	"viewer":   "output.viewer",
	"logs-dir": "app.logs_dir",
}

// RegisterFlags adds the persistent flags understood by Load.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("db", "sales.db", "Path to the SQLite sales database (env: SALES_REPORT_DATABASE_PATH)")
	flags.String("out", ".", "Directory for generated PNG files (env: SALES_REPORT_OUTPUT_DIR)")
	flags.Bool("show", true, "Open each chart in the image viewer after saving (env: SALES_REPORT_OUTPUT_SHOW)")
	flags.String("viewer", "", "Image viewer command, default depends on the OS (env: SALES_REPORT_OUTPUT_VIEWER)")
	flags.String("logs-dir", "logs", "Directory for app.log (env: SALES_REPORT_APP_LOGS_DIR)")
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		v.BindPFlag(key, f)
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Chart.DPI <= 0 {
		return fmt.Errorf("chart.dpi must be positive, got %d", c.Chart.DPI)
	}
	if c.Chart.DecemberYMin >= c.Chart.DecemberYMax {
		return fmt.Errorf("chart.december_y_min (%v) must be below chart.december_y_max (%v)",
			c.Chart.DecemberYMin, c.Chart.DecemberYMax)
	}
	if c.Output.ViewerTimeout <= 0 {
		return fmt.Errorf("output.viewer_timeout must be positive, got %s", c.Output.ViewerTimeout)
	}
	return nil
}

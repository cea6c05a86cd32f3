package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Inputs   InputsConfig   `yaml:"inputs" envconfig:"INPUTS"`
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Regions  RegionMap      `yaml:"regions" ignored:"true"`
}

// InputsConfig holds the three source file paths. CLI flags override these,
// so presence is checked by ValidateInputs after the flags are applied, not
// at Load time.
type InputsConfig struct {
	DeprivationTwoPlus string `yaml:"deprivation_two_plus" envconfig:"DEPRIVATION_TWO_PLUS"`
	DeprivationFour    string `yaml:"deprivation_four" envconfig:"DEPRIVATION_FOUR"`
	Metadata           string `yaml:"metadata" envconfig:"METADATA"`
}

// OutputConfig controls where report artifacts land.
type OutputConfig struct {
	Dir       string `yaml:"dir" envconfig:"DIR" default:"report" validate:"required"`
	TablesDir string `yaml:"tables_dir" envconfig:"TABLES_DIR" default:"tables"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"console" validate:"oneof=json console"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/cdpulse.log"`
}

// AnalysisConfig holds the tunable aggregation parameters.
type AnalysisConfig struct {
	TopN           int `yaml:"top_n" envconfig:"TOP_N" default:"10" validate:"gte=1"`
	MinYear        int `yaml:"min_year" envconfig:"MIN_YEAR" default:"2000" validate:"gte=1900"`
	TopKPopulation int `yaml:"top_k_population" envconfig:"TOP_K_POPULATION" default:"5" validate:"gte=1"`
}

// Load loads configuration from environment variables and an optional
// config file. File values override the environment-processed defaults
// for report settings; the input paths keep environment precedence since
// they are normally injected per run.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("CDP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileConfig, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = mergeConfigs(*fileConfig, cfg)
		}
	}

	if cfg.Regions == nil {
		cfg.Regions = DefaultRegionMap()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config into the env-processed config. Input
// paths: env wins. Everything else: a value present in the file wins.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Inputs.DeprivationTwoPlus == "" {
		envConfig.Inputs.DeprivationTwoPlus = fileConfig.Inputs.DeprivationTwoPlus
	}
	if envConfig.Inputs.DeprivationFour == "" {
		envConfig.Inputs.DeprivationFour = fileConfig.Inputs.DeprivationFour
	}
	if envConfig.Inputs.Metadata == "" {
		envConfig.Inputs.Metadata = fileConfig.Inputs.Metadata
	}
	if fileConfig.Output.Dir != "" {
		envConfig.Output.Dir = fileConfig.Output.Dir
	}
	if fileConfig.Output.TablesDir != "" {
		envConfig.Output.TablesDir = fileConfig.Output.TablesDir
	}
	if fileConfig.Logging.Level != "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Format != "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if fileConfig.Logging.Output != "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.Logging.FilePath != "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if fileConfig.Analysis.TopN != 0 {
		envConfig.Analysis.TopN = fileConfig.Analysis.TopN
	}
	if fileConfig.Analysis.MinYear != 0 {
		envConfig.Analysis.MinYear = fileConfig.Analysis.MinYear
	}
	if fileConfig.Analysis.TopKPopulation != 0 {
		envConfig.Analysis.TopKPopulation = fileConfig.Analysis.TopKPopulation
	}
	if len(fileConfig.Regions) > 0 {
		envConfig.Regions = fileConfig.Regions
	}

	return envConfig
}

// Validate checks the configuration with struct tags plus the rules that
// tags cannot express.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if len(c.Regions) == 0 {
		return fmt.Errorf("region map must not be empty")
	}
	return nil
}

// ValidateInputs checks that all three source paths are set. Called after
// CLI flags have been applied on top of the loaded config.
func (c *Config) ValidateInputs() error {
	if c.Inputs.DeprivationTwoPlus == "" {
		return fmt.Errorf("deprivation (2+) input path not set")
	}
	if c.Inputs.DeprivationFour == "" {
		return fmt.Errorf("deprivation (4) input path not set")
	}
	if c.Inputs.Metadata == "" {
		return fmt.Errorf("metadata input path not set")
	}
	return nil
}

// TablesDir returns the resolved directory for aggregate table CSVs.
func (c *Config) TablesDir() string {
	if filepath.IsAbs(c.Output.TablesDir) {
		return c.Output.TablesDir
	}
	return filepath.Join(c.Output.Dir, c.Output.TablesDir)
}

// EnsureOutputDirs creates the output directory tree.
func (c *Config) EnsureOutputDirs() error {
	for _, dir := range []string{c.Output.Dir, c.TablesDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	return nil
}

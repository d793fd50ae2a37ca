// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iwvelando/resistor-divider/pkg/constants"
	"github.com/iwvelando/resistor-divider/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for resistor-divider.
type Configuration struct {
	Divider DividerConfig `yaml:"divider,omitempty"`
	Search  SearchConfig  `yaml:"search,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// DividerConfig holds the electrical parameters of the request.
type DividerConfig struct {
	Vin    float64 `yaml:"vin,omitempty"`
	Vout   float64 `yaml:"vout,omitempty"`
	Pmax   float64 `yaml:"pmax,omitempty"`
	Series string  `yaml:"series,omitempty"`
}

// SearchConfig bounds the candidate enumeration. The exponent fields are
// pointers so that an explicit 0 in the config can be told apart from an
// absent key.
type SearchConfig struct {
	MinExponent *int `yaml:"minExponent,omitempty" mapstructure:"minExponent"`
	MaxExponent *int `yaml:"maxExponent,omitempty" mapstructure:"maxExponent"`
	MaxResults  int  `yaml:"maxResults,omitempty" mapstructure:"maxResults"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"`
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format   string `yaml:"format,omitempty"`
	XLSXFile string `yaml:"xlsxFile,omitempty" mapstructure:"xlsxFile"`
}

// Overrides carries CLI flag values that take precedence over the config
// file. Zero values mean the flag was not set.
type Overrides struct {
	Vin          float64
	Vout         float64
	Pmax         float64
	Series       string
	Decades      string // "min:max" decade exponent range
	MaxResults   int
	OutputFormat string
	XLSXFile     string
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. The default config file is optional since flags alone
// can fully specify a request; any other path must exist.
func LoadConfiguration(configPath string) (*Configuration, error) {
	var configuration Configuration

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if configPath == constants.DefaultConfigFile {
			configuration.ApplyDefaults()
			return &configuration, nil
		}
		return nil, fmt.Errorf("config file %s does not exist", configPath)
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills in the fields a minimal config or bare flag invocation
// leaves empty.
func (conf *Configuration) ApplyDefaults() {
	if conf.Divider.Series == "" {
		conf.Divider.Series = constants.DefaultSeries
	}
	if conf.Search.MaxResults == 0 {
		conf.Search.MaxResults = constants.DefaultMaxResults
	}
}

// ApplyOverrides merges CLI flag values over the loaded configuration.
func (conf *Configuration) ApplyOverrides(o Overrides) error {
	if o.Vin != 0 {
		conf.Divider.Vin = o.Vin
	}
	if o.Vout != 0 {
		conf.Divider.Vout = o.Vout
	}
	if o.Pmax != 0 {
		conf.Divider.Pmax = o.Pmax
	}
	if o.Series != "" {
		if err := validation.ValidateSeriesName(o.Series); err != nil {
			return err
		}
		conf.Divider.Series = o.Series
	}
	if o.Decades != "" {
		minExp, maxExp, err := ParseDecadeRange(o.Decades)
		if err != nil {
			return err
		}
		conf.Search.MinExponent = &minExp
		conf.Search.MaxExponent = &maxExp
	}
	if o.MaxResults > 0 {
		conf.Search.MaxResults = o.MaxResults
	}
	if o.OutputFormat != "" {
		conf.Output.Format = o.OutputFormat
	}
	if o.XLSXFile != "" {
		conf.Output.XLSXFile = o.XLSXFile
	}
	return nil
}

// DecadeRange resolves the configured decade exponents, falling back to the
// 1 Ohm through 10 MOhm default span.
func (conf *Configuration) DecadeRange() (int, int) {
	minExp := constants.DefaultMinExponent
	maxExp := constants.DefaultMaxExponent
	if conf.Search.MinExponent != nil {
		minExp = *conf.Search.MinExponent
	}
	if conf.Search.MaxExponent != nil {
		maxExp = *conf.Search.MaxExponent
	}
	return minExp, maxExp
}

// ParseDecadeRange parses a "min:max" decade exponent range, e.g. "0:6".
func ParseDecadeRange(s string) (int, int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected decade range as min:max, got %q", s)
	}
	minExp, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid decade range minimum %q: %s", parts[0], err)
	}
	maxExp, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid decade range maximum %q: %s", parts[1], err)
	}
	if minExp > maxExp {
		return 0, 0, fmt.Errorf("decade range minimum %d exceeds maximum %d", minExp, maxExp)
	}
	if minExp < constants.MinExponentLimit || maxExp > constants.MaxExponentLimit {
		return 0, 0, fmt.Errorf("decade range %d:%d outside supported range %d:%d",
			minExp, maxExp, constants.MinExponentLimit, constants.MaxExponentLimit)
	}
	return minExp, maxExp, nil
}

// ValidateConfiguration checks for requests that are solvable but likely not
// what the user wants, and returns warnings for each.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	d := conf.Divider
	if d.Vin > 0 && d.Vout > 0 && d.Vout < d.Vin {
		ratio := d.Vout / d.Vin
		if ratio > constants.HighRatioWarningThreshold {
			warnings = append(warnings, fmt.Sprintf(
				"vout/vin ratio %.3f leaves little room for R1; expect coarse quantization near vin", ratio))
		}
		if ratio < constants.LowRatioWarningThreshold {
			warnings = append(warnings, fmt.Sprintf(
				"vout/vin ratio %.3f is far below vin; expect coarse quantization near 0", ratio))
		}
	}
	if d.Pmax >= constants.PowerRatingWarningWatts {
		warnings = append(warnings, fmt.Sprintf(
			"pmax of %g W exceeds the rating of common through-hole resistors", d.Pmax))
	}

	minExp, maxExp := conf.DecadeRange()
	if maxExp-minExp+1 > 8 {
		warnings = append(warnings, fmt.Sprintf(
			"decade range %d:%d spans %d decades; the pair search grows quadratically", minExp, maxExp, maxExp-minExp+1))
	}
	if conf.Search.MaxResults > constants.MaxResultsWarningThreshold {
		warnings = append(warnings, fmt.Sprintf(
			"maxResults of %d will produce a very large candidate table", conf.Search.MaxResults))
	}

	return warnings
}

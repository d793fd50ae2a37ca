package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/resistor-divider/pkg/constants"
)

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Missing default config file falls back to defaults",
			configPath: constants.DefaultConfigFile,
			wantError:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if conf == nil {
				t.Fatalf("LoadConfiguration() returned nil config")
			}
			if conf.Divider.Series != constants.DefaultSeries {
				t.Errorf("default series = %s, expected %s", conf.Divider.Series, constants.DefaultSeries)
			}
			if conf.Search.MaxResults != constants.DefaultMaxResults {
				t.Errorf("default maxResults = %d, expected %d", conf.Search.MaxResults, constants.DefaultMaxResults)
			}
			minExp, maxExp := conf.DecadeRange()
			if minExp != constants.DefaultMinExponent || maxExp != constants.DefaultMaxExponent {
				t.Errorf("default decade range = %d:%d, expected %d:%d",
					minExp, maxExp, constants.DefaultMinExponent, constants.DefaultMaxExponent)
			}
		})
	}
}

func TestLoadConfigurationFromFile(t *testing.T) {
	content := `divider:
  vin: 5.0
  vout: 3.3
  pmax: 0.01
  series: E48

search:
  minExponent: 1
  maxExponent: 4
  maxResults: 5

logging:
  level: debug
  format: json

output:
  format: csv
  xlsxFile: out.xlsx
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Divider.Vin != 5.0 {
		t.Errorf("Divider.Vin = %v, expected 5.0", conf.Divider.Vin)
	}
	if conf.Divider.Vout != 3.3 {
		t.Errorf("Divider.Vout = %v, expected 3.3", conf.Divider.Vout)
	}
	if conf.Divider.Pmax != 0.01 {
		t.Errorf("Divider.Pmax = %v, expected 0.01", conf.Divider.Pmax)
	}
	if conf.Divider.Series != "E48" {
		t.Errorf("Divider.Series = %s, expected E48", conf.Divider.Series)
	}
	minExp, maxExp := conf.DecadeRange()
	if minExp != 1 || maxExp != 4 {
		t.Errorf("decade range = %d:%d, expected 1:4", minExp, maxExp)
	}
	if conf.Search.MaxResults != 5 {
		t.Errorf("Search.MaxResults = %d, expected 5", conf.Search.MaxResults)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "json" {
		t.Errorf("Logging = %+v, expected level debug and format json", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %s, expected csv", conf.Output.Format)
	}
	if conf.Output.XLSXFile != "out.xlsx" {
		t.Errorf("Output.XLSXFile = %s, expected out.xlsx", conf.Output.XLSXFile)
	}
}

func TestApplyOverrides(t *testing.T) {
	var conf Configuration
	conf.ApplyDefaults()
	conf.Divider.Vin = 5.0
	conf.Divider.Vout = 3.3
	conf.Divider.Pmax = 0.01

	err := conf.ApplyOverrides(Overrides{
		Vout:         2.5,
		Series:       "E96",
		Decades:      "2:5",
		MaxResults:   7,
		OutputFormat: "csv",
		XLSXFile:     "export.xlsx",
	})
	if err != nil {
		t.Fatalf("ApplyOverrides() error = %v", err)
	}

	if conf.Divider.Vin != 5.0 {
		t.Errorf("unset override clobbered Vin: got %v", conf.Divider.Vin)
	}
	if conf.Divider.Vout != 2.5 {
		t.Errorf("Vout = %v, expected 2.5", conf.Divider.Vout)
	}
	if conf.Divider.Pmax != 0.01 {
		t.Errorf("unset override clobbered Pmax: got %v", conf.Divider.Pmax)
	}
	if conf.Divider.Series != "E96" {
		t.Errorf("Series = %s, expected E96", conf.Divider.Series)
	}
	minExp, maxExp := conf.DecadeRange()
	if minExp != 2 || maxExp != 5 {
		t.Errorf("decade range = %d:%d, expected 2:5", minExp, maxExp)
	}
	if conf.Search.MaxResults != 7 {
		t.Errorf("MaxResults = %d, expected 7", conf.Search.MaxResults)
	}
	if conf.Output.Format != "csv" || conf.Output.XLSXFile != "export.xlsx" {
		t.Errorf("Output = %+v, expected csv format and export.xlsx file", conf.Output)
	}

	if err := conf.ApplyOverrides(Overrides{Decades: "5:2"}); err == nil {
		t.Errorf("ApplyOverrides() with inverted decade range expected error but got none")
	}
	if err := conf.ApplyOverrides(Overrides{Series: "E50"}); err == nil {
		t.Errorf("ApplyOverrides() with unknown series expected error but got none")
	}
}

func TestParseDecadeRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantMin   int
		wantMax   int
		wantError bool
	}{
		{"Default span", "0:6", 0, 6, false},
		{"Single decade", "2:2", 2, 2, false},
		{"Negative minimum", "-1:3", -1, 3, false},
		{"With spaces", " 1 : 4 ", 1, 4, false},
		{"Inverted", "6:0", 0, 0, true},
		{"Not a range", "6", 0, 0, true},
		{"Non-numeric", "a:b", 0, 0, true},
		{"Below supported range", "-3:3", 0, 0, true},
		{"Above supported range", "0:10", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minExp, maxExp, err := ParseDecadeRange(tt.input)
			if tt.wantError {
				if err == nil {
					t.Errorf("ParseDecadeRange(%q) expected error but got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseDecadeRange(%q) error = %v", tt.input, err)
				return
			}
			if minExp != tt.wantMin || maxExp != tt.wantMax {
				t.Errorf("ParseDecadeRange(%q) = %d:%d, expected %d:%d", tt.input, minExp, maxExp, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*Configuration)
		wantWarning  string
		wantWarnings int
	}{
		{
			name:         "Reasonable request",
			mutate:       func(conf *Configuration) {},
			wantWarnings: 0,
		},
		{
			name: "Vout close to vin",
			mutate: func(conf *Configuration) {
				conf.Divider.Vout = 4.9
			},
			wantWarning:  "coarse quantization near vin",
			wantWarnings: 1,
		},
		{
			name: "Vout close to zero",
			mutate: func(conf *Configuration) {
				conf.Divider.Vout = 0.1
			},
			wantWarning:  "coarse quantization near 0",
			wantWarnings: 1,
		},
		{
			name: "Pmax beyond resistor ratings",
			mutate: func(conf *Configuration) {
				conf.Divider.Pmax = 5
			},
			wantWarning:  "rating of common through-hole resistors",
			wantWarnings: 1,
		},
		{
			name: "Very wide decade span",
			mutate: func(conf *Configuration) {
				minExp, maxExp := -2, 9
				conf.Search.MinExponent = &minExp
				conf.Search.MaxExponent = &maxExp
			},
			wantWarning:  "grows quadratically",
			wantWarnings: 1,
		},
		{
			name: "Huge candidate table",
			mutate: func(conf *Configuration) {
				conf.Search.MaxResults = 1000
			},
			wantWarning:  "very large candidate table",
			wantWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := Configuration{
				Divider: DividerConfig{Vin: 5, Vout: 3.3, Pmax: 0.01, Series: "E24"},
			}
			conf.ApplyDefaults()
			tt.mutate(&conf)

			warnings := conf.ValidateConfiguration()
			if len(warnings) != tt.wantWarnings {
				t.Fatalf("ValidateConfiguration() returned %d warnings (%v), expected %d", len(warnings), warnings, tt.wantWarnings)
			}
			if tt.wantWarning != "" {
				found := false
				for _, w := range warnings {
					if strings.Contains(w, tt.wantWarning) {
						found = true
					}
				}
				if !found {
					t.Errorf("ValidateConfiguration() warnings %v missing %q", warnings, tt.wantWarning)
				}
			}
		})
	}
}

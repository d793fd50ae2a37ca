// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/resistor-divider/pkg/constants"
	"github.com/iwvelando/resistor-divider/pkg/eseries"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateSeriesName checks if the series name resolves to a known E-series.
func ValidateSeriesName(name string) error {
	_, err := eseries.ForName(name)
	return err
}

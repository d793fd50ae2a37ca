package solver

import "fmt"

// InvalidInputError reports a request parameter outside the solvable domain.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NoSolutionError reports that no pair drawn from the series keeps the
// divider within the power budget.
type NoSolutionError struct {
	Series string
	Pmax   float64
}

func (e *NoSolutionError) Error() string {
	return fmt.Sprintf("no %s resistor pair keeps total dissipation within %g W", e.Series, e.Pmax)
}

package curriculum

import (
	"fmt"
	"strings"
)

// validateDays performs structural checks on the plan. Returns a combined
// error describing all problems found, or nil if valid.
func validateDays(plan []Day) error {
	var errs []string

	if len(plan) == 0 {
		errs = append(errs, "plan is empty")
	}

	for i, d := range plan {
		if d.Sequence != i+1 {
			errs = append(errs, fmt.Sprintf("day %d has sequence %d, want %d", i, d.Sequence, i+1))
		}
		if d.Title == "" {
			errs = append(errs, fmt.Sprintf("day %d has empty title", d.Sequence))
		}
		if d.Subject == "" {
			errs = append(errs, fmt.Sprintf("day %d has empty subject", d.Sequence))
		}
		if d.Tasks+d.Exercises == 0 {
			errs = append(errs, fmt.Sprintf("day %d has no work items", d.Sequence))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

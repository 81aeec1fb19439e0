package capacity

import "fmt"

// CheckResult is the accept/reject outcome for a single-day commitment.
// Reason is user-facing copy, empty on acceptance.
type CheckResult struct {
	Valid  bool
	Reason string
}

// ValidateDay decides whether the entire amount fits on the originally
// selected day. The planner's multi-day spillover is never accepted — it is
// product policy that a task commits to exactly one day — but its
// distribution drives the detail in the rejection message, which is why the
// plan is computed at all.
func ValidateDay(result AllocationResult, amount Hours, daily Hours) CheckResult {
	if result.DaysNeeded > 1 {
		return CheckResult{
			Reason: fmt.Sprintf(
				"%.3g hours do not fit on the selected day (%d days needed); choose another date or reduce the estimate",
				float64(amount), result.DaysNeeded),
		}
	}

	if result.DaysNeeded == 1 && result.CurrentDayHours+amount > daily {
		free := daily - result.CurrentDayHours
		if free < 0 {
			free = 0
		}
		// Results built outside Plan may carry an empty distribution.
		when := ""
		if len(result.Distribution) > 0 {
			when = " on " + result.Distribution[0].Day.Format(dateLayout)
		}
		return CheckResult{
			Reason: fmt.Sprintf(
				"daily limit of %.3g hours exceeded%s; at most %.3g hours available",
				float64(daily), when, float64(free)),
		}
	}

	return CheckResult{Valid: true}
}

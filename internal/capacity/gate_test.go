package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDay_Accepts(t *testing.T) {
	res := Plan(day("2024-03-01"), 5, nil, 8)

	check := ValidateDay(res, 5, 8)
	assert.True(t, check.Valid)
	assert.Empty(t, check.Reason)
}

func TestValidateDay_AcceptsExactFit(t *testing.T) {
	ledger := Ledger{{TaskID: "t1", Hours: 6, Day: day("2024-03-01")}}
	res := Plan(day("2024-03-01"), 2, ledger, 8)

	check := ValidateDay(res, 2, 8)
	assert.True(t, check.Valid, "6 + 2 = 8 fills the day exactly")
}

func TestValidateDay_RejectsSpillover(t *testing.T) {
	ledger := Ledger{{TaskID: "t1", Hours: 6, Day: day("2024-03-01")}}
	res := Plan(day("2024-03-01"), 4, ledger, 8)

	check := ValidateDay(res, 4, 8)
	require.False(t, check.Valid)
	assert.Contains(t, check.Reason, "do not fit on the selected day")
	assert.Contains(t, check.Reason, "2 days")
}

func TestValidateDay_RejectsSingleDayOverflow(t *testing.T) {
	// The single-day overflow branch is unreachable through Plan (overflow
	// spills instead), but call sites may hand the gate a result they built
	// themselves; the branch's message detail must survive.
	res := AllocationResult{
		CurrentDayHours: 6,
		DaysNeeded:      1,
		Distribution:    []DayAllocation{{Day: day("2024-03-01"), Hours: 4}},
	}

	check := ValidateDay(res, 4, 8)
	require.False(t, check.Valid)
	assert.Contains(t, check.Reason, "2024-03-01")
	assert.Contains(t, check.Reason, "at most 2 hours available")
}

func TestValidateDay_OverflowWithoutDistribution(t *testing.T) {
	// A caller-built result may claim one day and carry no breakdown; the
	// gate must still reject without the date detail.
	res := AllocationResult{
		CurrentDayHours: 6,
		DaysNeeded:      1,
	}

	check := ValidateDay(res, 4, 8)
	require.False(t, check.Valid)
	assert.Contains(t, check.Reason, "daily limit of 8 hours exceeded")
	assert.Contains(t, check.Reason, "at most 2 hours available")
}

func TestValidateDay_OverflowReasonClampsNegativeFree(t *testing.T) {
	res := AllocationResult{
		CurrentDayHours: 10,
		DaysNeeded:      1,
		Distribution:    []DayAllocation{{Day: day("2024-03-01"), Hours: 1}},
	}

	check := ValidateDay(res, 1, 8)
	require.False(t, check.Valid)
	assert.Contains(t, check.Reason, "at most 0 hours available")
}

func TestValidateDay_AcceptsEmptyPlan(t *testing.T) {
	res := Plan(day("2024-03-01"), 0, nil, 8)

	check := ValidateDay(res, 0, 8)
	assert.True(t, check.Valid, "a zero amount has nothing to reject")
}

func TestValidateDay_SpilloverIsInformationalOnly(t *testing.T) {
	// The distribution explains the rejection but a multi-day plan is never
	// accepted, however cleanly it fits.
	res := Plan(day("2024-03-01"), 16, nil, 8)
	require.Equal(t, 2, res.DaysNeeded)

	check := ValidateDay(res, 16, 8)
	assert.False(t, check.Valid)
}

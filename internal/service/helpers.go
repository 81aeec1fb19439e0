package service

import (
	"sprintcap/internal/capacity"
	"sprintcap/internal/contract"
	"sprintcap/internal/domain"
	"sprintcap/internal/repository"
)

const dateLayout = "2006-01-02"

// ledgerFromScheduled converts the repository's scheduled-task view into the
// capacity ledger the planner folds over.
func ledgerFromScheduled(scheduled []repository.ScheduledTask) capacity.Ledger {
	ledger := make(capacity.Ledger, len(scheduled))
	for i, s := range scheduled {
		ledger[i] = capacity.LedgerEntry{
			TaskID: s.TaskID,
			Hours:  capacity.Hours(s.Hours),
			Day:    s.Day,
		}
	}
	return ledger
}

// scheduleCheck maps a planner result and gate verdict onto the outward DTO.
func scheduleCheck(res capacity.AllocationResult, check capacity.CheckResult) *contract.ScheduleCheck {
	out := &contract.ScheduleCheck{
		Valid:           check.Valid,
		Reason:          check.Reason,
		CurrentDayHours: float64(res.CurrentDayHours),
		DaysNeeded:      res.DaysNeeded,
	}
	for _, d := range res.Distribution {
		out.Distribution = append(out.Distribution, contract.DayShare{
			Date:  d.Day.Format(dateLayout),
			Hours: float64(d.Hours),
		})
	}
	return out
}

// capacityReport maps a sprint and its derived capacity onto the outward DTO.
func capacityReport(s *domain.Sprint, sc capacity.SprintCapacity) *contract.SprintCapacityReport {
	report := &contract.SprintCapacityReport{
		SprintID:      s.ID,
		Name:          s.Name,
		StartDate:     s.StartDate.Format(dateLayout),
		EndDate:       s.EndDate.Format(dateLayout),
		Days:          sc.Days,
		TotalCapacity: int(sc.TotalCapacity),
		UsedPoints:    int(sc.UsedPoints),
		Remaining:     int(sc.Remaining),
		OverCapacity:  sc.OverCapacity,
	}
	if sc.TotalCapacity > 0 {
		report.Utilization = float64(sc.UsedPoints) / float64(sc.TotalCapacity)
	}
	return report
}

// sprintWindow builds the capacity window for a sprint's inclusive dates.
func sprintWindow(s *domain.Sprint) capacity.Window {
	return capacity.Window{Start: s.StartDate, End: s.EndDate}
}

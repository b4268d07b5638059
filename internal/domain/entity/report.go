package entity

// ZoneFailure records why one zone was left out of a run.
type ZoneFailure struct {
	ZoneID   string
	ZoneName string
	Err      error
}

// RunReport summarizes one backup run. StartedAt is the run timestamp that
// prefixes every storage key the run produced.
type RunReport struct {
	StartedAt string
	Succeeded []string
	Failed    []ZoneFailure
}

func (r *RunReport) TotalZones() int {
	return len(r.Succeeded) + len(r.Failed)
}

func (r *RunReport) HasFailures() bool {
	return len(r.Failed) > 0
}

func (r *RunReport) FailedZoneIDs() []string {
	ids := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		ids = append(ids, f.ZoneID)
	}
	return ids
}

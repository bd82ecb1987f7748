package report

import "strconv"

// Aggregations in this file are pure reductions: the caller fetches the
// window's time entries once and the per-entity breakdowns are grouped here
// in memory rather than with one query per project, member, or client.

// TimeTracking totals the given entries and, when groupBy is set, buckets them
// under the resolved group key. Entries whose group field is absent fall into
// the "unknown" bucket.
func TimeTracking(entries []Entry, groupBy GroupBy) TimeTrackingReport {
	out := TimeTrackingReport{
		Entries: entries,
		Summary: map[string]GroupSummary{},
	}
	if entries == nil {
		out.Entries = []Entry{}
	}

	for _, e := range entries {
		out.TotalHours += e.Duration
		if e.IsBillable {
			out.BillableHours += e.Duration
		}
	}
	out.NonBillableHours = out.TotalHours - out.BillableHours

	if groupBy == GroupByNone {
		return out
	}
	for _, e := range entries {
		key := groupKey(e, groupBy)
		bucket := out.Summary[key]
		bucket.TotalHours += e.Duration
		if e.IsBillable {
			bucket.BillableHours += e.Duration
		} else {
			bucket.NonBillableHours += e.Duration
		}
		bucket.Entries = append(bucket.Entries, e)
		out.Summary[key] = bucket
	}
	return out
}

func groupKey(e Entry, groupBy GroupBy) string {
	switch groupBy {
	case GroupByProject:
		return idKey(e.ProjectID)
	case GroupByTeamMember:
		return idKey(e.UserID)
	case GroupByClient:
		return idKey(e.ClientID)
	case GroupByDate:
		return e.Date.Format("2006-01-02")
	default:
		return "unknown"
	}
}

func idKey(id uint64) string {
	if id == 0 {
		return "unknown"
	}
	return strconv.FormatUint(id, 10)
}

// ProjectStats breaks the entries down per project and counts project states.
// Billable amounts use each project's hourly rate, zero when unset.
func ProjectStats(projects []ProjectRecord, entries []Entry) ProjectStatsReport {
	byProject := make(map[uint64][]Entry, len(projects))
	for _, e := range entries {
		byProject[e.ProjectID] = append(byProject[e.ProjectID], e)
	}

	out := ProjectStatsReport{
		TotalProjects: len(projects),
		Projects:      make([]ProjectSummary, 0, len(projects)),
	}
	for _, p := range projects {
		if p.IsActive {
			out.ActiveProjects++
		}
		if p.Status == "completed" {
			out.CompletedProjects++
		}

		stats := ProjectSummary{ProjectRecord: p}
		for _, e := range byProject[p.ID] {
			stats.TotalHours += e.Duration
			if e.IsBillable {
				stats.BillableHours += e.Duration
			}
		}
		stats.BillableAmount = stats.BillableHours * p.HourlyRate

		out.TotalHours += stats.TotalHours
		out.BillableAmount += stats.BillableAmount
		out.Projects = append(out.Projects, stats)
	}
	return out
}

// TeamProductivity breaks the entries down per member user. The average
// resolves to zero for an empty team instead of dividing by zero.
func TeamProductivity(members []MemberRecord, entries []Entry) TeamProductivityReport {
	byUser := make(map[uint64][]Entry, len(members))
	for _, e := range entries {
		byUser[e.UserID] = append(byUser[e.UserID], e)
	}

	out := TeamProductivityReport{
		TotalMembers: len(members),
		Members:      make([]MemberStats, 0, len(members)),
	}
	for _, m := range members {
		stats := MemberStats{MemberRecord: m}
		for _, e := range byUser[m.UserID] {
			stats.TotalHours += e.Duration
			if e.IsBillable {
				stats.BillableHours += e.Duration
			}
		}
		out.TotalHours += stats.TotalHours
		out.Members = append(out.Members, stats)
	}
	if out.TotalMembers > 0 {
		out.AverageHoursPerMember = out.TotalHours / float64(out.TotalMembers)
	}
	return out
}

// ClientBilling breaks the entries down per client through each client's
// project set and prices billable time at the client's hourly rate.
func ClientBilling(clients []ClientRecord, entries []Entry) ClientBillingReport {
	byProject := make(map[uint64][]Entry)
	for _, e := range entries {
		byProject[e.ProjectID] = append(byProject[e.ProjectID], e)
	}

	out := ClientBillingReport{
		TotalClients: len(clients),
		Clients:      make([]ClientStats, 0, len(clients)),
	}
	for _, c := range clients {
		stats := ClientStats{ID: c.ID, Name: c.Name, HourlyRate: c.HourlyRate}
		for _, pid := range c.ProjectIDs {
			for _, e := range byProject[pid] {
				stats.TotalHours += e.Duration
				if e.IsBillable {
					stats.BillableHours += e.Duration
				}
			}
		}
		stats.BillableAmount = stats.BillableHours * c.HourlyRate

		out.TotalHours += stats.TotalHours
		out.TotalBillableAmount += stats.BillableAmount
		out.Clients = append(out.Clients, stats)
	}
	return out
}

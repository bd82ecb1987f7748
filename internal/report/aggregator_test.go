package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeTrackingTotals(t *testing.T) {
	entries := []Entry{
		{ID: 1, Duration: 60, IsBillable: true},
		{ID: 2, Duration: 30, IsBillable: false},
	}

	got := TimeTracking(entries, GroupByNone)

	assert.Equal(t, 90.0, got.TotalHours)
	assert.Equal(t, 60.0, got.BillableHours)
	assert.Equal(t, 30.0, got.NonBillableHours)
	assert.Len(t, got.Entries, 2)
	assert.Empty(t, got.Summary)
}

func TestTimeTrackingEmpty(t *testing.T) {
	got := TimeTracking(nil, GroupByProject)

	assert.Zero(t, got.TotalHours)
	assert.NotNil(t, got.Entries)
	assert.Empty(t, got.Summary)
}

func TestTimeTrackingGroupByProject(t *testing.T) {
	entries := []Entry{
		{ID: 1, ProjectID: 7, Duration: 60, IsBillable: true},
		{ID: 2, ProjectID: 7, Duration: 15, IsBillable: false},
		{ID: 3, ProjectID: 8, Duration: 45, IsBillable: true},
		{ID: 4, Duration: 10, IsBillable: false}, // no project resolved
	}

	got := TimeTracking(entries, GroupByProject)

	assert.Len(t, got.Summary, 3)
	assert.Equal(t, 75.0, got.Summary["7"].TotalHours)
	assert.Equal(t, 60.0, got.Summary["7"].BillableHours)
	assert.Equal(t, 15.0, got.Summary["7"].NonBillableHours)
	assert.Len(t, got.Summary["7"].Entries, 2)
	assert.Equal(t, 45.0, got.Summary["8"].TotalHours)
	assert.Equal(t, 10.0, got.Summary["unknown"].TotalHours)
}

func TestTimeTrackingGroupByDate(t *testing.T) {
	entries := []Entry{
		{ID: 1, Date: time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), Duration: 30},
		{ID: 2, Date: time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), Duration: 20},
		{ID: 3, Date: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), Duration: 10},
	}

	got := TimeTracking(entries, GroupByDate)

	assert.Equal(t, 50.0, got.Summary["2024-02-14"].TotalHours)
	assert.Equal(t, 10.0, got.Summary["2024-02-15"].TotalHours)
}

func TestProjectStats(t *testing.T) {
	projects := []ProjectRecord{
		{ID: 1, Name: "Site", Status: "active", IsActive: true, HourlyRate: 2},
		{ID: 2, Name: "App", Status: "completed", IsActive: false, HourlyRate: 3},
		{ID: 3, Name: "Idle", Status: "active", IsActive: true},
	}
	entries := []Entry{
		{ProjectID: 1, Duration: 60, IsBillable: true},
		{ProjectID: 1, Duration: 30, IsBillable: false},
		{ProjectID: 2, Duration: 40, IsBillable: true},
	}

	got := ProjectStats(projects, entries)

	assert.Equal(t, 3, got.TotalProjects)
	assert.Equal(t, 2, got.ActiveProjects)
	assert.Equal(t, 1, got.CompletedProjects)
	assert.Equal(t, 130.0, got.TotalHours)
	// 60*2 + 40*3
	assert.Equal(t, 240.0, got.BillableAmount)

	assert.Equal(t, 90.0, got.Projects[0].TotalHours)
	assert.Equal(t, 60.0, got.Projects[0].BillableHours)
	assert.Equal(t, 120.0, got.Projects[0].BillableAmount)
	assert.Zero(t, got.Projects[2].TotalHours)
	assert.Zero(t, got.Projects[2].BillableAmount)
}

func TestTeamProductivity(t *testing.T) {
	members := []MemberRecord{
		{ID: 1, UserID: 10, Name: "Ana"},
		{ID: 2, UserID: 11, Name: "Ben"},
	}
	entries := []Entry{
		{UserID: 10, Duration: 120, IsBillable: true},
		{UserID: 10, Duration: 30},
		{UserID: 11, Duration: 50, IsBillable: true},
		{UserID: 99, Duration: 500}, // not on the team, ignored
	}

	got := TeamProductivity(members, entries)

	assert.Equal(t, 2, got.TotalMembers)
	assert.Equal(t, 200.0, got.TotalHours)
	assert.Equal(t, 100.0, got.AverageHoursPerMember)
	assert.Equal(t, 150.0, got.Members[0].TotalHours)
	assert.Equal(t, 120.0, got.Members[0].BillableHours)
	assert.Equal(t, 50.0, got.Members[1].TotalHours)
}

func TestTeamProductivityNoMembers(t *testing.T) {
	got := TeamProductivity(nil, []Entry{{UserID: 1, Duration: 60}})

	assert.Zero(t, got.TotalMembers)
	assert.Zero(t, got.TotalHours)
	assert.Zero(t, got.AverageHoursPerMember)
}

func TestClientBilling(t *testing.T) {
	clients := []ClientRecord{
		{ID: 1, Name: "Acme", HourlyRate: 2, ProjectIDs: []uint64{10, 11}},
		{ID: 2, Name: "Globex", HourlyRate: 5, ProjectIDs: []uint64{12}},
		{ID: 3, Name: "Empty"},
	}
	entries := []Entry{
		{ProjectID: 10, Duration: 60, IsBillable: true},
		{ProjectID: 11, Duration: 30, IsBillable: false},
		{ProjectID: 12, Duration: 20, IsBillable: true},
	}

	got := ClientBilling(clients, entries)

	assert.Equal(t, 3, got.TotalClients)
	assert.Equal(t, 110.0, got.TotalHours)
	// 60*2 + 20*5
	assert.Equal(t, 220.0, got.TotalBillableAmount)
	assert.Equal(t, 90.0, got.Clients[0].TotalHours)
	assert.Equal(t, 60.0, got.Clients[0].BillableHours)
	assert.Equal(t, 120.0, got.Clients[0].BillableAmount)
	assert.Zero(t, got.Clients[2].TotalHours)
}

func TestAggregationDeterministic(t *testing.T) {
	entries := []Entry{
		{ProjectID: 1, Duration: 10, IsBillable: true},
		{ProjectID: 2, Duration: 20},
		{ProjectID: 1, Duration: 30, IsBillable: true},
	}

	first := TimeTracking(entries, GroupByProject)
	second := TimeTracking(entries, GroupByProject)
	assert.Equal(t, first, second)
}

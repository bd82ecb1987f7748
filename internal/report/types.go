package report

import "time"

// Type selects a report shape.
type Type string

const (
	TypeTimeTracking     Type = "time_tracking"
	TypeProjectStats     Type = "project_stats"
	TypeTeamProductivity Type = "team_productivity"
	TypeClientBilling    Type = "client_billing"
)

// GroupBy keys for the time-tracking summary.
type GroupBy string

const (
	GroupByNone       GroupBy = ""
	GroupByProject    GroupBy = "project"
	GroupByTeamMember GroupBy = "team_member"
	GroupByClient     GroupBy = "client"
	GroupByDate       GroupBy = "date"
)

// Entry is the time-entry record the aggregations reduce over. The fetch
// boundary guarantees Duration is present; the aggregator never treats it as
// optional.
type Entry struct {
	ID          uint64    `json:"id"`
	TaskID      uint64    `json:"task_id"`
	ProjectID   uint64    `json:"project_id"`
	ClientID    uint64    `json:"client_id"`
	UserID      uint64    `json:"user_id"`
	Date        time.Time `json:"date"`
	Duration    float64   `json:"duration"`
	IsBillable  bool      `json:"is_billable"`
	Description string    `json:"description"`
}

// ProjectRecord is the per-project input for the project-stats shape.
type ProjectRecord struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	IsActive   bool    `json:"is_active"`
	HourlyRate float64 `json:"hourly_rate"`
}

// MemberRecord is the per-member input for the team-productivity shape.
type MemberRecord struct {
	ID       uint64 `json:"id"`
	UserID   uint64 `json:"user_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// ClientRecord is the per-client input for the client-billing shape.
// ProjectIDs scopes the client's entries.
type ClientRecord struct {
	ID         uint64   `json:"id"`
	Name       string   `json:"name"`
	HourlyRate float64  `json:"hourly_rate"`
	ProjectIDs []uint64 `json:"-"`
}

// GroupSummary is one bucket of a grouped time-tracking report.
type GroupSummary struct {
	TotalHours       float64 `json:"total_hours"`
	BillableHours    float64 `json:"billable_hours"`
	NonBillableHours float64 `json:"non_billable_hours"`
	Entries          []Entry `json:"entries"`
}

// TimeTrackingReport totals a set of entries, optionally bucketed by a group key.
type TimeTrackingReport struct {
	TotalHours       float64                 `json:"total_hours"`
	BillableHours    float64                 `json:"billable_hours"`
	NonBillableHours float64                 `json:"non_billable_hours"`
	Entries          []Entry                 `json:"entries"`
	Summary          map[string]GroupSummary `json:"summary"`
}

// ProjectSummary is one project's slice of a project-stats report.
type ProjectSummary struct {
	ProjectRecord
	TotalHours     float64 `json:"total_hours"`
	BillableHours  float64 `json:"billable_hours"`
	BillableAmount float64 `json:"billable_amount"`
}

// ProjectStatsReport summarizes a set of projects and their tracked time.
type ProjectStatsReport struct {
	TotalProjects     int              `json:"total_projects"`
	ActiveProjects    int              `json:"active_projects"`
	CompletedProjects int              `json:"completed_projects"`
	TotalHours        float64          `json:"total_hours"`
	BillableAmount    float64          `json:"billable_amount"`
	Projects          []ProjectSummary `json:"projects"`
}

// MemberStats is one member's slice of a team-productivity report.
type MemberStats struct {
	MemberRecord
	TotalHours    float64 `json:"total_hours"`
	BillableHours float64 `json:"billable_hours"`
}

// TeamProductivityReport summarizes tracked time across team members.
type TeamProductivityReport struct {
	TotalMembers          int           `json:"total_members"`
	TotalHours            float64       `json:"total_hours"`
	AverageHoursPerMember float64       `json:"average_hours_per_member"`
	Members               []MemberStats `json:"members"`
}

// ClientStats is one client's slice of a client-billing report.
type ClientStats struct {
	ID             uint64  `json:"id"`
	Name           string  `json:"name"`
	HourlyRate     float64 `json:"hourly_rate"`
	TotalHours     float64 `json:"total_hours"`
	BillableHours  float64 `json:"billable_hours"`
	BillableAmount float64 `json:"billable_amount"`
}

// ClientBillingReport summarizes billable work per client.
type ClientBillingReport struct {
	TotalClients        int           `json:"total_clients"`
	TotalBillableAmount float64       `json:"total_billable_amount"`
	TotalHours          float64       `json:"total_hours"`
	Clients             []ClientStats `json:"clients"`
}

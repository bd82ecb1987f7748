// Package access decides whether an acting user may perform an operation on a
// resource. Decisions are computed from ownership and team-membership facts
// looked up through the Store interface; nothing here mutates state.
//
// Known asymmetry, kept on purpose: team roles grant no read or write access
// to tasks or time entries. Only direct project ownership gates those; roles
// are consulted solely for team-member management.
package access

import "errors"

// ResourceKind identifies the type of resource an authorization decision is about.
type ResourceKind string

const (
	KindClient     ResourceKind = "client"
	KindProject    ResourceKind = "project"
	KindCategory   ResourceKind = "category"
	KindTask       ResourceKind = "task"
	KindTimeEntry  ResourceKind = "time_entry"
	KindTeamMember ResourceKind = "team_member"
)

// ResourceRef names a single resource.
type ResourceRef struct {
	Kind ResourceKind
	ID   uint64
}

// Operation is the action being authorized.
type Operation string

const (
	OpRead   Operation = "read"
	OpWrite  Operation = "write"
	OpDelete Operation = "delete"
)

// DenyReason distinguishes why an operation was refused. The HTTP layer maps
// each reason to a status code; this package knows nothing about transports.
type DenyReason string

const (
	ReasonNotOwner         DenyReason = "not_owner"
	ReasonInsufficientRole DenyReason = "insufficient_role"
	ReasonLastAdmin        DenyReason = "last_admin"
	ReasonAlreadyMember    DenyReason = "already_member"
	ReasonNotFound         DenyReason = "not_found"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

// Allow is the positive decision.
var Allow = Decision{Allowed: true}

// Deny builds a negative decision with the given reason.
func Deny(reason DenyReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Role is a project-scoped permission level. Levels are ordered
// Admin > Manager > Member > Viewer, though only the admin case is
// currently consulted.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
	RoleViewer  Role = "viewer"
)

// Level returns the role's rank for ordering comparisons.
func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return 4
	case RoleManager:
		return 3
	case RoleMember:
		return 2
	case RoleViewer:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r grants at least the permissions of other.
func (r Role) AtLeast(other Role) bool {
	return r.Level() >= other.Level()
}

// Membership is the team-membership fact the checker consumes.
type Membership struct {
	MemberID uint64
	UserID   uint64
	Role     Role
	Active   bool
}

// ErrNotFound is returned by Store implementations when the resource does not exist.
var ErrNotFound = errors.New("access: resource not found")

// Store provides the facts a decision needs. Implementations do plain lookups
// and no authorization logic of their own.
type Store interface {
	// OwnerOf returns the owning user of a directly-owned resource. For a
	// time entry the owner is its author.
	OwnerOf(kind ResourceKind, id uint64) (uint64, error)

	// ParentOf resolves one step up the ownership chain:
	// task -> project, time entry -> task, team member -> project.
	ParentOf(kind ResourceKind, id uint64) (ResourceRef, error)

	// TeamMembers returns all memberships of a project, active or not.
	TeamMembers(projectID uint64) ([]Membership, error)
}

// Checker evaluates authorization decisions against a Store.
type Checker struct {
	store Store
}

// NewChecker creates a Checker backed by the given store.
func NewChecker(store Store) *Checker {
	return &Checker{store: store}
}

// Authorize decides whether actor may perform op on the referenced resource.
// A missing resource anywhere along the ownership chain yields
// Deny(ReasonNotFound). The returned error is reserved for store failures.
func (c *Checker) Authorize(actor uint64, op Operation, ref ResourceRef) (Decision, error) {
	switch ref.Kind {
	case KindClient, KindProject, KindCategory:
		return c.requireOwner(actor, ref)

	case KindTask:
		project, err := c.store.ParentOf(KindTask, ref.ID)
		if err != nil {
			return denyOnLookup(err)
		}
		return c.requireOwner(actor, project)

	case KindTimeEntry:
		task, err := c.store.ParentOf(KindTimeEntry, ref.ID)
		if err != nil {
			return denyOnLookup(err)
		}
		project, err := c.store.ParentOf(KindTask, task.ID)
		if err != nil {
			return denyOnLookup(err)
		}
		decision, err := c.requireOwner(actor, project)
		if err != nil || !decision.Allowed {
			return decision, err
		}
		if op == OpRead {
			return Allow, nil
		}
		// Mutation additionally requires authorship, even for the project
		// owner unless owner and author coincide.
		author, err := c.store.OwnerOf(KindTimeEntry, ref.ID)
		if err != nil {
			return denyOnLookup(err)
		}
		if author != actor {
			return Deny(ReasonNotOwner), nil
		}
		return Allow, nil

	case KindTeamMember:
		project, err := c.store.ParentOf(KindTeamMember, ref.ID)
		if err != nil {
			return denyOnLookup(err)
		}
		return c.CanManageTeam(actor, project.ID)

	default:
		return Deny(ReasonNotFound), nil
	}
}

// CanManageTeam reports whether actor may manage the team of a project:
// the project owner or an active admin member.
func (c *Checker) CanManageTeam(actor, projectID uint64) (Decision, error) {
	owner, err := c.store.OwnerOf(KindProject, projectID)
	if err != nil {
		return denyOnLookup(err)
	}
	if owner == actor {
		return Allow, nil
	}

	members, err := c.store.TeamMembers(projectID)
	if err != nil {
		return Decision{}, err
	}
	for _, m := range members {
		if m.UserID == actor && m.Active && m.Role == RoleAdmin {
			return Allow, nil
		}
	}
	return Deny(ReasonInsufficientRole), nil
}

func (c *Checker) requireOwner(actor uint64, ref ResourceRef) (Decision, error) {
	owner, err := c.store.OwnerOf(ref.Kind, ref.ID)
	if err != nil {
		return denyOnLookup(err)
	}
	if owner != actor {
		return Deny(ReasonNotOwner), nil
	}
	return Allow, nil
}

func denyOnLookup(err error) (Decision, error) {
	if errors.Is(err, ErrNotFound) {
		return Deny(ReasonNotFound), nil
	}
	return Decision{}, err
}

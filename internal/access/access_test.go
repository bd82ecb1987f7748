package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store for decision tests.
type fakeStore struct {
	owners  map[ResourceRef]uint64
	parents map[ResourceRef]ResourceRef
	teams   map[uint64][]Membership
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		owners:  make(map[ResourceRef]uint64),
		parents: make(map[ResourceRef]ResourceRef),
		teams:   make(map[uint64][]Membership),
	}
}

func (s *fakeStore) OwnerOf(kind ResourceKind, id uint64) (uint64, error) {
	owner, ok := s.owners[ResourceRef{Kind: kind, ID: id}]
	if !ok {
		return 0, ErrNotFound
	}
	return owner, nil
}

func (s *fakeStore) ParentOf(kind ResourceKind, id uint64) (ResourceRef, error) {
	parent, ok := s.parents[ResourceRef{Kind: kind, ID: id}]
	if !ok {
		return ResourceRef{}, ErrNotFound
	}
	return parent, nil
}

func (s *fakeStore) TeamMembers(projectID uint64) ([]Membership, error) {
	return s.teams[projectID], nil
}

const (
	alice uint64 = 1
	bob   uint64 = 2
	carol uint64 = 3
)

// buildStore wires a client(10) -> project(20) -> task(30) -> entry(40) chain
// owned by alice, with the entry authored by bob.
func buildStore() *fakeStore {
	s := newFakeStore()
	s.owners[ResourceRef{KindClient, 10}] = alice
	s.owners[ResourceRef{KindProject, 20}] = alice
	s.owners[ResourceRef{KindCategory, 11}] = alice
	s.owners[ResourceRef{KindTimeEntry, 40}] = bob
	s.parents[ResourceRef{KindTask, 30}] = ResourceRef{KindProject, 20}
	s.parents[ResourceRef{KindTimeEntry, 40}] = ResourceRef{KindTask, 30}
	return s
}

func TestAuthorizeDirectOwnership(t *testing.T) {
	checker := NewChecker(buildStore())

	for _, ref := range []ResourceRef{
		{KindClient, 10},
		{KindProject, 20},
		{KindCategory, 11},
	} {
		decision, err := checker.Authorize(alice, OpWrite, ref)
		require.NoError(t, err)
		assert.True(t, decision.Allowed, "owner should pass for %s", ref.Kind)

		decision, err = checker.Authorize(bob, OpWrite, ref)
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, ReasonNotOwner, decision.Reason)
	}
}

func TestAuthorizeTaskDelegatesToProjectOwner(t *testing.T) {
	checker := NewChecker(buildStore())

	decision, err := checker.Authorize(alice, OpWrite, ResourceRef{KindTask, 30})
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	decision, err = checker.Authorize(bob, OpWrite, ResourceRef{KindTask, 30})
	require.NoError(t, err)
	assert.Equal(t, Deny(ReasonNotOwner), decision)
}

func TestAuthorizeTaskTeamRoleGrantsNothing(t *testing.T) {
	store := buildStore()
	store.teams[20] = []Membership{
		{MemberID: 1, UserID: bob, Role: RoleAdmin, Active: true},
	}
	checker := NewChecker(store)

	// Even an active admin has no task access; only ownership counts.
	decision, err := checker.Authorize(bob, OpRead, ResourceRef{KindTask, 30})
	require.NoError(t, err)
	assert.Equal(t, Deny(ReasonNotOwner), decision)
}

func TestAuthorizeTimeEntryReadRequiresProjectOwner(t *testing.T) {
	checker := NewChecker(buildStore())

	decision, err := checker.Authorize(alice, OpRead, ResourceRef{KindTimeEntry, 40})
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	decision, err = checker.Authorize(carol, OpRead, ResourceRef{KindTimeEntry, 40})
	require.NoError(t, err)
	assert.Equal(t, Deny(ReasonNotOwner), decision)
}

func TestAuthorizeTimeEntryMutationRequiresOwnerAndAuthor(t *testing.T) {
	checker := NewChecker(buildStore())

	// alice owns the project but bob authored the entry: both checks must hold.
	decision, err := checker.Authorize(alice, OpWrite, ResourceRef{KindTimeEntry, 40})
	require.NoError(t, err)
	assert.Equal(t, Deny(ReasonNotOwner), decision)

	// bob is the author but not the project owner.
	decision, err = checker.Authorize(bob, OpDelete, ResourceRef{KindTimeEntry, 40})
	require.NoError(t, err)
	assert.Equal(t, Deny(ReasonNotOwner), decision)
}

func TestAuthorizeTimeEntryMutationOwnerIsAuthor(t *testing.T) {
	store := buildStore()
	store.owners[ResourceRef{KindTimeEntry, 41}] = alice
	store.parents[ResourceRef{KindTimeEntry, 41}] = ResourceRef{KindTask, 30}
	checker := NewChecker(store)

	decision, err := checker.Authorize(alice, OpDelete, ResourceRef{KindTimeEntry, 41})
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestAuthorizeMissingResource(t *testing.T) {
	checker := NewChecker(buildStore())

	decision, err := checker.Authorize(alice, OpRead, ResourceRef{KindTask, 999})
	require.NoError(t, err)
	assert.Equal(t, Deny(ReasonNotFound), decision)

	decision, err = checker.Authorize(alice, OpRead, ResourceRef{KindClient, 999})
	require.NoError(t, err)
	assert.Equal(t, Deny(ReasonNotFound), decision)
}

func TestAuthorizeIdempotent(t *testing.T) {
	checker := NewChecker(buildStore())

	first, err := checker.Authorize(bob, OpWrite, ResourceRef{KindProject, 20})
	require.NoError(t, err)
	second, err := checker.Authorize(bob, OpWrite, ResourceRef{KindProject, 20})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRoleOrdering(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleManager))
	assert.True(t, RoleManager.AtLeast(RoleMember))
	assert.True(t, RoleMember.AtLeast(RoleViewer))
	assert.False(t, RoleViewer.AtLeast(RoleMember))
	assert.True(t, RoleAdmin.AtLeast(RoleAdmin))
}

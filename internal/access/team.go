package access

// AuthorizeAddMember decides whether actor may add user to a project's team.
// A membership row for the (project, user) pair blocks the add regardless of
// its active flag.
func (c *Checker) AuthorizeAddMember(actor, projectID, userID uint64) (Decision, error) {
	decision, err := c.CanManageTeam(actor, projectID)
	if err != nil || !decision.Allowed {
		return decision, err
	}

	members, err := c.store.TeamMembers(projectID)
	if err != nil {
		return Decision{}, err
	}
	for _, m := range members {
		if m.UserID == userID {
			return Deny(ReasonAlreadyMember), nil
		}
	}
	return Allow, nil
}

// AuthorizeRemoveMember decides whether actor may remove the given membership.
// Removing the last active admin of a project is refused no matter who asks.
func (c *Checker) AuthorizeRemoveMember(actor, projectID, memberID uint64) (Decision, error) {
	decision, err := c.CanManageTeam(actor, projectID)
	if err != nil || !decision.Allowed {
		return decision, err
	}

	members, err := c.store.TeamMembers(projectID)
	if err != nil {
		return Decision{}, err
	}
	target, ok := findMember(members, memberID)
	if !ok {
		return Deny(ReasonNotFound), nil
	}
	if target.Role == RoleAdmin && countActiveAdmins(members) <= 1 {
		return Deny(ReasonLastAdmin), nil
	}
	return Allow, nil
}

// AuthorizeUpdateMember decides whether actor may change a membership to the
// given role and active flag. Demoting or deactivating the last active admin
// is refused.
func (c *Checker) AuthorizeUpdateMember(actor, projectID, memberID uint64, newRole Role, newActive bool) (Decision, error) {
	decision, err := c.CanManageTeam(actor, projectID)
	if err != nil || !decision.Allowed {
		return decision, err
	}

	members, err := c.store.TeamMembers(projectID)
	if err != nil {
		return Decision{}, err
	}
	target, ok := findMember(members, memberID)
	if !ok {
		return Deny(ReasonNotFound), nil
	}

	losesAdmin := target.Role == RoleAdmin && target.Active &&
		(newRole != RoleAdmin || !newActive)
	if losesAdmin && countActiveAdmins(members) <= 1 {
		return Deny(ReasonLastAdmin), nil
	}
	return Allow, nil
}

func findMember(members []Membership, memberID uint64) (Membership, bool) {
	for _, m := range members {
		if m.MemberID == memberID {
			return m, true
		}
	}
	return Membership{}, false
}

func countActiveAdmins(members []Membership) int {
	count := 0
	for _, m := range members {
		if m.Role == RoleAdmin && m.Active {
			count++
		}
	}
	return count
}

package schema

import "sort"

// MemberIDs returns the member IDs in their original order.
func MemberIDs(members []Member) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.MemberID
	}
	return ids
}

// SortedMemberIDs returns the member IDs in lexicographic order. Analysis
// code iterates members in this order so results are deterministic.
func SortedMemberIDs(members []Member) []string {
	ids := MemberIDs(members)
	sort.Strings(ids)
	return ids
}

// FindLeader returns the member holding the leader role, if any.
func FindLeader(members []Member) (Member, bool) {
	for _, m := range members {
		if m.Role == RoleLeader {
			return m, true
		}
	}
	return Member{}, false
}

// RolesByID builds a member ID to role lookup.
func RolesByID(members []Member) map[string]Role {
	roles := make(map[string]Role, len(members))
	for _, m := range members {
		roles[m.MemberID] = m.Role
	}
	return roles
}

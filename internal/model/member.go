package model

// MemberUser is the user summary embedded in a project member record.
type MemberUser struct {
	ID       int    `json:"userId"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// ProjectMember links a user to a project with a role.
type ProjectMember struct {
	ID      int        `json:"projectMemberId"`
	Role    string     `json:"role"`
	Project Project    `json:"projectId"`
	User    MemberUser `json:"userId"`
}

// ProjectMemberRequest is the body of POST /api/v1/project_members.
type ProjectMemberRequest struct {
	ProjectID int    `json:"projectId"`
	UserID    int    `json:"userId"`
	Role      string `json:"role"`
}

// MemberUserIDs returns the user ids of members in order.
func MemberUserIDs(members []ProjectMember) []int {
	ids := make([]int, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.User.ID)
	}
	return ids
}

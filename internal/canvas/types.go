package canvas

// User is an enrolled person as the Canvas directory reports it. Read-only
// from groupctl's point of view.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	SortableName string `json:"sortable_name,omitempty"`
	LoginID      string `json:"login_id,omitempty"`
}

// GroupCategory is the named container ("group set" in the Canvas UI) that
// holds one group per project.
type GroupCategory struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	CourseID int    `json:"course_id,omitempty"`
}

// Group is a per-project membership container inside a category.
type Group struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	GroupCategoryID int    `json:"group_category_id"`
	MembersCount    int    `json:"members_count,omitempty"`
}

// Membership links a user to a group. Moderator marks the group leader.
type Membership struct {
	ID        int    `json:"id"`
	GroupID   int    `json:"group_id"`
	UserID    int    `json:"user_id"`
	Workflow  string `json:"workflow_state,omitempty"`
	Moderator bool   `json:"moderator"`
}

// createCategoryRequest is the POST body for a new group category.
type createCategoryRequest struct {
	Name string `json:"name"`
}

// createGroupRequest is the POST body for a new group.
type createGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// addMemberRequest is the POST body for a new membership.
type addMemberRequest struct {
	UserID int `json:"user_id"`
}

// updateMembershipRequest is the PUT body for promoting a member.
type updateMembershipRequest struct {
	Moderator bool `json:"moderator"`
}

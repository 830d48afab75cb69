package models

import "github.com/avdenisov/groupplan/internal/optional"

// Group is a named collection of users, events and votes.
//
// Events and Votes are populated by the corresponding fetchers on the API
// client and stay unset until then. When set, both are ordered newest first.
type Group struct {
	ID          int                       `json:"id"`
	Name        string                    `json:"name"`
	Description optional.Optional[string] `json:"description"`

	Events optional.Optional[[]*Event] `json:"-"`
	Votes  optional.Optional[[]*Vote]  `json:"-"`
}

// UserAndGroup is the join of a user to a group: the membership itself and
// the anchor every per-membership permission and response hangs off.
type UserAndGroup struct {
	ID      int `json:"id"`
	UserID  int `json:"user_id"`
	GroupID int `json:"group_id"`

	User optional.Optional[*User] `json:"user"`
}

// UserGroupPermission is one permission grant on one membership.
type UserGroupPermission struct {
	ID             int        `json:"id"`
	UserAndGroupID int        `json:"user_and_group_id"`
	Permission     Permission `json:"permission"`
}

// HasPermission reports whether grants allow the action guarded by p,
// honoring the ADMIN superset rule.
func HasPermission(grants []UserGroupPermission, p Permission) bool {
	for _, g := range grants {
		if g.Permission.Implies(p) {
			return true
		}
	}
	return false
}

// Invite is a shareable group invitation.
type Invite struct {
	ID             int    `json:"id"`
	Code           string `json:"code"`
	ExpirationDate string `json:"expiration_date"`
	GroupID        int    `json:"group_id"`
}

// URL builds the registration link the code is shared as.
func (i *Invite) URL(origin string) string {
	return origin + "/registration/" + i.Code
}

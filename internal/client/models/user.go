package models

import "strconv"

// User is a platform account. Owner marks the platform-wide administrator.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Owner     bool   `json:"owner"`
	HasAvatar bool   `json:"has_avatar"`
}

// AvatarURL derives the address of the user's avatar image, or "" when the
// user has not uploaded one. The URL is derived, never stored.
func (u *User) AvatarURL() string {
	if !u.HasAvatar {
		return ""
	}
	return "/api/users/" + strconv.Itoa(u.ID) + "/avatar"
}

// Me is the caller's own account. It shares the User shape; the extra
// operations (rename, password change, avatar upload, owned groups) live on
// the API client.
type Me struct {
	User
}

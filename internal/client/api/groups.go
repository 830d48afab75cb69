package api

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/avdenisov/groupplan/internal/client/models"
	"github.com/avdenisov/groupplan/internal/optional"
)

// Group fetches one group by id.
func (c *Client) Group(ctx context.Context, id int) (*models.Group, error) {
	var g models.Group
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/groups/%d", id), nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Groups lists every group. Owner-only on the server side.
func (c *Client) Groups(ctx context.Context) ([]*models.Group, error) {
	var groups []*models.Group
	if err := c.do(ctx, http.MethodGet, "/api/groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GroupCreate carries the fields of a new group. Description is sent even
// when null; the server stores the distinction.
type GroupCreate struct {
	Name        string                     `json:"name" validate:"required,max=32"`
	Description optional.Optional[*string] `json:"description"`
}

// CreateGroup creates a group and returns the server's instance.
func (c *Client) CreateGroup(ctx context.Context, p GroupCreate) (*models.Group, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	var g models.Group
	if err := c.do(ctx, http.MethodPost, "/api/groups", p, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// GroupUpdate is a partial group edit; unset fields stay untouched
// server-side.
type GroupUpdate struct {
	Name        optional.Optional[string]  `json:"name,omitzero" validate:"omitempty,max=32"`
	Description optional.Optional[*string] `json:"description,omitzero"`
}

// UpdateGroup submits a partial edit and overwrites g's scalar fields with
// the server-confirmed state. Cached Events/Votes survive untouched.
func (c *Client) UpdateGroup(ctx context.Context, g *models.Group, upd GroupUpdate) error {
	if err := c.validateParams(upd); err != nil {
		return err
	}
	var confirmed models.Group
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/groups/%d", g.ID), upd, &confirmed); err != nil {
		return err
	}
	g.Name = confirmed.Name
	g.Description = confirmed.Description
	return nil
}

// DeleteGroup removes the group. The caller drops its own reference.
func (c *Client) DeleteGroup(ctx context.Context, g *models.Group) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/groups/%d", g.ID), nil, nil)
}

// GroupInvites lists the open invites of a group.
func (c *Client) GroupInvites(ctx context.Context, g *models.Group) ([]*models.Invite, error) {
	var invites []*models.Invite
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/groups/%d/invites", g.ID), nil, &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

type inviteCreate struct {
	ExpirationDate string `json:"expiration_date" validate:"required,datetime=2006-01-02"`
}

// CreateInvite issues a new invite valid until expirationDate (YYYY-MM-DD).
func (c *Client) CreateInvite(ctx context.Context, g *models.Group, expirationDate string) (*models.Invite, error) {
	body := inviteCreate{ExpirationDate: expirationDate}
	if err := c.validateParams(body); err != nil {
		return nil, err
	}
	var invite models.Invite
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/groups/%d/invites", g.ID), body, &invite); err != nil {
		return nil, err
	}
	return &invite, nil
}

// GroupUsers lists the members of a group.
func (c *Client) GroupUsers(ctx context.Context, g *models.Group) ([]*models.User, error) {
	var users []*models.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/groups/%d/users", g.ID), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AddUserToGroup creates a membership and returns the join entity.
func (c *Client) AddUserToGroup(ctx context.Context, g *models.Group, userID int) (*models.UserAndGroup, error) {
	var membership models.UserAndGroup
	path := fmt.Sprintf("/api/groups/%d/users/%d", g.ID, userID)
	if err := c.do(ctx, http.MethodPost, path, nil, &membership); err != nil {
		return nil, err
	}
	return &membership, nil
}

// RemoveUserFromGroup deletes a membership.
func (c *Client) RemoveUserFromGroup(ctx context.Context, g *models.Group, userID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/groups/%d/users/%d", g.ID, userID), nil, nil)
}

type permissionBody struct {
	Permission models.Permission `json:"permission" validate:"required,min=1,max=5"`
}

// AddUserPermission grants a permission on a member's membership.
func (c *Client) AddUserPermission(ctx context.Context, g *models.Group, userID int, p models.Permission) (*models.UserGroupPermission, error) {
	body := permissionBody{Permission: p}
	if err := c.validateParams(body); err != nil {
		return nil, err
	}
	var grant models.UserGroupPermission
	path := fmt.Sprintf("/api/groups/%d/users/%d/permissions", g.ID, userID)
	if err := c.do(ctx, http.MethodPost, path, body, &grant); err != nil {
		return nil, err
	}
	return &grant, nil
}

// RemoveUserPermission revokes a permission from a member's membership.
func (c *Client) RemoveUserPermission(ctx context.Context, g *models.Group, userID int, p models.Permission) error {
	body := permissionBody{Permission: p}
	if err := c.validateParams(body); err != nil {
		return err
	}
	path := fmt.Sprintf("/api/groups/%d/users/%d/permissions", g.ID, userID)
	return c.do(ctx, http.MethodDelete, path, body, nil)
}

// UserPermissions lists the permissions a member holds in the group.
func (c *Client) UserPermissions(ctx context.Context, g *models.Group, userID int) ([]models.Permission, error) {
	var perms []models.Permission
	path := fmt.Sprintf("/api/groups/%d/users/%d/permissions", g.ID, userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &perms); err != nil {
		return nil, err
	}
	return perms, nil
}

// GroupEvents fetches the group's events, newest first, and caches the
// sorted list on g.
func (c *Client) GroupEvents(ctx context.Context, g *models.Group) ([]*models.Event, error) {
	var events []*models.Event
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/groups/%d/events", g.ID), nil, &events); err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Created.After(events[j].Created.Time)
	})
	g.Events = optional.Some(events)
	return events, nil
}

// EventCreate carries the fields of a new event.
type EventCreate struct {
	Title       string                     `json:"title" validate:"required,max=100"`
	Color       string                     `json:"color" validate:"required,len=6,hexadecimal"`
	State       models.EventState          `json:"state" validate:"required,min=1,max=5"`
	Description optional.Optional[*string] `json:"description"`
	VoteEndDate optional.Optional[*string] `json:"vote_end_date,omitzero" validate:"omitempty"`
}

// CreateEvent creates an event in the group. The new instance is prepended
// to the cached list when one is loaded, keeping newest-first order without
// a resort.
func (c *Client) CreateEvent(ctx context.Context, g *models.Group, p EventCreate) (*models.Event, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	var e models.Event
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/groups/%d/events", g.ID), p, &e); err != nil {
		return nil, err
	}
	if cached, ok := g.Events.Get(); ok {
		g.Events = optional.Some(append([]*models.Event{&e}, cached...))
	}
	return &e, nil
}

// GroupVotes fetches the group's votes, newest first, and caches the sorted
// list on g.
func (c *Client) GroupVotes(ctx context.Context, g *models.Group) ([]*models.Vote, error) {
	var votes []*models.Vote
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/groups/%d/votes", g.ID), nil, &votes); err != nil {
		return nil, err
	}
	sort.SliceStable(votes, func(i, j int) bool {
		return votes[i].Created.After(votes[j].Created.Time)
	})
	g.Votes = optional.Some(votes)
	return votes, nil
}

// VoteCreate carries the fields of a new vote.
type VoteCreate struct {
	Title       string `json:"title" validate:"required,max=100"`
	MultiSelect bool   `json:"multi_select"`
}

// CreateVoteForGroup creates a vote in the group and prepends it to the
// cached list when one is loaded.
func (c *Client) CreateVoteForGroup(ctx context.Context, g *models.Group, p VoteCreate) (*models.Vote, error) {
	if err := c.validateParams(p); err != nil {
		return nil, err
	}
	var v models.Vote
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/groups/%d/votes", g.ID), p, &v); err != nil {
		return nil, err
	}
	if cached, ok := g.Votes.Get(); ok {
		g.Votes = optional.Some(append([]*models.Vote{&v}, cached...))
	}
	return &v, nil
}

package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/avdenisov/groupplan/internal/client/models"
)

// permissionNames maps the grant names accepted on the command line.
var permissionNames = map[string]models.Permission{
	"admin":   models.PermissionAdmin,
	"users":   models.PermissionManageUsers,
	"invites": models.PermissionManageInvites,
	"events":  models.PermissionManageEvents,
	"votes":   models.PermissionManageVotes,
}

func parsePermission(name string) (models.Permission, bool) {
	p, ok := permissionNames[strings.ToLower(name)]
	return p, ok
}

func (a *App) listMembers(ctx context.Context) error {
	if !a.requireGroup() {
		return nil
	}

	users, err := a.api.GroupUsers(ctx, a.group)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, u := range users {
		fmt.Printf("#%d %s\n", u.ID, u.Name)
	}
	return nil
}

func (a *App) addUser(ctx context.Context, args []string) error {
	if !a.requireGroup() {
		return nil
	}
	userID, ok := argID(args, 0, "adduser <user id>")
	if !ok {
		return nil
	}

	membership, err := a.api.AddUserToGroup(ctx, a.group, userID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Added user #%d (membership #%d).\n", userID, membership.ID)
	return nil
}

func (a *App) removeUser(ctx context.Context, args []string) error {
	if !a.requireGroup() {
		return nil
	}
	userID, ok := argID(args, 0, "removeuser <user id>")
	if !ok {
		return nil
	}

	if err := a.api.RemoveUserFromGroup(ctx, a.group, userID); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("User removed from the group.")
	return nil
}

func (a *App) listPermissions(ctx context.Context, args []string) error {
	if !a.requireGroup() {
		return nil
	}
	userID, ok := argID(args, 0, "perms <user id>")
	if !ok {
		return nil
	}

	perms, err := a.api.UserPermissions(ctx, a.group, userID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(perms) == 0 {
		fmt.Println("No grants.")
		return nil
	}
	for _, p := range perms {
		fmt.Println("-", p)
	}
	return nil
}

func (a *App) grantPermission(ctx context.Context, args []string) error {
	if !a.requireGroup() {
		return nil
	}
	userID, ok := argID(args, 0, "grant <user id> <admin|users|invites|events|votes>")
	if !ok {
		return nil
	}
	if len(args) < 2 {
		fmt.Println("Usage: grant <user id> <admin|users|invites|events|votes>")
		return nil
	}
	perm, ok := parsePermission(args[1])
	if !ok {
		fmt.Println("Unknown permission:", args[1])
		return nil
	}

	if _, err := a.api.AddUserPermission(ctx, a.group, userID, perm); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Granted %s to user #%d.\n", perm, userID)
	return nil
}

func (a *App) revokePermission(ctx context.Context, args []string) error {
	if !a.requireGroup() {
		return nil
	}
	userID, ok := argID(args, 0, "revoke <user id> <admin|users|invites|events|votes>")
	if !ok {
		return nil
	}
	if len(args) < 2 {
		fmt.Println("Usage: revoke <user id> <admin|users|invites|events|votes>")
		return nil
	}
	perm, ok := parsePermission(args[1])
	if !ok {
		fmt.Println("Unknown permission:", args[1])
		return nil
	}

	if err := a.api.RemoveUserPermission(ctx, a.group, userID, perm); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Revoked %s from user #%d.\n", perm, userID)
	return nil
}

// listMyPermissions shows the caller's own grants in the selected group.
func (a *App) listMyPermissions(ctx context.Context) error {
	if !a.requireGroup() {
		return nil
	}

	grants, err := a.api.MyGroupPermissions(ctx, a.group.ID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if models.HasPermission(grants, models.PermissionAdmin) {
		fmt.Println("You are an admin of this group.")
		return nil
	}
	if len(grants) == 0 {
		fmt.Println("No grants.")
		return nil
	}
	for _, g := range grants {
		fmt.Println("-", g.Permission)
	}
	return nil
}

// listUsers shows every account on the server. Instance owners use it to
// find the user ids for adduser.
func (a *App) listUsers(ctx context.Context) error {
	users, err := a.api.Users(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, u := range users {
		fmt.Printf("#%d %s\n", u.ID, u.Name)
	}
	return nil
}

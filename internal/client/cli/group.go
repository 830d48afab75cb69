package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/avdenisov/groupplan/internal/client/api"
	"github.com/avdenisov/groupplan/internal/optional"
)

func (a *App) listGroups(ctx context.Context) error {
	groups, err := a.api.MyGroups(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(groups) == 0 {
		fmt.Println("You are not a member of any group.")
		return nil
	}
	for _, g := range groups {
		fmt.Printf("#%d %s", g.ID, g.Name)
		if desc, ok := g.Description.Get(); ok {
			fmt.Printf(" - %s", desc)
		}
		fmt.Println()
	}
	return nil
}

func (a *App) selectGroup(ctx context.Context, args []string) error {
	id, ok := argID(args, 0, "group <id>")
	if !ok {
		return nil
	}

	g, err := a.api.Group(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.group = g

	fmt.Printf("Working in %s.\n", g.Name)
	return nil
}

func (a *App) createGroup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter group name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}

	p := api.GroupCreate{Name: name}
	if description != "" {
		p.Description = optional.Some(&description)
	}

	g, err := a.api.CreateGroup(ctx, p)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.group = g

	fmt.Printf("Created group #%d, now selected.\n", g.ID)
	return nil
}

func (a *App) editGroup(ctx context.Context) error {
	if !a.requireGroup() {
		return nil
	}

	name, err := getSimpleText(a.reader, "New name (blank to keep)", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "New description (blank to keep, '-' to clear)", os.Stdout)
	if err != nil {
		return err
	}

	upd := api.GroupUpdate{}
	if name != "" {
		upd.Name = optional.Some(name)
	}
	switch description {
	case "":
	case "-":
		upd.Description = optional.Some[*string](nil)
	default:
		upd.Description = optional.Some(&description)
	}
	if !upd.Name.IsSet && !upd.Description.IsSet {
		fmt.Println("Nothing to change.")
		return nil
	}

	return trackSave(ctx, a.reader, upd, func(ctx context.Context, u api.GroupUpdate) error {
		return a.api.UpdateGroup(ctx, a.group, u)
	})
}

func (a *App) deleteGroup(ctx context.Context) error {
	if !a.requireGroup() {
		return nil
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %s and everything in it? (y/n)", a.group.Name), os.Stdout)
	if err != nil || answer != "y" {
		return err
	}

	if err := a.api.DeleteGroup(ctx, a.group); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.group = nil

	fmt.Println("Group deleted.")
	return nil
}

func (a *App) leaveGroup(ctx context.Context) error {
	if !a.requireGroup() {
		return nil
	}

	if err := a.api.LeaveGroup(ctx, a.group.ID); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("You left %s.\n", a.group.Name)
	a.group = nil
	return nil
}

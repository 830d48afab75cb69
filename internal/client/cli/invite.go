package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) listInvites(ctx context.Context) error {
	if !a.requireGroup() {
		return nil
	}

	invites, err := a.api.GroupInvites(ctx, a.group)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(invites) == 0 {
		fmt.Println("No open invites.")
		return nil
	}
	for _, inv := range invites {
		fmt.Printf("#%d %s (expires %s)\n", inv.ID, inv.Code, inv.ExpirationDate)
	}
	return nil
}

func (a *App) createInvite(ctx context.Context) error {
	if !a.requireGroup() {
		return nil
	}

	date, err := getSimpleText(a.reader, "Expiration date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	inv, err := a.api.CreateInvite(ctx, a.group, date)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Invite code: %s\n", inv.Code)
	fmt.Printf("Share link:  %s\n", inv.URL(a.config.ServerBaseURL))
	return nil
}

func (a *App) deleteInvite(ctx context.Context, args []string) error {
	id, ok := argID(args, 0, "rminvite <id>")
	if !ok {
		return nil
	}

	if err := a.api.DeleteInvite(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Invite revoked.")
	return nil
}

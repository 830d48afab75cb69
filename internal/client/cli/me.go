package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/avdenisov/groupplan/internal/client/api"
	"github.com/avdenisov/groupplan/internal/optional"
)

func (a *App) whoami(ctx context.Context) {
	fmt.Printf("#%d %s", a.me.ID, a.me.Name)
	if a.me.Owner {
		fmt.Print(" (instance owner)")
	}
	fmt.Println()
	if a.me.HasAvatar {
		fmt.Println("Avatar:", a.me.AvatarURL())
	}
}

// editProfile prompts for a new name and/or password; a blank answer leaves
// the field alone. The update is tracked through a SaveState so a failure
// keeps the draft visible instead of silently discarding it.
func (a *App) editProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "New user name (blank to keep)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getSimpleText(a.reader, "New password (blank to keep)", os.Stdout)
	if err != nil {
		return err
	}

	upd := api.MeUpdate{}
	if name != "" {
		upd.Name = optional.Some(name)
	}
	if password != "" {
		upd.Password = optional.Some(password)
	}
	if !upd.Name.IsSet && !upd.Password.IsSet {
		fmt.Println("Nothing to change.")
		return nil
	}

	err = trackSave(ctx, a.reader, upd, func(ctx context.Context, u api.MeUpdate) error {
		return a.api.UpdateMe(ctx, a.me, u)
	})
	if err != nil {
		return err
	}

	fmt.Printf("You are now %s.\n", a.me.Name)
	return nil
}

func (a *App) uploadAvatar(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: avatar <path to image>")
		return nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer f.Close()

	if err := a.api.UploadAvatar(ctx, filepath.Base(args[0]), f); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.me.HasAvatar = true

	fmt.Println("Avatar updated.")
	return nil
}

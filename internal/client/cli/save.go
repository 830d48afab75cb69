package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/avdenisov/groupplan/internal/client/models"
)

// trackSave runs a write while tracking the edit through a SaveState. On
// failure the draft is kept and the user may retry it; on success the state
// is confirmed. Returns the last write error if the user gives up.
func trackSave[T any](ctx context.Context, reader *bufio.Reader, draft T, write func(context.Context, T) error) error {
	var save models.SaveState[T]

	save.Begin(draft)
	for {
		fmt.Println("Saving...")
		pending, _ := save.Draft()
		err := write(ctx, pending)
		if err == nil {
			save.Confirm(pending)
			fmt.Println("Saved.")
			return nil
		}

		save.Fail(err)
		fmt.Printf("Save failed: %s\n", err.Error())

		answer, readErr := getSimpleText(reader, "Retry? (y/n)", os.Stdout)
		if readErr != nil || answer != "y" {
			fmt.Println("Your changes were not applied.")
			return err
		}
		retry, _ := save.Draft()
		save.Begin(retry)
	}
}

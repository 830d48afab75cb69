package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/avdenisov/groupplan/internal/client/api"
	"github.com/avdenisov/groupplan/internal/client/models"
	"github.com/avdenisov/groupplan/internal/optional"
)

func (a *App) listPolls(ctx context.Context) error {
	if !a.requireGroup() {
		return nil
	}

	votes, err := a.api.GroupVotes(ctx, a.group)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(votes) == 0 {
		fmt.Println("No polls yet.")
		return nil
	}
	for _, v := range votes {
		kind := "single choice"
		if v.MultiSelect {
			kind = "multiple choice"
		}
		fmt.Printf("#%d %s (%s)\n", v.ID, v.Title, kind)
	}
	return nil
}

func (a *App) showPoll(ctx context.Context, args []string) error {
	id, ok := argID(args, 0, "poll <id>")
	if !ok {
		return nil
	}

	v, err := a.api.Vote(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("#%d %s\n", v.ID, v.Title)
	options, err := a.api.VoteOptions(ctx, v)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, o := range options {
		responses, err := a.api.VoteOptionResponses(ctx, o)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		fmt.Printf("  option #%d: %s (%d votes)\n", o.ID, o.Title, len(responses))
	}
	return nil
}

func (a *App) createPoll(ctx context.Context) error {
	if !a.requireGroup() {
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter poll question", os.Stdout)
	if err != nil {
		return err
	}
	multi, err := getSimpleText(a.reader, "Allow selecting several answers? (y/n)", os.Stdout)
	if err != nil {
		return err
	}

	v, err := a.api.CreateVoteForGroup(ctx, a.group, api.VoteCreate{
		Title:       title,
		MultiSelect: multi == "y",
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Created poll #%d, add answers next: addchoice %d\n", v.ID, v.ID)
	return nil
}

func (a *App) addPollChoice(ctx context.Context, args []string) error {
	id, ok := argID(args, 0, "addchoice <poll id>")
	if !ok {
		return nil
	}
	v, err := a.api.Vote(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	title, err := getSimpleText(a.reader, "Enter answer text", os.Stdout)
	if err != nil {
		return err
	}

	o, err := a.api.CreateVoteOption(ctx, v, title)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Added answer #%d.\n", o.ID)
	return nil
}

// selectPollOption toggles the user's selection. On single-choice polls any
// previous selection is cleared; clears that fail are listed so the user
// knows the poll may still show a stale answer.
func (a *App) selectPollOption(ctx context.Context, args []string) error {
	pollID, ok := argID(args, 0, "select <poll id> <option id>")
	if !ok {
		return nil
	}
	optionID, ok := argID(args, 1, "select <poll id> <option id>")
	if !ok {
		return nil
	}

	v, err := a.api.Vote(ctx, pollID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	options, err := a.api.VoteOptions(ctx, v)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	var target *models.VoteOption
	for _, o := range options {
		if o.ID == optionID {
			target = o
			break
		}
	}
	if target == nil {
		fmt.Println("This poll has no such answer.")
		return nil
	}

	result, err := a.api.SelectVoteOption(ctx, v, target)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if result.Toggle.Selected {
		fmt.Printf("Selected %q.\n", target.Title)
	} else {
		fmt.Printf("Removed your vote from %q.\n", target.Title)
	}
	if !result.Consistent() {
		fmt.Println("Some previous answers could not be cleared:")
		for id, err := range result.FailedSiblings {
			fmt.Printf("  option #%d: %s\n", id, err.Error())
		}
		fmt.Println("Select the answer again to retry.")
	}
	return nil
}

func (a *App) editPoll(ctx context.Context, args []string) error {
	id, ok := argID(args, 0, "editpoll <id>")
	if !ok {
		return nil
	}
	v, err := a.api.Vote(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	title, err := getSimpleText(a.reader, "New question (blank to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Println("Nothing to change.")
		return nil
	}

	return trackSave(ctx, a.reader, api.VoteUpdate{Title: optional.Some(title)},
		func(ctx context.Context, u api.VoteUpdate) error {
			return a.api.UpdateVote(ctx, v, u)
		})
}

func (a *App) deletePoll(ctx context.Context, args []string) error {
	id, ok := argID(args, 0, "delpoll <id>")
	if !ok {
		return nil
	}

	if err := a.api.DeleteVote(ctx, &models.Vote{ID: id}); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Poll deleted.")
	return nil
}

func (a *App) removePollChoice(ctx context.Context, args []string) error {
	id, ok := argID(args, 0, "rmchoice <option id>")
	if !ok {
		return nil
	}

	if err := a.api.DeleteVoteOption(ctx, &models.VoteOption{ID: id}); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Answer removed.")
	return nil
}

package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/avdenisov/groupplan/internal/client/api"
	"github.com/avdenisov/groupplan/internal/client/models"
	"github.com/avdenisov/groupplan/internal/optional"
)

// validColor reports whether c is one of the offered event colors.
func validColor(c string) bool {
	return slices.Contains(models.EventColors, strings.ToLower(c))
}

// validTimeRange checks HH:MM:SS values and, when end is non-empty,
// requires it to lie after start.
func validTimeRange(start, end string) error {
	s, err := time.Parse("15:04:05", start)
	if err != nil {
		return fmt.Errorf("invalid start time %q, expected HH:MM:SS", start)
	}
	if end == "" {
		return nil
	}
	e, err := time.Parse("15:04:05", end)
	if err != nil {
		return fmt.Errorf("invalid end time %q, expected HH:MM:SS", end)
	}
	if !e.After(s) {
		return fmt.Errorf("end time must be after start time")
	}
	return nil
}

func (a *App) listEvents(ctx context.Context) error {
	if !a.requireGroup() {
		return nil
	}

	events, err := a.api.GroupEvents(ctx, a.group)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(events) == 0 {
		fmt.Println("No events yet.")
		return nil
	}
	for _, e := range events {
		fmt.Printf("#%d %s [%s]\n", e.ID, e.Title, e.State)
	}
	return nil
}

func (a *App) showEvent(ctx context.Context, args []string) error {
	id, ok := argID(args, 0, "event <id>")
	if !ok {
		return nil
	}

	e, err := a.api.Event(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("#%d %s [%s]\n", e.ID, e.Title, e.State)
	if desc, ok := e.Description.Get(); ok {
		fmt.Println(desc)
	}
	if end, ok := e.VoteEndDate.Get(); ok {
		fmt.Println("Voting ends:", end)
	}

	options, err := a.api.EventOptions(ctx, e)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, o := range options {
		if _, err := a.api.EventOptionResponses(ctx, o); err != nil {
			log.Printf("error: %v", err)
			return err
		}
	}

	chosen := e.ChoosenEventOption()
	for _, o := range options {
		marker := " "
		if o == chosen {
			marker = "*"
		}
		when := o.Date + " " + o.StartTime
		if end, ok := o.EndTime.Get(); ok {
			when += " - " + end
		}
		fmt.Printf("%s option #%d: %s (%d accepted, %d denied)\n",
			marker, o.ID, when, o.AcceptedCount(), o.DeniedCount())
	}
	return nil
}

func (a *App) createEvent(ctx context.Context) error {
	if !a.requireGroup() {
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter event title", os.Stdout)
	if err != nil {
		return err
	}
	color, err := getSimpleText(a.reader, "Color ("+strings.Join(models.EventColors, ", ")+")", os.Stdout)
	if err != nil {
		return err
	}
	if !validColor(color) {
		fmt.Println("Pick one of the offered colors.")
		return nil
	}
	description, err := GetMultiline(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}
	voteEnd, err := getSimpleText(a.reader, "Voting end date (YYYY-MM-DD, blank for none)", os.Stdout)
	if err != nil {
		return err
	}

	p := api.EventCreate{
		Title: title,
		Color: strings.ToLower(color),
		State: models.EventStateVoting,
	}
	if description != "" {
		p.Description = optional.Some(&description)
	}
	if voteEnd != "" {
		p.VoteEndDate = optional.Some(&voteEnd)
	}

	e, err := a.api.CreateEvent(ctx, a.group, p)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Created event #%d, add a few date options next: addoption %d\n", e.ID, e.ID)
	return nil
}

func (a *App) editEvent(ctx context.Context, args []string) error {
	id, ok := argID(args, 0, "editevent <id>")
	if !ok {
		return nil
	}
	e, err := a.api.Event(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	title, err := getSimpleText(a.reader, "New title (blank to keep)", os.Stdout)
	if err != nil {
		return err
	}
	color, err := getSimpleText(a.reader, "New color (blank to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if color != "" && !validColor(color) {
		fmt.Println("Pick one of the offered colors.")
		return nil
	}
	state, err := getSimpleText(a.reader, "New state (voting/open/active/closed/archived, blank to keep)", os.Stdout)
	if err != nil {
		return err
	}

	upd := api.EventUpdate{}
	if title != "" {
		upd.Title = optional.Some(title)
	}
	if color != "" {
		upd.Color = optional.Some(strings.ToLower(color))
	}
	if state != "" {
		parsed, ok := parseEventState(state)
		if !ok {
			fmt.Println("Unknown state:", state)
			return nil
		}
		upd.State = optional.Some(parsed)
	}
	if !upd.Title.IsSet && !upd.Color.IsSet && !upd.State.IsSet {
		fmt.Println("Nothing to change.")
		return nil
	}

	return trackSave(ctx, a.reader, upd, func(ctx context.Context, u api.EventUpdate) error {
		return a.api.UpdateEvent(ctx, e, u)
	})
}

func parseEventState(name string) (models.EventState, bool) {
	switch strings.ToLower(name) {
	case "voting":
		return models.EventStateVoting, true
	case "open":
		return models.EventStateOpen, true
	case "active":
		return models.EventStateActive, true
	case "closed":
		return models.EventStateClosed, true
	case "archived":
		return models.EventStateArchived, true
	default:
		return 0, false
	}
}

func (a *App) deleteEvent(ctx context.Context, args []string) error {
	id, ok := argID(args, 0, "deleteevent <id>")
	if !ok {
		return nil
	}

	if err := a.api.DeleteEvent(ctx, &models.Event{ID: id}); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Event deleted.")
	return nil
}

func (a *App) addEventOption(ctx context.Context, args []string) error {
	id, ok := argID(args, 0, "addoption <event id>")
	if !ok {
		return nil
	}
	e, err := a.api.Event(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	date, err := getSimpleText(a.reader, "Date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	start, err := getSimpleText(a.reader, "Start time (HH:MM:SS)", os.Stdout)
	if err != nil {
		return err
	}
	end, err := getSimpleText(a.reader, "End time (HH:MM:SS, blank for open end)", os.Stdout)
	if err != nil {
		return err
	}
	if err := validTimeRange(start, end); err != nil {
		fmt.Println(err.Error())
		return nil
	}

	p := api.EventOptionCreate{Date: date, StartTime: start}
	if end != "" {
		p.EndTime = optional.Some(&end)
	}

	o, err := a.api.CreateEventOption(ctx, e, p)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Added option #%d.\n", o.ID)
	return nil
}

func (a *App) respondToOption(ctx context.Context, args []string) error {
	id, ok := argID(args, 0, "respond <option id>")
	if !ok {
		return nil
	}
	o, err := a.api.EventOption(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	answer, err := getSimpleText(a.reader, "Does this slot work for you? (y/n)", os.Stdout)
	if err != nil {
		return err
	}

	p := api.EventOptionResponseCreate{Response: models.ResponseAccepted}
	if answer != "y" {
		p.Response = models.ResponseDenied
		reason, err := getSimpleText(a.reader, "Reason (blank for none)", os.Stdout)
		if err != nil {
			return err
		}
		if reason != "" {
			p.Reason = optional.Some(&reason)
		}
	}

	if _, err := a.api.CreateEventOptionResponse(ctx, o, p); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Answer recorded.")
	return nil
}

func (a *App) chooseOption(ctx context.Context, args []string) error {
	eventID, ok := argID(args, 0, "choose <event id> <option id>")
	if !ok {
		return nil
	}
	optionID, ok := argID(args, 1, "choose <event id> <option id>")
	if !ok {
		return nil
	}

	e, err := a.api.Event(ctx, eventID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.api.SetForEvent(ctx, e, &models.EventOption{ID: optionID, EventID: eventID}); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Done, %s now takes place on option #%d.\n", e.Title, optionID)
	return nil
}

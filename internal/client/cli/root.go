package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if a.me != nil {
		s = a.me.Name
	}
	if a.group != nil {
		s = s + " @ " + a.group.Name
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) printHelp() {
	if !a.isLoggedIn() {
		fmt.Println("Available commands: register, login, exit")
		return
	}
	fmt.Println("Account:  whoami, profile, avatar <path>, logout, exit")
	fmt.Println("Groups:   groups, group <id>, creategroup, editgroup, deletegroup, leavegroup")
	fmt.Println("Members:  members, users, myperms, adduser <user id>, removeuser <user id>, perms <user id>, grant <user id> <perm>, revoke <user id> <perm>")
	fmt.Println("Invites:  invites, invite, rminvite <id>")
	fmt.Println("Events:   events, event <id>, createevent, editevent <id>, deleteevent <id>")
	fmt.Println("Slots:    addoption <event id>, respond <option id>, choose <event id> <option id>")
	fmt.Println("Polls:    polls, poll <id>, createpoll, editpoll <id>, delpoll <id>, addchoice <poll id>, rmchoice <option id>, select <poll id> <option id>")
	fmt.Println("Chat:     chat <event id>, rmmsg <message id>")
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to the group planner (type 'help' for commands)")

	go a.StartSessionWatcher(ctx, a.config.SessionCheckInterval)

	for {
		fmt.Printf("gp %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Println("Bye!")
			return
		}
		if cmd == "help" {
			a.printHelp()
			continue
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			default:
				fmt.Println("Please log in first (register, login).")
			}
			continue
		}

		switch cmd {
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			a.whoami(ctx)
		case "profile":
			_ = a.editProfile(ctx)
		case "avatar":
			_ = a.uploadAvatar(ctx, args)

		case "groups":
			_ = a.listGroups(ctx)
		case "group":
			_ = a.selectGroup(ctx, args)
		case "creategroup":
			_ = a.createGroup(ctx)
		case "editgroup":
			_ = a.editGroup(ctx)
		case "deletegroup":
			_ = a.deleteGroup(ctx)
		case "leavegroup":
			_ = a.leaveGroup(ctx)

		case "members":
			_ = a.listMembers(ctx)
		case "users":
			_ = a.listUsers(ctx)
		case "myperms":
			_ = a.listMyPermissions(ctx)
		case "adduser":
			_ = a.addUser(ctx, args)
		case "removeuser":
			_ = a.removeUser(ctx, args)
		case "perms":
			_ = a.listPermissions(ctx, args)
		case "grant":
			_ = a.grantPermission(ctx, args)
		case "revoke":
			_ = a.revokePermission(ctx, args)

		case "invites":
			_ = a.listInvites(ctx)
		case "invite":
			_ = a.createInvite(ctx)
		case "rminvite":
			_ = a.deleteInvite(ctx, args)

		case "events":
			_ = a.listEvents(ctx)
		case "event":
			_ = a.showEvent(ctx, args)
		case "createevent":
			_ = a.createEvent(ctx)
		case "editevent":
			_ = a.editEvent(ctx, args)
		case "deleteevent":
			_ = a.deleteEvent(ctx, args)
		case "addoption":
			_ = a.addEventOption(ctx, args)
		case "respond":
			_ = a.respondToOption(ctx, args)
		case "choose":
			_ = a.chooseOption(ctx, args)

		case "polls":
			_ = a.listPolls(ctx)
		case "poll":
			_ = a.showPoll(ctx, args)
		case "createpoll":
			_ = a.createPoll(ctx)
		case "editpoll":
			_ = a.editPoll(ctx, args)
		case "delpoll":
			_ = a.deletePoll(ctx, args)
		case "addchoice":
			_ = a.addPollChoice(ctx, args)
		case "rmchoice":
			_ = a.removePollChoice(ctx, args)
		case "select":
			_ = a.selectPollOption(ctx, args)

		case "chat":
			_ = a.runChat(ctx, args)
		case "rmmsg":
			_ = a.deleteMessage(ctx, args)

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

// argID parses the i-th argument as a numeric id, printing the usage line
// when it is missing or not a number.
func argID(args []string, i int, usage string) (int, bool) {
	if len(args) <= i {
		fmt.Println("Usage:", usage)
		return 0, false
	}
	id, err := strconv.Atoi(args[i])
	if err != nil {
		fmt.Println("Usage:", usage)
		return 0, false
	}
	return id, true
}

// requireGroup reports whether a group is selected, prompting otherwise.
func (a *App) requireGroup() bool {
	if a.group == nil {
		fmt.Println("Select a group first: group <id>")
		return false
	}
	return true
}

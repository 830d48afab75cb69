package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register checks an invite code against the server, then prompts for
// credentials and creates the account. Server-side rejections (a taken name,
// an expired code) come back with their own message and are shown verbatim.
func (a *App) Register(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Enter invite code", os.Stdout)
	if err != nil {
		return err
	}

	valid, err := a.api.VerifyInviteCode(ctx, code)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if !valid {
		fmt.Println("This invite code is not valid.")
		return nil
	}

	userName, err := getSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.Register(ctx, userName, password, code); err != nil {
		fmt.Printf("Registration failed: %s\n", err.Error())
		return err
	}

	fmt.Println("Account created, you can log in now.")
	return nil
}

// Login prompts for credentials and authenticates. On success the account
// is fetched and kept on the App for the prompt and permission checks.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.Authenticate(ctx, userName, password); err != nil {
		fmt.Printf("Login failed: %s\n", err.Error())
		return err
	}

	me, err := a.api.Me(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.me = me

	fmt.Printf("Logged in as %s.\n", me.Name)
	return nil
}

// Logout invalidates the server session and clears the local state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.me = nil
	a.group = nil
	fmt.Println("Logged out.")
	return nil
}

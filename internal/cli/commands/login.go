package commands

import (
	"StudyArchive/internal/config"
	"context"
	"fmt"

	fsrepo "StudyArchive/internal/cli/repo/fs"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the session" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	username, password := args[0], args[1]

	user, token, err := newClient(cfg).Login(username, password)
	if err != nil {
		return err
	}
	store := fsrepo.AuthFSStore{}
	if err := store.SaveToken(token); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	if err := store.SaveLogin(user.Username); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	fmt.Fprintf(Out, "Login successful, welcome %s\n", user.Username)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }

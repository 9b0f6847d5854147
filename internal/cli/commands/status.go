package commands

import (
	"StudyArchive/internal/config"
	"context"
	"fmt"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show server address and session state" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	fmt.Fprintf(Out, "server: %s\n", cfg.ServerURL)
	if login := currentLogin(); login != "" {
		fmt.Fprintf(Out, "logged in as: %s\n", login)
	} else {
		fmt.Fprintln(Out, "not logged in (uploads are stored as guest)")
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }

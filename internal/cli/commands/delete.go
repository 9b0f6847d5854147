package commands

import (
	"StudyArchive/internal/config"
	"context"
	"fmt"
)

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Delete an item and its file" }
func (deleteCmd) Usage() string       { return "delete <id>" }

func (deleteCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id, err := parseItemID(args[0])
	if err != nil {
		return err
	}
	if err := newClient(cfg).DeleteItem(id); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Archive item deleted successfully")
	return nil
}

func init() { RegisterCmd(deleteCmd{}) }

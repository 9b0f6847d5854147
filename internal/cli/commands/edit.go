package commands

import (
	"StudyArchive/internal/config"
	"context"
	"fmt"

	"StudyArchive/internal/cli/ingest"
)

type editCmd struct{}

func (editCmd) Name() string        { return "edit" }
func (editCmd) Description() string { return "Change topic and category of an item" }
func (editCmd) Usage() string       { return "edit <id> <topic> <subCategory>" }

func (editCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	id, err := parseItemID(args[0])
	if err != nil {
		return err
	}
	p := &ingest.Pipeline{Store: newClient(cfg), MaxUploadMB: cfg.MaxUploadMB}
	if err := p.UpdateMeta(id, args[1], args[2]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Archive item updated successfully")
	return nil
}

func init() { RegisterCmd(editCmd{}) }

package commands

import (
	"StudyArchive/internal/config"
	"context"
	"fmt"

	"StudyArchive/internal/cli/ingest"
)

type uploadCmd struct{}

func (uploadCmd) Name() string        { return "upload" }
func (uploadCmd) Description() string { return "Upload a file into the archive" }
func (uploadCmd) Usage() string       { return "upload <path> <topic> <subCategory>" }

func (uploadCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	path, topic, subCategory := args[0], args[1], args[2]

	p := &ingest.Pipeline{
		Store:       newClient(cfg),
		MaxUploadMB: cfg.MaxUploadMB,
		OnState: func(s ingest.State) {
			if s != ingest.StateIdle {
				fmt.Fprintf(Out, "  %s...\n", s)
			}
		},
	}
	res, err := p.Upload(ingest.UploadInput{
		Path:        path,
		Topic:       topic,
		SubCategory: subCategory,
		Owner:       currentLogin(),
	})
	if err != nil {
		return fmt.Errorf("%s", res.Message)
	}
	fmt.Fprintf(Out, "Archive item created successfully (id %d, type %s)\n", res.ID, res.FileType)
	return nil
}

func init() { RegisterCmd(uploadCmd{}) }

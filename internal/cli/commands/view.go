package commands

import (
	"StudyArchive/internal/config"
	"context"
	"errors"

	"StudyArchive/internal/cli/api"
	"StudyArchive/internal/cli/view"
)

type viewCmd struct{}

func (viewCmd) Name() string        { return "view" }
func (viewCmd) Description() string { return "Show an item's content in the terminal" }
func (viewCmd) Usage() string       { return "view <id>" }

func (viewCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id, err := parseItemID(args[0])
	if err != nil {
		return err
	}
	client := newClient(cfg)
	it, err := client.GetItem(id)
	if err != nil {
		return err
	}
	// отсутствие строки файла не ошибка: показ из встроенного содержимого
	fileURL := ""
	if f, ferr := client.GetFile(id); ferr == nil {
		fileURL = f.FileURL
	} else if !errors.Is(ferr, api.ErrNotFound) {
		return ferr
	}

	v := &view.Viewer{Out: Out}
	return v.Render(*it, fileURL)
}

func init() { RegisterCmd(viewCmd{}) }

package commands

import (
	"StudyArchive/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"StudyArchive/internal/cli/api"
	"StudyArchive/internal/filetype"
)

type getCmd struct{}

func (getCmd) Name() string        { return "get" }
func (getCmd) Description() string { return "Download an item's file to disk" }
func (getCmd) Usage() string       { return "get <id> [out-path]" }

func (getCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
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

	out := it.FeaturedFile
	if len(args) > 1 {
		out = args[1]
	}
	if out == "" {
		out = fmt.Sprintf("archive-item-%d", id)
	}

	data, err := fileBytes(client, id, it.InlineContent())
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Saved %s (%d bytes)\n", filepath.Clean(out), len(data))
	return nil
}

// fileBytes достаёт содержимое файла: сначала строка файла на сервере,
// затем встроенное содержимое записи.
func fileBytes(client *api.Client, id int64, inline string) ([]byte, error) {
	f, err := client.GetFile(id)
	switch {
	case err == nil:
		if strings.HasPrefix(f.FileURL, "data:") {
			_, data, derr := filetype.ParseDataURL(f.FileURL)
			return data, derr
		}
		resp, herr := http.Get(f.FileURL)
		if herr != nil {
			return nil, herr
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: status %d", f.FileURL, resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	case errors.Is(err, api.ErrNotFound) && inline != "":
		if strings.HasPrefix(inline, "data:") {
			_, data, derr := filetype.ParseDataURL(inline)
			return data, derr
		}
		return []byte(inline), nil
	default:
		return nil, err
	}
}

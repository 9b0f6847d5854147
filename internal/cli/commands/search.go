package commands

import (
	"StudyArchive/internal/config"
	"context"
	"strings"

	"StudyArchive/internal/cli/bootstrap"
	"StudyArchive/internal/cli/model"

	"github.com/samber/lo"
)

type searchCmd struct{}

func (searchCmd) Name() string        { return "search" }
func (searchCmd) Description() string { return "Search items by topic, category or file name" }
func (searchCmd) Usage() string       { return "search <query>" }

func (searchCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	query := strings.ToLower(strings.Join(args, " "))

	list, err := newClient(cfg).ListItems()
	if err == nil {
		matched := lo.Filter(list, func(it model.Item, _ int) bool {
			return strings.Contains(strings.ToLower(it.Topic), query) ||
				strings.Contains(strings.ToLower(it.SubCategory), query) ||
				strings.Contains(strings.ToLower(it.FeaturedFile), query)
		})
		renderItems(matched)
		return nil
	}

	// сервер недоступен: ищем по кешу
	cache, done, cerr := bootstrap.OpenItemCache()
	if cerr != nil {
		return err
	}
	defer done()
	matched, cerr := cache.Search(query)
	if cerr != nil {
		return err
	}
	renderItems(matched)
	return nil
}

func init() { RegisterCmd(searchCmd{}) }

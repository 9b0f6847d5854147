package commands

import (
	"StudyArchive/internal/config"
	"context"
	"fmt"
	"strconv"

	"StudyArchive/internal/cli/bootstrap"
	"StudyArchive/internal/cli/model"

	"github.com/olekukonko/tablewriter"
)

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "List archive items (cached for offline use)" }
func (itemsCmd) Usage() string       { return "items" }

func (itemsCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	list, err := newClient(cfg).ListItems()
	if err == nil {
		// освежаем локальный кеш; без сессии кеша нет, это не ошибка
		if cache, done, cerr := bootstrap.OpenItemCache(); cerr == nil {
			_ = cache.ReplaceAll(list)
			_ = done()
		}
		renderItems(list)
		return nil
	}

	// сервер недоступен: показываем кеш
	cache, done, cerr := bootstrap.OpenItemCache()
	if cerr != nil {
		return err
	}
	defer done()
	cached, cerr := cache.List()
	if cerr != nil {
		return err
	}
	fmt.Fprintln(Out, "server unreachable, showing cached items")
	renderItems(cached)
	return nil
}

func renderItems(list []model.Item) {
	if len(list) == 0 {
		fmt.Fprintln(Out, "No archive items")
		return
	}
	table := tablewriter.NewWriter(Out)
	table.SetHeader([]string{"ID", "Topic", "Category", "File", "Type", "Owner", "Created"})
	for _, it := range list {
		table.Append([]string{
			strconv.FormatInt(it.ID, 10),
			it.Topic,
			it.SubCategory,
			it.FeaturedFile,
			it.DeclaredType(),
			it.OwnerID,
			it.CreatedAt,
		})
	}
	table.Render()
	fmt.Fprintf(Out, "Total: %d\n", len(list))
}

func init() { RegisterCmd(itemsCmd{}) }

package bootstrap

import (
	"fmt"

	"StudyArchive/internal/cli/repo"
	fsrepo "StudyArchive/internal/cli/repo/fs"
	reposqlite "StudyArchive/internal/cli/repo/sqlite"
)

// OpenItemCache открывает локальный кеш записей для текущего пользователя,
// выполняет миграции и возвращает (cache, cleanup, error).
// cleanup необходимо вызвать после окончания работы с кешем, чтобы закрыть соединение с БД.
func OpenItemCache() (repo.ItemCache, func() error, error) {
	login, err := (fsrepo.AuthFSStore{}).LoadLogin()
	if err != nil {
		return nil, nil, fmt.Errorf("нет активного пользователя: выполните login/register: %w", err)
	}
	c, _, err := reposqlite.OpenForUser(login)
	if err != nil {
		return nil, nil, fmt.Errorf("open cache db: %w", err)
	}
	if err := c.Migrate(); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("migrate cache db: %w", err)
	}
	cleanup := func() error { return c.Close() }
	return c, cleanup, nil
}

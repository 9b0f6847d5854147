package sqlite

import (
	"StudyArchive/internal/cli/model"
	"StudyArchive/internal/cli/repo"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// ItemCacheSQLite — локальный кеш метаданных записей архива (SQLite).
type ItemCacheSQLite struct {
	db    *sql.DB
	login string
}

var _ repo.ItemCache = (*ItemCacheSQLite)(nil)

// OpenForUser открывает (и создаёт при необходимости) файл кеша для указанного
// логина и возвращает кеш. Вторым значением возвращается путь к БД.
func OpenForUser(login string) (*ItemCacheSQLite, string, error) {
	if login == "" {
		return nil, "", errors.New("empty login for cache")
	}
	base := os.Getenv("CLIENT_CACHE_DIR")
	if base == "" {
		cfgDir, err := os.UserConfigDir()
		if err != nil {
			return nil, "", err
		}
		base = filepath.Join(cfgDir, "StudyArchive", "users")
	}
	dir := filepath.Join(base, login)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, "", err
	}
	dbPath := filepath.Join(dir, "cache.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, "", err
	}
	return &ItemCacheSQLite{db: db, login: login}, dbPath, nil
}

// Close закрывает соединение с БД.
func (c *ItemCacheSQLite) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Migrate гарантирует наличие необходимых таблиц/индексов.
func (c *ItemCacheSQLite) Migrate() error {
	_, err := c.db.Exec(initialDDL())
	return err
}

// ReplaceAll атомарно замещает содержимое кеша свежим списком с сервера.
func (c *ItemCacheSQLite) ReplaceAll(items []model.Item) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM items`); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO items(id, topic, sub_category, featured_file, file_type, owner_id, created_at)
        VALUES(?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, it := range items {
		var ft any
		if it.FileType != nil {
			ft = *it.FileType
		}
		if _, err := stmt.Exec(it.ID, it.Topic, it.SubCategory, it.FeaturedFile, ft, it.OwnerID, it.CreatedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func scanItems(rows *sql.Rows) ([]model.Item, error) {
	defer rows.Close()
	var res []model.Item
	for rows.Next() {
		var it model.Item
		var ft sql.NullString
		if err := rows.Scan(&it.ID, &it.Topic, &it.SubCategory, &it.FeaturedFile, &ft, &it.OwnerID, &it.CreatedAt); err != nil {
			return nil, err
		}
		if ft.Valid {
			v := ft.String
			it.FileType = &v
		}
		res = append(res, it)
	}
	return res, rows.Err()
}

// List возвращает записи от новых к старым.
func (c *ItemCacheSQLite) List() ([]model.Item, error) {
	rows, err := c.db.Query(`SELECT id, topic, sub_category, featured_file, file_type, owner_id, created_at
        FROM items ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return scanItems(rows)
}

// Search ищет подстроку query в теме, категории и имени файла без учёта регистра.
func (c *ItemCacheSQLite) Search(query string) ([]model.Item, error) {
	pat := "%" + strings.ToLower(query) + "%"
	rows, err := c.db.Query(`SELECT id, topic, sub_category, featured_file, file_type, owner_id, created_at
        FROM items
        WHERE lower(topic) LIKE ? OR lower(sub_category) LIKE ? OR lower(featured_file) LIKE ?
        ORDER BY created_at DESC, id DESC`, pat, pat, pat)
	if err != nil {
		return nil, err
	}
	return scanItems(rows)
}

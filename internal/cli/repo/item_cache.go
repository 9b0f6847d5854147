package repo

import "StudyArchive/internal/cli/model"

// ItemCache определяет порт локального кеша метаданных записей архива.
// Кеш хранит только метаданные; содержимое файлов всегда берётся с сервера.
type ItemCache interface {
	// ReplaceAll атомарно замещает содержимое кеша свежим списком с сервера.
	ReplaceAll(items []model.Item) error

	// List возвращает записи от новых к старым.
	List() ([]model.Item, error)

	// Search возвращает записи, у которых тема, категория или имя файла
	// содержат подстроку query (без учёта регистра).
	Search(query string) ([]model.Item, error)
}

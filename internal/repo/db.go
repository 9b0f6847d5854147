package repo

import (
	"StudyArchive/internal/model"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB открывает подключение к БД по DSN и прогоняет автомиграции.
// DSN вида postgres:// (или key=value с host=) — PostgreSQL,
// всё остальное трактуется как путь к файлу SQLite.
// Пустой DSN — локальный файл studyarchive.db (удобно для разработки).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch {
	case dsn == "":
		dial = sqlite.Open("studyarchive.db")
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"), strings.Contains(dsn, "host="):
		dial = postgres.Open(dsn)
	default:
		dial = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.Item{}, &model.File{}); err != nil {
		return nil, err
	}
	return db, nil
}

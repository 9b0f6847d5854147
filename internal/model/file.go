package model

import "time"

// File — сохранённое содержимое файла записи архива:
// большой текстовый блоб с data-URL-кодированным файлом.
type File struct {
	ID      int64  `gorm:"primaryKey"`
	ItemID  int64  `gorm:"not null;index"`
	FileURL string `gorm:"type:text;not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

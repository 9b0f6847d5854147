package model

import "time"

// Item — запись архива: метаданные учебного файла плюс опциональное
// встроенное содержимое.
type Item struct {
	ID          int64  `gorm:"primaryKey"` // монотонно возрастает в порядке создания
	Topic       string `gorm:"not null"`
	SubCategory string `gorm:"not null"`

	// FeaturedFile — отображаемое имя основного файла.
	FeaturedFile string `gorm:"not null"`

	// FileType — объявленный MIME-тип (может отсутствовать).
	FileType *string

	// FileContent — встроенный текст для text/plain-загрузок; в легаси-данных
	// здесь может лежать полный data URL.
	FileContent *string `gorm:"type:text"`

	// OwnerID — принципал, загрузивший файл ("guest" для анонимных).
	// Неизменяем после создания.
	OwnerID string `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`

	// Связь: ноль-или-один файл; строка файла удаляется вместе с записью.
	File *File `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

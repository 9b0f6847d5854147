package model

import "time"

// User — зарегистрированный пользователь архива.
// Пароль хранится как обратимый шифртекст (см. пакет passcrypt), не в открытом виде.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex;not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // шифртекст passcrypt

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

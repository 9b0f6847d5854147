package repo

// SessionStore описывает хранилище сессии CLI: auth-токен и логин пользователя.
type SessionStore interface {
	SaveToken(token string) error
	LoadToken() (string, error)
	SaveLogin(login string) error
	LoadLogin() (string, error)
	Clear() error
}

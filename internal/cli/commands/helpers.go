package commands

import (
	"strconv"

	"StudyArchive/internal/cli/api"
	fsrepo "StudyArchive/internal/cli/repo/fs"
	"StudyArchive/internal/config"
)

// newClient собирает REST-клиент с токеном текущей сессии (если есть).
func newClient(cfg *config.Config) *api.Client {
	token, _ := (fsrepo.AuthFSStore{}).LoadToken()
	return api.New(cfg.ServerURL, token)
}

// currentLogin возвращает логин активной сессии или пустую строку.
func currentLogin() string {
	login, err := (fsrepo.AuthFSStore{}).LoadLogin()
	if err != nil {
		return ""
	}
	return login
}

// parseItemID разбирает позиционный аргумент id записи.
func parseItemID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}

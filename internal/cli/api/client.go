package api

import (
	"StudyArchive/internal/cli/model"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Ошибки клиента API.
var (
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Client — типизированный REST-клиент сервера StudyArchive.
// Token может быть пустым: анонимные операции разрешены.
type Client struct {
	BaseURL string
	Token   string
}

// New создаёт клиент для указанного базового URL.
func New(baseURL, token string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), Token: token}
}

func (c *Client) url(path string) string { return c.BaseURL + path }

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	ID      int64           `json:"id"`
	UserID  int64           `json:"userId"`
	Exists  bool            `json:"exists"`
	User    *LoginUser      `json:"user"`
	Data    json.RawMessage `json:"data"`
}

// LoginUser — данные пользователя в ответе логина.
type LoginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// FileInfo — строка файла записи архива.
type FileInfo struct {
	ID            int64  `json:"id"`
	ArchiveItemID int64  `json:"archiveItemId"`
	FileURL       string `json:"fileUrl"`
	CreatedAt     string `json:"createdAt"`
}

// CreateItemRequest — тело создания записи архива.
type CreateItemRequest struct {
	Topic        string  `json:"topic"`
	SubCategory  string  `json:"subCategory"`
	FeaturedFile string  `json:"featuredFile"`
	FileType     *string `json:"fileType,omitempty"`
	FileContent  *string `json:"fileContent,omitempty"`
	OwnerID      string  `json:"ownerId"`
	FileURL      *string `json:"fileUrl,omitempty"`
}

// UpdateItemRequest — частичное обновление; nil-поля не отправляются.
type UpdateItemRequest struct {
	Topic        *string `json:"topic,omitempty"`
	SubCategory  *string `json:"subCategory,omitempty"`
	FeaturedFile *string `json:"featuredFile,omitempty"`
	FileType     *string `json:"fileType,omitempty"`
	FileContent  *string `json:"fileContent,omitempty"`
}

func decodeEnvelope(body []byte) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &env, nil
}

// apiError мапит неуспешный статус на ошибку с сообщением сервера.
func apiError(status int, env *envelope) error {
	msg := "server error"
	if env != nil && env.Message != "" {
		msg = env.Message
	}
	switch status {
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	default:
		return fmt.Errorf("server status %d: %s", status, msg)
	}
}

// Register создаёт пользователя и возвращает его id.
func (c *Client) Register(username, email, password string) (int64, error) {
	resp, body, err := PostJSON(c.url("/api/auth/register"), map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, "")
	if err != nil {
		return 0, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusCreated {
		return 0, apiError(resp.StatusCode, env)
	}
	return env.UserID, nil
}

// Login проверяет учётные данные; возвращает пользователя и auth-токен.
func (c *Client) Login(username, password string) (*LoginUser, string, error) {
	resp, body, err := PostJSON(c.url("/api/auth/login"), map[string]string{
		"username": username,
		"password": password,
	}, "")
	if err != nil {
		return nil, "", err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", apiError(resp.StatusCode, env)
	}
	token, err := AuthTokenFromResponse(resp)
	if err != nil {
		return nil, "", err
	}
	return env.User, token, nil
}

// UsernameExists проверяет занятость имени пользователя.
func (c *Client) UsernameExists(username string) (bool, error) {
	resp, body, err := GetJSON(c.url("/api/auth/check-username/"+username), "")
	if err != nil {
		return false, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return false, err
	}
	if resp.StatusCode != http.StatusOK {
		return false, apiError(resp.StatusCode, env)
	}
	return env.Exists, nil
}

// EmailExists проверяет занятость email.
func (c *Client) EmailExists(email string) (bool, error) {
	resp, body, err := GetJSON(c.url("/api/auth/check-email/"+email), "")
	if err != nil {
		return false, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return false, err
	}
	if resp.StatusCode != http.StatusOK {
		return false, apiError(resp.StatusCode, env)
	}
	return env.Exists, nil
}

// CreateItem создаёт запись архива и возвращает её id.
func (c *Client) CreateItem(in CreateItemRequest) (int64, error) {
	resp, body, err := PostJSON(c.url("/api/archive-items"), in, c.Token)
	if err != nil {
		return 0, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusCreated {
		return 0, apiError(resp.StatusCode, env)
	}
	return env.ID, nil
}

// ListItems возвращает все записи от новых к старым.
func (c *Client) ListItems() ([]model.Item, error) {
	resp, body, err := GetJSON(c.url("/api/archive-items"), c.Token)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, env)
	}
	var items []model.Item
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

// GetItem возвращает запись по id.
func (c *Client) GetItem(id int64) (*model.Item, error) {
	resp, body, err := GetJSON(c.url(fmt.Sprintf("/api/archive-items/%d", id)), c.Token)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, env)
	}
	var it model.Item
	if err := json.Unmarshal(env.Data, &it); err != nil {
		return nil, fmt.Errorf("decode item: %w", err)
	}
	return &it, nil
}

// GetFile возвращает строку файла записи.
func (c *Client) GetFile(id int64) (*FileInfo, error) {
	resp, body, err := GetJSON(c.url(fmt.Sprintf("/api/archive-items/%d/file", id)), c.Token)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, env)
	}
	var f FileInfo
	if err := json.Unmarshal(env.Data, &f); err != nil {
		return nil, fmt.Errorf("decode file: %w", err)
	}
	return &f, nil
}

// UpdateItem частично обновляет запись.
func (c *Client) UpdateItem(id int64, in UpdateItemRequest) error {
	resp, body, err := PutJSON(c.url(fmt.Sprintf("/api/archive-items/%d", id)), in, c.Token)
	if err != nil {
		return err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return apiError(resp.StatusCode, env)
	}
	return nil
}

// DeleteItem удаляет запись вместе со строкой файла.
func (c *Client) DeleteItem(id int64) error {
	resp, body, err := DeleteJSON(c.url(fmt.Sprintf("/api/archive-items/%d", id)), c.Token)
	if err != nil {
		return err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return apiError(resp.StatusCode, env)
	}
	return nil
}

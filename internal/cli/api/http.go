package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// authCookieName — имя cookie, которое сервер выдаёт при логине.
const authCookieName = "auth_token"

func doJSON(method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Cookie", authCookieName+"="+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, b, nil
}

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as auth cookie.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodPost, url, payload, token)
}

// GetJSON sends a GET request with optional auth cookie.
func GetJSON(url string, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodGet, url, nil, token)
}

// PutJSON sends a JSON PUT request with optional auth cookie.
func PutJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodPut, url, payload, token)
}

// DeleteJSON sends a DELETE request with optional auth cookie.
func DeleteJSON(url string, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodDelete, url, nil, token)
}

// AuthTokenFromResponse извлекает auth cookie из ответа сервера.
func AuthTokenFromResponse(resp *http.Response) (string, error) {
	for _, c := range resp.Cookies() {
		if c.Name == authCookieName && c.Value != "" {
			return c.Value, nil
		}
	}
	return "", fmt.Errorf("no auth cookie in response")
}

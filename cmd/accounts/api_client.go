package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching backend

type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Token   string `json:"token"`
}

type Profile struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
}

type ProfileResponse struct {
	User  Profile `json:"user"`
	Error string  `json:"error"`
}

// Register creates a new account
func (c *APIClient) Register(name, email, password string) (string, error) {
	body := map[string]string{"nome": name, "email": email, "senha": password}

	resp, err := c.do(http.MethodPost, "/auth/register", body, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result MessageResponse
	if err := decode(resp, &result); err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("register failed: %s", result.Error)
	}
	return result.Message, nil
}

// Login exchanges credentials for a session token
func (c *APIClient) Login(email, password string) (string, error) {
	body := map[string]string{"email": email, "senha": password}

	resp, err := c.do(http.MethodPost, "/auth/login", body, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result LoginResponse
	if err := decode(resp, &result); err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed: %s", result.Error)
	}
	return result.Token, nil
}

// GetProfile fetches the logged-in user's profile
func (c *APIClient) GetProfile(token string) (*Profile, error) {
	resp, err := c.do(http.MethodGet, "/auth/profile", nil, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result ProfileResponse
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile failed: %s", result.Error)
	}
	return &result.User, nil
}

// UpdateProfile changes the name and/or email of the logged-in user
func (c *APIClient) UpdateProfile(token, name, email string) (string, error) {
	body := map[string]string{}
	if name != "" {
		body["nome"] = name
	}
	if email != "" {
		body["email"] = email
	}

	resp, err := c.do(http.MethodPut, "/auth/update", body, token)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result MessageResponse
	if err := decode(resp, &result); err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("update failed: %s", result.Error)
	}
	return result.Message, nil
}

// DeleteAccount removes the logged-in user's account
func (c *APIClient) DeleteAccount(token string) (string, error) {
	resp, err := c.do(http.MethodDelete, "/auth/delete", nil, token)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result MessageResponse
	if err := decode(resp, &result); err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("delete failed: %s", result.Error)
	}
	return result.Message, nil
}

func (c *APIClient) do(method, path string, body interface{}, token string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.httpClient.Do(req)
}

func decode(resp *http.Response, v interface{}) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unexpected response (%d): %s", resp.StatusCode, string(data))
	}
	return nil
}

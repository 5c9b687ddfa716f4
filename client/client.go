// Package client is the game-side consumer of the memory match API: an HTTP
// client holding the session cookie, plus the board state machine that
// drives a round of play against it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type Card struct {
	ID         uint   `json:"id"`
	Detail     string `json:"detail"`
	GameModeID uint   `json:"gameModeId"`
	MatchID    *uint  `json:"matchId,omitempty"`
}

type GameMode struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type UpdateGameResult struct {
	RoundID string `json:"roundId"`
	Score   int    `json:"score"`
	IsMatch bool   `json:"isMatch"`
}

type RoundSummary struct {
	RoundID  string `json:"roundId"`
	Score    int    `json:"score"`
	Attempts int    `json:"attempts"`
	Matches  int    `json:"matches"`
}

type CollectionItem struct {
	ID         uint `json:"id"`
	Card1      Card `json:"card1"`
	Card2      Card `json:"card2"`
	GameModeID uint `json:"gameModeId"`
}

// APIError carries the server's envelope message and HTTP status.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Msg)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Msg     string          `json:"msg"`
}

// Client talks to the memory match API. The cookie jar keeps the session
// cookie across calls, mirroring the browser's withCredentials behaviour.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var rdr *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	} else {
		rdr = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		return &APIError{Status: resp.StatusCode, Msg: env.Msg}
	}
	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (c *Client) Signup(ctx context.Context, username, password string) (*User, error) {
	var u User
	err := c.do(ctx, http.MethodPost, "/user/signup", map[string]interface{}{
		"username": username,
		"password": password,
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Login(ctx context.Context, username, password string, remember bool) (*User, error) {
	var u User
	err := c.do(ctx, http.MethodPost, "/user/login", map[string]interface{}{
		"username": username,
		"password": password,
		"remember": remember,
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/user/logout", nil, nil)
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/user/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) StartGame(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/game/start", nil, nil)
}

// UpdateGame asks the server to judge a two-card selection and settle it
// into the running score.
func (c *Client) UpdateGame(ctx context.Context, card1ID, card2ID uint) (UpdateGameResult, error) {
	var res UpdateGameResult
	err := c.do(ctx, http.MethodPatch, "/game/update", map[string]interface{}{
		"card1Id": card1ID,
		"card2Id": card2ID,
	}, &res)
	return res, err
}

func (c *Client) FinishGame(ctx context.Context) (*RoundSummary, error) {
	var sum RoundSummary
	if err := c.do(ctx, http.MethodPost, "/game/finish", nil, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

func (c *Client) GameModes(ctx context.Context) ([]GameMode, error) {
	var modes []GameMode
	err := c.do(ctx, http.MethodGet, "/game/modes", nil, &modes)
	return modes, err
}

func (c *Client) CardsByGameMode(ctx context.Context, gameModeID uint) ([]Card, error) {
	var cards []Card
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/game/cards?gameModeId=%d", gameModeID), nil, &cards)
	return cards, err
}

func (c *Client) CardDetail(ctx context.Context, cardID uint) (*Card, error) {
	var card Card
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/game/card/%d", cardID), nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) Collection(ctx context.Context) ([]CollectionItem, error) {
	var items []CollectionItem
	err := c.do(ctx, http.MethodGet, "/collection", nil, &items)
	return items, err
}

func (c *Client) AddToCollection(ctx context.Context, card1ID, card2ID, gameModeID uint) (*CollectionItem, error) {
	var item CollectionItem
	err := c.do(ctx, http.MethodPost, "/collection", map[string]interface{}{
		"card1Id":    card1ID,
		"card2Id":    card2ID,
		"gameModeId": gameModeID,
	}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) RemoveFromCollection(ctx context.Context, card1ID, card2ID, gameModeID uint) error {
	return c.do(ctx, http.MethodDelete, "/collection", map[string]interface{}{
		"card1Id":    card1ID,
		"card2Id":    card2ID,
		"gameModeId": gameModeID,
	}, nil)
}

func (c *Client) ClearCollection(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/collection/clear", nil, nil)
}

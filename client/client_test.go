package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, data interface{}, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": status < 400,
		"data":    data,
		"msg":     msg,
	})
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/user/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "session-token", Path: "/"})
		writeEnvelope(w, http.StatusOK, map[string]interface{}{"id": 1, "username": "alice"}, "Login successful")
	})
	mux.HandleFunc("/user/me", func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("token"); err != nil {
			writeEnvelope(w, http.StatusUnauthorized, nil, "Unauthorized: Missing token")
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]interface{}{"id": 1, "username": "alice"}, "")
	})
	mux.HandleFunc("/game/update", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Card1ID uint `json:"card1Id"`
			Card2ID uint `json:"card2Id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"roundId": "round-1",
			"score":   1,
			"isMatch": req.Card1ID == 1 && req.Card2ID == 2,
		}, "")
	})
	mux.HandleFunc("/game/card/9999", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, nil, "card 9999: not found")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginStoresSessionCookie(t *testing.T) {
	srv := newTestServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	// Without a session the protected call fails with the envelope error.
	_, err = c.Me(ctx)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Unauthorized: Missing token", apiErr.Msg)

	user, err := c.Login(ctx, "alice", "s3cret", false)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	// The jar now replays the cookie on the next call.
	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, me.ID)
}

func TestUpdateGameDecodesResult(t *testing.T) {
	srv := newTestServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)

	res, err := c.UpdateGame(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, res.IsMatch)
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, "round-1", res.RoundID)

	res, err = c.UpdateGame(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.False(t, res.IsMatch)
}

func TestCardDetailNotFound(t *testing.T) {
	srv := newTestServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.CardDetail(context.Background(), 9999)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestFinishRoundTalliesSaves(t *testing.T) {
	var saves int
	mux := http.NewServeMux()
	mux.HandleFunc("/collection", func(w http.ResponseWriter, r *http.Request) {
		saves++
		// First save lands, second one blows up; the flow must keep going.
		if saves == 1 {
			writeEnvelope(w, http.StatusOK, map[string]interface{}{"id": 1}, "")
			return
		}
		writeEnvelope(w, http.StatusInternalServerError, nil, "Internal Server Error: db down")
	})
	mux.HandleFunc("/game/finish", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"roundId":  "round-1",
			"score":    2,
			"attempts": 3,
			"matches":  2,
		}, "Game finished and score reset")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL)
	require.NoError(t, err)

	eval := &fakeEvaluator{}
	b := NewBoard(eval, testCards())
	b.Select(1)
	b.Select(2)
	_, err = b.Evaluate(context.Background())
	require.NoError(t, err)
	b.Select(3)
	b.Select(4)
	_, err = b.Evaluate(context.Background())
	require.NoError(t, err)
	require.True(t, b.Complete())

	rep, err := c.FinishRound(context.Background(), b, 1, true)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Saved)
	assert.Equal(t, 1, rep.Failed)
	require.Len(t, rep.Errors, 1)
	assert.Equal(t, 2, rep.Summary.Score)
	assert.Equal(t, "round-1", rep.Summary.RoundID)
}

func TestFinishRoundWithoutSaving(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/game/finish", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]interface{}{"score": 0}, "")
	})
	mux.HandleFunc("/collection", func(w http.ResponseWriter, r *http.Request) {
		t.Error("collection should not be called when savePairs is false")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL)
	require.NoError(t, err)

	b := NewBoard(&fakeEvaluator{}, testCards())
	rep, err := c.FinishRound(context.Background(), b, 1, false)
	require.NoError(t, err)
	assert.Zero(t, rep.Saved)
	assert.Zero(t, rep.Failed)
}

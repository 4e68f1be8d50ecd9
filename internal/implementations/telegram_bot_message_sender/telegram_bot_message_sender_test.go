package telegrambotmessagesender

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"calremind/internal/core/domain/bot"

	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	// Setup ---
	var gotPath string
	var gotMessage telegramMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Nil(t, json.NewDecoder(r.Body).Decode(&gotMessage))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	baseURL, err := url.Parse(server.URL)
	require.Nil(t, err)
	sender := New(*baseURL, "test-token", time.Second)

	// Exercise ---
	err = sender.SendMessage(context.Background(), bot.Message{ChatID: 777, Text: "hello"})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal("/bottest-token/sendMessage", gotPath)
	assert.Equal(int64(777), gotMessage.ChatID)
	assert.Equal("hello", gotMessage.Text)
}

func TestSendMessageNonOKResponse(t *testing.T) {
	// Setup ---
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false}`))
	}))
	defer server.Close()
	baseURL, err := url.Parse(server.URL)
	require.Nil(t, err)
	sender := New(*baseURL, "test-token", time.Second)

	// Exercise ---
	err = sender.SendMessage(context.Background(), bot.Message{ChatID: 777, Text: "hello"})

	// Verify ---
	require.NotNil(t, err)
}

package telegram

import (
	"testing"
	"time"

	"calremind/internal/core/domain/user"

	"github.com/stretchr/testify/require"
)

func TestParseLinkCodeSuccess(t *testing.T) {
	cases := []struct {
		id       string
		text     string
		expected user.LinkCode
	}{
		{id: "1", text: "/link abc123", expected: user.LinkCode("abc123")},
		{id: "2", text: "/link aaaBBBcccDDD", expected: user.LinkCode("aaaBBBcccDDD")},
		{id: "3", text: "/link   x1y2z3", expected: user.LinkCode("x1y2z3")},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			update := createUpdate(111222333, testcase.text)
			code, ok := parseLinkCode(update)

			assert := require.New(t)
			assert.True(ok)
			assert.Equal(testcase.expected, code)
		})
	}
}

func TestParseLinkCodeFail(t *testing.T) {
	cases := []struct {
		id   string
		text string
	}{
		{id: "1", text: ""},
		{id: "2", text: "/link"},
		{id: "3", text: "/link abc 123"},
		{id: "4", text: "/start abc123"},
		{id: "5", text: "abc123"},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			update := createUpdate(1, testcase.text)
			_, ok := parseLinkCode(update)

			assert := require.New(t)
			assert.False(ok)
		})
	}
}

func createUpdate(chatID int64, text string) update {
	return update{
		ID: 1,
		Message: &message{
			ID:   2,
			Chat: chat{ID: chatID},
			Date: time.Now().Unix(),
			Text: text,
		},
	}
}

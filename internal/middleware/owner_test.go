package middleware

import (
	"testing"

	"wordtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestOwnerOnly(t *testing.T) {
	tests := []struct {
		name         string
		sender       *tele.User
		callback     bool
		expectedNext bool
	}{
		{
			name:         "owner passes",
			sender:       &tele.User{ID: 42},
			expectedNext: true,
		},
		{
			name:         "stranger message refused",
			sender:       &tele.User{ID: 7},
			expectedNext: false,
		},
		{
			name:         "stranger callback refused",
			sender:       &tele.User{ID: 7},
			callback:     true,
			expectedNext: false,
		},
		{
			name:         "no sender refused",
			sender:       nil,
			expectedNext: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testutil.NewFakeContext(0, "hello")
			c.User = tt.sender
			if tt.callback {
				c.Cb = &tele.Callback{ID: "1"}
			}

			called := false
			next := func(tele.Context) error {
				called = true
				return nil
			}

			err := OwnerOnly(42, testutil.NewTestLogger())(next)(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedNext, called)
			if tt.expectedNext {
				assert.Empty(t, c.Sent)
				assert.Empty(t, c.Responses)
				return
			}
			if tt.callback {
				assert.Len(t, c.Responses, 1)
				assert.Equal(t, privateText, c.Responses[0].Text)
			} else {
				assert.Equal(t, privateText, c.LastText())
			}
		})
	}
}

package handler

import (
	"errors"
	"io"
	"strings"
	"testing"

	"wordtrainer/internal/app"
	"wordtrainer/internal/domain"
	"wordtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func newTestHandler(t *testing.T, payload string) (*Handler, *app.App) {
	t.Helper()
	store := testutil.NewMemoryStore()
	if payload != "" {
		store.Values[testutil.TestKey] = []byte(payload)
	}
	trainer := app.Open(store, testutil.TestKey, domain.NativeToForeign, testutil.NewTestRand(), testutil.NewTestLogger())
	return NewHandler(nil, trainer, 10, testutil.NewTestLogger()), trainer
}

func TestHandler_AddWordsFlow(t *testing.T) {
	h, trainer := newTestHandler(t, "")

	c := testutil.NewFakeContext(1, "")
	c.Cb = &tele.Callback{ID: "cb"}
	require.NoError(t, h.handleAdd(c))
	assert.Equal(t, domain.StateWaitingNative, h.GetState().State)

	require.NoError(t, h.handleText(testutil.NewFakeContext(1, " ліс ")))
	state := h.GetState()
	assert.Equal(t, domain.StateWaitingForeign, state.State)
	assert.Equal(t, "ліс", state.PendingNative)

	c = testutil.NewFakeContext(1, "forest; woods")
	require.NoError(t, h.handleText(c))
	assert.Contains(t, c.LastText(), "Saved")
	assert.Equal(t, domain.StateWaitingNative, h.GetState().State)
	assert.Equal(t, 1, trainer.View().TotalWords)
}

func TestHandler_AddWordsFlow_Validation(t *testing.T) {
	h, trainer := newTestHandler(t, "")
	h.SetState(domain.StateData{State: domain.StateWaitingForeign, PendingNative: "ліс"})

	c := testutil.NewFakeContext(1, "   ")
	require.NoError(t, h.handleText(c))

	assert.Equal(t, domain.ErrEmptyField.Error(), c.LastText())
	assert.Equal(t, domain.StateWaitingForeign, h.GetState().State)
	assert.Equal(t, 0, trainer.View().TotalWords)
}

func TestHandler_IgnoresCommands(t *testing.T) {
	h, _ := newTestHandler(t, "")

	c := testutil.NewFakeContext(1, "/help")
	require.NoError(t, h.handleText(c))

	assert.Empty(t, c.Sent)
	assert.Equal(t, domain.StateIdle, h.GetState().State)
}

func TestHandler_TrainingFlow(t *testing.T) {
	h, trainer := newTestHandler(t, `[{"native":"ліс","foreign":"forest"}]`)

	c := testutil.NewFakeContext(1, "")
	require.NoError(t, h.handleTrainNative(c))
	assert.Equal(t, domain.StateTraining, h.GetState().State)
	assert.Contains(t, c.LastText(), "ліс")

	c = testutil.NewFakeContext(1, "Forest")
	require.NoError(t, h.handleText(c))
	require.Len(t, c.Sent, 2)
	assert.True(t, strings.HasPrefix(c.Sent[0].(string), "✅ Correct!"))
	assert.Contains(t, c.Sent[0].(string), "1 / 1")
	assert.Contains(t, c.Sent[1].(string), "ліс")

	c = testutil.NewFakeContext(1, "trees")
	require.NoError(t, h.handleText(c))
	assert.Contains(t, c.Sent[0].(string), "Correct: forest")

	session := trainer.View().Session
	assert.Equal(t, domain.Session{AskedCount: 2, CorrectCount: 1, IncorrectCount: 1}, session)
}

func TestHandler_TrainingWithoutWords(t *testing.T) {
	h, _ := newTestHandler(t, "")

	c := testutil.NewFakeContext(1, "")
	c.Cb = &tele.Callback{ID: "cb"}
	require.NoError(t, h.handleTrainForeign(c))

	require.Len(t, c.Responses, 1)
	assert.True(t, c.Responses[0].ShowAlert)
	assert.Equal(t, domain.StateIdle, h.GetState().State)
}

func TestHandler_ClearFlow(t *testing.T) {
	h, trainer := newTestHandler(t, `[{"native":"ліс","foreign":"forest"}]`)

	c := testutil.NewFakeContext(1, "")
	c.Cb = &tele.Callback{ID: "cb"}
	require.NoError(t, h.handleClearYes(c))
	assert.Equal(t, 1, trainer.View().TotalWords, "clear without confirmation must not delete")

	require.NoError(t, h.handleClear(c))
	assert.True(t, trainer.View().ConfirmingClear)

	require.NoError(t, h.handleClearYes(c))
	assert.Equal(t, 0, trainer.View().TotalWords)
	assert.Contains(t, c.LastText(), "deleted")
}

func TestHandler_ClearCancelled(t *testing.T) {
	h, trainer := newTestHandler(t, `[{"native":"liс","foreign":"forest"}]`)

	c := testutil.NewFakeContext(1, "")
	c.Cb = &tele.Callback{ID: "cb"}
	require.NoError(t, h.handleClear(c))
	require.NoError(t, h.handleCancel(c))

	assert.False(t, trainer.View().ConfirmingClear)
	assert.Equal(t, 1, trainer.View().TotalWords)
}

func TestHandler_Stats(t *testing.T) {
	h, _ := newTestHandler(t, `[{"native":"ліс","foreign":"forest","incorrectCount":1},{"native":"дім","foreign":"house","incorrectCount":4}]`)

	c := testutil.NewFakeContext(1, "")
	require.NoError(t, h.handleStats(c))

	text := c.LastText()
	assert.Contains(t, text, "Words: 2")
	assert.Less(t, strings.Index(text, "дім"), strings.Index(text, "ліс"))
}

func TestHandler_Export(t *testing.T) {
	h, _ := newTestHandler(t, `[{"native":"ліс","foreign":"forest"}]`)

	c := testutil.NewFakeContext(1, "")
	require.NoError(t, h.handleExport(c))

	require.Len(t, c.Sent, 1)
	doc, ok := c.Sent[0].(*tele.Document)
	require.True(t, ok)
	assert.Equal(t, exportFileName, doc.FileName)
	assert.Equal(t, "1 words", doc.Caption)
}

func TestHandler_DocumentWithoutImport(t *testing.T) {
	h, _ := newTestHandler(t, "")

	c := testutil.NewFakeContext(1, "")
	require.NoError(t, h.handleDocument(c))

	assert.Contains(t, c.LastText(), "Tap Import first")
}

func TestHandler_DocumentImport(t *testing.T) {
	tests := []struct {
		name          string
		payload       string
		fetchErr      error
		expectedText  string
		expectedState domain.ChatState
		expectedWords int
	}{
		{
			name:          "valid file replaces words",
			payload:       "\xef\xbb\xbf" + `[{"native":"дім","foreign":"house"},{"ua":"кіт","en":"cat"}]`,
			expectedText:  "Imported 2 words",
			expectedState: domain.StateIdle,
			expectedWords: 2,
		},
		{
			name:          "non array payload rejected",
			payload:       `{"native":"дім","foreign":"house"}`,
			expectedText:  "Import failed:",
			expectedState: domain.StateWaitingImport,
			expectedWords: 1,
		},
		{
			name:          "download failure",
			fetchErr:      errors.New("telegram unavailable"),
			expectedText:  errorText,
			expectedState: domain.StateWaitingImport,
			expectedWords: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, trainer := newTestHandler(t, `[{"native":"ліс","foreign":"forest"}]`)
			h.fetchFile = func(f *tele.File) (io.ReadCloser, error) {
				assert.Equal(t, "doc-1", f.FileID)
				if tt.fetchErr != nil {
					return nil, tt.fetchErr
				}
				return io.NopCloser(strings.NewReader(tt.payload)), nil
			}

			c := testutil.NewFakeContext(1, "")
			require.NoError(t, h.handleImport(c))
			assert.Equal(t, domain.StateWaitingImport, h.GetState().State)

			c.Msg.Document = &tele.Document{File: tele.File{FileID: "doc-1"}, FileName: "words.json"}
			require.NoError(t, h.handleDocument(c))

			assert.Contains(t, c.LastText(), tt.expectedText)
			assert.Equal(t, tt.expectedState, h.GetState().State)
			assert.Equal(t, tt.expectedWords, trainer.View().TotalWords)
		})
	}
}

func TestHandler_CallbackFallback(t *testing.T) {
	h, _ := newTestHandler(t, "")

	c := testutil.NewFakeContext(1, "")
	c.Cb = &tele.Callback{ID: "cb", Data: "\fadd"}
	require.NoError(t, h.handleCallback(c))

	assert.Equal(t, domain.StateWaitingNative, h.GetState().State)
}

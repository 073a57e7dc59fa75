package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// FakeContext is a tele.Context for handler tests.
// Only the methods below are implemented; any other call panics.
type FakeContext struct {
	tele.Context

	User      *tele.User
	Msg       *tele.Message
	Cb        *tele.Callback
	Sent      []interface{}
	Responses []*tele.CallbackResponse
}

// NewFakeContext creates a message context from userID carrying text
func NewFakeContext(userID int64, text string) *FakeContext {
	user := &tele.User{ID: userID, Username: "tester"}
	return &FakeContext{
		User: user,
		Msg:  &tele.Message{Sender: user, Text: text},
	}
}

func (f *FakeContext) Sender() *tele.User       { return f.User }
func (f *FakeContext) Message() *tele.Message   { return f.Msg }
func (f *FakeContext) Callback() *tele.Callback { return f.Cb }
func (f *FakeContext) Text() string {
	if f.Msg == nil {
		return ""
	}
	return f.Msg.Text
}

func (f *FakeContext) Send(what interface{}, opts ...interface{}) error {
	f.Sent = append(f.Sent, what)
	return nil
}

func (f *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	f.Sent = append(f.Sent, what)
	return nil
}

func (f *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	f.Responses = append(f.Responses, resp...)
	return nil
}

// LastText returns the last sent or edited text message
func (f *FakeContext) LastText() string {
	for i := len(f.Sent) - 1; i >= 0; i-- {
		if s, ok := f.Sent[i].(string); ok {
			return s
		}
	}
	return ""
}

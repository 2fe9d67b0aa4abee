package chat

import "time"

// Exchange is one user message and the bot reply to it.
type Exchange struct {
	User string    `json:"user"`
	Bot  string    `json:"bot"`
	At   time.Time `json:"at"`
}

// UserLine renders the user side the way the chat log shows it.
func (e Exchange) UserLine() string { return "You: " + e.User }

// BotLine renders the bot side the way the chat log shows it.
func (e Exchange) BotLine() string { return "Bot: " + e.Bot }

package entity

import "time"

// Speaker identifies who wrote a chat message.
type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerBot  Speaker = "bot"
)

// ChatMessage is one line of a chatbot conversation.
type ChatMessage struct {
	Speaker Speaker   `json:"speaker"`
	Text    string    `json:"text"`
	At      time.Time `json:"at"`
}

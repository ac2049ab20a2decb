package models

import "time"

type Author string

const (
	AuthorUser Author = "user"
	AuthorBot  Author = "bot"
)

type Message struct {
	Author    Author    `json:"author"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func UserMessage(content string) Message {
	return Message{Author: AuthorUser, Content: content, Timestamp: time.Now().UTC()}
}

func BotMessage(content string) Message {
	return Message{Author: AuthorBot, Content: content, Timestamp: time.Now().UTC()}
}

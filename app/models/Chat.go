package models

import "time"

type ChatMessage struct {
	tableName struct{} `pg:"game_chat"`

	Id        string    `pg:",pk" json:"id"`
	UserId    string    `json:"user_id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `pg:",default:now()" json:"timestamp"`
}

type ChatSendDto struct {
	Message string `json:"message"`
}

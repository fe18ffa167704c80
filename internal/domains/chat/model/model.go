package model

import "airwave/shared/model"

const (
	TableName  = "chat_messages"
	EntityName = "chat_message"

	FieldID        = "id"
	FieldStationID = "station_id"
	FieldUserName  = "user_name"
	FieldBody      = "body"
)

type Message struct {
	ID        string `db:"id"`
	StationID string `db:"station_id"`
	UserName  string `db:"user_name"`
	Body      string `db:"body"`
	model.Metadata
}

package model

import "airwave/shared/model"

const (
	TableName  = "stations"
	EntityName = "station"

	FieldID          = "id"
	FieldName        = "name"
	FieldGenre       = "genre"
	FieldDescription = "description"
	FieldStreamURL   = "stream_url"
	FieldCover       = "cover"
	FieldActive      = "active"
)

// Station is a radio station that airs booked shows and a live stream.
type Station struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Genre       string `db:"genre"`
	Description string `db:"description"`
	StreamURL   string `db:"stream_url"`
	Cover       string `db:"cover"`
	Active      bool   `db:"active"`
	model.Metadata
}

package model

import "airwave/shared/model"

const (
	TableName  = "tracks"
	EntityName = "track"

	FieldID              = "id"
	FieldTitle           = "title"
	FieldArtist          = "artist"
	FieldGenre           = "genre"
	FieldKind            = "kind"
	FieldDurationSeconds = "duration_seconds"
	FieldAudioURL        = "audio_url"
	FieldArtworkURL      = "artwork_url"
	FieldPlays           = "plays"
)

const (
	KindTrack = "track"
	KindMix   = "mix"
)

// ArtworkDirectory keeps cover art apart from the audio objects.
const ArtworkDirectory = EntityName + "/artwork"

// Track is an uploaded track or DJ mix playable on demand.
type Track struct {
	ID              string `db:"id"`
	Title           string `db:"title"`
	Artist          string `db:"artist"`
	Genre           string `db:"genre"`
	Kind            string `db:"kind"`
	DurationSeconds int    `db:"duration_seconds"`
	AudioURL        string `db:"audio_url"`
	ArtworkURL      string `db:"artwork_url"`
	Plays           int64  `db:"plays"`
	model.Metadata
}

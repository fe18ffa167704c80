package dto

import (
	"mime/multipart"

	"airwave/internal/domains/track/model"
	"airwave/shared"
	gDto "airwave/shared/dto"
	gModel "airwave/shared/model"
	"airwave/shared/timezone"

	"github.com/google/uuid"
)

type CreateTrackRequest struct {
	Title           string                `json:"title"            validate:"required,max=200"`
	Artist          string                `json:"artist"           validate:"required,max=100"`
	Genre           string                `json:"genre"            validate:"omitempty,max=50"`
	Kind            string                `json:"kind"             validate:"omitempty,oneof=track mix"`
	DurationSeconds int                   `json:"duration_seconds" validate:"gte=0"`
	Audio           *multipart.FileHeader `json:"audio"            swaggerignore:"true" validate:"required,mimetypes=audio/mpeg audio/mp3 audio/wav audio/x-wav audio/ogg audio/aac audio/flac"`
	AudioFile       multipart.File        `json:"-"`
	Artwork         *multipart.FileHeader `json:"artwork"          swaggerignore:"true" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	ArtworkFile     multipart.File        `json:"-"`
}

func (c *CreateTrackRequest) ToModel(user, audioURL, artworkURL string) model.Track {
	kind := c.Kind
	if kind == "" {
		kind = model.KindTrack
	}

	return model.Track{
		ID:              uuid.NewString(),
		Title:           c.Title,
		Artist:          c.Artist,
		Genre:           c.Genre,
		Kind:            kind,
		DurationSeconds: c.DurationSeconds,
		AudioURL:        audioURL,
		ArtworkURL:      artworkURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTrackRequest struct {
	Title           string `db:"title"            json:"title"            validate:"omitempty,max=200"`
	Artist          string `db:"artist"           json:"artist"           validate:"omitempty,max=100"`
	Genre           string `db:"genre"            json:"genre"            validate:"omitempty,max=50"`
	Kind            string `db:"kind"             json:"kind"             validate:"omitempty,oneof=track mix"`
	DurationSeconds int    `db:"duration_seconds" json:"duration_seconds" validate:"omitempty,gte=0"`
}

func (u *UpdateTrackRequest) IsEmpty() bool {
	return u.Title == "" && u.Artist == "" && u.Genre == "" && u.Kind == "" && u.DurationSeconds == 0
}

type TrackResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Artist          string `json:"artist"`
	Genre           string `json:"genre"`
	Kind            string `json:"kind"`
	DurationSeconds int    `json:"duration_seconds"`
	AudioURL        string `json:"audio_url"`
	ArtworkURL      string `json:"artwork_url"`
	Plays           int64  `json:"plays"`
	gDto.Metadata
}

func (r *TrackResponse) FromModel(model model.Track) {
	r.ID = model.ID
	r.Title = model.Title
	r.Artist = model.Artist
	r.Genre = model.Genre
	r.Kind = model.Kind
	r.DurationSeconds = model.DurationSeconds
	r.AudioURL = model.AudioURL
	r.ArtworkURL = model.ArtworkURL
	r.Plays = model.Plays
	r.Metadata.FromModel(model.Metadata)
}

type GetTracksResponse struct {
	Tracks    []TrackResponse `json:"tracks"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetTracksResponse) FromModels(models []model.Track, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tracks = make([]TrackResponse, len(models))
	for i, m := range models {
		r.Tracks[i].FromModel(m)
	}
}

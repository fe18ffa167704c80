package dto_test

import (
	"testing"

	"airwave/internal/domains/track/model"
	"airwave/internal/domains/track/model/dto"
	gModel "airwave/shared/model"
	"airwave/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateTrackRequest_ToModel(t *testing.T) {
	req := dto.CreateTrackRequest{
		Title:           "Sunrise Set",
		Artist:          "DJ Nova",
		Genre:           "trance",
		Kind:            model.KindMix,
		DurationSeconds: 3600,
	}

	track := req.ToModel("host-1", "https://cdn/track/a.mp3", "https://cdn/track/artwork/a.png")

	assert.NotEmpty(t, track.ID)
	assert.Equal(t, "Sunrise Set", track.Title)
	assert.Equal(t, model.KindMix, track.Kind)
	assert.Equal(t, 3600, track.DurationSeconds)
	assert.Equal(t, "https://cdn/track/a.mp3", track.AudioURL)
	assert.Equal(t, "https://cdn/track/artwork/a.png", track.ArtworkURL)
	assert.Zero(t, track.Plays)
	assert.Equal(t, "host-1", track.CreatedBy)
	assert.False(t, track.CreatedAt.IsZero())
}

func TestCreateTrackRequest_ToModelDefaultsKind(t *testing.T) {
	req := dto.CreateTrackRequest{Title: "Loop", Artist: "Anon"}

	assert.Equal(t, model.KindTrack, req.ToModel("u", "url", "").Kind)
}

func TestUpdateTrackRequest_IsEmpty(t *testing.T) {
	assert.True(t, (&dto.UpdateTrackRequest{}).IsEmpty())
	assert.False(t, (&dto.UpdateTrackRequest{Genre: "techno"}).IsEmpty())
	assert.False(t, (&dto.UpdateTrackRequest{DurationSeconds: 10}).IsEmpty())
}

func TestGetTracksResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	tracks := []model.Track{
		{ID: "t1", Title: "One", Plays: 4, Metadata: gModel.Metadata{CreatedAt: now, CreatedBy: "u1"}},
		{ID: "t2", Title: "Two", Metadata: gModel.Metadata{CreatedAt: now, CreatedBy: "u2"}},
	}

	var res dto.GetTracksResponse
	res.FromModels(tracks, 21, 10)

	assert.Equal(t, 21, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Len(t, res.Tracks, 2)
	assert.Equal(t, int64(4), res.Tracks[0].Plays)
	assert.Equal(t, "u2", res.Tracks[1].CreatedBy)
}

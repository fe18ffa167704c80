package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"airwave/config"
	"airwave/infras/otel/mocks"
	s3Mocks "airwave/infras/s3/mocks"
	trackMocks "airwave/internal/domains/track/mocks"
	"airwave/internal/domains/track/model"
	"airwave/internal/domains/track/model/dto"
	"airwave/internal/domains/track/service"
	cacheMocks "airwave/shared/cache/mocks"
	"airwave/shared/constant"
	gDto "airwave/shared/dto"
	"airwave/shared/failure"
	"airwave/shared/metrics"
	gModel "airwave/shared/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo    *trackMocks.MockTrack
	cache   *cacheMocks.MockRedisCache
	s3      *s3Mocks.MockS3
	metrics *metrics.Metrics
	svc     service.Track
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:    trackMocks.NewMockTrack(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
		s3:      s3Mocks.NewMockS3(ctrl),
		metrics: metrics.New("test", prometheus.NewRegistry()),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Upload.MaxAudioSizeMB = 5

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3, f.metrics)

	return f
}

func (f fixture) allowInvalidation() {
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func actorCtx(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func uploadRequest(size int64, withArtwork bool) dto.CreateTrackRequest {
	req := dto.CreateTrackRequest{
		Title:  "Warehouse 03:00",
		Artist: "DJ Nova",
		Kind:   model.KindMix,
		Audio:  &multipart.FileHeader{Filename: "set.MP3", Size: size},
	}

	if withArtwork {
		req.Artwork = &multipart.FileHeader{Filename: "cover.png", Size: 1024}
	}

	return req
}

func stored(id, owner string) model.Track {
	return model.Track{
		ID:         id,
		Title:      "Warehouse 03:00",
		AudioURL:   "https://cdn.test/track/" + id + ".mp3",
		ArtworkURL: "https://cdn.test/track/artwork/" + id + ".png",
		Metadata:   gModel.Metadata{CreatedBy: owner},
	}
}

func failureCode(err error) int {
	var f *failure.Failure
	if errors.As(err, &f) {
		return f.Code
	}

	return 0
}

func TestTrackService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateTrackRequest
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "audio and artwork uploaded",
			req:  uploadRequest(1<<20, true),
			setupMock: func(f fixture) {
				f.allowInvalidation()
				f.s3.EXPECT().
					UploadMultipart(gomock.Any(), model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, name string, _ multipart.File, _ *multipart.FileHeader) (string, error) {
						assert.Regexp(t, `\.mp3$`, name)

						return "https://cdn.test/track/" + name, nil
					})
				f.s3.EXPECT().
					UploadMultipart(gomock.Any(), model.ArtworkDirectory, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.test/track/artwork/cover.png", nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tr model.Track) error {
						assert.Equal(t, "host-1", tr.CreatedBy)
						assert.Equal(t, model.KindMix, tr.Kind)
						assert.Equal(t, "https://cdn.test/track/artwork/cover.png", tr.ArtworkURL)

						return nil
					})
			},
		},
		{
			name:      "audio too large",
			req:       uploadRequest(6<<20, false),
			setupMock: func(fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing audio",
			req:       dto.CreateTrackRequest{Title: "x", Artist: "y"},
			setupMock: func(fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "artwork upload fails removes audio",
			req:  uploadRequest(1024, true),
			setupMock: func(f fixture) {
				f.s3.EXPECT().
					UploadMultipart(gomock.Any(), model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.test/track/a.mp3", nil)
				f.s3.EXPECT().
					UploadMultipart(gomock.Any(), model.ArtworkDirectory, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("bucket gone"))
				f.s3.EXPECT().Delete(gomock.Any(), model.EntityName, gomock.Any()).Return(nil)
			},
			wantErr: true,
		},
		{
			name: "insert fails removes uploads",
			req:  uploadRequest(1024, true),
			setupMock: func(f fixture) {
				f.s3.EXPECT().UploadMultipart(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("url", nil).Times(2)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
				f.s3.EXPECT().Delete(gomock.Any(), model.EntityName, gomock.Any()).Return(nil)
				f.s3.EXPECT().Delete(gomock.Any(), model.ArtworkDirectory, gomock.Any()).Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(actorCtx("host-1", constant.RoleHost), tt.req)
			if tt.wantErr {
				require.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failureCode(err))
				}

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "Warehouse 03:00", res.Title)
		})
	}
}

func TestTrackService_Get(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), "track:get:t1", gomock.Any()).Return(nil)

		_, err := f.svc.Get(context.Background(), "t1")
		require.NoError(t, err)
	})

	t.Run("loaded from repository", func(t *testing.T) {
		f := newFixture(t)
		f.allowInvalidation()
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored("t1", "host-1"), nil)

		res, err := f.svc.Get(context.Background(), "t1")
		require.NoError(t, err)
		assert.Equal(t, "t1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Track{}, nil)

		_, err := f.svc.Get(context.Background(), "t1")
		assert.Equal(t, http.StatusNotFound, failureCode(err))
	})
}

func TestTrackService_GetAll(t *testing.T) {
	f := newFixture(t)
	f.allowInvalidation()
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Track{stored("t1", "u"), stored("t2", "u")}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Len(t, res.Tracks, 2)
	assert.Equal(t, 2, res.TotalPage)
}

func TestTrackService_Update(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.UpdateTrackRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "uploader renames",
			ctx:  actorCtx("host-1", constant.RoleHost),
			req:  dto.UpdateTrackRequest{Title: "Renamed"},
			setupMock: func(f fixture) {
				f.allowInvalidation()
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored("t1", "host-1"), nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "Renamed", fields[model.FieldTitle])
						assert.Equal(t, "host-1", fields[constant.FieldModifiedBy])

						return nil
					})
			},
		},
		{
			name: "admin edits any track",
			ctx:  actorCtx("admin-1", constant.RoleAdmin),
			req:  dto.UpdateTrackRequest{Genre: "techno"},
			setupMock: func(f fixture) {
				f.allowInvalidation()
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored("t1", "host-1"), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "someone else is forbidden",
			ctx:  actorCtx("host-2", constant.RoleHost),
			req:  dto.UpdateTrackRequest{Title: "Mine now"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored("t1", "host-1"), nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:      "empty request",
			ctx:       actorCtx("host-1", constant.RoleHost),
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "missing track",
			ctx:  actorCtx("host-1", constant.RoleHost),
			req:  dto.UpdateTrackRequest{Title: "x"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Track{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Update(tt.ctx, tt.req, "t1")
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failureCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestTrackService_Delete(t *testing.T) {
	t.Run("removes row and objects", func(t *testing.T) {
		f := newFixture(t)
		f.allowInvalidation()
		track := stored("t1", "host-1")

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(track, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.s3.EXPECT().ObjectNameFromURL(track.AudioURL).Return("t1.mp3")
		f.s3.EXPECT().ObjectNameFromURL(track.ArtworkURL).Return("t1.png")
		f.s3.EXPECT().Delete(gomock.Any(), model.EntityName, "t1.mp3").Return(nil)
		f.s3.EXPECT().Delete(gomock.Any(), model.ArtworkDirectory, "t1.png").Return(errors.New("ignored"))

		require.NoError(t, f.svc.Delete(actorCtx("host-1", constant.RoleHost), "t1"))
	})

	t.Run("forbidden for listeners", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored("t1", "host-1"), nil)

		err := f.svc.Delete(actorCtx("user-9", constant.RoleUser), "t1")
		assert.Equal(t, http.StatusForbidden, failureCode(err))
	})
}

func TestTrackService_Play(t *testing.T) {
	t.Run("counts the play", func(t *testing.T) {
		f := newFixture(t)
		f.allowInvalidation()

		track := stored("t1", "host-1")
		track.Plays = 8

		f.repo.EXPECT().IncrementPlays(gomock.Any(), "t1").Return(true, nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(track, nil)

		res, err := f.svc.Play(context.Background(), "t1")
		require.NoError(t, err)
		assert.Equal(t, int64(8), res.Plays)
		assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.TrackPlays), 0)
	})

	t.Run("unknown track", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().IncrementPlays(gomock.Any(), "t1").Return(false, nil)

		_, err := f.svc.Play(context.Background(), "t1")
		assert.Equal(t, http.StatusNotFound, failureCode(err))
		assert.Zero(t, testutil.ToFloat64(f.metrics.TrackPlays))
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().IncrementPlays(gomock.Any(), "t1").Return(false, errors.New("db down"))

		_, err := f.svc.Play(context.Background(), "t1")
		require.Error(t, err)
	})
}

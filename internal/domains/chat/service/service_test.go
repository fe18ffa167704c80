package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"airwave/config"
	"airwave/infras/otel/mocks"
	chatMocks "airwave/internal/domains/chat/mocks"
	"airwave/internal/domains/chat/model"
	"airwave/internal/domains/chat/model/dto"
	"airwave/internal/domains/chat/service"
	stationMocks "airwave/internal/domains/station/service/mocks"
	"airwave/shared/constant"
	gDto "airwave/shared/dto"
	"airwave/shared/failure"
	gModel "airwave/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo     *chatMocks.MockMessage
	stations *stationMocks.MockStation
	svc      service.Chat
}

func newFixture(t *testing.T, historyLimit int) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     chatMocks.NewMockMessage(ctrl),
		stations: stationMocks.NewMockStation(ctrl),
	}

	cfg := &config.Config{}
	cfg.Chat.HistoryLimit = historyLimit

	f.svc = service.New(f.repo, f.stations, cfg, mocks.NewOtel())

	return f
}

func listenerCtx(userID, name, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, name)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func failureCode(err error) int {
	var f *failure.Failure
	if errors.As(err, &f) {
		return f.Code
	}

	return 0
}

func TestChatService_Post(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.PostMessageRequest
		setupMock func(f fixture)
		wantName  string
		wantCode  int
		wantErr   bool
	}{
		{
			name: "posted under the display name",
			ctx:  listenerCtx("u1", "Ava", constant.RoleUser),
			req:  dto.PostMessageRequest{Body: "hello"},
			setupMock: func(f fixture) {
				f.stations.EXPECT().Exists(gomock.Any(), "st-1").Return(true, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Message) error {
						assert.Equal(t, "st-1", m.StationID)
						assert.Equal(t, "u1", m.CreatedBy)

						return nil
					})
			},
			wantName: "Ava",
		},
		{
			name: "anonymous falls back to guest",
			ctx:  context.Background(),
			req:  dto.PostMessageRequest{Body: "hi"},
			setupMock: func(f fixture) {
				f.stations.EXPECT().Exists(gomock.Any(), "st-1").Return(true, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantName: constant.ContextGuest,
		},
		{
			name: "unknown station",
			ctx:  listenerCtx("u1", "Ava", constant.RoleUser),
			req:  dto.PostMessageRequest{Body: "hello"},
			setupMock: func(f fixture) {
				f.stations.EXPECT().Exists(gomock.Any(), "st-1").Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "blank body",
			ctx:  listenerCtx("u1", "Ava", constant.RoleUser),
			req:  dto.PostMessageRequest{Body: "   "},
			setupMock: func(f fixture) {
				f.stations.EXPECT().Exists(gomock.Any(), "st-1").Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			ctx:  listenerCtx("u1", "Ava", constant.RoleUser),
			req:  dto.PostMessageRequest{Body: "hello"},
			setupMock: func(f fixture) {
				f.stations.EXPECT().Exists(gomock.Any(), "st-1").Return(true, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 50)
			tt.setupMock(f)

			res, err := f.svc.Post(tt.ctx, "st-1", tt.req)
			if tt.wantErr {
				require.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failureCode(err))
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, res.UserName)
			assert.Equal(t, tt.req.Body, res.Body)
		})
	}
}

func TestChatService_Latest(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		wantLimit int
	}{
		{name: "within bounds", requested: 5, wantLimit: 5},
		{name: "zero uses the cap", requested: 0, wantLimit: 20},
		{name: "above the cap is clamped", requested: 500, wantLimit: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 20)

			f.repo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Message, error) {
					assert.Equal(t, tt.wantLimit, params.Limit)
					assert.Equal(t, gDto.SortDirDesc, params.SortDir)
					assert.Len(t, filter.Filters, 1)

					return []model.Message{{ID: "m2"}, {ID: "m1"}}, nil
				})

			res, err := f.svc.Latest(context.Background(), "st-1", tt.requested)
			require.NoError(t, err)
			require.Len(t, res.Messages, 2)
			assert.Equal(t, "m1", res.Messages[0].ID)
		})
	}
}

func TestChatService_Delete(t *testing.T) {
	own := model.Message{ID: "m1", Metadata: gModel.Metadata{CreatedBy: "u1"}}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "author deletes",
			ctx:  listenerCtx("u1", "Ava", constant.RoleUser),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(own, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "admin moderates",
			ctx:  listenerCtx("a1", "Mod", constant.RoleAdmin),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(own, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "someone else is forbidden",
			ctx:  listenerCtx("u2", "Ben", constant.RoleHost),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(own, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "missing message",
			ctx:  listenerCtx("u1", "Ava", constant.RoleUser),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Message{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 50)
			tt.setupMock(f)

			err := f.svc.Delete(tt.ctx, "m1")
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failureCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

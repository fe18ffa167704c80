package shared_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"airwave/shared"
	"airwave/shared/cache/mocks"
	"airwave/shared/constant"
	"airwave/shared/dto"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid false string", input: "false", expected: boolPtr(false)},
		{name: "valid 1 string", input: "1", expected: boolPtr(true)},
		{name: "valid F string", input: "F", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				assert.Nil(t, result)

				return
			}

			if assert.NotNil(t, result) {
				assert.Equal(t, *tt.expected, *result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type patch struct {
		Title   string     `db:"title"`
		StartAt *time.Time `db:"start_time"`
		Skipped string     `db:"-"`
		NoTag   string
	}

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	result := shared.TransformFields(patch{
		Title:   "Night Drive",
		StartAt: &start,
		Skipped: "ignored",
		NoTag:   "ignored",
	}, "user-1")

	assert.Equal(t, "Night Drive", result["title"])
	assert.Equal(t, &start, result["start_time"])
	assert.Equal(t, "user-1", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
	assert.NotContains(t, result, "-")
	assert.Len(t, result, 4)

	empty := shared.TransformFields(patch{}, "user-2")
	assert.Len(t, empty, 2)
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("123", "id", "stations")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: "123", Operator: dto.FilterOperatorEq, Table: "stations"},
		},
	}

	assert.True(t, reflect.DeepEqual(expected, result))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:abc", shared.BuildCacheKey("booking:get", "abc"))
	assert.Equal(t, "ratelimit:1.2.3.4", shared.BuildCacheKey("ratelimit", "1.2.3.4", ""))
	assert.Equal(t, "stations", shared.BuildCacheKey("stations"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	req := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "station_id", Value: "s1", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "approved", Value: true, Operator: dto.FilterOperatorEq},
		},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", req, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", req, filter)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "booking:gets:"))

	other := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)
	assert.NotEqual(t, first, other)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "booking:gets*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "booking:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "booking:count*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "booking:count")
}

func TestSaveCacheAsyncOutlivesCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockRedisCache(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	saved := make(chan error, 1)

	mockCache.EXPECT().
		Save(gomock.Any(), "station:get:s1", "payload", 60).
		DoAndReturn(func(c context.Context, _ string, _ any, _ int) error {
			saved <- c.Err()

			return nil
		})

	shared.SaveCacheAsync(ctx, mockCache, "station:get:s1", "payload", 60)
	cancel()

	select {
	case err := <-saved:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("cache save did not run")
	}
}

func TestObjectName(t *testing.T) {
	name := shared.ObjectName("Late Night Mix.MP3")

	assert.True(t, strings.HasSuffix(name, ".mp3"))
	assert.Len(t, name, 36+len(".mp3"))
	assert.NotEqual(t, name, shared.ObjectName("Late Night Mix.MP3"))
	assert.Len(t, shared.ObjectName("cover"), 36)
}

func boolPtr(b bool) *bool {
	return &b
}

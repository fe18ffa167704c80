package validator_test

import (
	"strings"
	"testing"

	"airwave/shared/failure"
	"airwave/shared/validator"

	"github.com/stretchr/testify/assert"
)

type showRequest struct {
	Title     string `json:"title"      validate:"required,max=120"`
	StationID string `json:"station_id" validate:"required,uuid"`
	StartSlot string `json:"start_slot" validate:"required,timeslot"`
	Duration  int    `json:"duration"   validate:"gte=1,lte=4"`
	Role      string `json:"role"       validate:"omitempty,oneof=admin host user"`
}

func validShow() showRequest {
	return showRequest{
		Title:     "Sunday Selectors",
		StationID: "3f0e2a6c-6f7c-4c35-9d2e-2f1c1f1c2b11",
		StartSlot: "09:00",
		Duration:  2,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *showRequest)
		wantErr string
	}{
		{name: "valid request", mutate: func(_ *showRequest) {}},
		{name: "missing title", mutate: func(r *showRequest) { r.Title = "" }, wantErr: "title is required"},
		{name: "station is not a uuid", mutate: func(r *showRequest) { r.StationID = "s1" }, wantErr: "station_id must be a valid uuid"},
		{name: "slot with minutes", mutate: func(r *showRequest) { r.StartSlot = "09:30" }, wantErr: "start_slot must be an hourly slot"},
		{name: "slot out of range", mutate: func(r *showRequest) { r.StartSlot = "24:00" }, wantErr: "start_slot must be an hourly slot"},
		{name: "duration too long", mutate: func(r *showRequest) { r.Duration = 5 }, wantErr: "duration must be less than or equal to 4"},
		{name: "unknown role", mutate: func(r *showRequest) { r.Role = "owner" }, wantErr: "role must be one of admin host user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validShow()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("00:00", "timeslot"))
	assert.NoError(t, validator.ValidateVar("23:00", "timeslot"))
	assert.Error(t, validator.ValidateVar("7:00", "timeslot"))
	assert.NoError(t, validator.ValidateVar("dj@airwave.fm", "email"))
	assert.Error(t, validator.ValidateVar("not-an-email", "email"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid body",
			body: `{"title":"Late Shift","station_id":"3f0e2a6c-6f7c-4c35-9d2e-2f1c1f1c2b11","start_slot":"22:00","duration":1}`,
		},
		{
			name:    "malformed body",
			body:    `{"title":`,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req showRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Late Shift", req.Title)
		})
	}
}

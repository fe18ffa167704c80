package dto

import (
	"strings"

	"airwave/internal/domains/chat/model"
	gDto "airwave/shared/dto"
	gModel "airwave/shared/model"
	"airwave/shared/timezone"

	"github.com/google/uuid"
)

type PostMessageRequest struct {
	Body string `json:"body" validate:"required,max=500"`
}

func (p *PostMessageRequest) ToModel(stationID, user, userName string) model.Message {
	return model.Message{
		ID:        uuid.NewString(),
		StationID: stationID,
		UserName:  userName,
		Body:      strings.TrimSpace(p.Body),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type MessageResponse struct {
	ID        string `json:"id"`
	StationID string `json:"station_id"`
	UserName  string `json:"user_name"`
	Body      string `json:"body"`
	gDto.Metadata
}

func (r *MessageResponse) FromModel(model model.Message) {
	r.ID = model.ID
	r.StationID = model.StationID
	r.UserName = model.UserName
	r.Body = model.Body
	r.Metadata.FromModel(model.Metadata)
}

// GetMessagesResponse lists messages oldest first.
type GetMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// FromNewestFirst fills the response from rows read newest first.
func (r *GetMessagesResponse) FromNewestFirst(models []model.Message) {
	r.Messages = make([]MessageResponse, len(models))
	for i, m := range models {
		r.Messages[len(models)-1-i].FromModel(m)
	}
}

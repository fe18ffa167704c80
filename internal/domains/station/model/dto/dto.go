package dto

import (
	"mime/multipart"

	"airwave/config"
	"airwave/internal/domains/station/model"
	"airwave/shared"
	gDto "airwave/shared/dto"
	gModel "airwave/shared/model"
	"airwave/shared/timezone"

	"github.com/google/uuid"
)

type CreateStationRequest struct {
	Name        string                `json:"name"        validate:"required,max=100"`
	Genre       string                `json:"genre"       validate:"omitempty,max=50"`
	Description string                `json:"description" validate:"omitempty,max=1000"`
	StreamURL   string                `json:"stream_url"  validate:"omitempty,url,max=255"`
	Cover       *multipart.FileHeader `json:"cover"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	CoverFile   multipart.File        `json:"-"`
	Active      *bool                 `json:"active"      validate:"omitempty"`
}

func (c *CreateStationRequest) ToModel(user string, coverURL string) model.Station {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Station{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Genre:       c.Genre,
		Description: c.Description,
		StreamURL:   c.StreamURL,
		Cover:       coverURL,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStationRequest struct {
	Name        string                `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Genre       string                `db:"genre"       json:"genre"       validate:"omitempty,max=50"`
	Description string                `db:"description" json:"description" validate:"omitempty,max=1000"`
	StreamURL   string                `db:"stream_url"  json:"stream_url"  validate:"omitempty,url,max=255"`
	Cover       *multipart.FileHeader `json:"cover"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	CoverFile   multipart.File        `json:"-"`
	Active      *bool                 `db:"active"      json:"active"      validate:"omitempty"`
}

func (u *UpdateStationRequest) IsEmpty() bool {
	return u.Name == "" && u.Genre == "" && u.Description == "" && u.StreamURL == "" && u.Cover == nil && u.Active == nil
}

type StationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	StreamURL   string `json:"stream_url"`
	Cover       string `json:"cover"`
	Active      bool   `json:"active"`
	Listeners   int    `json:"listeners"`
	gDto.Metadata
}

func (r *StationResponse) FromModel(model model.Station) {
	r.ID = model.ID
	r.Name = model.Name
	r.Genre = model.Genre
	r.Description = model.Description
	r.StreamURL = model.StreamURL
	r.Cover = model.Cover
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetStationsResponse struct {
	Stations  []StationResponse `json:"stations"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetStationsResponse) FromModels(models []model.Station, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Stations = make([]StationResponse, len(models))
	for i, mod := range models {
		r.Stations[i].FromModel(mod)
	}
}

// FromSeed maps a catalog entry to a station row owned by user.
func FromSeed(seed config.StationSeed, user string) model.Station {
	now := timezone.Now()

	return model.Station{
		ID:          seed.ID,
		Name:        seed.Name,
		Genre:       seed.Genre,
		Description: seed.Description,
		StreamURL:   seed.StreamURL,
		Active:      seed.IsActive(),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

package player

import (
	"errors"
	"math"
)

type State string

const (
	StateIdle           State = "idle"
	StateLoadingStation State = "loading_station"
	StatePlayingStation State = "playing_station"
	StateLoadingTrack   State = "loading_track"
	StatePlayingTrack   State = "playing_track"
	StatePaused         State = "paused"
	StateErrored        State = "errored"
)

const DefaultVolume = 0.8

var (
	ErrInvalidTransition = errors.New("invalid player transition")
	ErrInvalidVolume     = errors.New("volume must be between 0 and 1")
	ErrEmptySource       = errors.New("source id is required")
)

// Player is the single source of playback state shared by every UI surface.
// Exactly one of StationID and TrackID is set while a source is loaded.
type Player struct {
	State           State   `json:"state"`
	StationID       string  `json:"station_id,omitempty"`
	TrackID         string  `json:"track_id,omitempty"`
	PositionSeconds float64 `json:"position_seconds"`
	Volume          float64 `json:"volume"`
	PreviousVolume  float64 `json:"previous_volume"`
	Muted           bool    `json:"muted"`
	LastError       string  `json:"last_error,omitempty"`
}

func New() Player {
	return Player{
		State:          StateIdle,
		Volume:         DefaultVolume,
		PreviousVolume: DefaultVolume,
	}
}

func (p *Player) IsPlaying() bool {
	return p.State == StatePlayingStation || p.State == StatePlayingTrack
}

// PlayStation switches to the live stream of stationID, dropping any loaded track.
func (p *Player) PlayStation(stationID string) error {
	if stationID == "" {
		return ErrEmptySource
	}

	p.StationID = stationID
	p.TrackID = ""
	p.load(StateLoadingStation)

	return nil
}

// PlayTrack switches to an on-demand track, dropping any active station.
func (p *Player) PlayTrack(trackID string) error {
	if trackID == "" {
		return ErrEmptySource
	}

	p.TrackID = trackID
	p.StationID = ""
	p.load(StateLoadingTrack)

	return nil
}

func (p *Player) load(state State) {
	p.State = state
	p.PositionSeconds = 0
	p.LastError = ""
}

// Started marks the loaded source as audible. It also resumes from Paused.
func (p *Player) Started() error {
	switch p.State {
	case StateLoadingStation:
		p.State = StatePlayingStation
	case StateLoadingTrack:
		p.State = StatePlayingTrack
	case StatePaused:
		if p.StationID != "" {
			p.State = StatePlayingStation
		} else {
			p.State = StatePlayingTrack
		}
	default:
		return ErrInvalidTransition
	}

	return nil
}

func (p *Player) Pause() error {
	if !p.IsPlaying() {
		return ErrInvalidTransition
	}

	p.State = StatePaused

	return nil
}

// Ended handles end of stream. A station goes idle; a track stays loaded,
// paused and rewound.
func (p *Player) Ended() error {
	switch p.State {
	case StatePlayingStation:
		p.StationID = ""
		p.State = StateIdle
	case StatePlayingTrack:
		p.State = StatePaused
	default:
		return ErrInvalidTransition
	}

	p.PositionSeconds = 0

	return nil
}

// Fail records a playback error. Nothing plays afterwards until a source is loaded again.
func (p *Player) Fail(reason string) error {
	if p.State == StateIdle || p.State == StateErrored {
		return ErrInvalidTransition
	}

	p.State = StateErrored
	p.LastError = reason

	return nil
}

func (p *Player) Stop() {
	p.StationID = ""
	p.TrackID = ""
	p.load(StateIdle)
}

// Seek moves the playback position of a loaded track.
func (p *Player) Seek(seconds float64) error {
	if p.TrackID == "" || p.State == StateErrored || seconds < 0 {
		return ErrInvalidTransition
	}

	p.PositionSeconds = seconds

	return nil
}

// SetVolume sets the normalized volume. Zero counts as muted and keeps the
// last audible level for Unmute.
func (p *Player) SetVolume(volume float64) error {
	if math.IsNaN(volume) || volume < 0 || volume > 1 {
		return ErrInvalidVolume
	}

	if volume == 0 {
		p.Mute()

		return nil
	}

	p.Volume = volume
	p.Muted = false

	return nil
}

func (p *Player) SetDisplayVolume(volume int) error {
	return p.SetVolume(float64(volume) / 100)
}

func (p *Player) DisplayVolume() int {
	return int(math.Round(p.Volume * 100))
}

func (p *Player) Mute() {
	if p.Muted {
		return
	}

	if p.Volume > 0 {
		p.PreviousVolume = p.Volume
	}

	p.Volume = 0
	p.Muted = true
}

func (p *Player) Unmute() {
	if !p.Muted {
		return
	}

	if p.PreviousVolume <= 0 {
		p.PreviousVolume = DefaultVolume
	}

	p.Volume = p.PreviousVolume
	p.Muted = false
}

func (p *Player) ToggleMute() {
	if p.Muted {
		p.Unmute()

		return
	}

	p.Mute()
}

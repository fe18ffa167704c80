package player

const (
	CommandPlayStation = "play_station"
	CommandPlayTrack   = "play_track"
	CommandStarted     = "started"
	CommandPause       = "pause"
	CommandEnded       = "ended"
	CommandFail        = "fail"
	CommandStop        = "stop"
	CommandSeek        = "seek"
	CommandVolume      = "volume"
	CommandMute        = "mute"
	CommandUnmute      = "unmute"
	CommandToggleMute  = "toggle_mute"
)

// CommandRequest is one player event sent by a UI surface.
type CommandRequest struct {
	Command         string  `json:"command"          validate:"required,oneof=play_station play_track started pause ended fail stop seek volume mute unmute toggle_mute"`
	StationID       string  `json:"station_id"       validate:"required_if=Command play_station"`
	TrackID         string  `json:"track_id"         validate:"required_if=Command play_track"`
	Volume          *int    `json:"volume"           validate:"required_if=Command volume,omitempty,min=0,max=100"`
	PositionSeconds float64 `json:"position_seconds" validate:"gte=0"`
	Error           string  `json:"error"            validate:"max=500"`
}

type StateResponse struct {
	Player
	Playing       bool `json:"playing"`
	DisplayVolume int  `json:"display_volume"`
}

func (r *StateResponse) FromPlayer(p Player) {
	r.Player = p
	r.Playing = p.IsPlaying()
	r.DisplayVolume = p.DisplayVolume()
}

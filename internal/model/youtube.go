package model

// Video represents YouTube video information
type Video struct {
	ID       string  `json:"id" db:"id"`
	Title    string  `json:"title" db:"title"`
	Channel  string  `json:"channel" db:"channel"`
	URL      string  `json:"url" db:"url"`
	Duration float64 `json:"duration" db:"duration"` // duration in seconds
}

// SubtitleTrack represents one subtitle track available for a video
type SubtitleTrack struct {
	Language string   `json:"language"`
	Name     string   `json:"name"`
	Formats  []string `json:"formats"`
	Auto     bool     `json:"auto"` // true for auto-generated captions
}

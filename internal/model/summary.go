package model

import "time"

// Summary represents an AI-generated summary of a video's subtitles
type Summary struct {
	ID        int       `json:"id" db:"id"`
	VideoID   string    `json:"video_id" db:"video_id"`
	Language  string    `json:"language" db:"language"`
	Backend   string    `json:"backend" db:"backend"` // completion backend ("ollama" or "gemini")
	Model     string    `json:"model" db:"model"`     // model name used by the backend
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

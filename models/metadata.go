package models

// DisplayMetadata is derived from a body on every render and never stored
type DisplayMetadata struct {
	WordCount          int `json:"wordCount"`
	ReadingTimeMinutes int `json:"readingTimeMinutes"`
}

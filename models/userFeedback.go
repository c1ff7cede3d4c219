package models

import "time"

// UserFeedback is a rating submitted against a logged query.
type UserFeedback struct {
	ID           string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LegalQueryID string `gorm:"type:uuid"`
	Rating       int
	FeedbackText string
	IsHelpful    bool
	CreatedAt    time.Time
}

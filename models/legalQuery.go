package models

import (
	"time"

	"gorm.io/datatypes"
)

// LegalQuery records an answered query for analytics and feedback.
type LegalQuery struct {
	ID              string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QueryText       string `gorm:"not null"`
	QueryCategory   string
	ResponseText    string
	ResponseSources datatypes.JSON
	ResponseTimeMs  int
	CreatedAt       time.Time
}

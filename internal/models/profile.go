package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is the one-per-user document holding career details plus the
// experience and education sub-collections.
type Profile struct {
	ID             uint                        `gorm:"primaryKey" json:"id"`
	UserID         uint                        `gorm:"uniqueIndex;not null" json:"user_id"`
	User           User                        `gorm:"foreignKey:UserID" json:"user"`
	Company        string                      `json:"company"`
	Website        string                      `json:"website"`
	Location       string                      `json:"location"`
	Bio            string                      `json:"bio"`
	Status         string                      `gorm:"not null" json:"status"`
	GithubUsername string                      `json:"github_username"`
	Skills         datatypes.JSONSlice[string] `json:"skills"`
	Social         SocialLinks                 `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experience     []Experience                `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"experience"`
	Education      []Education                 `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"education"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

// SocialLinks holds the profile's social network URLs.
type SocialLinks struct {
	Youtube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Linkedin  string `json:"linkedin"`
}

// Experience is a work history entry inside a Profile. Entries are
// individually addressable by ID and listed most-recent-first.
type Experience struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProfileID   uint      `gorm:"not null;index" json:"profile_id"`
	Title       string    `gorm:"not null" json:"title"`
	Company     string    `gorm:"not null" json:"company"`
	Location    string    `json:"location"`
	From        string    `gorm:"not null" json:"from"`
	To          string    `json:"to"`
	Current     bool      `json:"current"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Education is a schooling entry inside a Profile, with the same id and
// ordering rules as Experience.
type Education struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProfileID   uint      `gorm:"not null;index" json:"profile_id"`
	School      string    `gorm:"not null" json:"school"`
	Degree      string    `gorm:"not null" json:"degree"`
	Field       string    `gorm:"not null" json:"field"`
	From        string    `gorm:"not null" json:"from"`
	To          string    `json:"to"`
	Current     bool      `json:"current"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

package models

import "time"

type Post struct {
	ID          string    `bson:"_id" json:"id"`
	UID         string    `bson:"uid" json:"uid"`
	Description string    `bson:"description" json:"description"`
	Platform    string    `bson:"platform" json:"platform"`
	IsJobUpdate bool      `bson:"isJobUpdate" json:"isJobUpdate"`
	MediaURLs   []string  `bson:"mediaUrls" json:"mediaUrls"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

const (
	PlatformX         = "x"
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformThreads   = "threads"
	PlatformLinkedin  = "linkedin"
)

// ShortFormLimit is the hard caption cap for short-form platforms (x, threads).
const ShortFormLimit = 140

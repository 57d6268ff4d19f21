package entity

import (
	"time"

	"github.com/google/uuid"
)

// CreatorSummary is the public slice of a user attached to feature listings.
type CreatorSummary struct {
	Id   uuid.UUID
	Name string
}

// FeatureWithVotes is the read model for feature listings: the feature, its
// votes, and a summary of the creator.
type FeatureWithVotes struct {
	Feature Feature
	Votes   []Vote
	Creator CreatorSummary
}

// FeatureVoteCount is one row of the popular-features ranking.
type FeatureVoteCount struct {
	FeatureId uuid.UUID
	Title     string
	VoteCount int64
}

// StatusChangeVolume is the per-day transition count used for trend display.
type StatusChangeVolume struct {
	Date  time.Time
	Count int64
}

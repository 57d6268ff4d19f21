package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFeatureRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"required,min=1,max=500"`
}

type FeatureResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatorId   uuid.UUID `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type VoteResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CreatorResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// FeatureWithVotesResponse is the listing shape: the feature plus its votes,
// so clients can both count and check whether the caller has voted.
type FeatureWithVotesResponse struct {
	FeatureResponse
	Votes     []VoteResponse  `json:"votes"`
	VoteCount int             `json:"vote_count"`
	Creator   CreatorResponse `json:"creator"`
}

// ToggleVoteResponse reports the outcome of one vote toggle.
type ToggleVoteResponse struct {
	FeatureId uuid.UUID `json:"feature_id"`
	Voted     bool      `json:"voted"`
	VoteCount int64     `json:"vote_count"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

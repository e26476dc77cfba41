package db

import "errors"

// Domain-level database error sentinels.
var (
	// Label errors
	ErrLabelNotFound = errors.New("label not found")

	// Campaign errors
	ErrCampaignNotFound = errors.New("campaign not found")

	// Run errors
	ErrRunNotFound = errors.New("run not found")
)

package usecase

import "context"

// BaseInfoOutput carries the public platform statistics.
type BaseInfoOutput struct {
	ReviewCount          int64
	AverageRating        float64 // rounded to one decimal place
	BusinessProfileCount int64
	OfferCount           int64
}

// InfoUsecase defines the interface for the public platform statistics.
type InfoUsecase interface {
	BaseInfo(ctx context.Context) (*BaseInfoOutput, error)
}

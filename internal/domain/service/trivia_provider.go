package service

import (
	"context"

	"trivia/internal/domain/entity"
)

// TriviaProvider fetches quiz questions from an external source.
type TriviaProvider interface {
	// Fetch retrieves up to amount questions. Failures of the remote service
	// surface immediately; nothing is retried.
	Fetch(ctx context.Context, amount int) ([]*entity.Question, error)
}

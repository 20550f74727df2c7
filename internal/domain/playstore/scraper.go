package playstore

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when the store has no listing for the request.
	ErrNotFound = errors.New("App not found (404)")
	// ErrInvalidOption is returned for malformed request options.
	ErrInvalidOption = errors.New("invalid option")
	// ErrUnexpectedPayload is returned when a store page cannot be mapped.
	ErrUnexpectedPayload = errors.New("unexpected store payload")
)

// Scraper fetches records from the store. Each method maps to one route.
type Scraper interface {
	App(ctx context.Context, opts AppOptions) (*App, error)
	Search(ctx context.Context, opts SearchOptions) ([]*App, error)
	Suggest(ctx context.Context, opts SuggestOptions) ([]string, error)
	List(ctx context.Context, opts ListOptions) ([]*App, error)
	Similar(ctx context.Context, opts SimilarOptions) ([]*App, error)
	Developer(ctx context.Context, opts DeveloperOptions) ([]*App, error)
	Reviews(ctx context.Context, opts ReviewsOptions) (*ReviewPage, error)
	Permissions(ctx context.Context, opts PermissionsOptions) ([]Permission, error)
	DataSafety(ctx context.Context, opts DataSafetyOptions) (*DataSafety, error)
}

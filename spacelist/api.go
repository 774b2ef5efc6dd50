package spacelist

import (
	"context"

	"github.com/spacelist/go-spacelist/collection"
)

// API defines the operations the list client exposes. Consumers should
// depend on this interface so a test double can stand in for the real
// client.
type API interface {
	// GetStatistics retrieves the site-wide counters.
	GetStatistics(ctx context.Context) (*Statistics, error)

	// GetBots retrieves one page of the public bot listing.
	GetBots(ctx context.Context, page int) (*collection.Page[string, Bot], error)

	// GetAllBots retrieves the full bot listing across all pages.
	GetAllBots(ctx context.Context) (*collection.Ordered[string, Bot], error)

	// GetBot retrieves a single bot by ID.
	GetBot(ctx context.Context, id string) (*Bot, error)

	// GetSelfBot retrieves the configured bot's own listing.
	GetSelfBot(ctx context.Context) (*Bot, error)

	// GetUpvotes retrieves one page of the configured bot's upvotes.
	GetUpvotes(ctx context.Context, page int) (*collection.Page[string, Upvote], error)

	// GetAllUpvotes retrieves every upvote across all pages.
	GetAllUpvotes(ctx context.Context) (*collection.Ordered[string, Upvote], error)

	// HasUpvoted reports whether the given user has upvoted the bot.
	HasUpvoted(ctx context.Context, userID string) (bool, error)

	// PostServerCount reports the bot's total server count.
	PostServerCount(ctx context.Context, count int) error

	// PostShardCounts reports per-shard server counts.
	PostShardCounts(ctx context.Context, shards []int) error

	// GetUser retrieves a single user by ID.
	GetUser(ctx context.Context, id string) (*User, error)

	// GetUserBots retrieves one page of the bots owned by a user.
	GetUserBots(ctx context.Context, id string, page int) (*collection.Page[string, Bot], error)
}

var _ API = (*Client)(nil)

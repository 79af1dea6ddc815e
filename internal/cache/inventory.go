package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache TTLs. Profiles change rarely; search results are cheap to recompute
// but hot during browsing.
const (
	ProfileTTL = 5 * time.Minute
	SearchTTL  = 30 * time.Second
)

// ProfileKey is the cache key for a user's public profile view.
func ProfileKey(username string) string {
	return fmt.Sprintf("profile:%s", username)
}

// SearchKey is the cache key for a search query's result set.
func SearchKey(query string) string {
	return fmt.Sprintf("search:%s", query)
}

// InvalidateProfile drops the cached profile for a username. Called after
// any write that changes what other users see on the profile page.
func InvalidateProfile(ctx context.Context, username string) {
	_ = Delete(ctx, ProfileKey(username))
}

package catalog

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/pokedex/internal/errors"
	redisclient "github.com/KirkDiggler/pokedex/internal/redis"
)

// ScanOutput reports the cached catalogs found in Redis
type ScanOutput struct {
	Checked int
	// Corrupt holds keys whose value does not decode as a catalog
	Corrupt []string
}

// ScanCorrupt walks every catalog key and reports those that Get would fail
// to decode, such as entries written by an older layout or by hand.
func ScanCorrupt(ctx context.Context, client redisclient.Client) (*ScanOutput, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}

	output := &ScanOutput{}

	iter := client.Scan(ctx, 0, catalogKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		raw, err := client.Get(ctx, key).Result()
		if err == redisclient.Nil {
			// expired between SCAN and GET
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}
		output.Checked++

		if !validCatalog(raw) {
			output.Corrupt = append(output.Corrupt, key)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan catalog keys")
	}

	return output, nil
}

// ScopeFromKey returns the scope a catalog key was stored under
func ScopeFromKey(key string) (string, bool) {
	if !strings.HasPrefix(key, catalogKeyPrefix) {
		return "", false
	}
	return strings.TrimPrefix(key, catalogKeyPrefix), true
}

func validCatalog(raw string) bool {
	var data struct {
		Names     *[]string `json:"names"`
		FetchedAt *int64    `json:"fetched_at"`
	}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return false
	}
	return data.Names != nil && data.FetchedAt != nil
}

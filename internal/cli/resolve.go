package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/parcel/internal/service"
)

// minPrefixLen keeps short, accidental prefixes from matching.
const minPrefixLen = 4

// resolveNodeID expands a full node ID or a unique prefix of it.
func resolveNodeID(ctx context.Context, trees service.TreeService, input string) (string, error) {
	if len(input) < minPrefixLen {
		return "", fmt.Errorf("id %q is too short (use at least %d characters)", input, minPrefixLen)
	}
	return trees.Resolve(ctx, input)
}

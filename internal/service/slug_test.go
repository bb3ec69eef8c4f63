package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniqueSlugNoConflict(t *testing.T) {
	exists := func(ctx context.Context, slug string, excludeID uint) (bool, error) {
		return false, nil
	}

	slug, err := uniqueSlug(context.Background(), "leather-jacket", 0, exists)
	require.NoError(t, err)
	require.Equal(t, "leather-jacket", slug)
}

func TestUniqueSlugAppendsSuffix(t *testing.T) {
	taken := map[string]bool{
		"leather-jacket":   true,
		"leather-jacket-1": true,
	}
	exists := func(ctx context.Context, slug string, excludeID uint) (bool, error) {
		return taken[slug], nil
	}

	slug, err := uniqueSlug(context.Background(), "leather-jacket", 0, exists)
	require.NoError(t, err)
	require.Equal(t, "leather-jacket-2", slug)
}

func TestUniqueSlugPropagatesError(t *testing.T) {
	exists := func(ctx context.Context, slug string, excludeID uint) (bool, error) {
		return false, errors.New("db down")
	}

	_, err := uniqueSlug(context.Background(), "leather-jacket", 0, exists)
	require.Error(t, err)
}

// Package profile resolves user profiles, the employee directory behind
// the share picker, and profile-page usage stats.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/twcoffee/wavegram/internal/domain/post"
	"github.com/twcoffee/wavegram/internal/repository"
)

// ErrInvalidInput indicates invalid input for profile operations.
var ErrInvalidInput = errors.New("invalid profile input")

// Service handles profile lookups.
type Service struct {
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

// NewService creates a new profile service.
func NewService(profiles repository.ProfileRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{profiles: profiles, logger: logger}
}

// Get returns one profile by id.
func (s *Service) Get(ctx context.Context, id string) (*repository.Profile, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	profile, err := s.profiles.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	return profile, nil
}

// Directory returns all profiles sorted by display name, optionally
// filtered by a case-insensitive match on name or handle.
func (s *Service) Directory(ctx context.Context, query string) ([]repository.Profile, error) {
	rows, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching directory: %w", err)
	}

	if query != "" {
		q := strings.ToLower(query)
		filtered := rows[:0:0]
		for _, row := range rows {
			if strings.Contains(strings.ToLower(row.DisplayName), q) ||
				strings.Contains(strings.ToLower(row.Handle), q) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DisplayName < rows[j].DisplayName
	})
	return rows, nil
}

// ComputeStats derives a user's aggregate counts from the timeline.
func ComputeStats(posts []post.Post, userID string) Stats {
	var stats Stats
	for _, p := range posts {
		if p.AuthorID != userID {
			continue
		}
		stats.Brews++
		stats.Sips += p.Likes
		stats.Comments += len(p.Comments)
		stats.SharesReceived += p.Shares
	}
	return stats
}

// EarnedBadges evaluates a threshold table against stats, preserving
// table order.
func EarnedBadges(stats Stats, table []BadgeThreshold) []BadgeThreshold {
	earned := make([]BadgeThreshold, 0, len(table))
	for _, badge := range table {
		if badge.Earned(stats) {
			earned = append(earned, badge)
		}
	}
	return earned
}

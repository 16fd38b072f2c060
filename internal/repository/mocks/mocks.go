package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/twcoffee/wavegram/internal/repository"
)

// PostRepository is a mock for repository.PostRepository.
type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) ListByOwner(ctx context.Context, ownerID string) ([]repository.Post, error) {
	args := m.Called(ctx, ownerID)
	if list, ok := args.Get(0).([]repository.Post); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PostRepository) GetByIDs(ctx context.Context, ids []string) ([]repository.Post, error) {
	args := m.Called(ctx, ids)
	if list, ok := args.Get(0).([]repository.Post); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PostRepository) ListTimeline(ctx context.Context) ([]repository.TimelinePost, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]repository.TimelinePost); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PostRepository) Create(ctx context.Context, post *repository.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *PostRepository) Update(ctx context.Context, id, content, imageURL string) error {
	args := m.Called(ctx, id, content, imageURL)
	return args.Error(0)
}

func (m *PostRepository) Delete(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

// LikeRepository is a mock for repository.LikeRepository.
type LikeRepository struct {
	mock.Mock
}

func (m *LikeRepository) ListByPosts(ctx context.Context, postIDs []string) ([]repository.Like, error) {
	args := m.Called(ctx, postIDs)
	if list, ok := args.Get(0).([]repository.Like); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *LikeRepository) Create(ctx context.Context, like *repository.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *LikeRepository) Delete(ctx context.Context, postID, actorID string) error {
	args := m.Called(ctx, postID, actorID)
	return args.Error(0)
}

func (m *LikeRepository) DeleteByPost(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *LikeRepository) IncrementCount(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *LikeRepository) DecrementCount(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

// CommentRepository is a mock for repository.CommentRepository.
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) ListByPosts(ctx context.Context, postIDs []string) ([]repository.Comment, error) {
	args := m.Called(ctx, postIDs)
	if list, ok := args.Get(0).([]repository.Comment); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentRepository) Create(ctx context.Context, comment *repository.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) DeleteByPost(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

// ShareRepository is a mock for repository.ShareRepository.
type ShareRepository struct {
	mock.Mock
}

func (m *ShareRepository) ListByReceiver(ctx context.Context, receiverID string) ([]repository.Share, error) {
	args := m.Called(ctx, receiverID)
	if list, ok := args.Get(0).([]repository.Share); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ShareRepository) Create(ctx context.Context, share *repository.Share) error {
	args := m.Called(ctx, share)
	return args.Error(0)
}

func (m *ShareRepository) DeleteByPost(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

// ProfileRepository is a mock for repository.ProfileRepository.
type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) Get(ctx context.Context, id string) (*repository.Profile, error) {
	args := m.Called(ctx, id)
	if profile, ok := args.Get(0).(*repository.Profile); ok {
		return profile, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProfileRepository) GetByIDs(ctx context.Context, ids []string) ([]repository.Profile, error) {
	args := m.Called(ctx, ids)
	if list, ok := args.Get(0).([]repository.Profile); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProfileRepository) List(ctx context.Context) ([]repository.Profile, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]repository.Profile); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

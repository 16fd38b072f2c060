package post_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/twcoffee/wavegram/internal/domain/activity"
	"github.com/twcoffee/wavegram/internal/domain/post"
	"github.com/twcoffee/wavegram/internal/repository"
	"github.com/twcoffee/wavegram/internal/repository/mocks"
)

type repoSet struct {
	posts    *mocks.PostRepository
	likes    *mocks.LikeRepository
	comments *mocks.CommentRepository
	shares   *mocks.ShareRepository
}

func newService(t *testing.T) (*post.Service, repoSet) {
	t.Helper()
	repos := repoSet{
		posts:    &mocks.PostRepository{},
		likes:    &mocks.LikeRepository{},
		comments: &mocks.CommentRepository{},
		shares:   &mocks.ShareRepository{},
	}
	return post.NewService(repos.posts, repos.likes, repos.comments, repos.shares, nil), repos
}

func TestTimeline_BuildsDisplayPosts(t *testing.T) {
	svc, repos := newService(t)
	ctx := context.Background()
	created := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	repos.posts.On("ListTimeline", ctx).Return([]repository.TimelinePost{
		{
			Post: repository.Post{ID: "p1", OwnerID: "u1", Content: "fresh pour", LikesCount: 3, CreatedAt: created},
			Author: &repository.Profile{
				ID: "u1", DisplayName: "Maya", Handle: "maya", AvatarURL: "https://img/u1",
			},
			Comments: []repository.Comment{
				{ID: "c1", PostID: "p1", ActorID: "u2", Body: "recipe?", CreatedAt: created},
			},
			LikeUserIDs: []string{"u2", "viewer"},
			ShareCount:  2,
		},
		{
			Post: repository.Post{ID: "p2", OwnerID: "ghost", Content: "cold brew", CreatedAt: created},
		},
	}, nil)

	posts, err := svc.Timeline(ctx, "viewer")
	require.NoError(t, err)
	require.Len(t, posts, 2)

	require.Equal(t, "Maya", posts[0].Author)
	require.True(t, posts[0].Liked)
	require.Equal(t, 2, posts[0].Shares)
	require.Len(t, posts[0].Comments, 1)

	// No profile row: generic author fallbacks.
	require.Equal(t, activity.FallbackActorName, posts[1].Author)
	require.Equal(t, activity.FallbackAvatarURL("ghost"), posts[1].AvatarURL)
	require.False(t, posts[1].Liked)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "content", "")
	require.ErrorIs(t, err, post.ErrInvalidInput)

	_, err = svc.Create(ctx, "u1", "   ", "")
	require.ErrorIs(t, err, post.ErrEmptyContent)
}

func TestCreate_GeneratesID(t *testing.T) {
	svc, repos := newService(t)
	ctx := context.Background()

	repos.posts.On("Create", ctx, mock.AnythingOfType("*repository.Post")).Return(nil)

	created, err := svc.Create(ctx, "u1", "first crack", "")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "u1", created.OwnerID)
}

func TestDelete_CascadesDependentsFirst(t *testing.T) {
	svc, repos := newService(t)
	ctx := context.Background()

	repos.shares.On("DeleteByPost", ctx, "p1").Return(nil)
	repos.likes.On("DeleteByPost", ctx, "p1").Return(nil)
	repos.comments.On("DeleteByPost", ctx, "p1").Return(nil)
	repos.posts.On("Delete", ctx, "p1", "u1").Return(nil)

	require.NoError(t, svc.Delete(ctx, "p1", "u1"))
	repos.posts.AssertExpectations(t)
}

func TestDelete_StopsWhenDependentDeleteFails(t *testing.T) {
	svc, repos := newService(t)
	ctx := context.Background()

	repos.shares.On("DeleteByPost", ctx, "p1").Return(nil)
	repos.likes.On("DeleteByPost", ctx, "p1").Return(errors.New("backend down"))

	require.Error(t, svc.Delete(ctx, "p1", "u1"))
	repos.posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestLike_CounterFailureIsNotFatal(t *testing.T) {
	svc, repos := newService(t)
	ctx := context.Background()

	repos.likes.On("Create", ctx, mock.AnythingOfType("*repository.Like")).Return(nil)
	repos.likes.On("IncrementCount", ctx, "p1").Return(errors.New("rpc missing"))

	require.NoError(t, svc.Like(ctx, "p1", "u1"))
}

func TestAddComment_Validation(t *testing.T) {
	svc, repos := newService(t)
	ctx := context.Background()

	_, err := svc.AddComment(ctx, "p1", "u1", "  ")
	require.ErrorIs(t, err, post.ErrEmptyContent)

	repos.comments.On("Create", ctx, mock.AnythingOfType("*repository.Comment")).Return(nil)
	comment, err := svc.AddComment(ctx, "p1", "u1", "great crema")
	require.NoError(t, err)
	require.Equal(t, "great crema", comment.Body)
	require.NotEmpty(t, comment.ID)
}

func TestShare_Validation(t *testing.T) {
	svc, repos := newService(t)
	ctx := context.Background()

	require.ErrorIs(t, svc.Share(ctx, "p1", "u1", ""), post.ErrInvalidInput)

	repos.shares.On("Create", ctx, mock.AnythingOfType("*repository.Share")).Return(nil)
	require.NoError(t, svc.Share(ctx, "p1", "u1", "u2"))
}

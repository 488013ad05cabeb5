package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedUC(e *testEnv) FeedUseCase {
	return NewFeedUseCase(e.follows, e.posts, e.likes, e.users, e.redis, e.log, 10*time.Minute)
}

func TestGetFeed_OnlyFolloweePosts(t *testing.T) {
	e := newTestEnv(t)
	feed := newFeedUC(e)
	rel := newRelationshipUC(e)

	alice := e.createUser(t, "alice")
	bob := e.createUser(t, "bob")
	carol := e.createUser(t, "carol")

	bobPost := e.createPost(t, bob, "from bob")
	e.createPost(t, carol, "from carol")
	e.createPost(t, alice, "own post")

	require.NoError(t, rel.Follow(alice, bob))

	items, err := feed.GetFeed(alice, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, bobPost, items[0].ID)
	assert.Equal(t, bob, items[0].AuthorID)
	assert.Equal(t, "bob", items[0].AuthorUsername)
}

func TestGetFeed_EmptyWithoutFollows(t *testing.T) {
	e := newTestEnv(t)
	feed := newFeedUC(e)

	alice := e.createUser(t, "alice")
	bob := e.createUser(t, "bob")
	e.createPost(t, bob, "from bob")

	items, err := feed.GetFeed(alice, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetFeed_Ordering(t *testing.T) {
	e := newTestEnv(t)
	feed := newFeedUC(e)
	rel := newRelationshipUC(e)

	alice := e.createUser(t, "alice")
	bob := e.createUser(t, "bob")
	require.NoError(t, rel.Follow(alice, bob))

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	t1 := base.Add(1 * time.Hour)
	t2 := base.Add(2 * time.Hour)
	t3 := base.Add(3 * time.Hour)

	// Inserted out of order on purpose
	p3 := e.createPostAt(t, "cccccccc-0000-0000-0000-000000000003", bob, "third", t3)
	p1 := e.createPostAt(t, "aaaaaaaa-0000-0000-0000-000000000001", bob, "first", t1)
	p2 := e.createPostAt(t, "bbbbbbbb-0000-0000-0000-000000000002", bob, "second", t2)

	items, err := feed.GetFeed(alice, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, p3, items[0].ID)
	assert.Equal(t, p2, items[1].ID)
	assert.Equal(t, p1, items[2].ID)
}

func TestGetFeed_OrderingTieBreak(t *testing.T) {
	e := newTestEnv(t)
	feed := newFeedUC(e)
	rel := newRelationshipUC(e)

	alice := e.createUser(t, "alice")
	bob := e.createUser(t, "bob")
	require.NoError(t, rel.Follow(alice, bob))

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	low := e.createPostAt(t, "00000000-0000-0000-0000-000000000001", bob, "low id", at)
	high := e.createPostAt(t, "ffffffff-0000-0000-0000-000000000002", bob, "high id", at)

	items, err := feed.GetFeed(alice, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Equal timestamps: descending id keeps the order deterministic
	assert.Equal(t, high, items[0].ID)
	assert.Equal(t, low, items[1].ID)
}

func TestGetFeed_LikeState(t *testing.T) {
	e := newTestEnv(t)
	feed := newFeedUC(e)
	rel := newRelationshipUC(e)
	interactions := newInteractionUC(e)

	alice := e.createUser(t, "alice")
	bob := e.createUser(t, "bob")
	carol := e.createUser(t, "carol")
	require.NoError(t, rel.Follow(alice, bob))

	postID := e.createPost(t, bob, "from bob")
	require.NoError(t, interactions.LikePost(alice, postID))
	require.NoError(t, interactions.LikePost(carol, postID))

	items, err := feed.GetFeed(alice, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].LikesCount)
	assert.True(t, items[0].IsLiked)
}

func TestGetFeed_UnlikeReflectedAfterCachedRead(t *testing.T) {
	e := newTestEnv(t)
	feed := newFeedUC(e)
	rel := newRelationshipUC(e)
	interactions := newInteractionUC(e)

	alice := e.createUser(t, "alice")
	bob := e.createUser(t, "bob")
	require.NoError(t, rel.Follow(alice, bob))
	postID := e.createPost(t, bob, "from bob")

	require.NoError(t, interactions.LikePost(alice, postID))

	// This read primes alice's feed cache with the liked state
	items, err := feed.GetFeed(alice, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.True(t, items[0].IsLiked)
	require.Equal(t, int64(1), items[0].LikesCount)

	// Unliking drops the cached feed, so the next read is fresh
	require.NoError(t, interactions.UnlikePost(alice, postID))

	items, err = feed.GetFeed(alice, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].IsLiked)
	assert.Equal(t, int64(0), items[0].LikesCount)
}

func TestGetFeed_LikeReflectedAfterCachedRead(t *testing.T) {
	e := newTestEnv(t)
	feed := newFeedUC(e)
	rel := newRelationshipUC(e)
	interactions := newInteractionUC(e)

	alice := e.createUser(t, "alice")
	bob := e.createUser(t, "bob")
	require.NoError(t, rel.Follow(alice, bob))
	postID := e.createPost(t, bob, "from bob")

	items, err := feed.GetFeed(alice, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.False(t, items[0].IsLiked)

	require.NoError(t, interactions.LikePost(alice, postID))

	items, err = feed.GetFeed(alice, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsLiked)
	assert.Equal(t, int64(1), items[0].LikesCount)
}

func TestGetFeed_UnfollowRemovesPosts(t *testing.T) {
	e := newTestEnv(t)
	feed := newFeedUC(e)
	rel := newRelationshipUC(e)

	alice := e.createUser(t, "alice")
	bob := e.createUser(t, "bob")
	require.NoError(t, rel.Follow(alice, bob))
	e.createPost(t, bob, "from bob")

	items, err := feed.GetFeed(alice, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Unfollow invalidates the cached feed, so the next read is fresh
	require.NoError(t, rel.Unfollow(alice, bob))

	items, err = feed.GetFeed(alice, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetFeed_Pagination(t *testing.T) {
	e := newTestEnv(t)
	feed := newFeedUC(e)
	rel := newRelationshipUC(e)

	alice := e.createUser(t, "alice")
	bob := e.createUser(t, "bob")
	require.NoError(t, rel.Follow(alice, bob))

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		e.createPostAt(t,
			fmt.Sprintf("00000000-0000-0000-0000-%012d", i+1),
			bob, "post", base.Add(time.Duration(i)*time.Minute))
	}

	page1, err := feed.GetFeed(alice, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page1, 2)

	page3, err := feed.GetFeed(alice, 2, 4)
	require.NoError(t, err)
	assert.Len(t, page3, 1)

	beyond, err := feed.GetFeed(alice, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

package memory

import (
	"testing"

	"github.com/sergey-xx/Blogicum/internal/models"
	"github.com/sergey-xx/Blogicum/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, s *Store, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, s.Users().Create(user))
	return user
}

func newPost(t *testing.T, s *Store, author *models.User, text string) *models.Post {
	t.Helper()
	post := &models.Post{Text: text, AuthorID: author.ID}
	require.NoError(t, s.Posts().Create(post))
	return post
}

func TestPostOrderingNewestFirst(t *testing.T) {
	store := NewStore()
	author := newUser(t, store, "author")

	first := newPost(t, store, author, "first")
	second := newPost(t, store, author, "second")
	third := newPost(t, store, author, "third")

	posts, err := store.Posts().ListAll()
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, third.ID, posts[0].ID)
	assert.Equal(t, second.ID, posts[1].ID)
	assert.Equal(t, first.ID, posts[2].ID)
	assert.Equal(t, "author", posts[0].Author.Username, "author must be hydrated")
}

func TestFollowUniqueness(t *testing.T) {
	store := NewStore()
	user := newUser(t, store, "reader")
	author := newUser(t, store, "writer")

	require.NoError(t, store.Follows().GetOrCreate(user.ID, author.ID))
	require.NoError(t, store.Follows().GetOrCreate(user.ID, author.ID))

	ids, err := store.Follows().AuthorIDs(user.ID)
	require.NoError(t, err)
	assert.Len(t, ids, 1, "repeated follow must not duplicate the row")

	following, err := store.Follows().IsFollowing(user.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestUnfollowMissingIsNotFound(t *testing.T) {
	store := NewStore()
	user := newUser(t, store, "reader")
	author := newUser(t, store, "writer")

	err := store.Follows().Delete(user.ID, author.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	store := NewStore()
	author := newUser(t, store, "writer")
	reader := newUser(t, store, "reader")

	post := newPost(t, store, author, "doomed")
	require.NoError(t, store.Comments().Create(&models.Comment{
		PostID: post.ID, AuthorID: reader.ID, Text: "nice",
	}))
	require.NoError(t, store.Follows().GetOrCreate(reader.ID, author.ID))
	require.NoError(t, store.Likes().GetOrCreate(reader.ID, post.ID))

	require.NoError(t, store.Users().Delete(author.ID))

	posts, err := store.Posts().ListAll()
	require.NoError(t, err)
	assert.Empty(t, posts, "author's posts must go with the author")

	comments, err := store.Comments().ListByPost(post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments, "comments on the deleted post must go too")

	ids, err := store.Follows().AuthorIDs(reader.ID)
	require.NoError(t, err)
	assert.Empty(t, ids, "follow rows pointing at the author must go too")

	count, err := store.Likes().CountByPost(post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteGroupKeepsPosts(t *testing.T) {
	store := NewStore()
	author := newUser(t, store, "writer")

	group := &models.Group{Title: "Test group", Slug: "test-slug"}
	require.NoError(t, store.Groups().Create(group))

	post := &models.Post{Text: "grouped", AuthorID: author.ID, GroupID: &group.ID}
	require.NoError(t, store.Posts().Create(post))

	require.NoError(t, store.Groups().Delete(group.ID))

	got, err := store.Posts().GetByID(post.ID)
	require.NoError(t, err, "the post must survive its group")
	assert.Nil(t, got.GroupID, "the group reference must be cleared")
}

func TestGroupSlugUniqueness(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Groups().Create(&models.Group{Title: "One", Slug: "dup"}))
	err := store.Groups().Create(&models.Group{Title: "Two", Slug: "dup"})
	assert.Error(t, err)
}

func TestLikeToggle(t *testing.T) {
	store := NewStore()
	user := newUser(t, store, "reader")
	author := newUser(t, store, "writer")
	post := newPost(t, store, author, "likable")

	require.NoError(t, store.Likes().GetOrCreate(user.ID, post.ID))
	require.NoError(t, store.Likes().GetOrCreate(user.ID, post.ID))

	count, err := store.Likes().CountByPost(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "repeated like must not duplicate the row")

	require.NoError(t, store.Likes().Delete(user.ID, post.ID))
	require.NoError(t, store.Likes().Delete(user.ID, post.ID), "unliking twice is a no-op")

	count, err = store.Likes().CountByPost(post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

package posts

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestResolver returns a resolver with deterministic time and ids:
// every now() call advances by one second, ids are id-1, id-2, ...
func newTestResolver(store Store) *Resolver {
	r := NewResolver(store)
	current := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}
	idCounter := 0
	r.newID = func() string {
		idCounter++
		return fmt.Sprintf("id-%d", idCounter)
	}
	return r
}

func TestResolver_CreatePost(t *testing.T) {
	store := NewTestStore()
	r := newTestResolver(store)
	ctx := context.Background()

	created, err := r.CreatePost(ctx, CreatePostInput{
		Title:   "  Hello  ",
		Content: "This is my first post",
		Author:  " Alice ",
		Tags:    []string{"go", "blog"},
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "id-1", created.Id)
	assert.Equal(t, "Hello", created.Title)
	assert.Equal(t, "This is my first post", created.Content)
	assert.Equal(t, Author{Name: "Alice", Avatar: ""}, created.Author)
	assert.Equal(t, []string{"go", "blog"}, created.Tags)
	assert.Equal(t, "2025-04-01T10:00:01.000Z", created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	require.Equal(t, 1, store.PostsCount())
	stored, err := store.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, *created, *stored)
}

func TestResolver_CreatePost_NoTags(t *testing.T) {
	store := NewTestStore()
	r := newTestResolver(store)

	created, err := r.CreatePost(context.Background(), CreatePostInput{
		Title:   "No tags here",
		Content: "Content long enough",
		Author:  "Bob",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Tags)
	assert.Empty(t, created.Tags)
}

func TestResolver_CreatePost_InvalidInput(t *testing.T) {
	store := NewTestStore()
	r := newTestResolver(store)

	created, err := r.CreatePost(context.Background(), CreatePostInput{
		Title:   "Hello",
		Content: "too short",
		Author:  "Alice",
	})
	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Nil(t, created)

	// nothing gets persisted on invalid input
	assert.Equal(t, 0, store.PostsCount())
}

func TestResolver_CreatePost_StorageFault(t *testing.T) {
	store := NewTestStore()
	store.UpsertErr = &StorageError{Op: "write posts file", Err: errors.New("disk full")}
	r := newTestResolver(store)

	created, err := r.CreatePost(context.Background(), CreatePostInput{
		Title:   "Hello",
		Content: "This is my first post",
		Author:  "Alice",
	})
	require.Error(t, err)
	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Nil(t, created)
}

func TestResolver_ListPosts_NormalizesLegacyRecords(t *testing.T) {
	store := NewTestStore()
	store.Posts = []BlogPost{
		{
			Id:        "legacy-1",
			Title:     "Written before authors existed",
			CreatedAt: "2020-01-01T00:00:00.000Z",
			UpdatedAt: "2020-01-01T00:00:00.000Z",
		},
	}
	r := newTestResolver(store)

	all, err := r.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)

	assert.Equal(t, Author{Name: UnknownAuthorName, Avatar: ""}, all[0].Author)
	require.NotNil(t, all[0].Tags)
	assert.Empty(t, all[0].Tags)
	assert.Empty(t, all[0].Content)
}

func TestResolver_GetPost(t *testing.T) {
	store := NewTestStore()
	store.Posts = []BlogPost{{Id: "p1", Title: "First"}}
	r := newTestResolver(store)
	ctx := context.Background()

	found, err := r.GetPost(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "First", found.Title)

	absent, err := r.GetPost(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestResolver_UpdatePost_PartialMerge(t *testing.T) {
	store := NewTestStore()
	r := newTestResolver(store)
	ctx := context.Background()

	created, err := r.CreatePost(ctx, CreatePostInput{
		Title:   "Original title",
		Content: "Original content here",
		Author:  "Alice",
		Tags:    []string{"one", "two"},
	})
	require.NoError(t, err)

	newTitle := "Updated title"
	updated, err := r.UpdatePost(ctx, created.Id, UpdatePostInput{Title: &newTitle})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, "Updated title", updated.Title)
	assert.Equal(t, "Original content here", updated.Content)
	assert.Equal(t, Author{Name: "Alice", Avatar: ""}, updated.Author)
	assert.Equal(t, []string{"one", "two"}, updated.Tags)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Greater(t, updated.UpdatedAt, created.UpdatedAt)
}

func TestResolver_UpdatePost_ClearsTags(t *testing.T) {
	store := NewTestStore()
	r := newTestResolver(store)
	ctx := context.Background()

	created, err := r.CreatePost(ctx, CreatePostInput{
		Title:   "Tagged post",
		Content: "Some content here",
		Author:  "Alice",
		Tags:    []string{"one", "two"},
	})
	require.NoError(t, err)

	emptyTags := []string{}
	updated, err := r.UpdatePost(ctx, created.Id, UpdatePostInput{Tags: &emptyTags})
	require.NoError(t, err)
	require.NotNil(t, updated.Tags)
	assert.Empty(t, updated.Tags)
}

func TestResolver_UpdatePost_NotFound(t *testing.T) {
	store := NewTestStore()
	r := newTestResolver(store)

	newTitle := "whatever"
	updated, err := r.UpdatePost(context.Background(), "missing-1", UpdatePostInput{Title: &newTitle})
	require.Error(t, err)
	assert.Nil(t, updated)

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Contains(t, err.Error(), "missing-1")
}

func TestResolver_UpdatePost_InvalidInput(t *testing.T) {
	store := NewTestStore()
	r := newTestResolver(store)
	ctx := context.Background()

	created, err := r.CreatePost(ctx, CreatePostInput{
		Title:   "Original title",
		Content: "Original content here",
		Author:  "Alice",
	})
	require.NoError(t, err)

	badTitle := "   "
	updated, err := r.UpdatePost(ctx, created.Id, UpdatePostInput{Title: &badTitle})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Nil(t, updated)

	// stored post is untouched
	stored, err := store.GetByID(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Original title", stored.Title)
	assert.Equal(t, created.UpdatedAt, stored.UpdatedAt)
}

func TestResolver_DeletePost(t *testing.T) {
	store := NewTestStore()
	r := newTestResolver(store)
	ctx := context.Background()

	created, err := r.CreatePost(ctx, CreatePostInput{
		Title:   "To be deleted",
		Content: "Some content here",
		Author:  "Alice",
	})
	require.NoError(t, err)

	deleted, err := r.DeletePost(ctx, created.Id)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 0, store.PostsCount())

	// second delete of the same id
	deleted, err = r.DeletePost(ctx, created.Id)
	require.Error(t, err)
	assert.False(t, deleted)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, created.Id, notFoundErr.Id)
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID()
		_, ok := seen[id]
		require.False(t, ok, "duplicate id: %s", id)
		seen[id] = struct{}{}
	}
}

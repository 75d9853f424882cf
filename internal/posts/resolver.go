package posts

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	log "github.com/sirupsen/logrus"
)

// NewID returns a ULID based on the current time: unique, time-sortable
// and safe against the collisions a raw timestamp id would risk under
// rapid successive creates
func NewID() string {
	return ulid.Make().String()
}

// Resolver implements the blog post operations exposed through the
// GraphQL schema, composing input validation with the store
type Resolver struct {
	store Store
	now   func() time.Time
	newID func() string
}

func NewResolver(store Store) *Resolver {
	return &Resolver{
		store: store,
		now:   time.Now,
		newID: NewID,
	}
}

func (r *Resolver) ListPosts(ctx context.Context) ([]BlogPost, error) {
	all, err := r.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	normalized := make([]BlogPost, 0, len(all))
	for _, post := range all {
		normalized = append(normalized, post.Normalized())
	}
	return normalized, nil
}

// GetPost returns (nil, nil) when no post matches the given id
func (r *Resolver) GetPost(ctx context.Context, id string) (*BlogPost, error) {
	post, err := r.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	normalized := post.Normalized()
	return &normalized, nil
}

func (r *Resolver) CreatePost(ctx context.Context, input CreatePostInput) (*BlogPost, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := r.now().UTC().Format(timestampFormat)
	post := BlogPost{
		Id:      r.newID(),
		Title:   strings.TrimSpace(input.Title),
		Content: strings.TrimSpace(input.Content),
		Author: Author{
			Name:   strings.TrimSpace(input.Author),
			Avatar: "",
		},
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.store.Upsert(ctx, post); err != nil {
		return nil, err
	}

	log.Tracef("new post %s: [%s] created", post.Id, post.Title)

	return &post, nil
}

// UpdatePost merges the given input into the stored post: absent fields
// keep their previous values, tags fully replace the previous tags when
// present (an explicit empty list clears them), id and createdAt never change
func (r *Resolver) UpdatePost(ctx context.Context, id string, input UpdatePostInput) (*BlogPost, error) {
	existing, err := r.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{Id: id}
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated := existing.Normalized()
	if input.Title != nil {
		updated.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		updated.Content = strings.TrimSpace(*input.Content)
	}
	if input.Tags != nil {
		updated.Tags = *input.Tags
		if updated.Tags == nil {
			updated.Tags = []string{}
		}
	}
	updated.UpdatedAt = r.now().UTC().Format(timestampFormat)

	if err := r.store.Upsert(ctx, updated); err != nil {
		return nil, err
	}

	log.Tracef("post %s: [%s] updated", updated.Id, updated.Title)

	return &updated, nil
}

func (r *Resolver) DeletePost(ctx context.Context, id string) (bool, error) {
	existing, err := r.store.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, &NotFoundError{Id: id}
	}

	if err := r.store.Remove(ctx, id); err != nil {
		return false, err
	}

	log.Tracef("post %s deleted", id)

	return true, nil
}

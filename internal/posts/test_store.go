package posts

import (
	"context"
	"sync"
)

// TestStore is an in-memory Store used in tests, keeping posts in
// insertion order like the file-backed store does. Error fields, when
// set, are returned by the corresponding operation to simulate storage
// faults.
type TestStore struct {
	mutex sync.Mutex
	Posts []BlogPost

	ListErr   error
	GetErr    error
	UpsertErr error
	RemoveErr error
}

func NewTestStore() *TestStore {
	return &TestStore{}
}

func (ts *TestStore) ListAll(_ context.Context) ([]BlogPost, error) {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()
	if ts.ListErr != nil {
		return nil, ts.ListErr
	}
	all := make([]BlogPost, len(ts.Posts))
	copy(all, ts.Posts)
	return all, nil
}

func (ts *TestStore) GetByID(_ context.Context, id string) (*BlogPost, error) {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()
	if ts.GetErr != nil {
		return nil, ts.GetErr
	}
	for i := range ts.Posts {
		if ts.Posts[i].Id == id {
			post := ts.Posts[i]
			return &post, nil
		}
	}
	return nil, nil
}

func (ts *TestStore) Upsert(_ context.Context, post BlogPost) error {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()
	if ts.UpsertErr != nil {
		return ts.UpsertErr
	}
	for i := range ts.Posts {
		if ts.Posts[i].Id == post.Id {
			ts.Posts[i] = post
			return nil
		}
	}
	ts.Posts = append(ts.Posts, post)
	return nil
}

func (ts *TestStore) Remove(_ context.Context, id string) error {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()
	if ts.RemoveErr != nil {
		return ts.RemoveErr
	}
	remaining := ts.Posts[:0]
	for i := range ts.Posts {
		if ts.Posts[i].Id != id {
			remaining = append(remaining, ts.Posts[i])
		}
	}
	ts.Posts = remaining
	return nil
}

func (ts *TestStore) PostsCount() int {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()
	return len(ts.Posts)
}

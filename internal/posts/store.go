package posts

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path"
	"sync"

	"github.com/instansys/postserver/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// json file name for the marshaled post collection,
// saved within the data dir
const postsJsonFileName = "blog-posts.json"

type Store interface {
	ListAll(ctx context.Context) ([]BlogPost, error)
	// GetByID returns (nil, nil) when no post matches - absent is not an error
	GetByID(ctx context.Context, id string) (*BlogPost, error)
	Upsert(ctx context.Context, post BlogPost) error
	Remove(ctx context.Context, id string) error
}

// FileStore keeps the whole post collection in a single JSON document.
// Every operation reads or rewrites the full collection; fine for a
// single-user dashboard, would need an indexed store beyond that.
// The mutex serializes writers within this process only - concurrent
// writers from another process can still clobber each other.
type FileStore struct {
	dataDirPath string
	mutex       sync.RWMutex
}

func NewFileStore(dataDirPath string) (*FileStore, error) {
	if dataDirPath == "" {
		return nil, errors.New("data dir path cannot be empty")
	}
	return &FileStore{
		dataDirPath: dataDirPath,
	}, nil
}

func (fs *FileStore) ListAll(ctx context.Context) (_ []BlogPost, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "fileStore.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	return fs.readAll()
}

func (fs *FileStore) GetByID(ctx context.Context, id string) (_ *BlogPost, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "fileStore.getByID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	all, err := fs.readAll()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Id == id {
			post := all[i]
			return &post, nil
		}
	}
	return nil, nil
}

func (fs *FileStore) Upsert(ctx context.Context, post BlogPost) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "fileStore.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	all, err := fs.readAll()
	if err != nil {
		return err
	}

	replaced := false
	for i := range all {
		if all[i].Id == post.Id {
			all[i] = post
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, post)
	}

	return fs.writeAll(all)
}

func (fs *FileStore) Remove(ctx context.Context, id string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "fileStore.remove")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	all, err := fs.readAll()
	if err != nil {
		return err
	}

	remaining := make([]BlogPost, 0, len(all))
	for i := range all {
		if all[i].Id != id {
			remaining = append(remaining, all[i])
		}
	}
	if len(remaining) == len(all) {
		// nothing matched, which is fine
		return nil
	}

	return fs.writeAll(remaining)
}

func (fs *FileStore) postsFilePath() string {
	return path.Join(fs.dataDirPath, postsJsonFileName)
}

// readAll assumes the caller holds the lock.
// A missing file means an empty collection, never an error;
// the data dir is lazily created on first access.
func (fs *FileStore) readAll() ([]BlogPost, error) {
	if err := os.MkdirAll(fs.dataDirPath, 0755); err != nil {
		return nil, &StorageError{Op: "create data dir", Err: err}
	}

	raw, err := os.ReadFile(fs.postsFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("posts file [%s] does not exist yet, returning empty collection", fs.postsFilePath())
			return []BlogPost{}, nil
		}
		return nil, &StorageError{Op: "read posts file", Err: err}
	}

	var all []BlogPost
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, &StorageError{Op: "unmarshal posts", Err: err}
	}
	return all, nil
}

// writeAll assumes the caller holds the lock
func (fs *FileStore) writeAll(all []BlogPost) error {
	if err := os.MkdirAll(fs.dataDirPath, 0755); err != nil {
		return &StorageError{Op: "create data dir", Err: err}
	}

	// indented output, so the file stays easy to inspect by hand
	raw, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return &StorageError{Op: "marshal posts", Err: err}
	}

	if err := os.WriteFile(fs.postsFilePath(), raw, 0644); err != nil {
		return &StorageError{Op: "write posts file", Err: err}
	}

	log.Debugf("posts file saved, %d posts", len(all))

	return nil
}

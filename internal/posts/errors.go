package posts

import "fmt"

// ValidationError - client input violated a field rule; nothing was persisted
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Extensions is picked up by the GraphQL error formatter, so that clients
// can tell bad input apart from other failures
func (e *ValidationError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "VALIDATION_ERROR"}
}

// NotFoundError - the referenced post id does not exist
type NotFoundError struct {
	Id string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("post with id %s not found", e.Id)
}

func (e *NotFoundError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "NOT_FOUND"}
}

// StorageError - reading or writing the persisted collection failed for a
// reason other than "does not exist yet"
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %s", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "STORAGE_FAULT"}
}

package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrForbidden will throw if the acting user may not touch the item
	ErrForbidden = errors.New("you are not allowed to perform this action")
	// ErrUnauthorized will throw if the request carries no valid credential
	ErrUnauthorized = errors.New("authentication required")
	// ErrTransientStorage will throw if the storage layer is temporarily
	// unavailable. The caller may retry the request.
	ErrTransientStorage = errors.New("storage temporarily unavailable, retry later")
	// ErrCacheMiss is returned by caches when the key is absent or expired
	ErrCacheMiss = errors.New("cache miss")
)

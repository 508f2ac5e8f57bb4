package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Content & Collection Errors
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateSlug     = errors.New("duplicate slug")
	ErrInvalidSlug       = errors.New("invalid slug")
	ErrInvalidContent    = errors.New("invalid content definition")
	ErrUnknownCollection = errors.New("unknown collection")
)

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

func NewUnknownCollectionError(collection string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        ErrUnknownCollection,
		Details:    fmt.Sprintf("No collection named '%s'", collection),
		Field:      "collection",
	}
}

// NewDuplicateSlugError reports a slug defined twice within one collection.
func NewDuplicateSlugError(collection, slug string, first, second int) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDuplicateSlug,
		Details:    fmt.Sprintf("%s: slug %q used by items %d and %d", collection, slug, first, second),
		Field:      "slug",
	}
}

func NewInvalidSlugError(collection, slug string, index int) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrInvalidSlug,
		Details:    fmt.Sprintf("%s: item %d has slug %q which is not URL-safe", collection, index, slug),
		Field:      "slug",
	}
}

func NewInvalidContentError(collection string, index int, field, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrInvalidContent,
		Details:    fmt.Sprintf("%s: item %d: %s %s", collection, index, field, reason),
		Field:      field,
	}
}

package handlers

import (
	"errors"
	"strconv"

	"backend/internal/store"
)

var errInvalidPagination = errors.New("invalid pagination params")

// parseListOptions turns optional page/limit query values into store
// pagination. Both empty means no pagination at all.
func parseListOptions(pageStr, limitStr string) (store.ListOptions, error) {
	if pageStr == "" && limitStr == "" {
		return store.ListOptions{}, nil
	}

	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil || page < 1 {
		return store.ListOptions{}, errInvalidPagination
	}

	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit < 1 {
		return store.ListOptions{}, errInvalidPagination
	}

	return store.ListOptions{Page: page, Limit: limit}, nil
}

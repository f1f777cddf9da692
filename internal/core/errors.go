// ABOUTME: Sentinel errors for the recommendation engine
// ABOUTME: ErrInvalidInput surfaces to callers; external-recommender failures never do
package core

import "errors"

// ErrInvalidInput indicates a malformed caller-supplied filter or ingredient
// list. The request is rejected with no partial work performed.
var ErrInvalidInput = errors.New("invalid input")

// Package policy centralizes the ownership decision applied to
// user-scoped resources. Reads on globally visible resources never
// reach this check; list endpoints additionally filter by owner at
// the query level so the object check only guards retrieve, update
// and delete.
package policy

import (
	"errors"

	"github.com/google/uuid"
)

// Owned is implemented by every user-scoped entity
type Owned interface {
	OwnedBy() uuid.UUID
}

var (
	// ErrNotOwner means the requester is authenticated but does
	// not own the resource.
	ErrNotOwner = errors.New("requester does not own this resource")

	// ErrAnonymous means no authenticated identity was supplied
	ErrAnonymous = errors.New("write requires an authenticated identity")
)

// CanModify decides whether the requesting identity may write the
// resource. uuid.Nil denotes an anonymous caller.
func CanModify(requester uuid.UUID, resource Owned) error {
	if requester == uuid.Nil {
		return ErrAnonymous
	}
	if resource.OwnedBy() != requester {
		return ErrNotOwner
	}
	return nil
}

// IsOwner reports ownership without distinguishing why it fails
func IsOwner(requester uuid.UUID, resource Owned) bool {
	return CanModify(requester, resource) == nil
}

package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type ownedStub struct {
	owner uuid.UUID
}

func (o ownedStub) OwnedBy() uuid.UUID { return o.owner }

func TestCanModify(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	resource := ownedStub{owner: owner}

	assert.NoError(t, CanModify(owner, resource))
	assert.ErrorIs(t, CanModify(other, resource), ErrNotOwner)
	assert.ErrorIs(t, CanModify(uuid.Nil, resource), ErrAnonymous)
}

func TestIsOwner(t *testing.T) {
	owner := uuid.New()
	resource := ownedStub{owner: owner}

	assert.True(t, IsOwner(owner, resource))
	assert.False(t, IsOwner(uuid.New(), resource))
	assert.False(t, IsOwner(uuid.Nil, resource))
}

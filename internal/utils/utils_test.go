package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	ctx := SetUserContext(context.Background(), 7, "partner@example.com", RolePartner)

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, "partner@example.com", GetUserEmailFromContext(ctx))
	assert.Equal(t, RolePartner, GetUserRoleFromContext(ctx))
}

func TestUserContext_Empty(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
	assert.Equal(t, "", GetUserEmailFromContext(ctx))
	assert.Equal(t, "", GetUserRoleFromContext(ctx))

	_, ok = GetStoreIDFromContext(ctx)
	assert.False(t, ok)
}

func TestStoreContext(t *testing.T) {
	ctx := SetStoreContext(context.Background(), 3)

	id, ok := GetStoreIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(3), id)
}

func TestToUint(t *testing.T) {
	n, err := ToUint("42")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), n)

	_, err = ToUint("not-a-number")
	assert.Error(t, err)
}

package service

import (
	"testing"

	"notepanel/database/model"

	"github.com/stretchr/testify/assert"
)

func TestCanManageNote(t *testing.T) {
	authz := AuthzService{}

	owner := &model.User{Id: 1}
	stranger := &model.User{Id: 2}
	admin := &model.User{Id: 3, IsAdmin: true}
	note := &model.Note{Id: "n1", UserId: 1}

	assert.True(t, authz.CanManageNote(owner, note))
	assert.False(t, authz.CanManageNote(stranger, note))
	assert.True(t, authz.CanManageNote(admin, note))
	assert.False(t, authz.CanManageNote(nil, note))
	assert.False(t, authz.CanManageNote(owner, nil))
}

func TestCanAccessUserNotes(t *testing.T) {
	authz := AuthzService{}

	user := &model.User{Id: 1}
	admin := &model.User{Id: 2, IsAdmin: true}

	assert.True(t, authz.CanAccessUserNotes(user, 1))
	assert.False(t, authz.CanAccessUserNotes(user, 2))
	assert.True(t, authz.CanAccessUserNotes(admin, 1))
	assert.False(t, authz.CanAccessUserNotes(nil, 1))
}

func TestCanDeleteAllNotes(t *testing.T) {
	authz := AuthzService{}

	assert.False(t, authz.CanDeleteAllNotes(&model.User{Id: 1}))
	assert.True(t, authz.CanDeleteAllNotes(&model.User{Id: 2, IsAdmin: true}))
	assert.False(t, authz.CanDeleteAllNotes(nil))
}

package service

import "notepanel/database/model"

// AuthzService is the single place ownership and admin rules live. Every
// controller consults it before reading another user's data or mutating
// anything; the repositories stay authorization-agnostic.
type AuthzService struct{}

// CanManageNote reports whether the user may read, update or delete the note.
func (s *AuthzService) CanManageNote(user *model.User, note *model.Note) bool {
	if user == nil || note == nil {
		return false
	}
	return user.IsAdmin || note.UserId == user.Id
}

// CanAccessUserNotes reports whether the user may list or bulk-delete the
// notes of targetUserId. Users reach their own notes; admins reach anyone's.
func (s *AuthzService) CanAccessUserNotes(user *model.User, targetUserId int) bool {
	if user == nil {
		return false
	}
	return user.IsAdmin || user.Id == targetUserId
}

// CanDeleteAllNotes reports whether the user may wipe every note in the
// system.
func (s *AuthzService) CanDeleteAllNotes(user *model.User) bool {
	return user != nil && user.IsAdmin
}

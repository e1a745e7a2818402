package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateAndGetNote(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	noteService := NoteService{}

	owner, err := userService.CreateUser("owner@example.com", "password123")
	assert.NoError(t, err)

	note, err := noteService.CreateNote(owner.Id, "groceries", "milk and eggs")
	assert.NoError(t, err)
	assert.NotEmpty(t, note.Id)

	got, err := noteService.GetNote(note.Id)
	assert.NoError(t, err)
	assert.Equal(t, "groceries", got.Title)
	assert.Equal(t, "milk and eggs", got.Body)
	assert.Equal(t, owner.Id, got.UserId)

	_, err = noteService.GetNote("missing-id")
	assert.Error(t, err)
}

func TestGetNotesForUserOrdering(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	noteService := NoteService{}

	owner, _ := userService.CreateUser("owner@example.com", "password123")
	other, _ := userService.CreateUser("other@example.com", "password123")

	first, err := noteService.CreateNote(owner.Id, "first", "body")
	assert.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := noteService.CreateNote(owner.Id, "second", "body")
	assert.NoError(t, err)
	_, err = noteService.CreateNote(other.Id, "not mine", "body")
	assert.NoError(t, err)

	notes, err := noteService.GetNotesForUser(owner.Id)
	assert.NoError(t, err)
	assert.Len(t, notes, 2)
	assert.Equal(t, second.Id, notes[0].Id)
	assert.Equal(t, first.Id, notes[1].Id)

	// updating bumps the note to the top of the list
	time.Sleep(10 * time.Millisecond)
	rows, err := noteService.UpdateNote(first.Id, "first edited", "body")
	assert.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	notes, err = noteService.GetNotesForUser(owner.Id)
	assert.NoError(t, err)
	assert.Equal(t, first.Id, notes[0].Id)
}

func TestUpdateNoteMissing(t *testing.T) {
	setup()
	defer teardown()

	noteService := NoteService{}

	rows, err := noteService.UpdateNote("missing-id", "title", "body")
	assert.NoError(t, err)
	assert.EqualValues(t, 0, rows)
}

func TestGetAllNotesIncludesOwner(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	noteService := NoteService{}

	owner, _ := userService.CreateUser("owner@example.com", "password123")
	_, err := noteService.CreateNote(owner.Id, "mine", "body")
	assert.NoError(t, err)

	notes, err := noteService.GetAllNotes()
	assert.NoError(t, err)
	assert.Len(t, notes, 1)
	if assert.NotNil(t, notes[0].User) {
		assert.Equal(t, "owner@example.com", notes[0].User.Email)
	}
}

func TestDeleteNotesForUser(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	noteService := NoteService{}

	owner, _ := userService.CreateUser("owner@example.com", "password123")
	other, _ := userService.CreateUser("other@example.com", "password123")

	noteService.CreateNote(owner.Id, "one", "body")
	noteService.CreateNote(owner.Id, "two", "body")
	kept, _ := noteService.CreateNote(other.Id, "kept", "body")

	rows, err := noteService.DeleteNotesForUser(owner.Id)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, rows)

	notes, err := noteService.GetNotesForUser(owner.Id)
	assert.NoError(t, err)
	assert.Empty(t, notes)

	// other users' notes are untouched
	_, err = noteService.GetNote(kept.Id)
	assert.NoError(t, err)

	// deleting again is a harmless zero-row no-op
	rows, err = noteService.DeleteNotesForUser(owner.Id)
	assert.NoError(t, err)
	assert.EqualValues(t, 0, rows)
}

func TestDeleteAllNotes(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	noteService := NoteService{}

	owner, _ := userService.CreateUser("owner@example.com", "password123")
	other, _ := userService.CreateUser("other@example.com", "password123")
	noteService.CreateNote(owner.Id, "one", "body")
	noteService.CreateNote(other.Id, "two", "body")

	rows, err := noteService.DeleteAllNotes()
	assert.NoError(t, err)
	assert.EqualValues(t, 2, rows)

	notes, err := noteService.GetAllNotes()
	assert.NoError(t, err)
	assert.Empty(t, notes)
}

func TestDeleteNote(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	noteService := NoteService{}

	owner, _ := userService.CreateUser("owner@example.com", "password123")
	note, _ := noteService.CreateNote(owner.Id, "gone soon", "body")

	err := noteService.DeleteNote(note.Id)
	assert.NoError(t, err)

	_, err = noteService.GetNote(note.Id)
	assert.Error(t, err)
}

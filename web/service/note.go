package service

import (
	"notepanel/database"
	"notepanel/database/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteService provides note queries. It applies no ownership rules; callers
// run the AuthzService checks before any mutation.
type NoteService struct{}

func (s *NoteService) GetNote(id string) (*model.Note, error) {
	db := database.GetDB()

	note := &model.Note{}
	err := db.Model(model.Note{}).
		Where("id = ?", id).
		First(note).
		Error
	if err != nil {
		return nil, err
	}
	return note, nil
}

// GetNotesForUser returns the user's notes, most recently updated first.
func (s *NoteService) GetNotesForUser(userId int) ([]model.Note, error) {
	db := database.GetDB()

	var notes []model.Note
	err := db.Model(model.Note{}).
		Where("user_id = ?", userId).
		Order("updated_at desc").
		Find(&notes).
		Error
	return notes, err
}

// GetAllNotes returns every note with its owner attached. Admin views only.
func (s *NoteService) GetAllNotes() ([]model.Note, error) {
	db := database.GetDB()

	var notes []model.Note
	err := db.Model(model.Note{}).
		Preload("User").
		Order("updated_at desc").
		Find(&notes).
		Error
	return notes, err
}

func (s *NoteService) CreateNote(userId int, title string, body string) (*model.Note, error) {
	db := database.GetDB()

	note := &model.Note{
		Id:     uuid.NewString(),
		Title:  title,
		Body:   body,
		UserId: userId,
	}
	if err := db.Create(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

// UpdateNote writes new title and body by note id and returns the number of
// affected rows. Zero means the note does not exist.
func (s *NoteService) UpdateNote(id string, title string, body string) (int64, error) {
	db := database.GetDB()

	result := db.Model(model.Note{}).
		Where("id = ?", id).
		Updates(map[string]any{"title": title, "body": body})
	return result.RowsAffected, result.Error
}

func (s *NoteService) DeleteNote(id string) error {
	db := database.GetDB()
	return db.Where("id = ?", id).Delete(&model.Note{}).Error
}

// DeleteNotesForUser removes all of one user's notes and returns the count.
func (s *NoteService) DeleteNotesForUser(userId int) (int64, error) {
	db := database.GetDB()

	result := db.Where("user_id = ?", userId).Delete(&model.Note{})
	return result.RowsAffected, result.Error
}

// DeleteAllNotes wipes the notes table and returns the count.
func (s *NoteService) DeleteAllNotes() (int64, error) {
	db := database.GetDB()

	result := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Note{})
	return result.RowsAffected, result.Error
}

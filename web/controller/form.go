package controller

import (
	"strings"

	"notepanel/util/common"

	"github.com/gin-gonic/gin"
)

// The note forms post an `_action` discriminator next to the field values.
// parseNoteAction turns that open string into a closed set of variants at
// the request boundary, so handlers dispatch on types instead of re-reading
// raw form fields.

type noteAction interface {
	noteAction()
}

type saveNoteAction struct {
	NoteId string
	Title  string
	Body   string
}

type deleteNoteAction struct {
	NoteId string
}

type editNoteAction struct {
	NoteId string
}

type cancelNoteAction struct {
	NoteId string
}

type deleteAllNotesAction struct{}

func (saveNoteAction) noteAction()       {}
func (deleteNoteAction) noteAction()     {}
func (editNoteAction) noteAction()       {}
func (cancelNoteAction) noteAction()     {}
func (deleteAllNotesAction) noteAction() {}

// parseNoteAction validates the discriminator and the identifiers each
// variant needs. fallbackId fills in the note id for routes that already
// carry it in the URL. Field-level title/body validation stays with the
// handlers, which own the error responses.
func parseNoteAction(c *gin.Context, fallbackId string) (noteAction, error) {
	noteId := strings.TrimSpace(c.PostForm("noteId"))
	if noteId == "" {
		noteId = fallbackId
	}

	switch action := c.PostForm("_action"); action {
	case "save":
		if noteId == "" {
			return nil, common.NewError("noteId not found")
		}
		return saveNoteAction{
			NoteId: noteId,
			Title:  strings.TrimSpace(c.PostForm("title")),
			Body:   strings.TrimSpace(c.PostForm("body")),
		}, nil
	case "delete":
		if noteId == "" {
			return nil, common.NewError("noteId not found")
		}
		return deleteNoteAction{NoteId: noteId}, nil
	case "edit":
		if noteId == "" {
			return nil, common.NewError("noteId not found")
		}
		return editNoteAction{NoteId: noteId}, nil
	case "cancel":
		return cancelNoteAction{NoteId: noteId}, nil
	case "deleteAll":
		return deleteAllNotesAction{}, nil
	default:
		return nil, common.NewErrorf("unknown action %q", action)
	}
}

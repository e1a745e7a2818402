package controller

import (
	"net/http"
	"strconv"

	"notepanel/logger"
	"notepanel/web/entity"
	"notepanel/web/service"

	"github.com/gin-gonic/gin"
)

// AdminController serves the admin area: the user directory with every note
// in the system, and per-user note management.
type AdminController struct {
	BaseController

	userService  service.UserService
	noteService  service.NoteService
	authzService service.AuthzService
}

func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	r := g.Group("/admin")
	r.Use(a.checkLogin)

	r.GET("", a.index)
	r.POST("", a.indexAction)
	r.GET("/:userId", a.userNotes)
	r.POST("/:userId", a.userNotesAction)
}

// index lists every user and every note. Non-admins are sent back to their
// own notes rather than getting an error.
func (a *AdminController) index(c *gin.Context) {
	user := a.getUser(c)
	if user == nil || !user.IsAdmin {
		c.Redirect(http.StatusFound, "/notes")
		return
	}

	users, err := a.userService.GetUsers()
	if err != nil {
		jsonMsg(c, "list users", err)
		return
	}
	notes, err := a.noteService.GetAllNotes()
	if err != nil {
		jsonMsg(c, "list notes", err)
		return
	}
	jsonObj(c, gin.H{"users": users, "noteListItems": notes}, nil)
}

// indexAction handles the system-wide delete-all.
func (a *AdminController) indexAction(c *gin.Context) {
	action, err := parseNoteAction(c, "")
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, err.Error())
		return
	}
	if _, ok := action.(deleteAllNotesAction); !ok {
		pureJsonMsg(c, http.StatusBadRequest, false, "unsupported action for this route")
		return
	}

	user := a.requireUser(c)
	if user == nil {
		return
	}
	if !a.authzService.CanDeleteAllNotes(user) {
		pureJsonMsg(c, http.StatusUnauthorized, false, "unauthorized")
		return
	}

	rows, err := a.noteService.DeleteAllNotes()
	if err != nil {
		jsonMsg(c, "delete all notes", err)
		return
	}
	if rows == 0 {
		pureJsonMsg(c, http.StatusBadRequest, false, "Failed to delete resource(s)")
		return
	}
	logger.Infof("admin %s deleted all notes (%d rows)", user.Email, rows)
	c.Redirect(http.StatusFound, "/notes")
}

func (a *AdminController) userNotes(c *gin.Context) {
	user := a.requireUser(c)
	if user == nil {
		return
	}
	targetUserId, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid user id")
		return
	}
	if !a.authzService.CanAccessUserNotes(user, targetUserId) {
		pureJsonMsg(c, http.StatusUnauthorized, false, "unauthorized")
		return
	}

	notes, err := a.noteService.GetNotesForUser(targetUserId)
	if err != nil {
		jsonMsg(c, "list notes", err)
		return
	}
	jsonObj(c, gin.H{"notes": notes}, nil)
}

// userNotesAction drives the per-user admin operations: per-note delete,
// per-user bulk delete and inline edit with the usual validation.
func (a *AdminController) userNotesAction(c *gin.Context) {
	user := a.requireUser(c)
	if user == nil {
		return
	}
	targetUserId, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid user id")
		return
	}
	backTo := "/admin/" + c.Param("userId")

	action, err := parseNoteAction(c, "")
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, err.Error())
		return
	}

	switch act := action.(type) {
	case deleteAllNotesAction:
		if !a.authzService.CanAccessUserNotes(user, targetUserId) {
			pureJsonMsg(c, http.StatusUnauthorized, false, "unauthorized")
			return
		}
		rows, err := a.noteService.DeleteNotesForUser(targetUserId)
		if err != nil {
			jsonMsg(c, "delete user notes", err)
			return
		}
		if rows == 0 {
			pureJsonMsg(c, http.StatusBadRequest, false, "Failed to delete resource(s)")
			return
		}
		c.Redirect(http.StatusFound, backTo)
	case deleteNoteAction:
		note, err := a.noteService.GetNote(act.NoteId)
		if err != nil {
			pureJsonMsg(c, http.StatusNotFound, false, "note not found")
			return
		}
		if !a.authzService.CanManageNote(user, note) {
			pureJsonMsg(c, http.StatusUnauthorized, false, "unauthorized")
			return
		}
		if err := a.noteService.DeleteNote(note.Id); err != nil {
			jsonMsg(c, "delete note", err)
			return
		}
		c.Redirect(http.StatusFound, backTo)
	case saveNoteAction:
		if act.Title == "" {
			jsonFieldErrors(c, entity.TitleRequired())
			return
		}
		if act.Body == "" {
			jsonFieldErrors(c, entity.BodyRequired())
			return
		}
		note, err := a.noteService.GetNote(act.NoteId)
		if err != nil {
			pureJsonMsg(c, http.StatusNotFound, false, "note not found")
			return
		}
		if !a.authzService.CanManageNote(user, note) {
			pureJsonMsg(c, http.StatusUnauthorized, false, "unauthorized")
			return
		}
		rows, err := a.noteService.UpdateNote(note.Id, act.Title, act.Body)
		if err != nil {
			jsonMsg(c, "update note", err)
			return
		}
		if rows == 0 {
			pureJsonMsg(c, http.StatusBadRequest, false, "Failed to update resource(s)")
			return
		}
		c.Redirect(http.StatusFound, backTo)
	case cancelNoteAction, editNoteAction:
		c.Redirect(http.StatusFound, backTo)
	default:
		pureJsonMsg(c, http.StatusBadRequest, false, "unsupported action for this route")
	}
}

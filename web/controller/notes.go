package controller

import (
	"net/http"
	"strconv"
	"strings"

	"notepanel/web/entity"
	"notepanel/web/service"
	"notepanel/web/session"

	"github.com/gin-gonic/gin"
)

// NotesController serves the per-user notes pages: list, detail, create and
// edit.
type NotesController struct {
	BaseController

	noteService  service.NoteService
	authzService service.AuthzService
}

func NewNotesController(g *gin.RouterGroup) *NotesController {
	a := &NotesController{}
	a.initRouter(g)
	return a
}

func (a *NotesController) initRouter(g *gin.RouterGroup) {
	r := g.Group("/notes")
	r.Use(a.checkLogin)

	r.GET("", a.list)
	r.GET("/new", a.newForm)
	r.POST("/new", a.create)
	r.GET("/:id", a.detail)
	r.POST("/:id", a.detailAction)
	r.GET("/:id/edit", a.editForm)
	r.POST("/:id/edit", a.editAction)
}

// list shows the current user's notes, most recently updated first. The
// user id comes straight from the cookie; no user lookup is needed here.
func (a *NotesController) list(c *gin.Context) {
	userId, _ := session.GetUserId(c)

	notes, err := a.noteService.GetNotesForUser(userId)
	if err != nil {
		jsonMsg(c, "list notes", err)
		return
	}

	adminView := false
	if user := loginUser(c); user != nil {
		adminView = user.IsAdmin
	}
	jsonObj(c, gin.H{"noteListItems": notes, "adminView": adminView}, nil)
}

func (a *NotesController) newForm(c *gin.Context) {
	jsonObj(c, gin.H{"note": gin.H{"title": "", "body": ""}}, nil)
}

func (a *NotesController) create(c *gin.Context) {
	userId, _ := session.GetUserId(c)

	title := strings.TrimSpace(c.PostForm("title"))
	body := strings.TrimSpace(c.PostForm("body"))
	if title == "" {
		jsonFieldErrors(c, entity.TitleRequired())
		return
	}
	if body == "" {
		jsonFieldErrors(c, entity.BodyRequired())
		return
	}

	note, err := a.noteService.CreateNote(userId, title, body)
	if err != nil {
		jsonMsg(c, "create note", err)
		return
	}
	c.Redirect(http.StatusFound, "/notes/"+note.Id)
}

// detail loads one note. Missing note is a 404; a non-owner non-admin gets
// a 401. An admin opening someone else's note is pointed at the admin page
// for that user instead of the note itself.
func (a *NotesController) detail(c *gin.Context) {
	user := a.requireUser(c)
	if user == nil {
		return
	}

	note, err := a.noteService.GetNote(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusNotFound, false, "note not found")
		return
	}
	if !a.authzService.CanManageNote(user, note) {
		pureJsonMsg(c, http.StatusUnauthorized, false, "unauthorized")
		return
	}
	if user.IsAdmin && note.UserId != user.Id {
		c.Redirect(http.StatusFound, "/admin/"+strconv.Itoa(note.UserId))
		return
	}
	jsonObj(c, gin.H{"note": note}, nil)
}

func (a *NotesController) detailAction(c *gin.Context) {
	noteId := c.Param("id")

	action, err := parseNoteAction(c, noteId)
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, err.Error())
		return
	}

	switch action.(type) {
	case deleteNoteAction:
		user := a.requireUser(c)
		if user == nil {
			return
		}
		note, err := a.noteService.GetNote(noteId)
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
		c.Redirect(http.StatusFound, "/notes")
	case editNoteAction:
		c.Redirect(http.StatusFound, "/notes/"+noteId+"/edit")
	case cancelNoteAction:
		c.Redirect(http.StatusFound, "/notes/"+noteId)
	default:
		pureJsonMsg(c, http.StatusBadRequest, false, "unsupported action for this route")
	}
}

func (a *NotesController) editForm(c *gin.Context) {
	user := a.requireUser(c)
	if user == nil {
		return
	}

	note, err := a.noteService.GetNote(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusNotFound, false, "note not found")
		return
	}
	if !a.authzService.CanManageNote(user, note) {
		pureJsonMsg(c, http.StatusUnauthorized, false, "unauthorized")
		return
	}
	jsonObj(c, gin.H{"note": note}, nil)
}

func (a *NotesController) editAction(c *gin.Context) {
	noteId := c.Param("id")

	action, err := parseNoteAction(c, noteId)
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, err.Error())
		return
	}

	switch act := action.(type) {
	case cancelNoteAction:
		c.Redirect(http.StatusFound, "/notes/"+noteId)
	case saveNoteAction:
		if act.Title == "" {
			jsonFieldErrors(c, entity.TitleRequired())
			return
		}
		if act.Body == "" {
			jsonFieldErrors(c, entity.BodyRequired())
			return
		}

		user := a.requireUser(c)
		if user == nil {
			return
		}
		note, err := a.noteService.GetNote(noteId)
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
		c.Redirect(http.StatusFound, "/notes/"+noteId)
	default:
		pureJsonMsg(c, http.StatusBadRequest, false, "unsupported action for this route")
	}
}

package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Paintersrp/focusnest/internal/note"
	"github.com/Paintersrp/focusnest/internal/search"
	"github.com/Paintersrp/focusnest/internal/services/notes"
	"github.com/Paintersrp/focusnest/internal/store"
)

type noteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type tagRequest struct {
	Name string `json:"tag_name"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "FocusNest API is running"})
}

// Notes

func (s *Server) handleListNotes(c *gin.Context) {
	limit, ok := queryInt(c, "limit", s.limits.ListNotes)
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset", 0)
	if !ok {
		return
	}

	list, err := s.notes.List(c.Request.Context(), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleGetNote(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	n, err := s.notes.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *Server) handleCreateNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	var title, content string
	if req.Title != nil {
		title = *req.Title
	}
	if req.Content != nil {
		content = *req.Content
	}

	n, err := s.notes.Create(c.Request.Context(), title, content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *Server) handleUpdateNote(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	current, err := s.notes.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	title, content := current.Title, current.Content
	if req.Title != nil {
		title = *req.Title
	}
	if req.Content != nil {
		content = *req.Content
	}

	n, err := s.notes.Update(c.Request.Context(), id, title, content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *Server) handleDeleteNote(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := s.notes.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}

func (s *Server) handleRenderNote(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var (
		out string
		err error
	)
	switch c.DefaultQuery("format", "links") {
	case "html":
		out, err = s.notes.RenderHTML(c.Request.Context(), id)
	case "links":
		out, err = s.notes.Render(c.Request.Context(), id)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"detail": "format must be links or html"})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": out})
}

func (s *Server) handleRelink(c *gin.Context) {
	n, err := s.notes.Relink(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"relinked": n})
}

func (s *Server) handleListTags(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	tags, err := s.notes.Tags(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (s *Server) handleAddTag(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	tag, err := s.notes.AddTag(c.Request.Context(), id, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// Graph

func (s *Server) handleGraphData(c *gin.Context) {
	data, err := s.index.Graph(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (s *Server) handleConnections(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	conns, err := s.index.Connections(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"note_id": id, "connections": conns})
}

func (s *Server) handleOrphans(c *gin.Context) {
	orphans, err := s.index.Orphans(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orphan_notes": orphans})
}

func (s *Server) handleCentral(c *gin.Context) {
	limit, ok := queryInt(c, "limit", s.limits.Central)
	if !ok {
		return
	}

	central, err := s.index.Central(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"central_notes": central})
}

func (s *Server) handleSuggest(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", s.limits.Suggest)
	if !ok {
		return
	}

	suggestions, err := s.index.Suggest(c.Request.Context(), id, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"note_id": id, "suggestions": suggestions})
}

// Search and resurfacing

func (s *Server) handleSearch(c *gin.Context) {
	limit, ok := queryInt(c, "limit", s.limits.Search)
	if !ok {
		return
	}

	res, err := s.notes.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"notes":   res.Notes(),
		"total":   res.Total,
		"results": res.Results,
	})
}

func (s *Server) handleDaily(c *gin.Context) {
	count, ok := queryInt(c, "count", s.limits.Daily)
	if !ok {
		return
	}

	list, err := s.index.Daily(c.Request.Context(), count)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": nonNil(list)})
}

func (s *Server) handleRandom(c *gin.Context) {
	exclude := s.limits.ExcludeRecent
	if raw, set := c.GetQuery("exclude_recent"); set {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "exclude_recent must be a boolean"})
			return
		}
		exclude = v
	}

	n, err := s.index.Random(c.Request.Context(), exclude)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"note": n})
}

func (s *Server) handleContext(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	count, ok := queryInt(c, "count", s.limits.Context)
	if !ok {
		return
	}

	list, err := s.index.Context(c.Request.Context(), id, count)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": nonNil(list)})
}

func (s *Server) handleOrphanNotes(c *gin.Context) {
	count, ok := queryInt(c, "count", s.limits.Orphans)
	if !ok {
		return
	}

	list, err := s.index.OrphanNotes(c.Request.Context(), count)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": nonNil(list)})
}

func nonNil(list []note.Note) []note.Note {
	if list == nil {
		return []note.Note{}
	}
	return list
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("invalid note id %q", c.Param("id"))})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, def int) (int, bool) {
	raw, set := c.GetQuery(key)
	if !set || raw == "" {
		return def, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("%s must be an integer", key)})
		return 0, false
	}
	return v, true
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrTitleExists),
		errors.Is(err, store.ErrEmptyTag),
		errors.Is(err, notes.ErrEmptyTitle),
		errors.Is(err, search.ErrQueryTooShort),
		errors.Is(err, search.ErrEmptyQuery):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"detail": err.Error()})
}

package web

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/erichgess/tisk/internal/table"
	"github.com/erichgess/tisk/internal/tasks"
	"github.com/erichgess/tisk/internal/view"
)

const (
	defaultWidth = 80
	maxWidth     = 1000
)

// Text handlers

func (s *Server) handleTasksText(c *gin.Context) {
	opts, ok := s.options(c)
	if !ok {
		return
	}

	list, ok := s.load(c)
	if !ok {
		return
	}
	selected, err := list.Select(c.Query("status"))
	if err != nil {
		c.String(http.StatusBadRequest, "%s\n", err)
		return
	}

	s.renderText(c, func(buf *bytes.Buffer) error {
		return view.Tasks(buf, selected, opts)
	})
}

func (s *Server) handleNotesText(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid task id %q\n", c.Param("id"))
		return
	}
	opts, ok := s.options(c)
	if !ok {
		return
	}

	list, ok := s.load(c)
	if !ok {
		return
	}
	task := list.Get(id)
	if task == nil {
		c.String(http.StatusNotFound, "task %d not found\n", id)
		return
	}

	s.renderText(c, func(buf *bytes.Buffer) error {
		return view.Notes(buf, task.Notes, opts)
	})
}

// options applies the width query parameter to the server's display
// settings. It writes a 400 response and returns false when width is
// invalid.
func (s *Server) options(c *gin.Context) (view.Options, bool) {
	opts := s.display
	opts.HeaderStyle = nil
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}

	if raw := c.Query("width"); raw != "" {
		w, err := strconv.Atoi(raw)
		if err != nil || w < 1 || w > maxWidth {
			c.String(http.StatusBadRequest, "width must be an integer between 1 and %d\n", maxWidth)
			return opts, false
		}
		opts.Width = w
	}
	return opts, true
}

func (s *Server) renderText(c *gin.Context, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, table.ErrConfig) {
			status = http.StatusBadRequest
		}
		c.String(status, "%s\n", err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// load reads the task list for a text handler.
func (s *Server) load(c *gin.Context) (*tasks.List, bool) {
	list, err := s.store.Load(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load tasks: %s\n", err)
		return nil, false
	}
	return list, true
}

// API handlers

func (s *Server) handleAPITasks(c *gin.Context) {
	list, err := s.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	selected, err := list.Select(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    selected,
		"count":   len(selected),
	})
}

func (s *Server) handleAPITask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "task id must be an integer",
		})
		return
	}

	list, err := s.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	task := list.Get(id)
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "task not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    task,
	})
}

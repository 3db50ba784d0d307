package server

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexisbeaulieu97/spectrum/internal/page"
	"github.com/alexisbeaulieu97/spectrum/internal/theme"
	spectrumerrors "github.com/alexisbeaulieu97/spectrum/pkg/errors"
)

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// themeResponse is the body of GET /api/theme.
type themeResponse struct {
	Preset   string          `json:"preset,omitempty"`
	Controls theme.Controls  `json:"controls"`
	Snapshot theme.Snapshot  `json:"snapshot"`
	Vars     theme.StyleVars `json:"vars"`
	Swatches swatchGroups    `json:"swatches"`
	Snippet  string          `json:"snippet"`
}

type swatchGroups struct {
	Accent  []theme.Swatch `json:"accent"`
	Surface []theme.Swatch `json:"surface"`
}

func (s *Server) handlePage(c *gin.Context) {
	sel, ok := s.selection(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	err := page.Render(&buf, page.Data{
		Controls:    sel.Controls,
		Preset:      sel.Preset,
		Presets:     s.presets.Names(),
		Interactive: true,
	})
	if err != nil {
		s.log.Error(err, "render page")
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to render page"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleStylesheet(c *gin.Context) {
	sel, ok := s.selection(c)
	if !ok {
		return
	}
	snippet := theme.Snippet(theme.Derive(sel.Controls))
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(snippet+"\n"))
}

func (s *Server) handleTheme(c *gin.Context) {
	sel, ok := s.selection(c)
	if !ok {
		return
	}
	p := theme.Project(theme.Derive(sel.Controls))
	c.JSON(http.StatusOK, themeResponse{
		Preset:   sel.Preset,
		Controls: sel.Controls,
		Snapshot: p.Snapshot,
		Vars:     p.Vars,
		Swatches: swatchGroups{Accent: p.Accent, Surface: p.Surface},
		Snippet:  p.Snippet,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// selection parses the request controls, writing the error response itself
// when they are invalid.
func (s *Server) selection(c *gin.Context) (selection, bool) {
	sel, err := parseSelection(s.presets, c.Request.URL.Query())
	if err == nil {
		return sel, true
	}

	var notFound *spectrumerrors.NotFoundError
	var invalid *spectrumerrors.ValidationError
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error(), Field: "preset"})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, errorResponse{Error: invalid.Message, Field: invalid.Field})
	default:
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	return selection{}, false
}

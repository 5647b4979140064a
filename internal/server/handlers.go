package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gogpu/roomrender"
	"github.com/gogpu/roomrender/room"
)

const renderIDHeader = "X-Render-Id"

// maxTileScale bounds the scale query parameter of the tile endpoint to
// scales whose resampled tiles fit the renderer's resize cache.
const maxTileScale = roomrender.MaxCachedScale

type apiError struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apiError{Error: msg})
}

func writePNG(w http.ResponseWriter, c *roomrender.Canvas) error {
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}

// health GET /v1/health
func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": roomrender.Version,
	})
}

// render POST /v1/render
func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()
	w.Header().Set(renderIDHeader, id)

	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBody)
	d, err := room.Decode(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			errorJSON(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		errorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := room.Render(s.renderer, d)
	if err != nil {
		s.log.Error("render failed", "render_id", id, "err", err)
		errorJSON(w, http.StatusInternalServerError, "render failed")
		return
	}

	if err := writePNG(w, c); err != nil {
		s.log.Warn("write response", "render_id", id, "err", err)
		return
	}
	s.log.Debug("rendered",
		"render_id", id,
		"width", c.Width(),
		"height", c.Height())
}

// tile GET /v1/tiles/{kind}/{type}.png?scale=N
func (s *Server) tile(w http.ResponseWriter, r *http.Request) {
	scale := roomrender.DefaultScale
	if v := r.URL.Query().Get("scale"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxTileScale {
			errorJSON(w, http.StatusBadRequest, "scale must be between 1 and "+strconv.Itoa(maxTileScale))
			return
		}
		scale = n
	}

	c, err := roomrender.NewCanvas(1, 1, scale)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	cell := roomrender.Cell{}
	typ := chi.URLParam(r, "type")
	switch kind := chi.URLParam(r, "kind"); kind {
	case room.KindTerrain:
		t, perr := roomrender.ParseTerrain(typ)
		if perr != nil {
			errorJSON(w, http.StatusNotFound, perr.Error())
			return
		}
		err = s.renderer.DrawTerrain(c, cell, t)
	case room.KindResource:
		err = s.renderer.DrawResource(c, cell, roomrender.ResourceFromType(typ))
	case room.KindStructure:
		err = s.renderer.DrawStructure(c, cell, roomrender.StructureFromType(typ))
	default:
		errorJSON(w, http.StatusNotFound, "unknown kind "+strconv.Quote(kind))
		return
	}
	if err != nil {
		s.log.Error("tile failed", "err", err)
		errorJSON(w, http.StatusInternalServerError, "render failed")
		return
	}

	if err := writePNG(w, c); err != nil {
		s.log.Warn("write response", "err", err)
	}
}

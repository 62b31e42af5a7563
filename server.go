package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"net/http"
	"sync"

	"github.com/harsh-simform/snapflow-desktop-sub001/annotation"
	"github.com/harsh-simform/snapflow-desktop-sub001/capture"
	"github.com/harsh-simform/snapflow-desktop-sub001/geom"
	"github.com/harsh-simform/snapflow-desktop-sub001/log"
	"github.com/harsh-simform/snapflow-desktop-sub001/render"
	"github.com/harsh-simform/snapflow-desktop-sub001/shell"
	"github.com/harsh-simform/snapflow-desktop-sub001/store"
)

// ApiServer exposes the annotation editor over HTTP for local
// tooling. It drives the same shell context the interactive mode
// uses. The scene has a single owner, so every handler serializes on
// mu; only the wait for a native capture result runs unlocked.
type ApiServer struct {
	ctx *shell.ShellCtxt
	mu  sync.Mutex
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewApiServer(ctx *shell.ShellCtxt) *ApiServer {
	return &ApiServer{ctx: ctx}
}

func (s *ApiServer) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

func (s *ApiServer) writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SuccessResponse{Data: data})
}

func (s *ApiServer) requireSession(w http.ResponseWriter) bool {
	if s.ctx.Editor == nil || s.ctx.Background == nil {
		s.writeError(w, http.StatusConflict, fmt.Errorf("no capture loaded"))
		return false
	}
	return true
}

// GET /api/shapes
func (s *ApiServer) handleShapes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.requireSession(w) {
		return
	}

	data, err := annotation.MarshalShapes(s.ctx.Editor.Scene().Shapes())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeSuccess(w, json.RawMessage(data))
}

// POST /api/capture  {"mode":"fullscreen"} | {"mode":"display","display":0} |
// {"mode":"region","x1":..,"y1":..,"x2":..,"y2":..,"window":false}
func (s *ApiServer) handleCapture(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Mode    string  `json:"mode"`
		Display int     `json:"display"`
		X1      float64 `json:"x1"`
		Y1      float64 `json:"y1"`
		X2      float64 `json:"x2"`
		Y2      float64 `json:"y2"`
		Window  bool    `json:"window"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	var request func(capture.Capturer) (*image.RGBA, error)
	switch req.Mode {
	case "", "fullscreen":
		request = capture.Capturer.CaptureFullScreen
	case "display":
		index := req.Display
		request = func(c capture.Capturer) (*image.RGBA, error) {
			return c.CaptureDisplay(index)
		}
	case "region":
		sel := geom.RectFromCorners(
			geom.Point{X: req.X1, Y: req.Y1},
			geom.Point{X: req.X2, Y: req.Y2},
		)
		minSize := float64(s.ctx.Cfg.MinRegionSize)
		if req.Window {
			minSize = float64(s.ctx.Cfg.MinWindowSize)
		}
		if err := geom.CheckMinSize(sel, minSize); err != nil {
			// Below-minimum selections are interaction noise, not
			// faults: nothing is captured and nothing fails.
			s.mu.Unlock()
			log.Trace.Printf("selection ignored: %v", err)
			s.writeSuccess(w, map[string]string{"message": "selection below minimum size, ignored"})
			return
		}
		display, _ := geom.DisplayForPoint(s.ctx.Displays, geom.Point{X: req.X1, Y: req.Y1})
		phys := display.Resolve(sel)
		request = func(c capture.Capturer) (*image.RGBA, error) {
			return c.CaptureRegion(phys)
		}
	default:
		s.mu.Unlock()
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("unknown capture mode %q", req.Mode))
		return
	}

	ch, err := s.ctx.Gate.Request(context.Background(), request)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, http.StatusConflict, err)
		return
	}

	// The lock is not held while the native call runs, so the editor
	// stays responsive and /api/close can tear the session down.
	res := <-ch

	s.mu.Lock()
	defer s.mu.Unlock()
	if res.Err != nil {
		s.writeError(w, http.StatusBadGateway, res.Err)
		return
	}
	if s.ctx.Gate.Stale(res) {
		s.writeError(w, http.StatusGone, fmt.Errorf("session was torn down during capture"))
		return
	}

	s.ctx.StartSession(res.Image)
	b := res.Image.Bounds()
	s.writeSuccess(w, map[string]int{"width": b.Dx(), "height": b.Dy()})
}

// POST /api/tool {"tool":"pen"}
func (s *ApiServer) handleTool(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.requireSession(w) {
		return
	}

	var req struct {
		Tool string `json:"tool"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	tool, err := annotation.ParseTool(req.Tool)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.ctx.Editor.SetTool(tool); err != nil {
		s.writeError(w, http.StatusConflict, err)
		return
	}
	s.writeSuccess(w, map[string]string{"tool": string(tool)})
}

// POST /api/pointer {"event":"down|drag|up|esc|leave","x":..,"y":..}
func (s *ApiServer) handlePointer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.requireSession(w) {
		return
	}

	var req struct {
		Event string  `json:"event"`
		X     float64 `json:"x"`
		Y     float64 `json:"y"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	p := geom.Point{X: req.X, Y: req.Y}
	switch req.Event {
	case "down":
		s.ctx.Editor.PointerDown(p)
	case "drag":
		s.ctx.Editor.PointerDrag(p)
	case "up":
		s.ctx.Editor.PointerUp()
	case "esc":
		s.ctx.Editor.Escape()
	case "leave":
		s.ctx.Editor.PointerLeave()
	default:
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("unknown pointer event %q", req.Event))
		return
	}
	s.writeSuccess(w, map[string]int{"shapes": s.ctx.Editor.Scene().Len()})
}

// POST /api/undo
func (s *ApiServer) handleUndo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.requireSession(w) {
		return
	}
	s.ctx.Editor.Scene().Undo()
	s.writeSuccess(w, map[string]int{"shapes": s.ctx.Editor.Scene().Len()})
}

// POST /api/delete {"id":"..."}
func (s *ApiServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.requireSession(w) {
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	// Deleting an id that is already gone is a deterministic no-op.
	s.ctx.Editor.Scene().Delete(req.ID)
	s.writeSuccess(w, map[string]int{"shapes": s.ctx.Editor.Scene().Len()})
}

// POST /api/export {"scale":2}
func (s *ApiServer) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.requireSession(w) {
		return
	}

	var req struct {
		Scale float64 `json:"scale"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Scale <= 0 {
		req.Scale = s.ctx.Cfg.ExportScale
	}

	// Export shares the capture gate: a second export, or an export
	// racing an in-flight capture, is refused rather than queued.
	var saved store.Saved
	err := s.ctx.Gate.Do(func() error {
		img, err := render.Flatten(s.ctx.Background, s.ctx.Editor.Scene().Shapes(), req.Scale)
		if err != nil {
			return err
		}
		data, err := render.EncodePNG(img)
		if err != nil {
			return err
		}
		saved, err = s.ctx.Store.SaveCapture(data)
		return err
	})
	if errors.Is(err, capture.ErrBusy) {
		s.writeError(w, http.StatusConflict, err)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeSuccess(w, saved)
}

// POST /api/close
//
// Tears the annotation session down. An in-flight capture result
// becomes stale and is discarded when it arrives.
func (s *ApiServer) handleClose(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.requireSession(w) {
		return
	}
	s.ctx.EndSession()
	s.writeSuccess(w, map[string]string{"message": "session closed"})
}

// Handler returns the API routes on one mux.
func (s *ApiServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/shapes", s.handleShapes)
	mux.HandleFunc("/api/capture", s.handleCapture)
	mux.HandleFunc("/api/tool", s.handleTool)
	mux.HandleFunc("/api/pointer", s.handlePointer)
	mux.HandleFunc("/api/undo", s.handleUndo)
	mux.HandleFunc("/api/delete", s.handleDelete)
	mux.HandleFunc("/api/export", s.handleExport)
	mux.HandleFunc("/api/close", s.handleClose)
	return mux
}

// Serve runs the HTTP API until the listener fails.
func (s *ApiServer) Serve(addr string) error {
	log.Info.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// Package web serves a read-only HTML timeline and JSON views of a plan.
package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/amonks/gantt/criticalpath"
	"github.com/amonks/gantt/task"
	"github.com/amonks/gantt/timeline"
)

// Source provides the tasks to serve.
type Source interface {
	All() ([]task.Task, error)
}

// Options configures the web handler.
type Options struct {
	// Source provides tasks on every request.
	Source Source

	// ShowCritical highlights critical path tasks by default. The page
	// accepts ?critical=0 or ?critical=1 to override it.
	ShowCritical bool

	// Logger receives request logs. Defaults to stderr with a "gantt: " prefix.
	Logger *log.Logger

	// Now returns the current time for dashboard metrics. Defaults to time.Now.
	Now func() time.Time
}

// Handler serves the timeline page and JSON endpoints.
type Handler struct {
	source       Source
	showCritical bool
	logger       *log.Logger
	now          func() time.Time
	mux          *http.ServeMux
	templates    *templateWrapper
}

// NewHandler creates a new web handler.
func NewHandler(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "gantt: ", log.LstdFlags)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	handler := &Handler{
		source:       opts.Source,
		showCritical: opts.ShowCritical,
		logger:       logger,
		now:          now,
		templates:    newTemplateWrapper(),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/", handler.handleIndex)
	mux.HandleFunc("/api/tasks", handler.handleTasks)
	mux.HandleFunc("/api/critical-path", handler.handleCriticalPath)
	mux.HandleFunc("/api/summary", handler.handleSummary)
	handler.mux = mux
	return handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writer := &responseTracker{ResponseWriter: w}
	start := time.Now()
	defer func() {
		if recovered := recover(); recovered != nil {
			h.logger.Printf("panic handling request %s %s: %v\n%s", r.Method, r.URL.Path, recovered, debug.Stack())
			if !writer.wroteHeader {
				writeJSON(writer, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			}
		}
		h.logger.Printf("%s %s %d %s", r.Method, r.URL.Path, writer.statusCode(), time.Since(start).Round(time.Microsecond))
	}()
	h.mux.ServeHTTP(writer, r)
}

type templateWrapper struct {
	tmpl *template.Template
}

func newTemplateWrapper() *templateWrapper {
	return &templateWrapper{tmpl: newTemplates()}
}

func (tw *templateWrapper) Render(w http.ResponseWriter, data pageData) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tw.tmpl.ExecuteTemplate(w, "page", data)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	tasks, result, err := h.load()
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	showCritical, err := h.criticalParam(r)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	data := newPageData(tasks, result, showCritical)
	if err := h.templates.Render(w, data); err != nil {
		h.logger.Printf("render page: %v", err)
	}
}

func (h *Handler) handleTasks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	tasks, err := h.source.All()
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	task.SortByStart(tasks)
	writeJSON(w, http.StatusOK, tasks)
}

func (h *Handler) handleCriticalPath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	tasks, result, err := h.load()
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, task.NewCriticalPathReport(tasks, result))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	tasks, err := h.source.All()
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, task.Summarize(tasks, h.now()))
}

func (h *Handler) load() ([]task.Task, criticalpath.Result, error) {
	tasks, err := h.source.All()
	if err != nil {
		return nil, criticalpath.Result{}, err
	}
	return tasks, criticalpath.Compute(task.EngineTasks(tasks)), nil
}

func (h *Handler) criticalParam(r *http.Request) (bool, error) {
	value := r.URL.Query().Get("critical")
	if value == "" {
		return h.showCritical, nil
	}
	show, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid critical parameter %q", value)
	}
	return show, nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	h.logger.Printf("request %s %s failed (%d): %v", r.Method, r.URL.Path, status, err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMethodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

type responseTracker struct {
	http.ResponseWriter
	wroteHeader bool
	status      int
}

func (w *responseTracker) WriteHeader(status int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseTracker) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(data)
}

func (w *responseTracker) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// bannerText returns the cycle banner without wrapping, for the page.
func bannerText(tasks []task.Task, result criticalpath.Result) string {
	return timeline.Banner(result, tasks, 0)
}

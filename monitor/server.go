package monitor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// Server streams Event values published for in-flight runs over SSE, the
// way the teacher's Server streams bus telemetry — plain net/http, no
// router library, since nothing in the retrieved pack pulls one in.
type Server struct {
	mu   sync.Mutex
	runs map[string]chan Event
}

// New returns an empty Server.
func New() *Server {
	return &Server{runs: make(map[string]chan Event)}
}

// Register opens a buffered event channel for runID and returns a publish
// function the caller uses to push phase events as the solve progresses.
// The caller must call the returned close function when the run ends.
func (s *Server) Register(runID string) (publish func(Event), closeRun func()) {
	ch := make(chan Event, 64)
	s.mu.Lock()
	s.runs[runID] = ch
	s.mu.Unlock()

	publish = func(e Event) {
		select {
		case ch <- e:
		default:
			// Slow or absent subscriber: drop rather than block the solve.
		}
	}
	closeRun = func() {
		s.mu.Lock()
		delete(s.runs, runID)
		s.mu.Unlock()
		close(ch)
	}
	return publish, closeRun
}

// Mux builds the HTTP handler: GET /healthz and GET /solve/stream?run_id=.
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/solve/stream", s.handleStream)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	runID := r.URL.Query().Get("run_id")
	if runID == "" {
		http.Error(w, "missing run_id", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	ch, ok := s.runs[runID]
	s.mu.Unlock()
	if !ok {
		http.Error(w, "unknown run_id", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "stream unsupported", http.StatusInternalServerError)
		return
	}

	for {
		select {
		case e, open := <-ch:
			if !open {
				return
			}
			name, payload := eventPayload(e)
			b, _ := json.Marshal(payload)
			fmt.Fprintf(w, "event: %s\n", name)
			fmt.Fprintf(w, "data: %s\n\n", b)
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}

func eventPayload(e Event) (string, any) {
	switch ev := e.(type) {
	case RunStartedEvent:
		return "run_started", ev
	case ScheduleGeneratedEvent:
		return "schedule_generated", ev
	case TurnsDecomposedEvent:
		return "turns_decomposed", ev
	case CostsBuiltEvent:
		return "costs_built", ev
	case VariablesCreatedEvent:
		return "variables_created", ev
	case ConstraintFamilyBuiltEvent:
		return "constraint_family_built", ev
	case SolverInvokedEvent:
		return "solver_invoked", ev
	case SolverDoneEvent:
		return "solver_done", ev
	case RunErrorEvent:
		return "run_error", ev
	default:
		return "unknown", ev
	}
}

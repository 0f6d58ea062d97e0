package webhook

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"sotd-bot/domain"
	"sotd-bot/infrastructure/groupme"
	"sotd-bot/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shirou/gopsutil/process"
)

// Server receives GroupMe callbacks and hands them to the dispatcher.
// It always answers 200: GroupMe retries non-2xx deliveries, and a
// retried storm of broken payloads helps nobody.
type Server struct {
	log        *slog.Logger
	dispatcher *services.Dispatcher
	poster     groupme.IPoster
	proc       *process.Process
}

func NewServer(log *slog.Logger, dispatcher *services.Dispatcher, poster groupme.IPoster) *Server {
	// Best effort: health reporting degrades gracefully if the process
	// handle cannot be obtained.
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process stats unavailable", "error", err)
	}
	return &Server{log: log, dispatcher: dispatcher, poster: poster, proc: proc}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Post("/callback", s.handleCallback)
	r.Get("/healthz", s.handleHealth)
	r.Head("/healthz", s.handleHealth)
	return r
}

// callbackPayload is the slice of GroupMe's callback body the bot
// cares about.
type callbackPayload struct {
	ID         string `json:"id"`
	SenderType string `json:"sender_type"`
	SenderID   string `json:"sender_id"`
	Name       string `json:"name"`
	Text       string `json:"text"`
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	log := s.log.With("request_id", uuid.NewString())

	var payload callbackPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Warn("Undecodable callback body", "error", err)
		s.ok(w)
		return
	}

	reply, err := s.dispatcher.Dispatch(domain.InboundMessage{
		ID:         payload.ID,
		SenderType: payload.SenderType,
		SenderID:   payload.SenderID,
		Name:       payload.Name,
		Text:       payload.Text,
	})
	if err != nil {
		// Operator problem, not a chat problem: stay silent in the group.
		log.Error("Dispatch failed", "sender_id", payload.SenderID, "error", err)
		s.ok(w)
		return
	}

	if reply != nil {
		// The queue mutation is already committed; delivery is best
		// effort and a failure here is not rolled back.
		if err := s.poster.Post(r.Context(), reply.Text, reply.Mention); err != nil {
			log.Error("Reply post failed", "error", err)
		}
	}
	s.ok(w)
}

type healthResponse struct {
	Status    string  `json:"status"`
	Pid       int     `json:"pid"`
	PidStatus string  `json:"pid_status,omitempty"`
	RamBytes  uint64  `json:"ram_bytes,omitempty"`
	Cpu       float64 `json:"cpu_percent,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	res := healthResponse{Status: "ok", Pid: os.Getpid()}
	if s.proc != nil {
		if memInfo, err := s.proc.MemoryInfo(); err == nil {
			res.RamBytes = memInfo.RSS
		}
		if cpu, err := s.proc.CPUPercent(); err == nil {
			res.Cpu = cpu
		}
		if status, err := s.proc.Status(); err == nil {
			res.PidStatus = status
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

func (s *Server) ok(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/Acos2ver/AnimalGame/internal/store"
)

// Service exposes the game registry over HTTP. The archive and the
// spectator hub are optional; a nil archive disables archiving and a nil
// hub disables the websocket feed.
type Service struct {
	registry *Registry
	archive  *store.Store
	hub      *Hub
}

func NewService(registry *Registry, archive *store.Store, hub *Hub) *Service {
	return &Service{
		registry: registry,
		archive:  archive,
		hub:      hub,
	}
}

// Router builds the REST surface. Used by the server binary and by tests.
func (s *Service) Router() *mux.Router {
	router := mux.NewRouter()

	// Add CORS middleware
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.HealthHandler).Methods("GET")
	api.HandleFunc("/games", s.CreateGameHandler).Methods("POST")
	api.HandleFunc("/games", s.ListGamesHandler).Methods("GET")
	api.HandleFunc("/games/{id}", s.GetGameHandler).Methods("GET")
	api.HandleFunc("/games/{id}/moves", s.MakeMoveHandler).Methods("POST")
	api.HandleFunc("/archive", s.ArchiveHandler).Methods("GET")

	if s.hub != nil {
		router.HandleFunc("/ws", s.WebSocketHandler(s.hub))
	}

	return router
}

func (s *Service) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

func (s *Service) CreateGameHandler(w http.ResponseWriter, r *http.Request) {
	view := s.registry.Create()

	log.Info().Str("gameID", view.ID).Msg("Game created")

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(view)
}

func (s *Service) GetGameHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	view, err := s.registry.Get(gameID)
	if err != nil {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(view)
}

func (s *Service) ListGamesHandler(w http.ResponseWriter, r *http.Request) {
	games := s.registry.List()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"games": games,
		"total": len(games),
	})
}

type MakeMoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (s *Service) MakeMoveHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	var req MakeMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, finished, err := s.registry.Move(gameID, req.From, req.To)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			http.Error(w, "Game not found", http.StatusNotFound)
			return
		}
		// Engine rejections are non-fatal; nothing changed.
		log.Info().Str("gameID", gameID).Str("from", req.From).Str("to", req.To).Err(err).Msg("Move rejected")
		http.Error(w, "Move rejected: "+err.Error(), http.StatusBadRequest)
		return
	}

	log.Info().
		Str("gameID", gameID).
		Str("from", result.From).
		Str("to", result.To).
		Str("player", string(result.Player)).
		Bool("capture", result.Capture).
		Str("state", string(result.State)).
		Msg("Move executed")

	if s.hub != nil {
		s.hub.BroadcastGameUpdate(GameUpdate{
			GameID: gameID,
			Type:   updateTypeFor(result.GameOver),
			Data:   result,
		})
	}

	if finished != nil && s.archive != nil {
		if err := s.archive.SaveGame(finished.Record, finished.Moves); err != nil {
			// The move already happened; archiving is bookkeeping.
			log.Error().Err(err).Str("gameID", gameID).Msg("Failed to archive finished game")
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

func updateTypeFor(gameOver bool) string {
	if gameOver {
		return "game_end"
	}
	return "move"
}

func (s *Service) ArchiveHandler(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		http.Error(w, "Archive disabled", http.StatusNotFound)
		return
	}

	records, err := s.archive.ListGames()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list archived games")
		http.Error(w, "Failed to list archived games", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"games": records,
		"total": len(records),
	})
}

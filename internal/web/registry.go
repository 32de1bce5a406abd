package web

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Acos2ver/AnimalGame/internal/game"
	"github.com/Acos2ver/AnimalGame/internal/store"
)

var ErrGameNotFound = errors.New("game not found")

// Registry holds the live games in memory. Its lock serializes move
// execution, which satisfies the engine's single-writer requirement.
type Registry struct {
	mu    sync.RWMutex
	games map[string]*liveGame
}

type liveGame struct {
	id        string
	game      *game.Game
	createdAt time.Time
	moves     []store.MoveRecord
}

// GameView is a read-only snapshot of a live game.
type GameView struct {
	ID        string      `json:"id"`
	State     game.State  `json:"state"`
	Turn      game.Player `json:"turn"`
	MoveCount int         `json:"moveCount"`
	Board     string      `json:"board"`
	CreatedAt time.Time   `json:"createdAt"`
}

// FinishedGame is the archive payload produced by the move that ended a
// game.
type FinishedGame struct {
	Record store.GameRecord
	Moves  []store.MoveRecord
}

func NewRegistry() *Registry {
	return &Registry{games: make(map[string]*liveGame)}
}

// Create starts a new game at the fixed starting layout and returns its
// snapshot.
func (r *Registry) Create() GameView {
	lg := &liveGame{
		id:        uuid.New().String(),
		game:      game.New(),
		createdAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.games[lg.id] = lg
	r.mu.Unlock()

	return lg.view()
}

func (r *Registry) Get(id string) (GameView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lg, ok := r.games[id]
	if !ok {
		return GameView{}, ErrGameNotFound
	}
	return lg.view(), nil
}

// List returns snapshots of every live game, finished ones included.
func (r *Registry) List() []GameView {
	r.mu.RLock()
	defer r.mu.RUnlock()

	views := make([]GameView, 0, len(r.games))
	for _, lg := range r.games {
		views = append(views, lg.view())
	}
	return views
}

// Move applies a move to a live game. Engine rejections come back as the
// validator's sentinel errors with no state change. When the move ends the
// game, the returned FinishedGame carries everything the archive needs.
func (r *Registry) Move(id, from, to string) (*game.MoveResult, *FinishedGame, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lg, ok := r.games[id]
	if !ok {
		return nil, nil, ErrGameNotFound
	}

	result, err := lg.game.Apply(from, to)
	if err != nil {
		return nil, nil, err
	}

	lg.moves = append(lg.moves, store.MoveRecord{
		Seq:     lg.game.MoveCount(),
		Player:  result.Player,
		From:    result.From,
		To:      result.To,
		Capture: result.Capture,
	})

	if !result.GameOver {
		return result, nil, nil
	}

	finished := &FinishedGame{
		Record: store.GameRecord{
			ID:         lg.id,
			Winner:     result.Player,
			MoveCount:  lg.game.MoveCount(),
			FinalBoard: lg.game.Render(),
			FinishedAt: time.Now().UTC(),
		},
		Moves: append([]store.MoveRecord(nil), lg.moves...),
	}
	return result, finished, nil
}

func (lg *liveGame) view() GameView {
	return GameView{
		ID:        lg.id,
		State:     lg.game.GameState(),
		Turn:      lg.game.Turn(),
		MoveCount: lg.game.MoveCount(),
		Board:     lg.game.Render(),
		CreatedAt: lg.createdAt,
	}
}

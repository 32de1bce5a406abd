package web

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Acos2ver/AnimalGame/internal/game"
)

func TestSpectatorReceivesMoveUpdates(t *testing.T) {
	registry := NewRegistry()
	hub := NewHub()
	go hub.Run()
	service := NewService(registry, nil, hub)
	srv := httptest.NewServer(service.Router())
	defer srv.Close()

	view := registry.Create()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?gameId=" + view.ID
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	defer conn.Close()
	defer resp.Body.Close()

	// Give the hub a moment to register the spectator before moving.
	time.Sleep(100 * time.Millisecond)

	if _, _, err := registry.Move(view.ID, "c1", "c4"); err != nil {
		t.Fatalf("Move: %v", err)
	}
	hub.BroadcastGameUpdate(GameUpdate{GameID: view.ID, Type: "move", Data: map[string]string{"from": "c1", "to": "c4"}})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read update: %v", err)
	}

	var update GameUpdate
	if err := json.Unmarshal(message, &update); err != nil {
		t.Fatalf("unmarshal update: %v", err)
	}
	if update.GameID != view.ID || update.Type != "move" {
		t.Errorf("update = %+v, expected a move frame for game %s", update, view.ID)
	}
}

func TestWebSocketRequiresKnownGame(t *testing.T) {
	registry := NewRegistry()
	hub := NewHub()
	go hub.Run()
	service := NewService(registry, nil, hub)
	srv := httptest.NewServer(service.Router())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?gameId=unknown"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		t.Fatal("expected the dial to fail for an unknown game")
	}
	if resp != nil {
		resp.Body.Close()
	}
}

func TestRegistryMoveUnknownGame(t *testing.T) {
	registry := NewRegistry()
	if _, _, err := registry.Move("missing", "c1", "c4"); err != ErrGameNotFound {
		t.Errorf("err = %v, expected ErrGameNotFound", err)
	}
}

func TestRegistryFinishedPayload(t *testing.T) {
	registry := NewRegistry()
	view := registry.Create()

	script := [][2]string{
		{"c1", "c4"}, {"a7", "b6"}, {"c4", "c7"}, {"b6", "a5"}, {"c7", "d7"},
	}

	var finished *FinishedGame
	for i, mv := range script {
		result, fin, err := registry.Move(view.ID, mv[0], mv[1])
		if err != nil {
			t.Fatalf("move %d (%s->%s): %v", i, mv[0], mv[1], err)
		}
		if i < len(script)-1 && (fin != nil || result.GameOver) {
			t.Fatalf("move %d ended the game early", i)
		}
		finished = fin
	}

	if finished == nil {
		t.Fatal("expected a finished payload from the winning move")
	}
	if finished.Record.Winner != game.Tangerine {
		t.Errorf("winner = %v, expected Tangerine", finished.Record.Winner)
	}
	if finished.Record.MoveCount != len(script) || len(finished.Moves) != len(script) {
		t.Errorf("finished payload counts = %d/%d, expected %d", finished.Record.MoveCount, len(finished.Moves), len(script))
	}
	if finished.Moves[0].Seq != 1 || finished.Moves[len(finished.Moves)-1].Seq != len(script) {
		t.Error("move records should be numbered from 1 in order")
	}
}

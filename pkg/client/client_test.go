package client

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"snakepit-robot/pkg/robot"
)

// fakeServer upgrades one connection and plays a scripted session
func fakeServer(t *testing.T, script func(*websocket.Conn)) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		script(conn)
	}))
}

func writeServerEvent(t *testing.T, conn *websocket.Conn, eventType string, data any) {
	t.Helper()
	payload, err := json.Marshal(data)
	if err != nil {
		t.Errorf("marshal %s: %v", eventType, err)
		return
	}
	if err := conn.WriteJSON(Event{Type: eventType, Data: payload}); err != nil {
		t.Errorf("write %s: %v", eventType, err)
	}
}

func readClientEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var event Event
	_, message, err := conn.ReadMessage()
	if err != nil {
		t.Errorf("server read: %v", err)
		return event
	}
	if err := json.Unmarshal(message, &event); err != nil {
		t.Errorf("server parse: %v", err)
	}
	return event
}

func TestClientPlaysScriptedGame(t *testing.T) {
	frame := Frame{
		Turn: 1,
		Rows: []string{
			"+---+",
			"| @ |",
			"+---+",
		},
		Colors: [][]int{
			{0, 0, 0, 0, 0},
			{0, 0, 1, 0, 0},
			{0, 0, 0, 0, 0},
		},
	}

	var gotMove Move
	server := fakeServer(t, func(conn *websocket.Conn) {
		register := readClientEvent(t, conn)
		if register.Type != EventRegister {
			t.Errorf("first event = %s, want register", register.Type)
		}
		var reg Register
		if err := json.Unmarshal(register.Data, &reg); err != nil || reg.Name != "tester" {
			t.Errorf("register payload = %s", register.Data)
		}

		writeServerEvent(t, conn, EventHandshake, Handshake{Color: 1, Width: 5, Height: 3})
		writeServerEvent(t, conn, EventFrame, frame)

		move := readClientEvent(t, conn)
		if move.Type != EventMove {
			t.Errorf("answer event = %s, want move", move.Type)
		}
		if err := json.Unmarshal(move.Data, &gotMove); err != nil {
			t.Errorf("move payload: %v", err)
		}

		writeServerEvent(t, conn, EventGameOver, GameOver{Winner: 1})
	})
	defer server.Close()

	cfg := DefaultConfig()
	cfg.ServerURL = "ws" + strings.TrimPrefix(server.URL, "http")
	cfg.Name = "tester"

	log := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	c, err := Dial(cfg, log)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	err = c.Run(context.Background(), func(color int) *robot.Robot {
		if color != 1 {
			t.Errorf("robot color = %d, want 1", color)
		}
		return robot.New(color, robot.Config{Iterations: 20, RolloutDepth: 3, Seed: 1})
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if gotMove.Turn != 1 {
		t.Fatalf("move turn = %d, want 1", gotMove.Turn)
	}
	switch gotMove.Direction {
	case "up", "down", "left", "right":
	default:
		t.Fatalf("direction = %q, want a canonical direction", gotMove.Direction)
	}
}

func TestClientFrameBeforeHandshake(t *testing.T) {
	server := fakeServer(t, func(conn *websocket.Conn) {
		readClientEvent(t, conn) // register
		writeServerEvent(t, conn, EventFrame, Frame{Turn: 1})
		// Give the client a moment to fail before tearing down
		time.Sleep(100 * time.Millisecond)
	})
	defer server.Close()

	cfg := DefaultConfig()
	cfg.ServerURL = "ws" + strings.TrimPrefix(server.URL, "http")

	log := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	c, err := Dial(cfg, log)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	err = c.Run(context.Background(), func(color int) *robot.Robot {
		return robot.New(color, robot.DefaultConfig())
	})
	if err == nil {
		t.Fatal("no error for a frame before the handshake")
	}
}

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

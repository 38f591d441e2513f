// Package client speaks the snakepit server protocol: register the
// robot player over a websocket, stream world frames, and answer each
// one with a direction. The search core stays oblivious to all of this,
// it only ever sees decoded world snapshots.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"snakepit-robot/pkg/robot"
	"snakepit-robot/pkg/snakepit"
)

type Config struct {
	// Websocket URL of the snakepit server
	ServerURL string

	// Player name sent on registration
	Name string

	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
}

func DefaultConfig() Config {
	return Config{
		ServerURL:      "ws://localhost:8765/connect",
		Name:           "RobotSnake",
		ConnectTimeout: 10 * time.Second,
		ReadTimeout:    30 * time.Second,
	}
}

type Client struct {
	cfg  Config
	conn *websocket.Conn
	log  *slog.Logger
}

// Dial connects and registers the player. Close the client when done.
func Dial(cfg Config, log *slog.Logger) (*Client, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: cfg.ConnectTimeout,
	}

	conn, _, err := dialer.Dial(cfg.ServerURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.ServerURL, err)
	}

	c := &Client{cfg: cfg, conn: conn, log: log}
	if err := c.writeEvent(EventRegister, Register{Name: cfg.Name}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	return c, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Run plays one game to completion. The robot is created from the
// factory once the handshake reveals the assigned color; every frame is
// decoded, handed to the robot, and answered with the chosen direction.
func (c *Client) Run(ctx context.Context, newRobot func(color int) *robot.Robot) error {
	var bot *robot.Robot
	first := true

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		event, err := c.readEvent()
		if err != nil {
			// A normal close ends the game cleanly
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read error: %w", err)
		}

		switch event.Type {
		case EventHandshake:
			var handshake Handshake
			if err := json.Unmarshal(event.Data, &handshake); err != nil {
				return fmt.Errorf("failed to parse handshake: %w", err)
			}
			bot = newRobot(handshake.Color)
			c.log.Info("registered",
				"name", c.cfg.Name,
				"color", handshake.Color,
				"width", handshake.Width,
				"height", handshake.Height)

		case EventFrame:
			if bot == nil {
				return fmt.Errorf("frame received before handshake")
			}

			var frame Frame
			if err := json.Unmarshal(event.Data, &frame); err != nil {
				c.log.Warn("skipping malformed frame", "err", err)
				continue
			}

			world, err := snakepit.NewWorldFromRows(frame.Rows, frame.Colors)
			if err != nil {
				c.log.Warn("skipping malformed frame", "turn", frame.Turn, "err", err)
				continue
			}

			move, ok := bot.NextDirection(world, first)
			first = false

			direction := ""
			if ok {
				direction = move.String()
			}
			c.log.Debug("sending move", "turn", frame.Turn, "direction", direction)
			if err := c.writeEvent(EventMove, Move{Turn: frame.Turn, Direction: direction}); err != nil {
				return fmt.Errorf("failed to send move: %w", err)
			}

		case EventGameOver:
			var over GameOver
			if err := json.Unmarshal(event.Data, &over); err == nil {
				c.log.Info("game over", "winner", over.Winner, "scores", over.Scores)
			}
			return nil

		default:
			c.log.Debug("ignoring event", "type", event.Type)
		}
	}
}

func (c *Client) readEvent() (Event, error) {
	var event Event
	if err := c.conn.SetReadDeadline(time.Now().Add(c.cfg.ReadTimeout)); err != nil {
		return event, err
	}

	_, message, err := c.conn.ReadMessage()
	if err != nil {
		return event, err
	}
	if err := json.Unmarshal(message, &event); err != nil {
		return event, fmt.Errorf("failed to parse event: %w", err)
	}
	return event, nil
}

func (c *Client) writeEvent(eventType string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.conn.WriteJSON(Event{Type: eventType, Data: payload})
}

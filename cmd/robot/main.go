// Command robot runs the snakepit bot. By default it connects to a game
// server over websocket and plays; with -local it plays a self-match in
// the terminal instead, which is the quickest way to eyeball a tuning
// change.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"snakepit-robot/pkg/arena"
	"snakepit-robot/pkg/client"
	"snakepit-robot/pkg/logging"
	"snakepit-robot/pkg/robot"
	"snakepit-robot/pkg/snakepit"
)

func main() {
	var (
		serverURL    = flag.String("server", client.DefaultConfig().ServerURL, "game server websocket URL")
		name         = flag.String("name", client.DefaultConfig().Name, "name to register with")
		iterations   = flag.Int("iterations", robot.DefaultConfig().Iterations, "search iterations per decision")
		rolloutDepth = flag.Int("rollout-depth", robot.DefaultConfig().RolloutDepth, "random moves per rollout")
		exploration  = flag.Float64("exploration", robot.DefaultConfig().Exploration, "UCB1 exploration constant")
		seed         = flag.Int64("seed", 0, "search RNG seed, 0 uses the clock")
		verbose      = flag.Bool("verbose", false, "log per-decision search stats")
		local        = flag.Bool("local", false, "play a local self-match instead of connecting")
		localSize    = flag.Int("local-size", 14, "local match grid size")
		localTurns   = flag.Int("local-turns", 200, "local match turn cap")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(logging.NewPrettyJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := robot.Config{
		Iterations:   *iterations,
		RolloutDepth: *rolloutDepth,
		Exploration:  *exploration,
		Seed:         *seed,
	}

	if *local {
		if err := runLocal(cfg, *localSize, *localTurns, *seed, log); err != nil {
			log.Error("local match failed", "error", err)
			os.Exit(1)
		}
		return
	}

	clientCfg := client.DefaultConfig()
	clientCfg.ServerURL = *serverURL
	clientCfg.Name = *name

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := client.Dial(clientCfg, log)
	if err != nil {
		log.Error("connect failed", "server", *serverURL, "error", err)
		os.Exit(1)
	}

	err = conn.Run(ctx, func(color int) *robot.Robot {
		bot := robot.New(color, cfg)
		if *verbose {
			bot.Trace = func(trace robot.DecisionTrace) {
				log.Debug("decision",
					"move", trace.Move.String(),
					"agents", trace.Agents,
					"cycles", trace.Stats.Cycles,
					"depth", trace.Stats.MaxDepth,
					"elapsed", trace.Stats.Elapsed,
				)
			}
		}
		return bot
	})
	if err != nil {
		log.Error("game aborted", "error", err)
		os.Exit(1)
	}
	log.Info("game over")
}

func runLocal(cfg robot.Config, size, turns int, seed int64, log *slog.Logger) error {
	if seed == 0 {
		seed = 1
	}
	match := arena.NewMatch(size, size, size/2, turns, seed)
	colors := match.Colors()

	out := termenv.NewOutput(os.Stdout)
	match.OnTurn = func(turn int, world *snakepit.World) {
		fmt.Fprintf(out, "turn %d\n%s\n", turn, renderWorld(out, world))
	}

	cfg2 := cfg
	if cfg.Seed != 0 {
		cfg2.Seed = cfg.Seed + 1
	}
	result := match.Play(robot.New(colors[0], cfg), robot.New(colors[1], cfg2))

	log.Info("match finished",
		"outcome", result.Outcome.String(),
		"turns", result.Turns,
		"score1", result.Scores[0],
		"score2", result.Scores[1],
	)
	return nil
}

// renderWorld colors the grid per cell: snakes by their color index,
// numerals highlighted, dead markers dimmed
func renderWorld(out *termenv.Output, world *snakepit.World) string {
	var sb []byte
	for y := 0; y < world.Height(); y++ {
		for x := 0; x < world.Width(); x++ {
			cell := world.At(snakepit.Position{X: x, Y: y})
			sb = append(sb, styleCell(out, cell)...)
		}
		sb = append(sb, '\n')
	}
	return string(sb)
}

func styleCell(out *termenv.Output, cell snakepit.Cell) string {
	s := out.String(string(cell.Char))
	switch {
	case cell.Char == snakepit.CharHead, cell.Char == snakepit.CharBody, cell.Char == snakepit.CharTail:
		s = s.Foreground(snakeColor(out, cell.Color)).Bold()
	case snakepit.IsNumeral(cell.Char):
		s = s.Foreground(out.Color("3")).Bold()
	case cell.Char == snakepit.CharDeadHead, cell.Char == snakepit.CharDeadBody, cell.Char == snakepit.CharDeadTail:
		s = s.Faint()
	}
	return s.String()
}

func snakeColor(out *termenv.Output, color int) termenv.Color {
	switch color {
	case 1:
		return out.Color("2")
	case 2:
		return out.Color("1")
	}
	return out.Color("6")
}

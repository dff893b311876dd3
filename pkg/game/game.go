// Package game implements the command interpreter and the turn loop of
// the fiction engine: a table of commands, one handler per command, and a
// per-tick driver that solicits a line of input from every player entity,
// dispatches it, and emits the response.
package game

import (
	"errors"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/willowmere/gofiction/pkg/mecs"
	"github.com/willowmere/gofiction/pkg/transcript"
	"github.com/willowmere/gofiction/pkg/world"
)

// Responder is the console seam: one prompt/read per turn, any number of
// sends. ReadLine returns io.EOF when the input stream ends.
type Responder interface {
	Send(msg string)
	ReadLine() (string, error)
}

// Game binds a scene to the command table and the console. It is the
// engine's only system: Start renders the opening room, Update runs one
// turn per player entity.
type Game struct {
	Scene    *mecs.Scene
	Commands map[string]*Command
	Console  Responder
	Log      *logrus.Logger
	Recorder *transcript.Store // optional, nil disables recording

	turn int
	done bool
}

// NewGame wires a game around an already-built scene.
func NewGame(scene *mecs.Scene, console Responder, log *logrus.Logger) *Game {
	if log == nil {
		log = logrus.New()
	}
	return &Game{
		Scene:    scene,
		Commands: InitCommands(),
		Console:  console,
		Log:      log,
	}
}

// Dispatch parses one raw input line for the acting entity and returns
// the response text. Empty input yields an empty response.
func (g *Game) Dispatch(actor mecs.Entity, line string) string {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return ""
	}
	cmd, ok := g.Commands[fields[0]]
	if !ok {
		return UnknownCommand
	}
	return cmd.Handler(g, actor, fields[1:])
}

// Start shows every player entity its starting room, mirroring an initial
// 'look'.
func (g *Game) Start(sc *mecs.Scene) {
	for _, player := range sc.Select(world.KindPlayer) {
		g.Console.Send(cmdLook(g, player, nil))
	}
}

// Update runs one turn for every player entity, in the store's iteration
// order. Input exhaustion ends the loop cleanly.
func (g *Game) Update(sc *mecs.Scene) {
	for _, player := range sc.Select(world.KindPlayer) {
		line, err := g.Console.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				g.Log.WithError(err).Error("reading player input")
			}
			g.done = true
			return
		}

		response := g.Dispatch(player, line)
		if response == "" {
			continue
		}
		g.Console.Send(response)

		g.turn++
		g.Log.WithFields(logrus.Fields{
			"turn":   g.turn,
			"player": int(player),
			"input":  strings.TrimSpace(line),
		}).Debug("turn complete")

		if g.Recorder != nil {
			err := g.Recorder.Append(transcript.Turn{
				Number:   g.turn,
				Actor:    int(player),
				Input:    strings.TrimSpace(line),
				Response: response,
			})
			if err != nil {
				g.Log.WithError(err).Warn("recording transcript turn")
			}
		}
	}
}

// Done reports whether the input stream has ended.
func (g *Game) Done() bool {
	return g.done
}

// Run drives the scene's scheduler with the game as its only system until
// the input stream ends.
func (g *Game) Run() {
	g.Scene.Start(g)
	for !g.done {
		g.Scene.Update(g)
	}
}

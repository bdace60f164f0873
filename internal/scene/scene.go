// Package scene defines the contract every mini-game implements and the
// closed set of scene identifiers the session moves through.
package scene

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/valentine-arcade/internal/config"
	"github.com/vovakirdan/valentine-arcade/internal/core"
	"github.com/vovakirdan/valentine-arcade/internal/engine"
)

// ID identifies a scene. The set is closed; Next is the transition table.
type ID int

const (
	Memory ID = iota
	Jigsaw
	Tomato
	Valentine
)

// All lists every scene in play order.
var All = []ID{Memory, Jigsaw, Tomato, Valentine}

// String returns the scene's short name, used in the CLI and logs.
func (id ID) String() string {
	switch id {
	case Memory:
		return "memory"
	case Jigsaw:
		return "jigsaw"
	case Tomato:
		return "tomato"
	case Valentine:
		return "valentine"
	default:
		return fmt.Sprintf("scene(%d)", int(id))
	}
}

// Title returns the display name for the scene.
func (id ID) Title() string {
	switch id {
	case Memory:
		return "Memory Match"
	case Jigsaw:
		return "Jigsaw"
	case Tomato:
		return "Tomato Toss"
	case Valentine:
		return "Be My Valentine"
	default:
		return id.String()
	}
}

// Valid reports whether id is one of the known scenes.
func (id ID) Valid() bool {
	return id >= Memory && id <= Valentine
}

// Next returns the scene that follows id. The final scene has no successor.
func Next(id ID) (ID, bool) {
	switch id {
	case Memory:
		return Jigsaw, true
	case Jigsaw:
		return Tomato, true
	case Tomato:
		return Valentine, true
	case Valentine:
		return 0, false
	default:
		return 0, false
	}
}

// Parse resolves a scene name (case-insensitive).
func Parse(name string) (ID, error) {
	for _, id := range All {
		if strings.EqualFold(name, id.String()) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("scene: unknown scene %q", name)
}

// Scene is one self-contained mini-game. All methods are called from the
// platform loop; a scene never runs concurrently with itself.
type Scene interface {
	// ID returns the scene identifier.
	ID() ID

	// Enter lays the scene out and registers its listeners and timers
	// on ctx.Scope. Called once.
	Enter(ctx *Context)

	// Tick runs per-frame simulation after the scope's timers and tweens
	// have been advanced by dt.
	Tick(dt time.Duration)

	// Exit is called before the scope is closed. Scenes release anything
	// they hold outside the scope.
	Exit()

	// Render draws the scene into the pre-cleared screen buffer.
	Render(dst *core.Screen)
}

// AnswerSink receives the Valentine answer. Submit must not block.
type AnswerSink interface {
	Submit(answer string)
}

// AnswerFunc adapts a function to AnswerSink.
type AnswerFunc func(answer string)

// Submit calls f(answer).
func (f AnswerFunc) Submit(answer string) { f(answer) }

// Context is what a scene gets from the session while it is active.
type Context struct {
	Scope   *engine.Scope
	Runtime core.RuntimeConfig
	Tuning  config.Config
	Rand    *rand.Rand
	Log     *log.Logger
	Answers AnswerSink

	handoff func(next ID)
}

// NewContext builds a context. handoff is invoked by Handoff.
// A nil logger discards output and a nil answer sink drops answers.
func NewContext(scope *engine.Scope, rt core.RuntimeConfig, tuning config.Config, rng *rand.Rand, logger *log.Logger, answers AnswerSink, handoff func(ID)) *Context {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if answers == nil {
		answers = AnswerFunc(func(string) {})
	}
	return &Context{
		Scope:   scope,
		Runtime: rt,
		Tuning:  tuning,
		Rand:    rng,
		Log:     logger,
		Answers: answers,
		handoff: handoff,
	}
}

// Handoff asks the session to activate next once the current callback returns.
func (c *Context) Handoff(next ID) {
	if c.handoff != nil {
		c.handoff(next)
	}
}

// Width returns the playfield width in world units.
func (c *Context) Width() float64 {
	return float64(c.Runtime.ScreenW)
}

// Height returns the playfield height in world units.
func (c *Context) Height() float64 {
	return float64(c.Runtime.ScreenH)
}

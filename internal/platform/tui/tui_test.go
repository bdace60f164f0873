package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/valentine-arcade/internal/config"
	"github.com/vovakirdan/valentine-arcade/internal/core"
	"github.com/vovakirdan/valentine-arcade/internal/host"
	"github.com/vovakirdan/valentine-arcade/internal/registry"
	"github.com/vovakirdan/valentine-arcade/internal/scene"
	"github.com/vovakirdan/valentine-arcade/internal/session"
	"github.com/vovakirdan/valentine-arcade/internal/storage"
)

// recorder records the input it receives and hands off on confirm.
type recorder struct {
	id       scene.ID
	pointers []core.PointerEvent
	ticks    int
	width    float64
}

func (r *recorder) ID() scene.ID { return r.id }

func (r *recorder) Enter(ctx *scene.Context) {
	r.width = ctx.Width()
	ctx.Scope.OnPointer(func(ev core.PointerEvent) { r.pointers = append(r.pointers, ev) })
	ctx.Scope.OnKey(func(a core.Action) {
		if next, ok := scene.Next(r.id); ok && a == core.ActionConfirm {
			ctx.Handoff(next)
		}
	})
}

func (r *recorder) Tick(time.Duration) { r.ticks++ }
func (r *recorder) Exit()              {}

func (r *recorder) Render(dst *core.Screen) {
	dst.DrawTextColored(0, 0, r.id.Title(), core.ColorRose)
}

func newTestModel(t *testing.T) (Model, map[scene.ID]*recorder) {
	t.Helper()

	created := make(map[scene.ID]*recorder)
	reg := registry.New()
	for _, id := range scene.All {
		reg.Register(id, func() scene.Scene {
			r := &recorder{id: id}
			created[id] = r
			return r
		})
	}

	cfg := core.DefaultConfig()
	h := host.New(host.Options{
		Session: session.Options{Runtime: cfg, Tuning: config.DefaultConfig(), Scenes: reg},
		First:   scene.Memory,
	})
	handle, err := h.Mount(host.Container{Name: "test", Width: cfg.ScreenW, Height: cfg.ScreenH - helpHeight})
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	t.Cleanup(func() { h.Unmount(handle) })

	return NewModel(handle, cfg), created
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionConfirm},
		{"help", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, core.ActionHelp},
		{"other", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.MouseMsg
		want   core.PointerEvent
		wantOK bool
	}{
		{
			name:   "left press",
			msg:    tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			want:   core.Down(3.5, 4.5),
			wantOK: true,
		},
		{
			name:   "motion",
			msg:    tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
			want:   core.Move(0.5, 0.5),
			wantOK: true,
		},
		{
			name:   "release",
			msg:    tea.MouseMsg{X: 10, Y: 2, Action: tea.MouseActionRelease},
			want:   core.Up(10.5, 2.5),
			wantOK: true,
		},
		{
			name:   "right press ignored",
			msg:    tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			wantOK: false,
		},
		{
			name:   "wheel ignored",
			msg:    tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapMouse(tt.msg)
			if ok != tt.wantOK {
				t.Fatalf("MapMouse ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("MapMouse = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestModelForwardsPointer(t *testing.T) {
	m, created := newTestModel(t)

	m.Update(tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	rec := created[scene.Memory]
	if len(rec.pointers) != 1 {
		t.Fatalf("scene got %d pointer events, want 1", len(rec.pointers))
	}
	if rec.pointers[0] != core.Down(5.5, 6.5) {
		t.Errorf("pointer = %+v, want down at (5.5, 6.5)", rec.pointers[0])
	}
}

func TestModelConfirmHandsOff(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	id, ok := m.handle.Session.Current()
	if !ok || id != scene.Jigsaw {
		t.Errorf("current scene = %v, want %v", id, scene.Jigsaw)
	}
}

func TestModelTickSchedulesNext(t *testing.T) {
	m, created := newTestModel(t)

	_, cmd := m.Update(TickMsg(time.Now()))

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := created[scene.Memory].ticks; got != 1 {
		t.Errorf("scene ticks = %d, want 1", got)
	}
}

func TestModelQuitsWhenUnmounted(t *testing.T) {
	m, _ := newTestModel(t)
	m.handle.Session.Teardown()

	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick on a closed session should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("tick on a closed session should quit")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(Model)

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	if m.screen.Width() != 100 || m.screen.Height() != 30-helpHeight {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 30-helpHeight)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "Memory Match") {
		t.Error("view should contain the active scene")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help line")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "hi", core.ColorPink)
	s.DrawText(0, 1, "there")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "hi") {
		t.Errorf("line 0 = %q, want it to contain %q", lines[0], "hi")
	}
	if !strings.Contains(lines[1], "there") {
		t.Errorf("line 1 = %q, want it to contain %q", lines[1], "there")
	}
}

type fakeSource struct {
	responses []storage.Response
	counts    []storage.AnswerCount
	err       error
	loads     int
}

func (f *fakeSource) RecentResponses(limit int) ([]storage.Response, error) {
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && len(f.responses) > limit {
		return f.responses[:limit], nil
	}
	return f.responses, nil
}

func (f *fakeSource) AnswerCounts() ([]storage.AnswerCount, error) {
	return f.counts, f.err
}

func TestResponsesModel(t *testing.T) {
	now := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	src := &fakeSource{
		responses: []storage.Response{
			{ID: 2, Answer: "YES", RemoteAddr: "10.0.0.2", CreatedAt: now},
			{ID: 1, Answer: "NO", CreatedAt: now},
		},
		counts: []storage.AnswerCount{
			{Answer: "YES", Count: 1, Last: now},
			{Answer: "NO", Count: 1, Last: now},
		},
	}

	m := NewResponsesModel(src, 10, 100, 30)
	view := m.View()

	for _, want := range []string{"RESPONSES (2)", "YES", "10.0.0.2", "Answers"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if src.loads != 2 {
		t.Errorf("loads = %d, want 2 after refresh", src.loads)
	}
}

func TestResponsesModelEmptyAndError(t *testing.T) {
	m := NewResponsesModel(&fakeSource{}, 10, 60, 20)
	if !strings.Contains(m.View(), "No responses") {
		t.Error("empty store should show the empty message")
	}

	m = NewResponsesModel(&fakeSource{err: errors.New("disk gone")}, 10, 60, 20)
	if !strings.Contains(m.View(), "disk gone") {
		t.Error("load error should be shown")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("abcdef", 3); got != "abcdef" {
		t.Errorf("centerText should not truncate, got %q", got)
	}
}

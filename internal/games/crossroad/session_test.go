package crossroad

import (
	"testing"

	"github.com/vovakirdan/tui-crossroad/internal/config"
	"github.com/vovakirdan/tui-crossroad/internal/core"
)

const frame = 1.0 / 60

func newTestSession(t *testing.T, cfg config.CrossroadConfig) *Session {
	t.Helper()
	s := NewSession(cfg, core.NewRNG(42))
	if s.State() != StateHome {
		t.Fatalf("new session state = %v, want home", s.State())
	}
	return s
}

// startRun confirms from the home screen and empties the roads.
func startRun(t *testing.T, s *Session) {
	t.Helper()
	events := s.Step(held(core.ActionConfirm), frame)
	if s.State() != StatePlaying {
		t.Fatalf("state after confirm = %v, want playing", s.State())
	}
	if len(events) != 1 || events[0].Kind != core.EventRunStarted {
		t.Fatalf("events = %+v, want one run_started", events)
	}
	clearRoads(s)
}

func clearRoads(s *Session) {
	for i := range s.world.lanes {
		s.world.lanes[i].carCount = 0
	}
}

// parkCarOnPlayer drops a stationary car right on top of the player.
func parkCarOnPlayer(s *Session) {
	ln := &s.world.lanes[1]
	ln.carCount = 1
	ln.cars[0] = Car{Box: s.player.Box(), Dir: 1, Active: true}
}

func kinds(events []core.Event) []core.EventKind {
	out := make([]core.EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestSessionHomeWaitsForConfirm(t *testing.T) {
	s := newTestSession(t, config.DefaultCrossroadConfig())

	for i := 0; i < 120; i++ {
		if ev := s.Step(held(core.ActionUp), frame); len(ev) != 0 {
			t.Fatalf("home screen emitted %v", kinds(ev))
		}
	}
	if s.State() != StateHome {
		t.Errorf("state = %v, want home", s.State())
	}
	if s.Remaining() != 35 {
		t.Errorf("clock ran on the home screen: %v", s.Remaining())
	}
	if s.Row() != 0 {
		t.Errorf("player moved on the home screen: row %d", s.Row())
	}

	startRun(t, s)
	if s.Runs() != 1 {
		t.Errorf("Runs = %d, want 1", s.Runs())
	}
}

func TestSessionMoveEvents(t *testing.T) {
	s := newTestSession(t, config.DefaultCrossroadConfig())
	startRun(t, s)

	ev := s.Step(held(core.ActionUp), frame)
	want := []core.EventKind{core.EventMoved, core.EventNewBest}
	if got := kinds(ev); len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("events = %v, want %v", got, want)
	}
	if ev[1].Score != 1 {
		t.Errorf("new_best score = %d, want 1", ev[1].Score)
	}

	// Wait out the cooldown, then step back: a move but no new best.
	for i := 0; i < 10; i++ {
		s.Step(held(), frame)
	}
	ev = s.Step(held(core.ActionDown), frame)
	if got := kinds(ev); len(got) != 1 || got[0] != core.EventMoved {
		t.Errorf("events = %v, want [moved]", got)
	}
	if s.Score() != 1 || s.Row() != 0 {
		t.Errorf("score=%d row=%d, want 1/0", s.Score(), s.Row())
	}
}

func TestSessionCameraFollowsPlayer(t *testing.T) {
	s := newTestSession(t, config.DefaultCrossroadConfig())
	startRun(t, s)

	s.Step(held(core.ActionUp), frame)
	if s.Camera().Target != s.PlayerBox().Center() {
		t.Errorf("camera target %+v, player center %+v", s.Camera().Target, s.PlayerBox().Center())
	}
}

func TestSessionDifficultyFollowsBestRow(t *testing.T) {
	s := newTestSession(t, config.DefaultCrossroadConfig())
	startRun(t, s)

	for s.Score() < 5 {
		s.Step(held(core.ActionUp), frame)
	}
	want := 1 + 0.07*5
	if d := s.Difficulty(); d < want-1e-9 || d > want+1e-9 {
		t.Errorf("Difficulty = %v, want %v", d, want)
	}
}

func TestSessionTimeUp(t *testing.T) {
	cfg := config.DefaultCrossroadConfig()
	cfg.Round.Duration = 2
	s := newTestSession(t, cfg)
	startRun(t, s)

	var last []core.Event
	for i := 0; i < 200 && s.State() == StatePlaying; i++ {
		last = s.Step(held(), frame)
	}

	if s.State() != StateGameOver || s.Reason() != EndTimeUp {
		t.Fatalf("state=%v reason=%v, want game_over/time_up", s.State(), s.Reason())
	}
	if len(last) != 1 || last[0].Kind != core.EventTimeUp || !last[0].IsRunEnd() {
		t.Errorf("final events = %v, want [time_up]", kinds(last))
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining = %v, want 0", s.Remaining())
	}
}

func TestSessionCrashAfterGracePeriod(t *testing.T) {
	s := newTestSession(t, config.DefaultCrossroadConfig())
	startRun(t, s)
	parkCarOnPlayer(s)

	elapsed := 0.0
	var last []core.Event
	for i := 0; i < 120 && s.State() == StatePlaying; i++ {
		last = s.Step(held(), frame)
		elapsed += frame
	}

	if s.Reason() != EndCrash {
		t.Fatalf("reason = %v, want crash", s.Reason())
	}
	if elapsed < 0.35-1e-9 {
		t.Errorf("crashed after %.3fs, inside the grace period", elapsed)
	}
	if len(last) != 1 || last[0].Kind != core.EventCrashed {
		t.Errorf("final events = %v, want [crashed]", kinds(last))
	}
}

func TestSessionEdgeTouchIsNotACrash(t *testing.T) {
	s := newTestSession(t, config.DefaultCrossroadConfig())
	startRun(t, s)

	ln := &s.world.lanes[1]
	ln.carCount = 1
	box := s.player.Box()
	ln.cars[0] = Car{Box: core.NewRectF(box.Right(), box.Y, 60, box.H), Dir: 1, Active: true}

	for i := 0; i < 60; i++ {
		s.Step(held(), frame)
	}
	if s.State() != StatePlaying {
		t.Errorf("state = %v after an edge touch, want playing", s.State())
	}
}

func TestSessionGameOverRestart(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
	}{
		{"confirm", core.ActionConfirm},
		{"restart", core.ActionRestart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultCrossroadConfig()
			cfg.Round.Duration = 0.5
			s := newTestSession(t, cfg)
			startRun(t, s)
			for s.State() == StatePlaying {
				s.Step(held(), frame)
			}

			// Movement keys do nothing on the game over screen.
			s.Step(held(core.ActionUp), frame)
			if s.State() != StateGameOver {
				t.Fatalf("state = %v, want game_over", s.State())
			}

			ev := s.Step(held(tt.action), frame)
			if s.State() != StatePlaying || s.Reason() != EndNone {
				t.Errorf("state=%v reason=%v, want playing/none", s.State(), s.Reason())
			}
			if len(ev) != 1 || ev[0].Kind != core.EventRunStarted {
				t.Errorf("events = %v, want [run_started]", kinds(ev))
			}
			if s.Runs() != 2 || s.Remaining() != 0.5 || s.Score() != 0 {
				t.Errorf("runs=%d remaining=%v score=%d", s.Runs(), s.Remaining(), s.Score())
			}
		})
	}
}

func TestSessionRestartWhilePlaying(t *testing.T) {
	s := newTestSession(t, config.DefaultCrossroadConfig())
	startRun(t, s)

	for s.Score() < 3 {
		s.Step(held(core.ActionUp), frame)
	}
	s.Step(held(core.ActionRestart), frame)

	if s.State() != StatePlaying {
		t.Errorf("state = %v, want playing", s.State())
	}
	if s.Row() != 0 || s.Score() != 0 || s.Remaining() != 35 {
		t.Errorf("row=%d score=%d remaining=%v after restart", s.Row(), s.Score(), s.Remaining())
	}
	if s.Runs() != 2 {
		t.Errorf("Runs = %d, want 2", s.Runs())
	}
}

func TestSessionPauseFreezesPlay(t *testing.T) {
	s := newTestSession(t, config.DefaultCrossroadConfig())
	startRun(t, s)
	parkCarOnPlayer(s)

	s.Step(held(core.ActionPause), frame)
	if !s.Paused() {
		t.Fatal("pause did not take")
	}
	remaining := s.Remaining()

	for i := 0; i < 300; i++ {
		s.Step(held(core.ActionUp), frame)
	}
	if s.Remaining() != remaining || s.Row() != 0 || s.State() != StatePlaying {
		t.Errorf("paused session advanced: remaining=%v row=%d state=%v", s.Remaining(), s.Row(), s.State())
	}

	s.Step(held(core.ActionPause), frame)
	if s.Paused() {
		t.Error("second pause should resume")
	}
}

func TestSessionDebugToggle(t *testing.T) {
	s := newTestSession(t, config.DefaultCrossroadConfig())

	s.Step(held(core.ActionDebug), frame)
	if !s.Debug() {
		t.Error("debug should be on")
	}
	startRun(t, s)
	s.Step(held(core.ActionDebug), frame)
	if s.Debug() {
		t.Error("debug should be off")
	}
}

func TestSessionNewRunRegeneratesWorld(t *testing.T) {
	s := newTestSession(t, config.DefaultCrossroadConfig())
	s.Step(held(core.ActionConfirm), frame)
	first, _ := s.world.Lane(1)

	s.Step(held(core.ActionRestart), frame)
	second, _ := s.world.Lane(1)

	if first.Cars()[0] == second.Cars()[0] {
		t.Error("restart should draw a new world from the RNG stream")
	}
}

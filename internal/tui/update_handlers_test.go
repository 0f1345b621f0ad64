package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/akyairhashvil/lapwatch/internal/models"
	"github.com/akyairhashvil/lapwatch/internal/testutil"
)

func TestStartArmsTickAndPauseCancels(t *testing.T) {
	m, clock := setupTestModel(t)
	m, cmd := press(t, m, " ")
	if !m.Engine().IsRunning() {
		t.Fatalf("expected running after space")
	}
	if cmd == nil {
		t.Fatalf("expected tick command on start")
	}
	gen := m.tickGen

	clock.AdvanceMs(250)
	m, cmd = m.handleTick(TickMsg{Gen: gen})
	if cmd == nil {
		t.Fatalf("expected tick to re-arm while running")
	}
	if m.display != "00:00.25" {
		t.Fatalf("display = %q, want 00:00.25", m.display)
	}

	m, cmd = press(t, m, " ")
	if m.Engine().IsRunning() {
		t.Fatalf("expected paused after second space")
	}
	if cmd != nil {
		t.Fatalf("pause should not schedule anything")
	}
	if _, cmd = m.handleTick(TickMsg{Gen: gen}); cmd != nil {
		t.Fatalf("stale tick re-armed after pause")
	}
}

func TestStartWhileRunningDoesNotDoubleTick(t *testing.T) {
	m, _ := setupTestModel(t)
	m, _ = press(t, m, "s")
	gen := m.tickGen
	m, cmd := handleStart(m)
	if cmd != nil || m.tickGen != gen {
		t.Fatalf("second start should not arm another tick")
	}
	if _, cmd := press(t, m, "s"); cmd != nil {
		t.Fatalf("start key should be disabled while running")
	}
}

func TestResetCancelsTick(t *testing.T) {
	m, clock := setupTestModel(t)
	m, _ = press(t, m, " ")
	gen := m.tickGen
	clock.AdvanceMs(900)
	m, _ = press(t, m, "l")
	m, _ = press(t, m, "r")

	if m.Engine().IsRunning() || m.Engine().Elapsed() != 0 || len(m.Engine().Laps()) != 0 {
		t.Fatalf("reset did not clear engine state")
	}
	if m.display != "00:00.00" {
		t.Fatalf("display = %q after reset", m.display)
	}
	if _, cmd := m.handleTick(TickMsg{Gen: gen}); cmd != nil {
		t.Fatalf("stale tick re-armed after reset")
	}
}

func TestTickWhileIdleIsDropped(t *testing.T) {
	m, _ := setupTestModel(t)
	if _, cmd := m.handleTick(TickMsg{Gen: m.tickGen}); cmd != nil {
		t.Fatalf("tick while idle should not re-arm")
	}
}

func TestTickDoesNotMutateEngine(t *testing.T) {
	m, clock := setupTestModel(t)
	m, _ = press(t, m, " ")
	clock.AdvanceMs(400)
	before := m.Engine().Snapshot()
	m, _ = m.handleTick(TickMsg{Gen: m.tickGen})
	after := m.Engine().Snapshot()
	if before.Elapsed != after.Elapsed || len(before.Laps) != len(after.Laps) || before.State != after.State {
		t.Fatalf("tick changed engine state: %+v -> %+v", before, after)
	}
}

func TestLapKeyOnlyWhileRunning(t *testing.T) {
	m, clock := setupTestModel(t)
	m, _ = press(t, m, "l")
	if len(m.Engine().Laps()) != 0 {
		t.Fatalf("lap recorded while idle")
	}
	m, _ = press(t, m, " ")
	clock.AdvanceMs(1500)
	m, _ = press(t, m, "l")
	clock.AdvanceMs(2700)
	m, _ = press(t, m, "l")
	m, _ = press(t, m, "p")
	clock.AdvanceMs(1000)
	m, _ = press(t, m, "l")

	laps := m.Engine().Laps()
	if len(laps) != 2 {
		t.Fatalf("len(laps) = %d, want 2", len(laps))
	}
	want := models.Lap{Number: 2, Total: testutil.Ms(4200), Split: testutil.Ms(2700)}
	if laps[1] != want {
		t.Fatalf("laps[1] = %+v, want %+v", laps[1], want)
	}
	if m.Engine().State() != models.StatePaused {
		t.Fatalf("state = %q, want paused", m.Engine().State())
	}
}

func TestViewShowsLapsAndStats(t *testing.T) {
	m, clock := setupTestModel(t)
	m, _ = press(t, m, " ")
	clock.AdvanceMs(1500)
	m, _ = press(t, m, "l")
	clock.AdvanceMs(2700)
	m, _ = press(t, m, "l")

	out := m.View()
	for _, want := range []string{"RUNNING", "2 laps", "Best: 00:01.50", "Worst: 00:02.70", "Lap 2", "Lap 1", "+00:02.70"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Lap 2") > strings.Index(out, "Lap 1") {
		t.Fatalf("expected newest lap first")
	}
}

func TestClearLapsKeepsTimer(t *testing.T) {
	m, clock := setupTestModel(t)
	m, _ = press(t, m, " ")
	clock.AdvanceMs(1000)
	m, _ = press(t, m, "l")
	clock.AdvanceMs(500)
	m, _ = press(t, m, "x")

	if len(m.Engine().Laps()) != 0 {
		t.Fatalf("laps not cleared")
	}
	if !m.Engine().IsRunning() {
		t.Fatalf("clear laps stopped the timer")
	}
	if m.Engine().Elapsed().Milliseconds() != 1500 {
		t.Fatalf("elapsed = %v, want 1.5s", m.Engine().Elapsed())
	}
	if !strings.Contains(m.View(), "0 laps") {
		t.Fatalf("expected lap count reset in view")
	}
}

func TestCopyLaps(t *testing.T) {
	var copied string
	m, clock := setupTestModel(t, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))
	m, _ = press(t, m, " ")
	clock.AdvanceMs(1500)
	m, _ = press(t, m, "l")
	clock.AdvanceMs(2700)
	m, _ = press(t, m, "l")

	m, cmd := press(t, m, "c")
	want := "Lap 2: 00:04.20 (+00:02.70)\nLap 1: 00:01.50 (+00:01.50)"
	if copied != want {
		t.Fatalf("copied %q, want %q", copied, want)
	}
	if m.status != "Copied!" {
		t.Fatalf("status = %q", m.status)
	}
	if cmd == nil {
		t.Fatalf("expected status clear command")
	}

	next, _ := m.Update(statusClearMsg{Gen: m.statGen - 1})
	if next.(Model).status == "" {
		t.Fatalf("stale clear message wiped the status")
	}
	next, _ = m.Update(statusClearMsg{Gen: m.statGen})
	if next.(Model).status != "" {
		t.Fatalf("status not cleared")
	}
}

func TestCopyDisabledWhileFeedbackShows(t *testing.T) {
	calls := 0
	m, clock := setupTestModel(t, WithClipboard(func(string) error {
		calls++
		return nil
	}))
	m, _ = press(t, m, " ")
	clock.AdvanceMs(1500)
	m, _ = press(t, m, "l")

	m, _ = press(t, m, "c")
	m, cmd := press(t, m, "c")
	if calls != 1 {
		t.Fatalf("clipboard called %d times, want 1", calls)
	}
	if cmd != nil {
		t.Fatalf("second copy should be ignored")
	}
	for _, b := range m.keys.HelpBindings(m) {
		if b.Help().Key == "c" && b.Enabled() {
			t.Fatalf("copy enabled while feedback shows")
		}
	}

	next, _ := m.Update(statusClearMsg{Gen: m.statGen})
	m = next.(Model)
	m, _ = press(t, m, "c")
	if calls != 2 {
		t.Fatalf("clipboard called %d times after feedback cleared, want 2", calls)
	}
}

func TestResetReenablesCopy(t *testing.T) {
	m, clock := setupTestModel(t)
	m, _ = press(t, m, " ")
	clock.AdvanceMs(500)
	m, _ = press(t, m, "l")
	m, _ = press(t, m, "c")
	if m.copiedGen == 0 {
		t.Fatalf("copy feedback not tracked")
	}
	m, _ = press(t, m, "r")
	if m.copiedGen != 0 {
		t.Fatalf("reset kept copy disabled")
	}
}

func TestCopyWithoutLapsIsDisabled(t *testing.T) {
	called := false
	m, _ := setupTestModel(t, WithClipboard(func(string) error {
		called = true
		return nil
	}))
	m, cmd := press(t, m, "c")
	if called || cmd != nil || m.status != "" {
		t.Fatalf("copy without laps should be a no-op")
	}
}

func TestCopyFailure(t *testing.T) {
	m, clock := setupTestModel(t, WithClipboard(func(string) error {
		return errors.New("no clipboard")
	}))
	m, _ = press(t, m, " ")
	clock.AdvanceMs(100)
	m, _ = press(t, m, "l")
	m, _ = press(t, m, "c")
	if !strings.Contains(m.status, "Copy failed") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestHelpBindingsFollowState(t *testing.T) {
	m, clock := setupTestModel(t)
	enabled := func(m Model) map[string]bool {
		out := map[string]bool{}
		for _, b := range m.keys.HelpBindings(m) {
			out[b.Help().Desc] = b.Enabled()
		}
		return out
	}

	idle := enabled(m)
	if idle["lap"] || idle["pause"] || idle["copy"] || idle["clear laps"] {
		t.Fatalf("unexpected enabled actions while idle: %v", idle)
	}
	if !idle["start"] || !idle["reset"] || !idle["theme"] {
		t.Fatalf("expected start/reset/theme while idle: %v", idle)
	}

	m, _ = press(t, m, " ")
	clock.AdvanceMs(10)
	m, _ = press(t, m, "l")
	running := enabled(m)
	if !running["lap"] || !running["pause"] || running["start"] || !running["copy"] {
		t.Fatalf("unexpected bindings while running: %v", running)
	}
}

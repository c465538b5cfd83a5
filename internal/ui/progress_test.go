package ui

import (
	"errors"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"lumen/internal/driver"
)

func TestApplyEventTracksFileStatus(t *testing.T) {
	m := newProgressModel("parse", []string{"a.lm", "b.lm"}, nil)

	m.applyEvent(driver.Event{File: "a.lm", Stage: driver.StageParse, Status: driver.StatusWorking})
	if got := m.items[0].status; got != "parsing" {
		t.Fatalf("status = %q, want parsing", got)
	}
	if got := m.percent(); math.Abs(got-0.25) > 1e-9 {
		t.Fatalf("percent = %v, want 0.25", got)
	}

	m.applyEvent(driver.Event{File: "a.lm", Stage: driver.StageParse, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.lm", Stage: driver.StageParse, Status: driver.StatusError, Err: errors.New("boom")})
	if got := m.percent(); got != 1 {
		t.Fatalf("percent = %v, want 1", got)
	}
	if m.failed != 1 {
		t.Fatalf("failed = %d, want 1", m.failed)
	}

	// a repeated terminal event does not count twice
	m.applyEvent(driver.Event{File: "b.lm", Stage: driver.StageParse, Status: driver.StatusError})
	if m.failed != 1 {
		t.Fatalf("failed after repeat = %d, want 1", m.failed)
	}
}

func TestApplyEventRunLevelAndUnknownFiles(t *testing.T) {
	m := newProgressModel("tokenize", []string{"a.lm"}, nil)

	m.applyEvent(driver.Event{Stage: driver.StageTokenize, Status: driver.StatusWorking})
	if m.stageLabel != "tokenizing" {
		t.Fatalf("stageLabel = %q, want tokenizing", m.stageLabel)
	}

	m.applyEvent(driver.Event{File: "missing.lm", Stage: driver.StageTokenize, Status: driver.StatusDone})
	if m.items[0].status != "queued" {
		t.Fatalf("unrelated event changed status to %q", m.items[0].status)
	}
}

func TestViewListsFiles(t *testing.T) {
	m := newProgressModel("parse", []string{"a.lm", "dir/b.lm"}, nil)
	m.applyEvent(driver.Event{File: "dir/b.lm", Stage: driver.StageParse, Status: driver.StatusError})

	view := m.View()
	for _, want := range []string{"parse", "a.lm", "dir/b.lm", "1 of 2 files failed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	if _, cmd := m.Update(doneMsg{}); cmd == nil {
		t.Fatal("doneMsg should quit")
	}
	if !strings.Contains(m.View(), "done: parse") {
		t.Errorf("finished view missing done header:\n%s", m.View())
	}
}

func TestViewEmpty(t *testing.T) {
	if got := newProgressModel("parse", nil, nil).View(); got != "" {
		t.Fatalf("View() = %q, want empty", got)
	}
}

func TestListenForEventClosedChannel(t *testing.T) {
	ch := make(chan driver.Event, 1)
	m := newProgressModel("parse", []string{"a.lm"}, ch)

	ch <- driver.Event{File: "a.lm", Stage: driver.StageParse, Status: driver.StatusDone}
	close(ch)

	if _, ok := m.listenForEvent()().(eventMsg); !ok {
		t.Fatal("first message should be an event")
	}
	if _, ok := m.listenForEvent()().(doneMsg); !ok {
		t.Fatal("closed channel should yield doneMsg")
	}
}

func TestWindowResize(t *testing.T) {
	m := newProgressModel("parse", []string{"a.lm"}, nil)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if m.width != 40 || m.prog.Width != 36 {
		t.Fatalf("width = %d, prog = %d", m.width, m.prog.Width)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short, 10) = %q", got)
	}
	if got := truncate("abcdefghij", 0); got != "abcdefghij" {
		t.Errorf("zero width should not truncate, got %q", got)
	}
	if got := truncate("abcdefghij", 3); got != "abc" {
		t.Errorf("truncate(abcdefghij, 3) = %q, want abc", got)
	}

	for _, in := range []string{"abcdefghijklmnop", "日本語のファイル名.lm"} {
		got := truncate(in, 10)
		if runewidth.StringWidth(got) > 10 {
			t.Errorf("truncate(%q, 10) = %q is wider than 10 cells", in, got)
		}
		if !strings.HasSuffix(got, "...") {
			t.Errorf("truncate(%q, 10) = %q, want ellipsis", in, got)
		}
	}
}

package main

import (
	"bufio"
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/gomaze/maze"
	"github.com/katalvlaran/gomaze/render"
)

// harness bundles the in-memory display and input used by the loop tests.
type harness struct {
	out  bytes.Buffer
	disp *render.Console
}

func newHarness() *harness {
	h := &harness{}
	h.disp = render.NewConsole(&h.out, render.ConsoleOptions{})

	return h
}

func (h *harness) input(tokens string) *bufio.Scanner {
	in := bufio.NewScanner(strings.NewReader(tokens))
	in.Split(bufio.ScanWords)

	return in
}

func loadTestGrid(t *testing.T, source string) *maze.Grid {
	t.Helper()
	g, err := maze.Load(strings.NewReader(source), maze.DefaultLoadOptions())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	return g
}

// TestPlayLoop_WinQuitAndRejects drives manual play end to end.
func TestPlayLoop_WinQuitAndRejects(t *testing.T) {
	cases := []struct {
		name   string
		source string
		keys   string
		want   string
	}{
		{"StraightWin", "S.E\n", "d d", "Congratulations! You reached the exit!"},
		{"Quit", "S.E\n", "q", "You quit the game."},
		{"UnknownKey", "S.E\n", "x q", "Invalid movement! Use w, a, s, d or q to quit."},
		{"BlockedThenWin", "S#\n.E\n", "d s d", "Invalid movement! Cannot go through walls or out of bounds."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness()
			g := loadTestGrid(t, tc.source)
			if err := playLoop(g, h.disp, h.input(tc.keys), &h.out); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(h.out.String(), tc.want) {
				t.Errorf("output missing %q:\n%s", tc.want, h.out.String())
			}
		})
	}
}

// TestPathsLoop_LimitAndNoPath covers unprompted enumeration and the
// disconnected case.
func TestPathsLoop_LimitAndNoPath(t *testing.T) {
	h := newHarness()
	g := loadTestGrid(t, "S..\n.#.\n..E\n")
	rng := rand.New(rand.NewSource(1))

	if err := pathsLoop(g, h.disp, h.input(""), &h.out, rng, 2, false); err != nil {
		t.Fatal(err)
	}
	out := h.out.String()
	for _, want := range []string{"Possible Path #1", "Possible Path #2", "Maximum number of paths reached."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	h = newHarness()
	disconnected := loadTestGrid(t, "S#E\n")
	if err := pathsLoop(disconnected, h.disp, h.input(""), &h.out, rng, 2, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(h.out.String(), "No more paths found.") {
		t.Errorf("output missing no-path message:\n%s", h.out.String())
	}
}

// TestPathsLoop_PromptStops stops after one path when the answer is "n".
func TestPathsLoop_PromptStops(t *testing.T) {
	h := newHarness()
	g := loadTestGrid(t, "S..\n.#.\n..E\n")

	if err := pathsLoop(g, h.disp, h.input("n"), &h.out, rand.New(rand.NewSource(1)), 5, true); err != nil {
		t.Fatal(err)
	}
	out := h.out.String()
	if !strings.Contains(out, "Possible Path #1") {
		t.Errorf("output missing first path:\n%s", out)
	}
	if strings.Contains(out, "Possible Path #2") {
		t.Errorf("enumeration continued past 'n':\n%s", out)
	}
}

// TestSolveOnce renders the shortest path or the no-path message.
func TestSolveOnce(t *testing.T) {
	h := newHarness()
	if err := solveOnce(loadTestGrid(t, "S..\n.#.\n..E\n"), h.disp); err != nil {
		t.Fatal(err)
	}
	out := h.out.String()
	if !strings.Contains(out, "Shortest path (length: 4 steps):") {
		t.Errorf("output missing step count:\n%s", out)
	}
	if !strings.Contains(out, "b#.") {
		t.Errorf("output missing marked route:\n%s", out)
	}

	h = newHarness()
	if err := solveOnce(loadTestGrid(t, "S#E\n"), h.disp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(h.out.String(), "No path exists!") {
		t.Errorf("output missing no-path message:\n%s", h.out.String())
	}
}

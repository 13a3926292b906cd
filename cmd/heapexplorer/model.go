package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eddyjiang/heapkit/heap"
	"github.com/eddyjiang/heapkit/internal/script"
)

// Model is the top-level Bubbletea model: a parsed trace, the heap it
// is being replayed against, and a cursor into the operation list.
type Model struct {
	tracePath   string
	variantName string
	segSize     int

	ops  []script.Op
	next int // index of the next operation to apply

	alloc  heap.Allocator
	runner *script.Runner

	vp      viewport.Model
	ready   bool
	width   int
	height  int
	status  string
	lastErr error
}

// NewModel parses the trace at tracePath and binds a fresh heap of the
// given variant and size.
func NewModel(tracePath, variantName string, segSize int) (Model, error) {
	ops, err := script.ParseFile(tracePath)
	if err != nil {
		return Model{}, err
	}
	m := Model{
		tracePath:   tracePath,
		variantName: variantName,
		segSize:     segSize,
		ops:         ops,
	}
	if err := m.rebuild(0); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newAllocator builds a fresh allocator over a new segment.
func newAllocator(variantName string, segSize int) (heap.Allocator, error) {
	switch variantName {
	case "implicit":
		return heap.NewImplicit(make([]byte, segSize))
	case "explicit":
		return heap.NewExplicit(make([]byte, segSize))
	}
	return nil, fmt.Errorf("unknown variant %q (want implicit or explicit)", variantName)
}

// rebuild resets the heap and replays the first n operations. Stepping
// backwards is replay-from-scratch; the traces are small enough that
// this is instant.
func (m *Model) rebuild(n int) error {
	a, err := newAllocator(m.variantName, m.segSize)
	if err != nil {
		return err
	}
	m.alloc = a
	m.runner = script.NewRunner(a)
	m.next = 0
	m.lastErr = nil
	m.status = ""
	for remaining := n; remaining > 0; remaining-- {
		m.applyNext()
	}
	return nil
}

// applyNext applies the operation under the cursor, recording rather
// than propagating failures so the session can continue past them.
func (m *Model) applyNext() {
	if m.next >= len(m.ops) {
		return
	}
	op := m.ops[m.next]
	m.next++
	if err := m.runner.Step(op); err != nil {
		if errors.Is(err, heap.ErrNoSpace) {
			m.status = fmt.Sprintf("line %d: no space for %s %d", op.Line, op.Kind, op.ID)
		} else {
			m.lastErr = err
		}
		replayLog.Warn("step failed",
			"line", op.Line, "op", op.Kind.String(), "id", op.ID,
			"used", m.alloc.Used(), "error", err)
		return
	}
	m.status = fmt.Sprintf("line %d: %s %d", op.Line, op.Kind, op.ID)
	replayLog.Debug("step",
		"line", op.Line, "op", op.Kind.String(), "id", op.ID,
		"used", m.alloc.Used())
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := max(msg.Height-chromeHeight, 1)
		if !m.ready {
			m.vp = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = vpHeight
		}
		m.vp.SetContent(m.renderBlocks())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n", " ", "right":
			m.applyNext()
		case "p", "left":
			if m.next > 0 {
				if err := m.rebuild(m.next - 1); err != nil {
					m.lastErr = err
				}
			}
		case "g":
			if err := m.rebuild(0); err != nil {
				m.lastErr = err
			}
		case "G":
			for m.next < len(m.ops) && m.lastErr == nil {
				m.applyNext()
			}
		case "c":
			if err := m.alloc.Validate(); err != nil {
				m.lastErr = err
			} else {
				m.status = "consistency check passed"
			}
		}
		if m.ready {
			m.vp.SetContent(m.renderBlocks())
		}
	}

	var cmd tea.Cmd
	if m.ready {
		m.vp, cmd = m.vp.Update(msg)
	}
	return m, cmd
}

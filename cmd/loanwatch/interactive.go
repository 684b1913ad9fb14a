package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/decay"
	"github.com/wippyai/decay/track"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type watchModel struct {
	workers int
	clones  int
	hold    time.Duration

	gauge *track.Gauge
	d     *decay.Decayed[payload]
	prog  progress.Model

	start   time.Time
	elapsed time.Duration
	done    bool
}

type tickMsg time.Time

type startedMsg struct {
	d *decay.Decayed[payload]
}

func newWatchModel(workers, clones int, hold time.Duration) *watchModel {
	return &watchModel{
		workers: workers,
		clones:  clones,
		hold:    hold,
		gauge:   track.NewGauge(),
		prog:    progress.New(progress.WithDefaultGradient()),
		start:   time.Now(),
	}
}

func (m *watchModel) Init() tea.Cmd {
	return tea.Batch(m.launch, tick())
}

// launch mints a loan per worker plus its clones, hands them to
// goroutines with randomized hold times, and decays the owner.
func (m *watchModel) launch() tea.Msg {
	owner := decay.Make(payload{id: rand.Int63()})
	owner.Subscribe(m.gauge)

	for i := 0; i < m.workers; i++ {
		loan := owner.Loan()
		for j := 0; j < m.clones; j++ {
			c := loan.Clone()
			go func() {
				time.Sleep(time.Duration(rand.Int63n(int64(m.hold))))
				c.Release()
			}()
		}
		go func(l decay.Loan[payload]) {
			time.Sleep(time.Duration(rand.Int63n(int64(m.hold))))
			l.Release()
		}(loan)
	}

	return startedMsg{d: owner.Decay()}
}

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case startedMsg:
		m.d = msg.d

	case tickMsg:
		if m.done {
			return m, nil
		}
		m.elapsed = time.Since(m.start)
		if m.d != nil && m.d.Decayed() {
			m.done = true
			m.d.Reset()
			return m, nil
		}
		return m, tick()
	}

	return m, nil
}

func (m *watchModel) View() string {
	s := titleStyle.Render("loanwatch") + "\n\n"

	minted := m.gauge.Minted()
	outstanding := m.gauge.Outstanding()
	s += statStyle.Render(fmt.Sprintf("workers: %d  clones: %d  hold: %v", m.workers, m.clones, m.hold)) + "\n"
	s += statStyle.Render(fmt.Sprintf("minted: %d  outstanding: %d  elapsed: %v",
		minted, outstanding, m.elapsed.Round(time.Millisecond))) + "\n\n"

	pct := 0.0
	if minted > 0 {
		pct = float64(minted-outstanding) / float64(minted)
	}
	s += m.prog.ViewAs(pct) + "\n\n"

	if m.done {
		s += doneStyle.Render(fmt.Sprintf("decayed in %v - exclusive ownership restored", m.elapsed.Round(time.Millisecond))) + "\n\n"
	}
	s += helpStyle.Render("q: quit")
	return s
}

func runInteractive(workers, clones int, hold time.Duration) error {
	p := tea.NewProgram(newWatchModel(workers, clones, hold), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

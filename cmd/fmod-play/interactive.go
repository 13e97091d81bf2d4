package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	fmod "github.com/soniccore/fmod-go"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	stateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type tickMsg time.Time

type playerModel struct {
	sys      *fmod.System
	channel  *fmod.Channel
	sound    *fmod.Sound
	filename string
	progress progress.Model

	lengthMS uint32
	position uint32
	volume   float32
	paused   bool
	finished bool
	err      error
}

func newPlayerModel(sys *fmod.System, snd *fmod.Sound, ch *fmod.Channel, filename string) (playerModel, error) {
	length, err := snd.Length(fmod.TimeUnitMS)
	if err != nil {
		return playerModel{}, err
	}
	return playerModel{
		sys:      sys,
		channel:  ch,
		sound:    snd,
		filename: filename,
		progress: progress.New(progress.WithDefaultGradient()),
		lengthMS: length,
		volume:   1,
	}, nil
}

func (m playerModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m playerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
			if err := m.channel.SetPaused(m.paused); err != nil && !fmod.IsStale(err) {
				m.err = err
			}
		case "up", "+":
			m.volume = min(m.volume+0.1, 1)
			m.setVolume()
		case "down", "-":
			m.volume = max(m.volume-0.1, 0)
			m.setVolume()
		case "r":
			if err := m.channel.SetPosition(0, fmod.TimeUnitMS); err != nil && !fmod.IsStale(err) {
				m.err = err
			}
		}
		return m, nil

	case tickMsg:
		if err := m.sys.Update(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		playing, err := m.channel.IsPlaying()
		if err != nil || !playing {
			if err != nil && !fmod.IsStale(err) {
				m.err = err
			}
			m.finished = true
			return m, tea.Quit
		}
		if pos, err := m.channel.Position(fmod.TimeUnitMS); err == nil {
			m.position = pos
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 8
		return m, nil
	}
	return m, nil
}

func (m *playerModel) setVolume() {
	if err := m.channel.SetVolume(m.volume); err != nil && !fmod.IsStale(err) {
		m.err = err
	}
}

func (m playerModel) View() string {
	s := titleStyle.Render("fmod-play") + "\n\n"
	s += infoStyle.Render(m.filename) + "\n\n"

	pct := 0.0
	if m.lengthMS > 0 {
		pct = float64(m.position) / float64(m.lengthMS)
	}
	s += "  " + m.progress.ViewAs(pct) + "\n"
	s += fmt.Sprintf("  %s / %s\n\n",
		formatMS(m.position), formatMS(m.lengthMS))

	switch {
	case m.err != nil:
		s += errorStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	case m.paused:
		s += stateStyle.Render(fmt.Sprintf("paused   volume %3.0f%%", m.volume*100)) + "\n"
	default:
		s += stateStyle.Render(fmt.Sprintf("playing  volume %3.0f%%", m.volume*100)) + "\n"
	}

	s += "\n" + helpStyle.Render("space pause · ↑/↓ volume · r restart · q quit")
	return s
}

func formatMS(ms uint32) string {
	d := time.Duration(ms) * time.Millisecond
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func runInteractive(soundFile string, stream bool) error {
	sysHandle, err := fmod.NewSystem()
	if err != nil {
		return fmt.Errorf("create system: %w", err)
	}
	defer sysHandle.Close()
	sys := sysHandle.Resource()

	if err := sys.Init(64, fmod.InitNormal); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer sys.Close()

	var sndHandle *fmod.Handle[*fmod.Sound]
	if stream {
		sndHandle, err = sys.CreateStream(soundFile, fmod.ModeDefault, nil)
	} else {
		sndHandle, err = sys.CreateSound(soundFile, fmod.ModeDefault, nil)
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", soundFile, err)
	}
	defer sndHandle.Close()

	ch, err := sys.PlaySound(sndHandle.Resource(), nil, false)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}

	model, err := newPlayerModel(sys, sndHandle.Resource(), ch, soundFile)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(playerModel); ok && m.err != nil {
		return m.err
	}
	return nil
}

package main

import (
	"fmt"
	"math"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"flex"
)

// avionicsState holds the values the dashboard panels read from on every
// tick, adapted from the teacher's flexdemo State struct.
type avionicsState struct {
	fuelA, fuelB, fuelC float32
	gen1, gen2, backup  bool
	commLink, radar     bool
	weapons             bool
	rwr                 bool
	tick                int
	status              string
	log                 []string
}

func newAvionicsState() *avionicsState {
	return &avionicsState{
		fuelA: 0.92, fuelB: 0.87, fuelC: 0.95,
		gen1: true, gen2: true, backup: false,
		commLink: true, radar: true, weapons: false,
		rwr:    false,
		status: "NOMINAL",
		log:    []string{"SYSTEM INIT COMPLETE"},
	}
}

// step advances the simulated instruments by one tick, grounded in the
// teacher's background ticker goroutine but driven here by bubbletea's own
// tea.Tick command instead of a free-running goroutine.
func (s *avionicsState) step() {
	s.tick++
	s.fuelA -= 0.0015
	s.fuelB -= 0.0013
	s.fuelC -= 0.0017
	if s.fuelA < 0 {
		s.fuelA = 0
	}
	if s.fuelB < 0 {
		s.fuelB = 0
	}
	if s.fuelC < 0 {
		s.fuelC = 0
	}

	s.rwr = math.Mod(float64(s.tick), 23) < 3
	if s.tick%40 == 0 {
		s.backup = !s.backup
		s.appendLog(fmt.Sprintf("BACKUP GEN %s", onOff(s.backup)))
	}
	if s.rwr && s.tick%23 == 0 {
		s.appendLog("RWR CONTACT DETECTED")
	}
	if s.fuelA < 0.15 && s.status == "NOMINAL" {
		s.status = "FUEL LOW"
		s.appendLog("WARNING: FUEL A BELOW 15%")
	}
}

func (s *avionicsState) appendLog(line string) {
	s.log = append(s.log, fmt.Sprintf("[T+%04d] %s", s.tick, line))
	if len(s.log) > 200 {
		s.log = s.log[len(s.log)-200:]
	}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// model is the bubbletea program driving the dashboard, grounded in the
// wiring pattern used across the pack's bubbletea components (Init/Update
// dispatch, View renders from a snapshot of state) rather than the
// teacher's own app.Handle/app.RequestRender loop.
type model struct {
	state  *avionicsState
	width  int
	height int
}

func initialModel() model {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		w, h = 100, 30
	}
	return model{state: newAvionicsState(), width: w, height: h}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m, nil
	case tickMsg:
		m.state.step()
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	buf := flex.NewBuffer(m.width, m.height)
	tree := flex.NewContentTree(buildDashboard(m.state))
	tree.Execute(buf, m.width, m.height)

	lines := make([]string, buf.Height())
	for y := 0; y < buf.Height(); y++ {
		lines[y] = buf.GetLineStyled(y)
	}
	frame := ""
	for i, l := range lines {
		frame += l
		if i < len(lines)-1 {
			frame += "\n"
		}
	}
	return frame
}

// statusBarStyle is a lipgloss style for a footer hint line that would
// bypass the ContentNode tree. View does not render it; every part of the
// dashboard is painted through flex.Buffer.
var statusBarStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("250")).
	Background(lipgloss.Color("235")).
	Bold(false)

// dashboardTheme holds the cell styles buildDashboard paints panel borders
// and status text with, adapted from the teacher's Theme/ThemeDark struct
// down to the handful of roles this single dashboard actually uses.
type dashboardTheme struct {
	border flex.CellStyle
	accent flex.CellStyle
	error  flex.CellStyle
}

var defaultTheme = dashboardTheme{
	border: flex.CellStyle{FG: flex.BrightBlack},
	accent: flex.CellStyle{FG: flex.BrightCyan},
	error:  flex.CellStyle{FG: flex.BrightRed, Attr: flex.AttrBold},
}

// buildDashboard assembles the avionics panel tree, adapted from the
// teacher's VBox/HBox struct-literal dashboard in cmd/flexdemo/main.go
// onto FCol/FRow/FPanel/FLeader/FMeter/FBar builders.
func buildDashboard(s *avionicsState) *flex.ContentNode {
	theme := defaultTheme

	fuelPanel := flex.FPanel("FUEL STATUS",
		flex.FLeader("TANK A", pct(s.fuelA)),
		flex.FMeter(int(s.fuelA*100), 100),
		flex.FLeader("TANK B", pct(s.fuelB)),
		flex.FMeter(int(s.fuelB*100), 100),
		flex.FLeader("TANK C", pct(s.fuelC)),
		flex.FMeter(int(s.fuelC*100), 100),
	).Gap(0).Style(theme.border)

	elecPanel := flex.FPanel("ELEC SUBSYS",
		flex.FRow(
			flex.FText("GEN1 "),
			flex.FLED(s.gen1),
		),
		flex.FRow(
			flex.FText("GEN2 "),
			flex.FLED(s.gen2),
		),
		flex.FRow(
			flex.FText("BKUP "),
			flex.FLED(s.backup),
		),
	).Style(theme.border)

	statusStyle := theme.accent
	if s.status != "NOMINAL" {
		statusStyle = theme.error
	}
	subsysPanel := flex.FPanel("SUBSYSTEMS",
		flex.FLeader("COMM LINK", onOff(s.commLink)),
		flex.FLeader("RADAR", onOff(s.radar)),
		flex.FLeader("WEAPONS", onOff(s.weapons)),
		flex.FLeader("RWR", onOff(s.rwr)),
		flex.FLeader("STATUS", s.status).Style(statusStyle),
	).Style(theme.border)

	top := flex.FRow(fuelPanel, elecPanel, subsysPanel).Gap(1)
	top.Grow(0)

	logLines := s.log
	if len(logLines) > 12 {
		logLines = logLines[len(logLines)-12:]
	}
	var logSpans []*flex.ContentNode
	for _, line := range logLines {
		logSpans = append(logSpans, flex.FText(line))
	}
	logPanel := flex.FPanel("LOG", logSpans...).Style(theme.border)
	logPanel.Grow(1)

	root := flex.FCol(top, logPanel).Pad(1, 1)
	root.Grow(1)
	return root
}

func pct(v float32) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "flexdemo:", err)
		os.Exit(1)
	}
}

package interview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned when the user cancels the interview.
var ErrAborted = errors.New("interview aborted")

type kind int

const (
	kindInput kind = iota
	kindSelect
	kindMulti
	kindConfirm
)

type question struct {
	prompt  string
	kind    kind
	choices []Choice
}

var questions = []question{
	{prompt: "Project name", kind: kindInput},
	{prompt: "Project type", kind: kindSelect, choices: ProjectTypes},
	{prompt: "Main features", kind: kindMulti, choices: Features},
	{prompt: "Main focus", kind: kindSelect, choices: Priorities},
	{prompt: "Testing setup (Jest + Testing Library)", kind: kindConfirm},
	{prompt: "Docker setup", kind: kindConfirm},
	{prompt: "Short project description", kind: kindInput},
}

const (
	stepName = iota
	stepType
	stepFeatures
	stepPriority
	stepTests
	stepDocker
	stepDescription
)

var (
	promptStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4D96FF"))
	answeredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).MarginTop(1)
)

// Model is the bubbletea model that asks the setup questions in order.
type Model struct {
	answers  Answers
	defaults Answers
	step     int
	input    textinput.Model
	cursor   int
	selected map[string]bool
	done     bool
	aborted  bool
	summary  []string
}

// NewModel starts an interview whose defaults come from initial.
func NewModel(initial Answers) *Model {
	m := &Model{
		answers:  initial,
		defaults: initial,
		input:    textinput.New(),
		selected: map[string]bool{},
	}
	for _, f := range initial.Features {
		m.selected[f] = true
	}
	m.enter(stepName)
	return m
}

// Answers returns the collected answers.
func (m *Model) Answers() Answers {
	return m.answers
}

// Done reports whether every question was answered.
func (m *Model) Done() bool {
	return m.done
}

// Aborted reports whether the user cancelled.
func (m *Model) Aborted() bool {
	return m.aborted
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if questions[m.step].kind == kindInput {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	}

	q := questions[m.step]
	switch q.kind {
	case kindInput:
		if key.Type == tea.KeyEnter {
			return m, m.submitInput()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case kindSelect, kindMulti:
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(q.choices)-1 {
				m.cursor++
			}
		case " ":
			if q.kind == kindMulti {
				v := q.choices[m.cursor].Value
				m.selected[v] = !m.selected[v]
			}
		case "enter":
			return m, m.submitChoice(q)
		}

	case kindConfirm:
		switch strings.ToLower(key.String()) {
		case "y":
			return m, m.submitConfirm(true)
		case "n":
			return m, m.submitConfirm(false)
		case "enter":
			return m, m.submitConfirm(m.confirmDefault())
		}
	}
	return m, nil
}

func (m *Model) submitInput() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())
	switch m.step {
	case stepName:
		if value == "" {
			value = m.defaults.ProjectName
		}
		m.answers.ProjectName = value
	case stepDescription:
		if value == "" {
			value = m.defaults.Description
		}
		m.answers.Description = value
	}
	m.record(value)
	return m.advance()
}

func (m *Model) submitChoice(q question) tea.Cmd {
	switch m.step {
	case stepType:
		m.answers.ProjectType = q.choices[m.cursor].Value
		m.record(m.answers.ProjectType)
	case stepPriority:
		m.answers.Priority = q.choices[m.cursor].Value
		m.record(m.answers.Priority)
	case stepFeatures:
		features := []string{}
		for _, c := range q.choices {
			if m.selected[c.Value] {
				features = append(features, c.Value)
			}
		}
		m.answers.Features = features
		m.record(strings.Join(features, ", "))
	}
	return m.advance()
}

func (m *Model) submitConfirm(yes bool) tea.Cmd {
	switch m.step {
	case stepTests:
		m.answers.IncludeTests = yes
	case stepDocker:
		m.answers.IncludeDocker = yes
	}
	if yes {
		m.record("yes")
	} else {
		m.record("no")
	}
	return m.advance()
}

func (m *Model) confirmDefault() bool {
	if m.step == stepTests {
		return m.defaults.IncludeTests
	}
	return m.defaults.IncludeDocker
}

func (m *Model) record(value string) {
	m.summary = append(m.summary, fmt.Sprintf("%s: %s", questions[m.step].prompt, value))
}

func (m *Model) advance() tea.Cmd {
	if m.step == len(questions)-1 {
		m.done = true
		return tea.Quit
	}
	m.enter(m.step + 1)
	return nil
}

// enter prepares the widgets for step.
func (m *Model) enter(step int) {
	m.step = step
	m.cursor = 0
	switch step {
	case stepName:
		m.resetInput(m.defaults.ProjectName)
	case stepDescription:
		m.resetInput(m.defaults.Description)
	case stepType:
		m.cursor = indexOf(ProjectTypes, m.defaults.ProjectType)
	case stepPriority:
		m.cursor = indexOf(Priorities, m.defaults.Priority)
	}
}

func (m *Model) resetInput(placeholder string) {
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.Prompt = "> "
	m.input.Focus()
}

func indexOf(choices []Choice, value string) int {
	for i, c := range choices {
		if c.Value == value {
			return i
		}
	}
	return 0
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.done || m.aborted {
		return ""
	}
	var b strings.Builder
	for _, line := range m.summary {
		b.WriteString(answeredStyle.Render("  "+line) + "\n")
	}

	q := questions[m.step]
	b.WriteString(promptStyle.Render(q.prompt) + "\n")

	switch q.kind {
	case kindInput:
		b.WriteString(m.input.View() + "\n")
	case kindSelect, kindMulti:
		for i, c := range q.choices {
			pointer := "  "
			if i == m.cursor {
				pointer = cursorStyle.Render("> ")
			}
			box := ""
			if q.kind == kindMulti {
				box = "[ ] "
				if m.selected[c.Value] {
					box = "[x] "
				}
			}
			b.WriteString(pointer + box + c.Label + "\n")
		}
	case kindConfirm:
		hint := "y/N"
		if m.confirmDefault() {
			hint = "Y/n"
		}
		b.WriteString("(" + hint + ")\n")
	}

	help := "enter to confirm, esc to cancel"
	if q.kind == kindMulti {
		help = "space to toggle, " + help
	}
	b.WriteString(helpStyle.Render(help) + "\n")
	return b.String()
}

// Run asks every question on in/out and returns the answers.
func Run(ctx context.Context, in io.Reader, out io.Writer, initial Answers) (Answers, error) {
	p := tea.NewProgram(NewModel(initial),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return Answers{}, ErrAborted
		}
		return Answers{}, fmt.Errorf("running interview: %w", err)
	}
	m, ok := final.(*Model)
	if !ok || m.Aborted() || !m.Done() {
		return Answers{}, ErrAborted
	}
	answers := m.Answers()
	if err := answers.Validate(); err != nil {
		return Answers{}, err
	}
	return answers, nil
}

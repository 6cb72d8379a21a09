package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	editor "github.com/ionut-t/codepad/adapter-bubbletea"
	"github.com/ionut-t/codepad/config"
	"github.com/ionut-t/codepad/highlighter"
)

const configFile = "codepad.toml"

const defaultStarter = `def solve(nums):
    # return the sum of the even numbers
    total = 0
    for n in nums:
        pass
    return total
`

type Model struct {
	editor    editor.Model
	submitted string
}

func (m Model) Init() tea.Cmd {
	return m.editor.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor.SetSize(msg.Width-4, msg.Height-2)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}

	case editor.SubmitMsg:
		m.submitted = msg.Content
		return m, tea.Quit

	case editor.CopyMsg:
		log.Printf("copied %d bytes", len(msg.Content))

	case editor.ResetMsg:
		log.Println("starter code restored")
	}

	editorModel, cmd := m.editor.Update(msg)
	m.editor = editorModel.(editor.Model)

	return m, cmd
}

func (m Model) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(m.editor.View())
}

func main() {
	if os.Getenv("DEBUG") != "" {
		f, err := tea.LogToFile("debug.log", "codepad")
		if err != nil {
			log.Fatalf("Error opening debug log: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Error loading config: %v", err)
	}

	exportHTML := false
	starter := defaultStarter

	for _, arg := range os.Args[1:] {
		if arg == "--html" {
			exportHTML = true
			continue
		}

		content, err := os.ReadFile(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", arg, err)
			os.Exit(1)
		}
		starter = string(content)
	}

	if exportHTML {
		if err := highlighter.WriteHTML(os.Stdout, starter, cfg.Lexicon(), cfg.Theme); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing HTML: %v\n", err)
			os.Exit(1)
		}
		return
	}

	codeEditor := editor.New(80, 20)
	codeEditor.Focus()
	codeEditor.SetPolicy(cfg.Policy())
	codeEditor.SetLexicon(cfg.Lexicon())
	codeEditor.SetHighlightTheme(cfg.Theme)
	codeEditor.HideLineNumbers(!cfg.LineNumbers)
	codeEditor.SetStarterCode(starter)

	p := tea.NewProgram(Model{editor: codeEditor}, tea.WithAltScreen(), tea.WithMouseCellMotion())

	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running Bubble Tea program: %v\n", err)
		os.Exit(1)
	}

	if m, ok := final.(Model); ok && m.submitted != "" {
		fmt.Print(m.submitted)
	}
}

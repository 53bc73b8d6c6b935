package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user aborts a prompt (Ctrl+C / Esc).
var ErrCancelled = errors.New("ui: cancelled by user")

// Prompter supplies answers to the generator's questions. The generator
// depends only on this interface so tests can script every answer without
// a terminal.
type Prompter interface {
	// Input asks for a free-form value. id identifies the question for
	// headless defaults; placeholder is shown as the suggested default.
	// An empty return value means "use the caller's default".
	Input(id, title, placeholder string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(id, title string, defaultYes bool) (bool, error)
}

// NewPrompter returns an interactive huh-backed Prompter, or a headless
// Prompter answering from stored defaults when no TTY is available.
func NewPrompter(theme *Theme, hm *HeadlessManager) Prompter {
	if hm.IsHeadless() {
		return &headlessPrompter{hm: hm}
	}
	return &interactivePrompter{theme: theme}
}

// --- interactivePrompter ---

// interactivePrompter renders each question as its own huh form.
// One form per question avoids cross-group viewport state and keeps the
// prompt flow linear.
type interactivePrompter struct {
	theme *Theme
}

func (p *interactivePrompter) Input(id, title, placeholder string) (string, error) {
	var value string

	inp := huh.NewInput().
		Title(title).
		Value(&value)
	if placeholder != "" {
		inp = inp.Placeholder(placeholder)
	}

	if err := p.run(huh.NewGroup(inp)); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (p *interactivePrompter) Confirm(id, title string, defaultYes bool) (bool, error) {
	value := defaultYes

	conf := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := p.run(huh.NewGroup(conf)); err != nil {
		return false, err
	}
	return value, nil
}

func (p *interactivePrompter) run(g *huh.Group) error {
	form := huh.NewForm(g).
		WithTheme(p.promptTheme()).
		WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// promptTheme maps the projgen palette onto a huh theme.
func (p *interactivePrompter) promptTheme() *huh.Theme {
	t := huh.ThemeBase()
	if p.theme.NoColor {
		return t
	}

	primary := lipgloss.Color(p.theme.Colors.Primary)
	muted := lipgloss.Color(p.theme.Colors.Muted)
	red := lipgloss.Color(p.theme.Colors.Error)
	text := lipgloss.Color(p.theme.Colors.Text)

	t.Focused.Base = t.Focused.Base.BorderForeground(lipgloss.Color(p.theme.Colors.Border))
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(lipgloss.Color(p.theme.Colors.Secondary))
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.Color("#374151"))

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}

// --- headlessPrompter ---

// headlessPrompter answers every question from stored defaults without
// touching the terminal. Missing answers resolve to the caller's default.
type headlessPrompter struct {
	hm *HeadlessManager
}

func (p *headlessPrompter) Input(id, title, placeholder string) (string, error) {
	if v, ok := p.hm.GetDefault(id); ok {
		return v, nil
	}
	return "", nil
}

func (p *headlessPrompter) Confirm(id, title string, defaultYes bool) (bool, error) {
	if v, ok := p.hm.GetDefault(id); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "y", "yes", "true":
			return true, nil
		default:
			return false, nil
		}
	}
	return defaultYes, nil
}

// --- ScriptedPrompter ---

// ScriptedPrompter answers prompts from fixed maps. It is the test
// implementation of Prompter and also backs --yes style overrides.
type ScriptedPrompter struct {
	// Inputs maps question id to the scripted answer. A missing id answers
	// with the empty string, which callers treat as "use default".
	Inputs map[string]string
	// InputSeq, when non-empty, supplies answers for repeated questions
	// with the same id (e.g. the selection re-prompt loop). It takes
	// precedence over Inputs for ids listed in it.
	InputSeq map[string][]string
	// Confirms maps question id to the scripted yes/no answer. A missing
	// id answers with the question's default.
	Confirms map[string]bool

	seqPos map[string]int
}

func (p *ScriptedPrompter) Input(id, title, placeholder string) (string, error) {
	if seq, ok := p.InputSeq[id]; ok {
		if p.seqPos == nil {
			p.seqPos = make(map[string]int)
		}
		i := p.seqPos[id]
		if i < len(seq) {
			p.seqPos[id] = i + 1
			return seq[i], nil
		}
		return "", nil
	}
	return p.Inputs[id], nil
}

func (p *ScriptedPrompter) Confirm(id, title string, defaultYes bool) (bool, error) {
	if v, ok := p.Confirms[id]; ok {
		return v, nil
	}
	return defaultYes, nil
}

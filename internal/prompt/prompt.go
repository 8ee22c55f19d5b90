package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

//go:generate mockgen -source=prompt.go -destination=../mocks/prompt/mock_prompt.go -package=mock_prompt

type Prompter interface {
	PromptForSelection(label string, items []string) (string, error)
	PromptForConfirmation(label string) bool
}

// Runner isolates promptui so selection handling can be tested.
type Runner interface {
	RunSelect(label string, items []string) (string, error)
	RunConfirm(label string) (string, error)
}

var ErrInterrupted = errors.New("operation interrupted")

var ErrNoChoices = errors.New("nothing to select from")

type promptuiRunner struct{}

func (promptuiRunner) RunSelect(label string, items []string) (string, error) {
	sel := promptui.Select{
		Label: label,
		Items: items,
		Size:  10,
	}
	_, selected, err := sel.Run()
	return selected, err
}

func (promptuiRunner) RunConfirm(label string) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	return p.Run()
}

type RealPrompter struct {
	Runner Runner
	Out    io.Writer
}

func NewPrompt() *RealPrompter {
	return &RealPrompter{Runner: promptuiRunner{}, Out: os.Stderr}
}

func (p *RealPrompter) HandlePromptError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		if p.Out != nil {
			fmt.Fprintln(p.Out, "\nReceived termination signal. Exiting.")
		}
		return ErrInterrupted
	}
	return fmt.Errorf("failed to select an option: %w", err)
}

func (p *RealPrompter) PromptForSelection(label string, items []string) (string, error) {
	switch len(items) {
	case 0:
		return "", ErrNoChoices
	case 1:
		return items[0], nil
	}

	selected, err := p.Runner.RunSelect(label, items)
	if err := p.HandlePromptError(err); err != nil {
		return "", err
	}
	return selected, nil
}

func (p *RealPrompter) PromptForConfirmation(label string) bool {
	result, err := p.Runner.RunConfirm(label)
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(result), "y")
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

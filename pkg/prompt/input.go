package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

type InputOpt struct {
	Default  string
	Validate func(string) error
}

func Input(label string, opt *InputOpt) (string, error) {
	if opt == nil {
		opt = &InputOpt{}
	}

	p := promptui.Prompt{
		Label:     label,
		Validate:  opt.Validate,
		Default:   opt.Default,
		AllowEdit: true,
	}

	ret, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running input: %w", err)
	}

	return ret, nil
}

// Confirm asks a yes/no question. Answering no isn't an error.
func Confirm(label string, def bool) (bool, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Default:   confirmDefault(def),
	}

	ret, err := p.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, fmt.Errorf("running confirm: %w", err)
	}

	return isYes(ret, def), nil
}

func confirmDefault(def bool) string {
	if def {
		return "y"
	}

	return "n"
}

// isYes interprets a confirm answer, empty answers take the default
func isYes(answer string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return def
	case "y", "yes":
		return true
	default:
		return false
	}
}

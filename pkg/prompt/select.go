package prompt

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

type SelectOpt[T any] struct {
	// Field returns the name to use for each select item.
	Field func(t T) string
	// Default is the name of the item selected when the prompt opens
	Default string
}

func Select[T any](label string, items []T, opt *SelectOpt[T]) (T, error) {
	if len(items) == 0 {
		return *new(T), fmt.Errorf("no items to select from")
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = fmt.Sprint(item)
		if opt != nil && opt.Field != nil {
			names[i] = opt.Field(item)
		}
	}

	def := ""
	if opt != nil {
		def = opt.Default
	}

	p := promptui.Select{
		Label:     label,
		Items:     names,
		CursorPos: indexOf(names, def),
	}

	idx, _, err := p.Run()
	if err != nil {
		return *new(T), fmt.Errorf("running select: %w", err)
	}

	return items[idx], nil
}

// indexOf returns the position of name in names, or the first position if it's missing
func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}

	return 0
}

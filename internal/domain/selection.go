package domain

import "fmt"

// SelectedOption is the choice picked for one option group of a menu item.
type SelectedOption struct {
	GroupName string
	Choice    Choice
}

// SameSelection reports whether a and b pick the same choice ids for the same
// groups in the same order. Names and prices of the choices are not compared.
func SameSelection(a, b []SelectedOption) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].GroupName != b[i].GroupName || a[i].Choice.ID != b[i].Choice.ID {
			return false
		}
	}

	return true
}

// ResolveSelection maps picks (group name -> choice id) onto the item's option
// groups in declared order. Groups without a pick get their first choice.
func ResolveSelection(item MenuItem, picks map[string]string) ([]SelectedOption, error) {
	for group := range picks {
		if !hasGroup(item, group) {
			return nil, fmt.Errorf("group[%s] on item[%s]: %w", group, item.ID, ErrInvalidOption)
		}
	}

	if len(item.Options) == 0 {
		return nil, nil
	}

	selected := make([]SelectedOption, 0, len(item.Options))

	for _, g := range item.Options {
		choiceID, ok := picks[g.Name]
		if !ok {
			if len(g.Choices) == 0 {
				continue
			}
			selected = append(selected, SelectedOption{GroupName: g.Name, Choice: g.Choices[0]})
			continue
		}

		choice, found := g.Choice(choiceID)
		if !found {
			return nil, fmt.Errorf("choice[%s] in group[%s]: %w", choiceID, g.Name, ErrInvalidOption)
		}

		selected = append(selected, SelectedOption{GroupName: g.Name, Choice: choice})
	}

	return selected, nil
}

func hasGroup(item MenuItem, name string) bool {
	for _, g := range item.Options {
		if g.Name == name {
			return true
		}
	}
	return false
}

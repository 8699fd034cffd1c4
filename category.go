package strata

import "strings"

// Category classifies an event. Categories form a bitmask, an event
// commonly belongs to more than one (key events are both CategoryInput
// and CategoryKeyboard). Combine with |, test with Event.IsInCategory.
type Category uint8

const (
	CategoryNone        Category = 0
	CategoryInput       Category = 1 << 0
	CategoryKeyboard    Category = 1 << 1
	CategoryMouse       Category = 1 << 2
	CategoryController  Category = 1 << 3
	CategoryWindow      Category = 1 << 4
	CategoryApplication Category = 1 << 5
	CategoryCustom      Category = 1 << 6
)

var categoryNames = []struct {
	bit  Category
	name string
}{
	{CategoryInput, "input"},
	{CategoryKeyboard, "keyboard"},
	{CategoryMouse, "mouse"},
	{CategoryController, "controller"},
	{CategoryWindow, "window"},
	{CategoryApplication, "application"},
	{CategoryCustom, "custom"},
}

func (c Category) String() string {
	if c == CategoryNone {
		return "none"
	}

	var names []string
	for _, entry := range categoryNames {
		if c&entry.bit != 0 {
			names = append(names, entry.name)
		}
	}

	return strings.Join(names, "|")
}

package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/npillmayer/pcomb/result"
)

// renderTree displays a result as a tree on the terminal.
func renderTree(label string, r result.Result) {
	pterm.Println(label)
	root := pterm.NewTreeFromLeveledList(leveledResult(r, pterm.LeveledList{}, 0))
	pterm.DefaultTree.WithRoot(root).Render()
}

// leveledResult flattens a result into a leveled list. Atoms become items at
// the current level, a nested sequence becomes an item "[n]" with its elements
// one level below.
func leveledResult(r result.Result, ll pterm.LeveledList, level int) pterm.LeveledList {
	if !r.IsSequence() {
		return append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  r.String(),
		})
	}
	for _, item := range r.Items() {
		if item.IsSequence() {
			ll = append(ll, pterm.LeveledListItem{
				Level: level,
				Text:  fmt.Sprintf("[%d]", item.Len()),
			})
			ll = leveledResult(item, ll, level+1)
			continue
		}
		ll = leveledResult(item, ll, level)
	}
	return ll
}

package domain

import "time"

// Elf is a workshop worker with a skill set and a build-time budget.
type Elf struct {
	ID              string
	Name            string
	Skills          []string
	CapacityMinutes int
	CreatedAt       time.Time
}

// CanBuild reports whether the elf has the skill for the toy's category and
// enough remaining capacity for its build time.
func (e Elf) CanBuild(category string, buildMinutes, remainingMinutes int) bool {
	if remainingMinutes < buildMinutes {
		return false
	}
	for _, skill := range e.Skills {
		if skill == category {
			return true
		}
	}
	return false
}

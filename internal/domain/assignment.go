package domain

import "time"

// Assignment binds an order to the elf that will build its toy. Position is
// the 0-based slot in the elf's sequential build queue.
type Assignment struct {
	ID           string
	OrderID      string
	ElfID        string
	BuildMinutes int
	Position     int
	CreatedAt    time.Time
}

// ScheduleSlot is one build on an elf's timeline, in simulated minutes from
// the start of the run.
type ScheduleSlot struct {
	OrderID      string
	ToyName      string
	ChildName    string
	StartMinute  int
	FinishMinute int
}

// ElfSchedule is the sequential build timeline for one elf.
type ElfSchedule struct {
	ElfID   string
	ElfName string
	Slots   []ScheduleSlot
}

package domain

// PlannedBuild is an assignment joined with the names a schedule or
// simulation needs, ordered by elf and queue position.
type PlannedBuild struct {
	Assignment Assignment
	ElfName    string
	ToyName    string
	ChildName  string
}

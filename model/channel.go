package model

// Channel is a named synchronization channel. Nothing in this module sets
// Priority, and, per the Open Question decision recorded in DESIGN.md, the
// engine's synchronization pairing never consults it — spec.md §9 leaves
// channel priority unenforced.
type Channel struct {
	Name      string
	Broadcast bool
	Urgent    bool
	Priority  int
}

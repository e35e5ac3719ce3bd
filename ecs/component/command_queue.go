package component

import "github.com/milk9111/megaman/input"

// CommandQueue collects classified input commands for an entity until the
// command system applies them.
type CommandQueue struct {
	Pending []input.Command
}

// Push appends a command.
func (q *CommandQueue) Push(cmd input.Command) {
	if q == nil {
		return
	}
	q.Pending = append(q.Pending, cmd)
}

// Drain returns queued commands and clears the queue.
func (q *CommandQueue) Drain() []input.Command {
	if q == nil || len(q.Pending) == 0 {
		return nil
	}
	out := q.Pending
	q.Pending = nil
	return out
}

var CommandQueueComponent = NewComponent[CommandQueue]()

package application

// ConsoleState is either AwaitingCommand or AwaitingAnswer. The interface is sealed so
// the console is always in exactly one of the two modes.
type ConsoleState interface {
	isConsoleState()
}

// AwaitingCommand is the normal prompt mode.
type AwaitingCommand struct{}

// AwaitingAnswer holds a pending puzzle: the next submitted line is compared with
// Expected and, on a match, Target is marked hacked.
type AwaitingAnswer struct {
	Expected string
	Target   string
}

func (AwaitingCommand) isConsoleState() {}
func (AwaitingAnswer) isConsoleState()  {}

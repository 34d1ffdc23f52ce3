package application

// DefaultScrollbackCapacity bounds the console history when no viewport trims it.
const DefaultScrollbackCapacity = 512

// Scrollback is a fixed-capacity ring of console lines, oldest first.
type Scrollback struct {
	lines []string
	head  int
	size  int
}

func NewScrollback(capacity int) *Scrollback {
	if capacity <= 0 {
		capacity = DefaultScrollbackCapacity
	}
	return &Scrollback{lines: make([]string, capacity)}
}

// Push appends line, evicting the oldest line when the ring is full.
func (s *Scrollback) Push(line string) {
	if s.size == len(s.lines) {
		s.lines[s.head] = line
		s.head = (s.head + 1) % len(s.lines)
		return
	}

	s.lines[(s.head+s.size)%len(s.lines)] = line
	s.size++
}

func (s *Scrollback) PopFront() (string, bool) {
	if s.size == 0 {
		return "", false
	}

	line := s.lines[s.head]
	s.lines[s.head] = ""
	s.head = (s.head + 1) % len(s.lines)
	s.size--
	return line, true
}

// TrimTo drops the oldest lines while at least max remain, leaving room for the
// live prompt row.
func (s *Scrollback) TrimTo(max int) {
	if max < 0 {
		max = 0
	}
	for s.size > 0 && s.size >= max {
		s.PopFront()
	}
}

func (s *Scrollback) Last() (string, bool) {
	if s.size == 0 {
		return "", false
	}
	return s.lines[(s.head+s.size-1)%len(s.lines)], true
}

func (s *Scrollback) Len() int {
	return s.size
}

func (s *Scrollback) Cap() int {
	return len(s.lines)
}

func (s *Scrollback) Clear() {
	for i := range s.lines {
		s.lines[i] = ""
	}
	s.head = 0
	s.size = 0
}

// Lines returns the scrollback oldest first.
func (s *Scrollback) Lines() []string {
	out := make([]string, 0, s.size)
	for i := 0; i < s.size; i++ {
		out = append(out, s.lines[(s.head+i)%len(s.lines)])
	}
	return out
}

package session

import "time"

// Clock источник текущего времени (подменяется в тестах)
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

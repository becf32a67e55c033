package ident

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Generator выдает новый уникальный идентификатор записи
type Generator interface {
	NewID() string
}

// UUID генерирует случайные идентификаторы (uuid v4)
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence выдает предсказуемые идентификаторы: prefix + порядковый номер.
// Используется в тестах и для детерминированных стендов.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewSequence(prefix string, start int) *Sequence {
	return &Sequence{
		prefix: prefix,
		next:   start,
	}
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.prefix + strconv.Itoa(s.next)
	s.next++
	return id
}

package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type entry struct {
	key       string
	data      []byte
	timestamp time.Time
}

// Memory é um cache local com TTL fixo e limite de entradas.
// Ao ultrapassar o limite a entrada mais antiga é descartada.
type Memory struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	entries    map[string]*list.Element
	order      *list.List // frente = mais recente
}

type MemoryOption func(*Memory)

// WithClock substitui o relógio, útil para testes de expiração.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		m.now = now
	}
}

// WithMaxEntries define o limite de entradas; zero ou negativo desativa o limite.
func WithMaxEntries(n int) MemoryOption {
	return func(m *Memory) {
		m.maxEntries = n
	}
}

func NewMemory(ttl time.Duration, opts ...MemoryOption) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	m := &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*list.Element),
		order:   list.New(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.entries[key]
	if !ok {
		return nil, false
	}

	e := el.Value.(*entry)
	if m.now().Sub(e.timestamp) > m.ttl {
		m.removeElement(el)
		return nil, false
	}

	return e.data, true
}

func (m *Memory) Set(_ context.Context, key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.entries[key]; ok {
		m.removeElement(el)
	}

	el := m.order.PushFront(&entry{key: key, data: data, timestamp: m.now()})
	m.entries[key] = el

	for m.maxEntries > 0 && m.order.Len() > m.maxEntries {
		m.removeElement(m.order.Back())
	}
}

func (m *Memory) Clear(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]*list.Element)
	m.order.Init()
}

// Len retorna o número de entradas armazenadas, incluindo as ainda não expurgadas.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.order.Len()
}

func (m *Memory) removeElement(el *list.Element) {
	e := el.Value.(*entry)
	delete(m.entries, e.key)
	m.order.Remove(el)
}

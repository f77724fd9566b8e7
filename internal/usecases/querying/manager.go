package querying

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/bsocial/adhub-api/internal/config"
	"github.com/bsocial/adhub-api/internal/usecases/insighting"
)

const (
	defaultFetchTimeout = 2 * time.Minute
	defaultIdleTTL      = 30 * time.Minute
)

var errFlightDone = errors.New("busca já concluída")

// FetchFunc executa a consulta de fato.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	id    uint64
	state State

	// lastAccess só avança com Query e Refresh; revalidações agendadas não contam.
	lastAccess time.Time

	// issued é a última geração emitida; resultados de gerações anteriores são descartados.
	issued   uint64
	inflight uint64

	refreshes uint64
	applied   uint64
	stale     bool
}

type result struct {
	state State
	err   error
}

// Manager mantém o estado das consultas por chave: deduplica buscas
// simultâneas, serve dados dentro da janela de validade e revalida em segundo
// plano quando os dados ficam velhos.
type Manager struct {
	group        singleflight.Group
	mu           sync.Mutex
	entries      map[Key]*entry
	nextID       uint64
	staleTime    time.Duration
	fetchTimeout time.Duration
	idleTTL      time.Duration
	lastSweep    time.Time
	onEvict      []func(Key)
	now          func() time.Time
}

func NewManager(cfg *config.Config) *Manager {
	idleTTL := cfg.Query.IdleTTL
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}

	return &Manager{
		entries:      make(map[Key]*entry),
		staleTime:    cfg.Query.StaleTime,
		fetchTimeout: cfg.Query.FetchTimeout,
		idleTTL:      idleTTL,
		now:          time.Now,
	}
}

// OnEvict registra fn para ser chamada, fora do lock, com cada chave removida
// por inatividade ou por Reset.
func (m *Manager) OnEvict(fn func(Key)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onEvict = append(m.onEvict, fn)
}

// Query retorna o estado da chave. A primeira carga bloqueia até o resultado;
// as seguintes devolvem os dados existentes e revalidam em segundo plano
// quando passaram de StaleTime ou quando Refresh foi chamado.
func (m *Manager) Query(ctx context.Context, key Key, opts Options, fetch FetchFunc) (State, error) {
	if !opts.Enabled {
		return State{}, ErrQueryDisabled
	}

	staleTime := opts.StaleTime
	if staleTime == 0 {
		staleTime = m.staleTime
	}

	m.mu.Lock()
	evicted, hooks := m.sweepLocked()
	defer notifyEvicted(hooks, evicted)

	e := m.entry(key)
	e.lastAccess = m.now()

	if e.state.HasData() {
		if e.stale || m.now().Sub(e.state.UpdatedAt) >= staleTime {
			m.startLocked(ctx, key, e, fetch)
		}
		state := e.state
		m.mu.Unlock()
		return state, nil
	}

	gen := m.startLocked(ctx, key, e, fetch)
	m.mu.Unlock()

	return m.await(ctx, key, e, gen)
}

// Revalidate busca de novo em segundo plano sem mudar o status para loading.
// Devolve false quando a chave não existe mais.
func (m *Manager) Revalidate(ctx context.Context, key Key, fetch FetchFunc) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return false
	}
	m.startLocked(ctx, key, e, fetch)
	return true
}

// Refresh marca a chave para ser buscada de novo ignorando o cache de resultados.
func (m *Manager) Refresh(key Key) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entry(key)
	e.lastAccess = m.now()
	e.refreshes++
	e.stale = true
}

// Reset descarta todos os estados. Buscas em andamento terminam, mas seus
// resultados são ignorados.
func (m *Manager) Reset() {
	m.mu.Lock()
	keys := make([]Key, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}
	m.entries = make(map[Key]*entry)
	hooks := m.onEvict
	m.mu.Unlock()

	logrus.WithField("queries", len(keys)).Info("querying: state reset")
	notifyEvicted(hooks, keys)
}

// Len devolve o número de chaves mantidas.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// State devolve o estado atual da chave sem disparar busca.
func (m *Manager) State(key Key) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return State{}, false
	}
	return e.state, true
}

func (m *Manager) entry(key Key) *entry {
	e, ok := m.entries[key]
	if !ok {
		m.nextID++
		e = &entry{id: m.nextID, lastAccess: m.now()}
		m.entries[key] = e
	}
	return e
}

// sweepLocked remove, no máximo a cada idleTTL/2, as chaves sem acesso há mais
// de idleTTL. Chaves com busca em andamento ficam.
func (m *Manager) sweepLocked() ([]Key, []func(Key)) {
	now := m.now()
	if now.Sub(m.lastSweep) < m.idleTTL/2 {
		return nil, nil
	}
	m.lastSweep = now

	var evicted []Key
	for key, e := range m.entries {
		if e.inflight == 0 && now.Sub(e.lastAccess) > m.idleTTL {
			delete(m.entries, key)
			evicted = append(evicted, key)
		}
	}

	if len(evicted) > 0 {
		logrus.WithField("queries", len(evicted)).Debug("querying: idle queries evicted")
	}
	return evicted, m.onEvict
}

func notifyEvicted(hooks []func(Key), keys []Key) {
	for _, key := range keys {
		for _, fn := range hooks {
			fn(key)
		}
	}
}

// startLocked dispara uma nova geração, a menos que já exista uma busca em
// andamento e não haja refresh pendente. Devolve a geração a aguardar.
// A busca é registrada no singleflight antes de liberar o lock.
func (m *Manager) startLocked(ctx context.Context, key Key, e *entry, fetch FetchFunc) uint64 {
	pendingRefresh := e.refreshes != e.applied

	if e.inflight != 0 && !pendingRefresh {
		return e.inflight
	}

	e.issued++
	gen := e.issued
	e.inflight = gen
	e.applied = e.refreshes
	e.stale = false

	e.state.IsFetching = true
	if !e.state.HasData() {
		e.state.Status = StatusLoading
	}

	m.group.DoChan(flightKey(key, e.id, gen), func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.timeout())
		defer cancel()

		if pendingRefresh {
			fetchCtx = insighting.WithBypassCache(fetchCtx)
		}

		v, err := fetch(fetchCtx)
		state, err := m.commit(key, e, gen, v, err)
		return result{state: state, err: err}, nil
	})

	return gen
}

// await espera a geração gen de e. Se a busca já terminou, o estado gravado é a resposta.
func (m *Manager) await(ctx context.Context, key Key, e *entry, gen uint64) (State, error) {
	ch := m.group.DoChan(flightKey(key, e.id, gen), func() (any, error) {
		return nil, errFlightDone
	})

	select {
	case <-ctx.Done():
		return State{}, ctx.Err()
	case res := <-ch:
		if r, ok := res.Val.(result); ok {
			return r.state, r.err
		}

		m.mu.Lock()
		defer m.mu.Unlock()

		state := e.state
		if !state.HasData() && state.Error != nil {
			return state, state.Error
		}
		return state, nil
	}
}

func (m *Manager) commit(key Key, e *entry, gen uint64, v any, err error) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Depois de Reset ou da expiração, e não está mais no mapa.
	if m.entries[key] != e || gen < e.issued {
		logrus.WithFields(logrus.Fields{
			"key":        string(key),
			"generation": gen,
			"latest":     e.issued,
		}).Debug("querying: discarding outdated result")

		if err != nil {
			return State{Error: err, Status: StatusError, Generation: gen}, err
		}
		return State{Data: v, Status: StatusSuccess, UpdatedAt: m.now(), Generation: gen}, nil
	}

	e.inflight = 0
	e.state.IsFetching = false
	e.state.Generation = gen

	if err != nil {
		e.state.Error = err
		e.state.Status = StatusError
		logrus.WithFields(logrus.Fields{
			"key":   string(key),
			"error": err.Error(),
		}).Warn("querying: fetch failed")

		if e.state.UpdatedAt.IsZero() {
			return e.state, err
		}
		return e.state, nil
	}

	e.state.Data = v
	e.state.Error = nil
	e.state.Status = StatusSuccess
	e.state.UpdatedAt = m.now()

	return e.state, nil
}

func (m *Manager) timeout() time.Duration {
	if m.fetchTimeout <= 0 {
		return defaultFetchTimeout
	}
	return m.fetchTimeout
}

// flightKey inclui o id da entrada para que uma chave recriada não se junte à
// busca de uma entrada já descartada.
func flightKey(key Key, id, gen uint64) string {
	return fmt.Sprintf("%s#%d.%d", key, id, gen)
}

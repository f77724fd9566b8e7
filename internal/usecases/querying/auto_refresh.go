package querying

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// AutoRefresher revalida as consultas registradas a cada N minutos, em segundo
// plano e sem alterar o status para loading.
type AutoRefresher struct {
	manager   *Manager
	scheduler *gocron.Scheduler
	mu        sync.Mutex
	intervals map[Key]int
}

func NewAutoRefresher(manager *Manager) *AutoRefresher {
	scheduler := gocron.NewScheduler(time.Local)
	scheduler.SingletonModeAll()

	r := &AutoRefresher{
		manager:   manager,
		scheduler: scheduler,
		intervals: make(map[Key]int),
	}
	manager.OnEvict(r.Unregister)

	return r
}

// Register agenda a revalidação da chave. Registrar de novo com outro
// intervalo substitui o agendamento; minutes <= 0 remove a chave. O
// agendamento some junto com a consulta quando ela expira no Manager.
func (a *AutoRefresher) Register(key Key, minutes int, fetch FetchFunc) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if current, ok := a.intervals[key]; ok {
		if current == minutes {
			return nil
		}
		_ = a.scheduler.RemoveByTag(string(key))
		delete(a.intervals, key)
	}

	if minutes <= 0 {
		return nil
	}

	_, err := a.scheduler.Every(minutes).Minutes().WaitForSchedule().Tag(string(key)).Do(func() {
		if !a.manager.Revalidate(context.Background(), key, fetch) {
			a.Unregister(key)
		}
	})
	if err != nil {
		return err
	}

	a.intervals[key] = minutes
	logrus.WithFields(logrus.Fields{
		"key":     string(key),
		"minutes": minutes,
	}).Debug("querying: auto refresh registered")

	return nil
}

func (a *AutoRefresher) Unregister(key Key) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.intervals[key]; !ok {
		return
	}
	_ = a.scheduler.RemoveByTag(string(key))
	delete(a.intervals, key)
}

func (a *AutoRefresher) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.intervals)
}

// Start inicia o agendador até o contexto ser cancelado.
func (a *AutoRefresher) Start(ctx context.Context) {
	a.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("querying: stopping auto refresh")
		a.scheduler.Stop()
	}()
}

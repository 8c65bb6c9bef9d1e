// Package services exposes the application-context surface presentation
// layers talk to. Everything is explicitly constructed and passed by
// reference; there are no ambient singletons.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"im-core/contract"
	"im-core/domain"
	"im-core/domain/event"
	"im-core/runtime"
	"im-core/runtime/workers"
)

// AccountService manages account lifecycles: it mints instance identifiers,
// builds sessions around protocol backends, registers them and runs their
// queues under supervision.
type AccountService struct {
	log        *slog.Logger
	router     *runtime.Router
	supervisor *workers.Supervisor
	bufferSize int
	now        func() time.Time
}

func NewAccountService(log *slog.Logger, router *runtime.Router,
	supervisor *workers.Supervisor, bufferSize int) *AccountService {
	return &AccountService{
		log:        log,
		router:     router,
		supervisor: supervisor,
		bufferSize: bufferSize,
		now:        time.Now,
	}
}

// AddAccount logs one account in: a fresh opaque instance identifier, a
// session wrapping the backend, a registry entry and a supervised queue
// worker. The backend emits inbound events straight onto the router queue,
// stamped with the session's instance.
func (s *AccountService) AddAccount(ctx context.Context, proto contract.Protocol) (int64, error) {
	instance := s.now().UnixNano()
	session := runtime.NewSession(instance, proto, s.bufferSize, s.log)

	s.router.Registry().Add(instance, session)

	emit := func(ev *event.Event) {
		if ev == nil {
			return
		}
		if ev.Instance == 0 {
			ev.WithInstance(instance)
		}
		s.router.Post(ev)
	}

	if err := proto.Start(emit); err != nil {
		// The backend may have emitted before failing; the queued teardown
		// lands behind those events.
		s.router.RemoveSession(instance)
		return 0, fmt.Errorf("starting protocol %q: %w", proto.Name(), err)
	}

	s.supervisor.Start(ctx, session)
	s.log.Info("Account added", "protocol", proto.Name(), "instance", instance)
	return instance, nil
}

// RemoveAccount logs an account out and destroys everything it owned. The
// teardown is queued behind events already on the router, so it runs on the
// dispatch goroutine; removing an unknown instance is a no-op. In-flight
// events for the removed instance simply stop resolving and are dropped.
func (s *AccountService) RemoveAccount(instance int64) {
	s.router.RemoveSession(instance)
	s.log.Info("Account removal requested", "instance", instance)
}

// LoginAll asks every registered session to go online.
func (s *AccountService) LoginAll() {
	s.router.Registry().LoginAll()
}

// OwnStatus reports the application-wide presence.
func (s *AccountService) OwnStatus() domain.Status {
	return s.router.OwnStatus()
}

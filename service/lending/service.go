package lending

import (
	"context"
	"sync"

	"moneymarket/core"

	"github.com/facebookgo/clock"
	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store"
)

type service struct {
	mux sync.Mutex

	kv     core.IKVBackend
	tokens core.ITokenService
	auth   core.IAuthorizer
	events core.IEventStore
	clock  clock.Clock
	// pool principal holding every pooled token
	pool string
}

// New new lending service
func New(
	kv core.IKVBackend,
	tokens core.ITokenService,
	auth core.IAuthorizer,
	events core.IEventStore,
	clk clock.Clock,
	pool string,
) core.ILendingService {
	return &service{
		kv:     kv,
		tokens: tokens,
		auth:   auth,
		events: events,
		clock:  clk,
		pool:   pool,
	}
}

// commitAttempts bounds the reruns of a unit whose state was changed by
// another service instance sharing the backend
const commitAttempts = 5

// run executes fn as one unit of work: token moves are executed and the staged
// writes committed only when fn succeeds, events are recorded after the commit.
// A unit that read outdated state is rolled back and run again from scratch.
func (s *service) run(ctx context.Context, op string, fn func(u *unit) error) error {
	log := logger.FromContext(ctx).WithField("op", op)

	s.mux.Lock()
	defer s.mux.Unlock()

	for attempt := 1; ; attempt++ {
		u := s.newUnit(ctx)
		if err := fn(u); err != nil {
			s.fail(ctx, op, err)
			return err
		}

		err := u.commit(ctx)
		if err == nil {
			opsTotal.WithLabelValues(op, "ok").Inc()
			s.record(ctx, u.events)
			return nil
		}

		if store.IsErrOptimisticLock(err) && attempt < commitAttempts {
			log.WithError(err).WithField("attempt", attempt).Infoln("conflict, rerun")
			continue
		}

		log.WithError(err).Errorln("commit")
		opsTotal.WithLabelValues(op, "error").Inc()
		return err
	}
}

// view read only unit, never committed
func (s *service) view(ctx context.Context, fn func(u *unit) error) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	return fn(s.newUnit(ctx))
}

func (s *service) fail(ctx context.Context, op string, err error) {
	log := logger.FromContext(ctx).WithField("op", op)

	if code, ok := core.IsErrorCode(err); ok {
		log.WithError(err).Debugln("rejected")
		opsTotal.WithLabelValues(op, code.Error()).Inc()
		return
	}

	log.WithError(err).Errorln("failed")
	opsTotal.WithLabelValues(op, "error").Inc()
}

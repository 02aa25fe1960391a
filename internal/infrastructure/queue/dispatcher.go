package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/careerlounge/consultancy-api/internal/api/metrics"
	"github.com/careerlounge/consultancy-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher runs fire-and-forget notification jobs on a fixed set of
// workers. Jobs for the same recipient hash to the same worker, so a user's
// emails keep their relative order. Job failures are logged and counted,
// never surfaced to the enqueuing request.
type Dispatcher struct {
	workers []chan ports.NotificationJob
	mailer  ports.Mailer
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.NotificationJob, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.NotificationJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a job to the worker responsible for its recipient. The call
// is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.NotificationJob) {
	d.workers[d.shardIndex(recipient(job))] <- job
}

func recipient(job ports.NotificationJob) string {
	if job.User != nil {
		return job.User.Email
	}
	if job.Booking != nil {
		return job.Booking.Email
	}
	return ""
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.NotificationJob) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			if err := d.process(ctx, job); err != nil {
				metrics.NotificationsFailedTotal.WithLabelValues(string(job.Kind)).Inc()
				d.log.Error().Err(err).
					Str("kind", string(job.Kind)).
					Int("worker_id", id).
					Msg("notification send failed")
				continue
			}
			metrics.NotificationsSentTotal.WithLabelValues(string(job.Kind)).Inc()
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, job ports.NotificationJob) error {
	switch job.Kind {
	case ports.NotifyBookingReceived:
		return d.mailer.BookingReceived(ctx, job.Booking)
	case ports.NotifyPasswordReset:
		return d.mailer.PasswordReset(ctx, job.User, job.ResetURL)
	case ports.NotifyPasswordResetDone:
		return d.mailer.PasswordResetDone(ctx, job.User)
	default:
		d.log.Warn().Str("kind", string(job.Kind)).Msg("unknown notification kind dropped")
		return nil
	}
}

package live

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/attendance"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/employee"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/live"
	"github.com/workpulse-hq/attendance-board-go/internal/domain/report"
)

const (
	feedCapacity = 15

	clockDisplayFormat = "15:04"

	lateThresholdHour   = 9
	lateThresholdMinute = 30
)

// AttendanceSource is the authoritative channel: a full snapshot of today's
// records for all employees.
type AttendanceSource interface {
	ListForDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error)
}

// EmployeeDirectory supplies the set of employees the live table tracks.
type EmployeeDirectory interface {
	ListActive(ctx context.Context) ([]employee.Employee, error)
}

// Reconciler owns the canonical "who is currently at work" table and the
// recent-activity feed, reconciling two channels:
//
//   - authoritative: the fixed-cadence snapshot poll, the only writer of the
//     live-status table; each committed snapshot fully replaces the prior one
//   - advisory: push events, which only append provisional feed entries and
//     trigger an out-of-band poll, never mutate canonical state
//
// Stale poll responses are discarded by sequence number so a slow response
// can never overwrite a newer snapshot.
type Reconciler struct {
	source    AttendanceSource
	directory EmployeeDirectory
	interval  time.Duration
	now       func() time.Time

	issuedSeq atomic.Uint64

	mu           sync.RWMutex
	committedSeq uint64
	statuses     map[string]live.EmployeeLiveStatus
	feed         []live.FeedEntry
	seen         map[string]struct{}
	stopped      bool

	trigger chan struct{}
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewReconciler(source AttendanceSource, directory EmployeeDirectory, interval time.Duration) *Reconciler {
	return &Reconciler{
		source:    source,
		directory: directory,
		interval:  interval,
		now:       time.Now,
		statuses:  make(map[string]live.EmployeeLiveStatus),
		seen:      make(map[string]struct{}),
		trigger:   make(chan struct{}, 1),
	}
}

// Start launches the polling loop: one immediate poll, then one per
// interval, plus out-of-band polls whenever Trigger fires. Failed polls keep
// the last committed snapshot and are retried on the next tick.
func (r *Reconciler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		if err := r.PollOnce(ctx); err != nil {
			slog.Warn("live: initial poll failed", "error", err)
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			case <-r.trigger:
			}
			if err := r.PollOnce(ctx); err != nil {
				slog.Warn("live: poll failed, keeping last snapshot", "error", err)
			}
		}
	}()

	slog.Info("live reconciler started", "interval", r.interval)
}

// Stop tears the reconciler down deterministically: the loop is cancelled,
// in-flight work is awaited, and no further commits can happen afterwards.
func (r *Reconciler) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()

	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()
	slog.Info("live reconciler stopped")
}

// Trigger requests an immediate out-of-band poll. Non-blocking; coalesces
// with an already-pending trigger.
func (r *Reconciler) Trigger() {
	select {
	case r.trigger <- struct{}{}:
	default:
	}
}

// PollOnce fetches today's snapshot and commits it under a fresh sequence
// number. The canonical table is untouched on any error.
func (r *Reconciler) PollOnce(ctx context.Context) error {
	seq := r.issuedSeq.Add(1)
	today := r.now()

	records, err := r.source.ListForDate(ctx, today)
	if err != nil {
		return err
	}
	employees, err := r.directory.ListActive(ctx)
	if err != nil {
		return err
	}

	r.commit(seq, today, records, employees)
	return nil
}

// HandlePushEvent processes an advisory event: appends a deduplicated feed
// entry and triggers an authoritative poll. It never writes the live-status
// table; push payloads are hints, not truth.
func (r *Reconciler) HandlePushEvent(ev live.PushEvent) (live.FeedEntry, bool, error) {
	if err := ev.Validate(); err != nil {
		return live.FeedEntry{}, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return live.FeedEntry{}, false, nil
	}

	key := ev.DedupeKey()
	if _, dup := r.seen[key]; dup {
		return live.FeedEntry{}, false, nil
	}
	r.seen[key] = struct{}{}

	entry := live.FeedEntry{
		ID:           uuid.NewString(),
		EmployeeID:   ev.EmployeeID,
		EmployeeName: ev.EmployeeName,
		Department:   ev.Department,
		Event:        ev.Type,
		Timestamp:    ev.Timestamp,
	}

	// Newest first, capped. Dedupe state leaves with the evicted entry so
	// the map stays bounded by the feed window.
	r.feed = append([]live.FeedEntry{entry}, r.feed...)
	for len(r.feed) > feedCapacity {
		evicted := r.feed[len(r.feed)-1]
		delete(r.seen, evicted.DedupeKey())
		r.feed = r.feed[:len(r.feed)-1]
	}

	r.Trigger()
	return entry, true, nil
}

// commit replaces the canonical table with the snapshot, unless a newer poll
// has been issued in the meantime (the stale response is then discarded) or
// the reconciler has been stopped.
func (r *Reconciler) commit(seq uint64, today time.Time, records []attendance.Attendance, employees []employee.Employee) {
	byEmployee := make(map[string]attendance.Attendance, len(records))
	for _, rec := range records {
		if rec.Date.IsZero() {
			slog.Warn("live: skipping attendance record without date", "attendance_id", rec.ID)
			continue
		}
		byEmployee[rec.EmployeeID] = rec
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return
	}
	if seq != r.issuedSeq.Load() || seq <= r.committedSeq {
		slog.Debug("live: discarding stale poll result", "seq", seq, "latest", r.issuedSeq.Load())
		return
	}

	next := make(map[string]live.EmployeeLiveStatus, len(employees))
	for _, emp := range employees {
		prior, known := r.statuses[emp.ID]

		status := live.EmployeeLiveStatus{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
		}
		if emp.Department != nil {
			status.Department = *emp.Department
		}

		rec, hasRecord := byEmployee[emp.ID]
		switch {
		case hasRecord:
			status = r.deriveStatus(status, rec, today)
		case known && (prior.Status == live.StatusActive || prior.Status == live.StatusLate):
			// Previously clocked in, now gone from the snapshot: demote.
			status.Status = live.StatusAbsent
		case known:
			status = prior
		default:
			status.Status = live.StatusAbsent
		}

		next[emp.ID] = status
	}

	r.statuses = next
	r.committedSeq = seq
}

// deriveStatus classifies a live record: active (clocked in), late (clocked
// in after the threshold), completed (clocked out), or the authoritative
// leave/absent tag when the record carries one.
func (r *Reconciler) deriveStatus(base live.EmployeeLiveStatus, rec attendance.Attendance, today time.Time) live.EmployeeLiveStatus {
	if rec.StatusTag != nil {
		switch *rec.StatusTag {
		case attendance.TagLeave, attendance.TagHoliday:
			base.Status = live.StatusLeave
			return base
		case attendance.TagAbsent:
			base.Status = live.StatusAbsent
			return base
		}
	}

	if rec.Location != nil {
		base.Location = *rec.Location
	}

	if rec.ClockIn == nil {
		base.Status = live.StatusAbsent
		return base
	}

	clockIn := *rec.ClockIn
	base.CheckIn = clockIn.Format(clockDisplayFormat)

	threshold := time.Date(clockIn.Year(), clockIn.Month(), clockIn.Day(),
		lateThresholdHour, lateThresholdMinute, 0, 0, clockIn.Location())

	if rec.ClockOut == nil {
		if clockIn.After(threshold) {
			base.Status = live.StatusLate
		} else {
			base.Status = live.StatusActive
		}
		base.HoursWorked = report.Round2(today.Sub(clockIn).Hours())
		if base.HoursWorked < 0 {
			base.HoursWorked = 0
		}
		return base
	}

	clockOut := *rec.ClockOut
	base.Status = live.StatusCompleted
	base.CheckOut = clockOut.Format(clockDisplayFormat)
	hours := clockOut.Sub(clockIn).Hours()
	if hours < 0 {
		hours = 0
	}
	base.HoursWorked = report.Round2(hours)
	return base
}

// Statuses returns the last committed snapshot, sorted by employee name.
// Never blocks on a poll.
func (r *Reconciler) Statuses() []live.EmployeeLiveStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]live.EmployeeLiveStatus, 0, len(r.statuses))
	for _, status := range r.statuses {
		out = append(out, status)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EmployeeName == out[j].EmployeeName {
			return out[i].EmployeeID < out[j].EmployeeID
		}
		return out[i].EmployeeName < out[j].EmployeeName
	})
	return out
}

// Feed returns a copy of the recent-activity feed, newest first.
func (r *Reconciler) Feed() []live.FeedEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]live.FeedEntry, len(r.feed))
	copy(out, r.feed)
	return out
}

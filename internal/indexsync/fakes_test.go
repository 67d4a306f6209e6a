package indexsync

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"job-portal-backend/internal/domain"
)

type memTasks struct {
	mu       sync.Mutex
	nextID   int64
	tasks    map[string]*domain.SyncTask
	failures []domain.SyncFailure
	now      time.Time
}

func newMemTasks() *memTasks {
	return &memTasks{tasks: map[string]*domain.SyncTask{}, now: time.Now()}
}

func taskKey(jobID int64, action domain.SyncAction) string {
	return domain.DocumentID(jobID) + ":" + string(action)
}

func (m *memTasks) Enqueue(_ context.Context, jobID int64, action domain.SyncAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := taskKey(jobID, action)
	if t, ok := m.tasks[k]; ok {
		t.Revision++
		t.Attempts = 0
		t.AvailableAt = m.now
		return nil
	}
	m.nextID++
	m.tasks[k] = &domain.SyncTask{ID: m.nextID, JobID: jobID, Action: action, Revision: 1, AvailableAt: m.now}
	return nil
}

func (m *memTasks) EnqueueIfAbsent(_ context.Context, jobID int64, action domain.SyncAction) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := taskKey(jobID, action)
	if _, ok := m.tasks[k]; ok {
		return false, nil
	}
	m.nextID++
	m.tasks[k] = &domain.SyncTask{ID: m.nextID, JobID: jobID, Action: action, Revision: 1, AvailableAt: m.now}
	return true, nil
}

func (m *memTasks) ClaimDue(_ context.Context, limit int, lease time.Duration) ([]domain.SyncTask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var due []*domain.SyncTask
	for _, t := range m.tasks {
		if !t.AvailableAt.After(m.now) {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ID < due[j].ID })
	if len(due) > limit {
		due = due[:limit]
	}
	out := make([]domain.SyncTask, 0, len(due))
	for _, t := range due {
		t.AvailableAt = m.now.Add(lease)
		out = append(out, *t)
	}
	return out, nil
}

func (m *memTasks) Complete(_ context.Context, task domain.SyncTask) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := taskKey(task.JobID, task.Action)
	if t, ok := m.tasks[k]; ok && t.Revision == task.Revision {
		delete(m.tasks, k)
	}
	return nil
}

func (m *memTasks) Retry(_ context.Context, task domain.SyncTask, delay time.Duration, cause string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tasks[taskKey(task.JobID, task.Action)]; ok && t.Revision == task.Revision {
		t.Attempts++
		t.LastError = cause
		t.AvailableAt = m.now.Add(delay)
	}
	return nil
}

func (m *memTasks) Fail(_ context.Context, task domain.SyncTask, cause string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, domain.SyncFailure{
		JobID: task.JobID, Action: task.Action, Attempts: task.Attempts + 1, LastError: cause,
	})
	k := taskKey(task.JobID, task.Action)
	if t, ok := m.tasks[k]; ok && t.Revision == task.Revision {
		delete(m.tasks, k)
	}
	return nil
}

func (m *memTasks) ListFailures(_ context.Context, limit int) ([]domain.SyncFailure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.failures) > limit {
		return m.failures[:limit], nil
	}
	return m.failures, nil
}

func (m *memTasks) advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

func (m *memTasks) pending() []domain.SyncTask {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.SyncTask, 0, len(m.tasks))
	for _, t := range m.tasks {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type memJobs struct {
	mu   sync.Mutex
	jobs map[int64]*domain.Job
	err  error
}

func newMemJobs(jobs ...domain.Job) *memJobs {
	m := &memJobs{jobs: map[int64]*domain.Job{}}
	for i := range jobs {
		j := jobs[i]
		m.jobs[j.ID] = &j
	}
	return m
}

func (m *memJobs) GetByID(_ context.Context, id int64) (*domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	j, ok := m.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (m *memJobs) ListIDs(_ context.Context) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]int64, 0, len(m.jobs))
	for id := range m.jobs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

var errIndexDown = errors.New("index unavailable")

type memIndex struct {
	mu   sync.Mutex
	docs map[int64]domain.JobDocument
	down bool
}

func newMemIndex() *memIndex {
	return &memIndex{docs: map[int64]domain.JobDocument{}}
}

func (m *memIndex) EnsureIndex(context.Context) error { return nil }

func (m *memIndex) Upsert(_ context.Context, doc domain.JobDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return errIndexDown
	}
	m.docs[doc.JobID] = doc
	return nil
}

func (m *memIndex) Delete(_ context.Context, jobID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return errIndexDown
	}
	delete(m.docs, jobID)
	return nil
}

func (m *memIndex) Search(context.Context, string, int) ([]int64, error) {
	return nil, nil
}

func (m *memIndex) ListIDs(context.Context) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return nil, errIndexDown
	}
	ids := make([]int64, 0, len(m.docs))
	for id := range m.docs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *memIndex) doc(id int64) (domain.JobDocument, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docs[id]
	return d, ok
}

func (m *memIndex) setDown(down bool) {
	m.mu.Lock()
	m.down = down
	m.mu.Unlock()
}

type countingRecorder struct {
	mu       sync.Mutex
	tasks    map[string]int
	retries  int
	failures int
	enqueued map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{tasks: map[string]int{}, enqueued: map[string]int{}}
}

func (c *countingRecorder) RecordSyncTask(action, result string) {
	c.mu.Lock()
	c.tasks[action+"/"+result]++
	c.mu.Unlock()
}

func (c *countingRecorder) RecordSyncRetry(string) {
	c.mu.Lock()
	c.retries++
	c.mu.Unlock()
}

func (c *countingRecorder) RecordSyncFailure(string) {
	c.mu.Lock()
	c.failures++
	c.mu.Unlock()
}

func (c *countingRecorder) RecordReconcileEnqueued(action string, count int) {
	c.mu.Lock()
	c.enqueued[action] += count
	c.mu.Unlock()
}

func (c *countingRecorder) RecordAuthFailure(string) {}

package repo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
)

// MemoryStore keeps every entity kind in process memory. It backs the
// "memory" driver and the service tests. Transactions serialize all
// writers under one lock; partial work is not rolled back, so callers
// must order writes the way the consistency layer does.
type MemoryStore struct {
	mu    *sync.RWMutex
	state *memState
	inTx  bool
}

type memState struct {
	users         map[string]domain.User
	startups      map[string]domain.Startup
	requests      map[string]domain.JoinRequest
	notifications map[string]domain.Notification
	tasks         map[string]domain.Task
	categories    map[uint]domain.Category
	catSeq        uint
	audit         []domain.AuditLog
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mu: &sync.RWMutex{},
		state: &memState{
			users:         map[string]domain.User{},
			startups:      map[string]domain.Startup{},
			requests:      map[string]domain.JoinRequest{},
			notifications: map[string]domain.Notification{},
			tasks:         map[string]domain.Task{},
			categories:    map[uint]domain.Category{},
		},
	}
}

func (s *MemoryStore) lock() {
	if !s.inTx {
		s.mu.Lock()
	}
}
func (s *MemoryStore) unlock() {
	if !s.inTx {
		s.mu.Unlock()
	}
}
func (s *MemoryStore) rlock() {
	if !s.inTx {
		s.mu.RLock()
	}
}
func (s *MemoryStore) runlock() {
	if !s.inTx {
		s.mu.RUnlock()
	}
}

func (s *MemoryStore) Users() domain.UserStore                 { return memUsers{s} }
func (s *MemoryStore) Startups() domain.StartupStore           { return memStartups{s} }
func (s *MemoryStore) JoinRequests() domain.JoinRequestStore   { return memRequests{s} }
func (s *MemoryStore) Notifications() domain.NotificationStore { return memNotifications{s} }
func (s *MemoryStore) Tasks() domain.TaskStore                 { return memTasks{s} }
func (s *MemoryStore) Categories() domain.CategoryStore        { return memCategories{s} }
func (s *MemoryStore) Audit() domain.AuditStore                { return memAudit{s} }

func (s *MemoryStore) Transaction(ctx context.Context, fn func(domain.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&MemoryStore{mu: s.mu, state: s.state, inTx: true})
}

// --- users ---

type memUsers struct{ s *MemoryStore }

func (r memUsers) Create(_ context.Context, u *domain.User) error {
	r.s.lock()
	defer r.s.unlock()
	for _, ex := range r.s.state.users {
		if strings.EqualFold(ex.Email, u.Email) {
			return domain.ErrConflict
		}
	}
	r.s.state.users[u.ID] = *u
	return nil
}

func (r memUsers) ByID(_ context.Context, id string) (*domain.User, error) {
	r.s.rlock()
	defer r.s.runlock()
	u, ok := r.s.state.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r memUsers) ByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.rlock()
	defer r.s.runlock()
	for _, u := range r.s.state.users {
		if strings.EqualFold(u.Email, email) {
			out := u
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r memUsers) List(_ context.Context) ([]domain.User, error) {
	r.s.rlock()
	defer r.s.runlock()
	out := make([]domain.User, 0, len(r.s.state.users))
	for _, u := range r.s.state.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memUsers) Update(_ context.Context, u *domain.User) error {
	r.s.lock()
	defer r.s.unlock()
	if _, ok := r.s.state.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.state.users[u.ID] = *u
	return nil
}

func (r memUsers) Delete(_ context.Context, id string) error {
	r.s.lock()
	defer r.s.unlock()
	if _, ok := r.s.state.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.state.users, id)
	return nil
}

func (r memUsers) Count(_ context.Context) (int64, error) {
	r.s.rlock()
	defer r.s.runlock()
	return int64(len(r.s.state.users)), nil
}

// --- startups ---

type memStartups struct{ s *MemoryStore }

func (r memStartups) Create(_ context.Context, st *domain.Startup) error {
	r.s.lock()
	defer r.s.unlock()
	r.s.state.startups[st.ID] = *st
	return nil
}

func (r memStartups) ByID(_ context.Context, id string) (*domain.Startup, error) {
	r.s.rlock()
	defer r.s.runlock()
	st, ok := r.s.state.startups[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	st.Team = append(domain.Roster(nil), st.Team...)
	return &st, nil
}

func (r memStartups) List(_ context.Context, f domain.StartupFilter) ([]domain.Startup, error) {
	r.s.rlock()
	defer r.s.runlock()
	out := make([]domain.Startup, 0, len(r.s.state.startups))
	for _, st := range r.s.state.startups {
		if f.Status != "" && st.Status != f.Status {
			continue
		}
		if f.OwnerID != "" && st.OwnerID != f.OwnerID {
			continue
		}
		st.Team = append(domain.Roster(nil), st.Team...)
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memStartups) Update(_ context.Context, st *domain.Startup) error {
	r.s.lock()
	defer r.s.unlock()
	if _, ok := r.s.state.startups[st.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *st
	cp.Team = append(domain.Roster(nil), st.Team...)
	r.s.state.startups[st.ID] = cp
	return nil
}

func (r memStartups) Delete(_ context.Context, id string) error {
	r.s.lock()
	defer r.s.unlock()
	if _, ok := r.s.state.startups[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.state.startups, id)
	return nil
}

func (r memStartups) Count(_ context.Context, status string) (int64, error) {
	r.s.rlock()
	defer r.s.runlock()
	var n int64
	for _, st := range r.s.state.startups {
		if status == "" || st.Status == status {
			n++
		}
	}
	return n, nil
}

// --- join requests ---

type memRequests struct{ s *MemoryStore }

func (r memRequests) Create(_ context.Context, jr *domain.JoinRequest) error {
	r.s.lock()
	defer r.s.unlock()
	r.s.state.requests[jr.ID] = *jr
	return nil
}

func (r memRequests) ByID(_ context.Context, id string) (*domain.JoinRequest, error) {
	r.s.rlock()
	defer r.s.runlock()
	jr, ok := r.s.state.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &jr, nil
}

func (r memRequests) List(_ context.Context, f domain.RequestFilter) ([]domain.JoinRequest, error) {
	r.s.rlock()
	defer r.s.runlock()
	out := make([]domain.JoinRequest, 0, len(r.s.state.requests))
	for _, jr := range r.s.state.requests {
		if f.Status != "" && jr.Status != f.Status {
			continue
		}
		if f.StartupID != "" && jr.StartupID != f.StartupID {
			continue
		}
		if f.UserID != "" && jr.UserID != f.UserID {
			continue
		}
		out = append(out, jr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memRequests) Update(_ context.Context, jr *domain.JoinRequest) error {
	r.s.lock()
	defer r.s.unlock()
	if _, ok := r.s.state.requests[jr.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.state.requests[jr.ID] = *jr
	return nil
}

func (r memRequests) Delete(_ context.Context, id string) error {
	r.s.lock()
	defer r.s.unlock()
	if _, ok := r.s.state.requests[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.state.requests, id)
	return nil
}

func (r memRequests) DeleteByUser(_ context.Context, userID string) error {
	r.s.lock()
	defer r.s.unlock()
	for id, jr := range r.s.state.requests {
		if jr.UserID == userID {
			delete(r.s.state.requests, id)
		}
	}
	return nil
}

func (r memRequests) DeleteByStartup(_ context.Context, startupID string) error {
	r.s.lock()
	defer r.s.unlock()
	for id, jr := range r.s.state.requests {
		if jr.StartupID == startupID {
			delete(r.s.state.requests, id)
		}
	}
	return nil
}

func (r memRequests) DeleteResolved(_ context.Context) (int64, error) {
	r.s.lock()
	defer r.s.unlock()
	var n int64
	for id, jr := range r.s.state.requests {
		if jr.Status != domain.RequestPending {
			delete(r.s.state.requests, id)
			n++
		}
	}
	return n, nil
}

func (r memRequests) Count(_ context.Context, status string) (int64, error) {
	r.s.rlock()
	defer r.s.runlock()
	var n int64
	for _, jr := range r.s.state.requests {
		if status == "" || jr.Status == status {
			n++
		}
	}
	return n, nil
}

// --- notifications ---

type memNotifications struct{ s *MemoryStore }

func (r memNotifications) Create(_ context.Context, n *domain.Notification) error {
	r.s.lock()
	defer r.s.unlock()
	r.s.state.notifications[n.ID] = *n
	return nil
}

func (r memNotifications) ByID(_ context.Context, id string) (*domain.Notification, error) {
	r.s.rlock()
	defer r.s.runlock()
	n, ok := r.s.state.notifications[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &n, nil
}

func (r memNotifications) ListForUser(_ context.Context, userID string, includeAdmin bool) ([]domain.Notification, error) {
	r.s.rlock()
	defer r.s.runlock()
	var out []domain.Notification
	for _, n := range r.s.state.notifications {
		if n.UserID == userID || (includeAdmin && n.UserID == domain.NotifyAdmin) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memNotifications) ListAll(_ context.Context) ([]domain.Notification, error) {
	r.s.rlock()
	defer r.s.runlock()
	out := make([]domain.Notification, 0, len(r.s.state.notifications))
	for _, n := range r.s.state.notifications {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memNotifications) Update(_ context.Context, n *domain.Notification) error {
	r.s.lock()
	defer r.s.unlock()
	if _, ok := r.s.state.notifications[n.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.state.notifications[n.ID] = *n
	return nil
}

func (r memNotifications) MarkAllRead(_ context.Context, userID string) error {
	r.s.lock()
	defer r.s.unlock()
	for id, n := range r.s.state.notifications {
		if n.UserID == userID {
			n.IsRead = true
			r.s.state.notifications[id] = n
		}
	}
	return nil
}

func (r memNotifications) DeleteByUser(_ context.Context, userID string) error {
	r.s.lock()
	defer r.s.unlock()
	for id, n := range r.s.state.notifications {
		if n.UserID == userID {
			delete(r.s.state.notifications, id)
		}
	}
	return nil
}

func (r memNotifications) Count(_ context.Context) (int64, error) {
	r.s.rlock()
	defer r.s.runlock()
	return int64(len(r.s.state.notifications)), nil
}

// --- tasks ---

type memTasks struct{ s *MemoryStore }

func (r memTasks) Create(_ context.Context, t *domain.Task) error {
	r.s.lock()
	defer r.s.unlock()
	r.s.state.tasks[t.ID] = *t
	return nil
}

func (r memTasks) ByID(_ context.Context, id string) (*domain.Task, error) {
	r.s.rlock()
	defer r.s.runlock()
	t, ok := r.s.state.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r memTasks) ListByStartup(_ context.Context, startupID string) ([]domain.Task, error) {
	r.s.rlock()
	defer r.s.runlock()
	var out []domain.Task
	for _, t := range r.s.state.tasks {
		if t.StartupID == startupID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r memTasks) Update(_ context.Context, t *domain.Task) error {
	r.s.lock()
	defer r.s.unlock()
	if _, ok := r.s.state.tasks[t.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.state.tasks[t.ID] = *t
	return nil
}

func (r memTasks) Delete(_ context.Context, id string) error {
	r.s.lock()
	defer r.s.unlock()
	if _, ok := r.s.state.tasks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.state.tasks, id)
	return nil
}

func (r memTasks) DeleteByStartup(_ context.Context, startupID string) error {
	r.s.lock()
	defer r.s.unlock()
	for id, t := range r.s.state.tasks {
		if t.StartupID == startupID {
			delete(r.s.state.tasks, id)
		}
	}
	return nil
}

// --- categories ---

type memCategories struct{ s *MemoryStore }

func (r memCategories) Create(_ context.Context, c *domain.Category) error {
	r.s.lock()
	defer r.s.unlock()
	for _, ex := range r.s.state.categories {
		if strings.EqualFold(ex.Name, c.Name) {
			return domain.ErrConflict
		}
	}
	r.s.state.catSeq++
	c.ID = r.s.state.catSeq
	r.s.state.categories[c.ID] = *c
	return nil
}

func (r memCategories) ByName(_ context.Context, name string) (*domain.Category, error) {
	r.s.rlock()
	defer r.s.runlock()
	for _, c := range r.s.state.categories {
		if strings.EqualFold(c.Name, name) {
			out := c
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r memCategories) List(_ context.Context) ([]domain.Category, error) {
	r.s.rlock()
	defer r.s.runlock()
	out := make([]domain.Category, 0, len(r.s.state.categories))
	for _, c := range r.s.state.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memCategories) Delete(_ context.Context, id uint) error {
	r.s.lock()
	defer r.s.unlock()
	if _, ok := r.s.state.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.state.categories, id)
	return nil
}

// --- audit log ---

type memAudit struct{ s *MemoryStore }

func (r memAudit) Append(_ context.Context, e *domain.AuditLog) error {
	r.s.lock()
	defer r.s.unlock()
	r.s.state.audit = append(r.s.state.audit, *e)
	return nil
}

func (r memAudit) List(_ context.Context, limit int) ([]domain.AuditLog, error) {
	r.s.rlock()
	defer r.s.runlock()
	out := append([]domain.AuditLog(nil), r.s.state.audit...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

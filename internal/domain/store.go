package domain

import "context"

// StartupFilter narrows startup listings. Zero value lists everything.
type StartupFilter struct {
	Status  string
	OwnerID string
}

// RequestFilter narrows join-request listings.
type RequestFilter struct {
	Status    string
	StartupID string
	UserID    string
}

type UserStore interface {
	Create(ctx context.Context, u *User) error
	ByID(ctx context.Context, id string) (*User, error)
	ByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type StartupStore interface {
	Create(ctx context.Context, s *Startup) error
	ByID(ctx context.Context, id string) (*Startup, error)
	List(ctx context.Context, f StartupFilter) ([]Startup, error)
	Update(ctx context.Context, s *Startup) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, status string) (int64, error)
}

type JoinRequestStore interface {
	Create(ctx context.Context, r *JoinRequest) error
	ByID(ctx context.Context, id string) (*JoinRequest, error)
	List(ctx context.Context, f RequestFilter) ([]JoinRequest, error)
	Update(ctx context.Context, r *JoinRequest) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
	DeleteByStartup(ctx context.Context, startupID string) error
	DeleteResolved(ctx context.Context) (int64, error)
	Count(ctx context.Context, status string) (int64, error)
}

type NotificationStore interface {
	Create(ctx context.Context, n *Notification) error
	ByID(ctx context.Context, id string) (*Notification, error)
	// ListForUser returns the user's notifications, newest first,
	// including admin-sentinel broadcasts when includeAdmin is set.
	ListForUser(ctx context.Context, userID string, includeAdmin bool) ([]Notification, error)
	ListAll(ctx context.Context) ([]Notification, error)
	Update(ctx context.Context, n *Notification) error
	MarkAllRead(ctx context.Context, userID string) error
	DeleteByUser(ctx context.Context, userID string) error
	Count(ctx context.Context) (int64, error)
}

type TaskStore interface {
	Create(ctx context.Context, t *Task) error
	ByID(ctx context.Context, id string) (*Task, error)
	ListByStartup(ctx context.Context, startupID string) ([]Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id string) error
	DeleteByStartup(ctx context.Context, startupID string) error
}

type CategoryStore interface {
	Create(ctx context.Context, c *Category) error
	ByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Delete(ctx context.Context, id uint) error
}

type AuditStore interface {
	Append(ctx context.Context, e *AuditLog) error
	List(ctx context.Context, limit int) ([]AuditLog, error)
}

// Store is the entity-store contract the service layer depends on.
// Lookups by missing id return ErrNotFound. Transaction runs fn against
// a store bound to one atomic unit; returning an error rolls it back.
type Store interface {
	Users() UserStore
	Startups() StartupStore
	JoinRequests() JoinRequestStore
	Notifications() NotificationStore
	Tasks() TaskStore
	Categories() CategoryStore
	Audit() AuditStore
	Transaction(ctx context.Context, fn func(Store) error) error
}

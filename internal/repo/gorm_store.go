// Package repo implements the domain.Store contract. The gorm store is
// the production backend (postgres or mysql); the memory store backs
// tests and the "memory" driver.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Mamatov-cmd/GarajHub---sayt/internal/domain"
)

type GormStore struct{ db *gorm.DB }

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

// Migrate creates or updates the schema for every entity kind.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(
		&domain.User{},
		&domain.Startup{},
		&domain.JoinRequest{},
		&domain.Notification{},
		&domain.Task{},
		&domain.Category{},
		&domain.AuditLog{},
	)
}

func (s *GormStore) Users() domain.UserStore                 { return gormUsers{s.db} }
func (s *GormStore) Startups() domain.StartupStore           { return gormStartups{s.db} }
func (s *GormStore) JoinRequests() domain.JoinRequestStore   { return gormRequests{s.db} }
func (s *GormStore) Notifications() domain.NotificationStore { return gormNotifications{s.db} }
func (s *GormStore) Tasks() domain.TaskStore                 { return gormTasks{s.db} }
func (s *GormStore) Categories() domain.CategoryStore        { return gormCategories{s.db} }
func (s *GormStore) Audit() domain.AuditStore                { return gormAudit{s.db} }

func (s *GormStore) Transaction(ctx context.Context, fn func(domain.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --- users ---

type gormUsers struct{ db *gorm.DB }

func (r gormUsers) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r gormUsers) ByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r gormUsers) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r gormUsers) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&users).Error
	return users, err
}

func (r gormUsers) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r gormUsers) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r gormUsers) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&n).Error
	return n, err
}

// --- startups ---

type gormStartups struct{ db *gorm.DB }

func (r gormStartups) Create(ctx context.Context, s *domain.Startup) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r gormStartups) ByID(ctx context.Context, id string) (*domain.Startup, error) {
	var s domain.Startup
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r gormStartups) List(ctx context.Context, f domain.StartupFilter) ([]domain.Startup, error) {
	q := r.db.WithContext(ctx).Model(&domain.Startup{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.OwnerID != "" {
		q = q.Where("egasi_id = ?", f.OwnerID)
	}
	var out []domain.Startup
	err := q.Order("yaratilgan_vaqt desc").Find(&out).Error
	return out, err
}

func (r gormStartups) Update(ctx context.Context, s *domain.Startup) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r gormStartups) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Startup{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r gormStartups) Count(ctx context.Context, status string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Startup{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

// --- join requests ---

type gormRequests struct{ db *gorm.DB }

func (r gormRequests) Create(ctx context.Context, jr *domain.JoinRequest) error {
	return r.db.WithContext(ctx).Create(jr).Error
}

func (r gormRequests) ByID(ctx context.Context, id string) (*domain.JoinRequest, error) {
	var jr domain.JoinRequest
	if err := r.db.WithContext(ctx).First(&jr, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &jr, nil
}

func (r gormRequests) List(ctx context.Context, f domain.RequestFilter) ([]domain.JoinRequest, error) {
	q := r.db.WithContext(ctx).Model(&domain.JoinRequest{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.StartupID != "" {
		q = q.Where("startup_id = ?", f.StartupID)
	}
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	var out []domain.JoinRequest
	err := q.Order("created_at desc").Find(&out).Error
	return out, err
}

func (r gormRequests) Update(ctx context.Context, jr *domain.JoinRequest) error {
	return r.db.WithContext(ctx).Save(jr).Error
}

func (r gormRequests) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.JoinRequest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r gormRequests) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.JoinRequest{}).Error
}

func (r gormRequests) DeleteByStartup(ctx context.Context, startupID string) error {
	return r.db.WithContext(ctx).Where("startup_id = ?", startupID).Delete(&domain.JoinRequest{}).Error
}

func (r gormRequests) DeleteResolved(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("status <> ?", domain.RequestPending).Delete(&domain.JoinRequest{})
	return res.RowsAffected, res.Error
}

func (r gormRequests) Count(ctx context.Context, status string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.JoinRequest{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

// --- notifications ---

type gormNotifications struct{ db *gorm.DB }

func (r gormNotifications) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r gormNotifications) ByID(ctx context.Context, id string) (*domain.Notification, error) {
	var n domain.Notification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &n, nil
}

func (r gormNotifications) ListForUser(ctx context.Context, userID string, includeAdmin bool) ([]domain.Notification, error) {
	q := r.db.WithContext(ctx).Model(&domain.Notification{})
	if includeAdmin {
		q = q.Where("user_id = ? OR user_id = ?", userID, domain.NotifyAdmin)
	} else {
		q = q.Where("user_id = ?", userID)
	}
	var out []domain.Notification
	err := q.Order("created_at desc").Find(&out).Error
	return out, err
}

func (r gormNotifications) ListAll(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

func (r gormNotifications) Update(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r gormNotifications) MarkAllRead(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("user_id = ?", userID).Update("is_read", true).Error
}

func (r gormNotifications) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Notification{}).Error
}

func (r gormNotifications) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Notification{}).Count(&n).Error
	return n, err
}

// --- tasks ---

type gormTasks struct{ db *gorm.DB }

func (r gormTasks) Create(ctx context.Context, t *domain.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r gormTasks) ByID(ctx context.Context, id string) (*domain.Task, error) {
	var t domain.Task
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r gormTasks) ListByStartup(ctx context.Context, startupID string) ([]domain.Task, error) {
	var out []domain.Task
	err := r.db.WithContext(ctx).Where("startup_id = ?", startupID).
		Order("created_at asc").Find(&out).Error
	return out, err
}

func (r gormTasks) Update(ctx context.Context, t *domain.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r gormTasks) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r gormTasks) DeleteByStartup(ctx context.Context, startupID string) error {
	return r.db.WithContext(ctx).Where("startup_id = ?", startupID).Delete(&domain.Task{}).Error
}

// --- categories ---

type gormCategories struct{ db *gorm.DB }

func (r gormCategories) Create(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r gormCategories) ByName(ctx context.Context, name string) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.WithContext(ctx).First(&c, "name = ?", name).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r gormCategories) List(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.WithContext(ctx).Order("name asc").Find(&out).Error
	return out, err
}

func (r gormCategories) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --- audit log ---

type gormAudit struct{ db *gorm.DB }

func (r gormAudit) Append(ctx context.Context, e *domain.AuditLog) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r gormAudit) List(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	var out []domain.AuditLog
	err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&out).Error
	return out, err
}

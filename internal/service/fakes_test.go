package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/linguahub/moderation-service/internal/domain"
	"github.com/linguahub/moderation-service/internal/repository"
)

// In-memory doubles for the persistence layer. Get methods hand out copies so
// a failed operation cannot leak half-applied mutations into the "store".

type fakeUserRepo struct {
	mu     sync.Mutex
	seq    int
	users  map[string]domain.User
	getErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (r *fakeUserRepo) put(user domain.User) domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	stored := r.put(*user)
	*user = stored
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context, filter repository.UserFilter) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.User
	for _, user := range r.users {
		if filter.Role != nil && user.Role != *filter.Role {
			continue
		}
		if filter.Status != nil && user.Status != *filter.Status {
			continue
		}
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

type fakeReportRepo struct {
	mu      sync.Mutex
	seq     int
	tickets map[string]domain.ReportTicket
	users   *fakeUserRepo
}

func newFakeReportRepo(users *fakeUserRepo) *fakeReportRepo {
	return &fakeReportRepo{tickets: make(map[string]domain.ReportTicket), users: users}
}

func (r *fakeReportRepo) Create(_ context.Context, ticket *domain.ReportTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	ticket.ID = fmt.Sprintf("ticket-%d", r.seq)
	ticket.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	ticket.UpdatedAt = ticket.CreatedAt
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *fakeReportRepo) GetByID(_ context.Context, id string) (*domain.ReportTicket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := ticket
	return &copied, nil
}

func (r *fakeReportRepo) UpdateStatus(_ context.Context, id string, status domain.ReportStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return pgx.ErrNoRows
	}
	ticket.Status = status
	r.tickets[id] = ticket
	return nil
}

func (r *fakeReportRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.tickets, id)
	return nil
}

func (r *fakeReportRepo) ListRows(_ context.Context, filter repository.ReportFilter) ([]domain.ReportRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.ReportRow
	for _, ticket := range r.tickets {
		if filter.ReportedUserID != nil && ticket.ReportedUserID != *filter.ReportedUserID {
			continue
		}
		if len(filter.Statuses) > 0 {
			matched := false
			for _, status := range filter.Statuses {
				if ticket.Status == status {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		result = append(result, domain.ReportRow{
			ID:               ticket.ID,
			ReporterName:     r.displayName(ticket.ReporterID),
			ReportedUserName: r.displayName(ticket.ReportedUserID),
			Reason:           ticket.Reason,
			Status:           ticket.Status,
			CreatedAt:        ticket.CreatedAt,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeReportRepo) displayName(userID string) string {
	if user, ok := r.users.users[userID]; ok {
		return user.FullName
	}
	return "Unknown"
}

type fakeModerationStore struct {
	users   *fakeUserRepo
	reports *fakeReportRepo
	err     error
}

func (s *fakeModerationStore) ApplyDecision(_ context.Context, ticket *domain.ReportTicket, user *domain.User) error {
	if s.err != nil {
		return s.err
	}
	s.users.mu.Lock()
	if _, ok := s.users.users[user.ID]; !ok {
		s.users.mu.Unlock()
		return pgx.ErrNoRows
	}
	s.users.users[user.ID] = *user
	s.users.mu.Unlock()

	s.reports.mu.Lock()
	defer s.reports.mu.Unlock()
	stored, ok := s.reports.tickets[ticket.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Status = ticket.Status
	s.reports.tickets[ticket.ID] = stored
	return nil
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	seq     int
	entries []domain.AuditEntry
	err     error
}

func (r *fakeAuditRepo) Append(_ context.Context, entry *domain.AuditEntry) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	entry.ID = fmt.Sprintf("audit-%d", r.seq)
	entry.Timestamp = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeAuditRepo) List(_ context.Context, limit, offset int) ([]domain.AuditEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reversed := make([]domain.AuditEntry, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		reversed = append(reversed, r.entries[i])
	}
	if offset > len(reversed) {
		return nil, nil
	}
	reversed = reversed[offset:]
	if limit > 0 && limit < len(reversed) {
		reversed = reversed[:limit]
	}
	return reversed, nil
}

type fakeLockouts struct {
	mu     sync.Mutex
	barred map[string]bool
	err    error
}

func newFakeLockouts() *fakeLockouts {
	return &fakeLockouts{barred: make(map[string]bool)}
}

func (c *fakeLockouts) Bar(_ context.Context, userID string, _ *time.Time) error {
	if c.err != nil {
		return c.err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.barred[userID] = true
	return nil
}

func (c *fakeLockouts) Clear(_ context.Context, userID string) error {
	if c.err != nil {
		return c.err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.barred, userID)
	return nil
}

// Package memory is an in-process implementation of the store ports. It is
// used for local runs without PostgreSQL and by the usecase tests.
package memory

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"traffic-exchange/internal/core/domain"
	"traffic-exchange/internal/core/port"
)

var (
	errDuplicateVisit    = errors.New("duplicate visit attempt")
	errNegativeBalance   = errors.New("balance would become negative")
	errBudgetOverspent   = errors.New("campaign spend would exceed allocation")
	errDuplicateEntry    = errors.New("duplicate ledger entry")
	errDuplicateCampaign = errors.New("duplicate campaign")
)

var (
	_ port.LedgerStore     = (*Store)(nil)
	_ port.QueryRepository = (*Store)(nil)
	_ port.FraudRepository = (*Store)(nil)
)

type reviewKey struct {
	userID   string
	category domain.FindingCategory
}

type state struct {
	profiles     map[string]domain.Profile
	campaigns    map[string]domain.Campaign
	visits       map[string]domain.Visit
	attempts     map[string]struct{}
	transactions []domain.CreditTransaction
	reviews      map[reviewKey]domain.FraudReview
}

func (st *state) clone() state {
	return state{
		profiles:     maps.Clone(st.profiles),
		campaigns:    maps.Clone(st.campaigns),
		visits:       maps.Clone(st.visits),
		attempts:     maps.Clone(st.attempts),
		transactions: slices.Clone(st.transactions),
		reviews:      maps.Clone(st.reviews),
	}
}

// Store keeps all exchange state in memory. Units of work are serialized
// by a single mutex and rolled back by restoring a snapshot.
type Store struct {
	mu  sync.Mutex
	st  state
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for the timestamps the store stamps itself.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		st: state{
			profiles:  make(map[string]domain.Profile),
			campaigns: make(map[string]domain.Campaign),
			visits:    make(map[string]domain.Visit),
			attempts:  make(map[string]struct{}),
			reviews:   make(map[reviewKey]domain.FraudReview),
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InTx runs fn with exclusive access to the store. Any error from fn
// discards every change fn made.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(ctx, &tx{st: &s.st, now: s.now}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

type tx struct {
	st  *state
	now func() time.Time
}

func (t *tx) LockProfile(_ context.Context, id string) (*domain.Profile, error) {
	p, ok := t.st.profiles[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &p, nil
}

func (t *tx) LockCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	c, ok := t.st.campaigns[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &c, nil
}

func (t *tx) LockVisit(_ context.Context, id string) (*domain.Visit, error) {
	v, ok := t.st.visits[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &v, nil
}

func (t *tx) InsertProfile(_ context.Context, p *domain.Profile) (bool, error) {
	if _, ok := t.st.profiles[p.ID]; ok {
		return false, nil
	}
	t.st.profiles[p.ID] = *p
	return true, nil
}

func (t *tx) SetRole(_ context.Context, userID string, role domain.Role, multiplier float64, campaignLimit int) error {
	p, ok := t.st.profiles[userID]
	if !ok {
		return port.ErrNotFound
	}
	p.Role = role
	p.CreditMultiplier = multiplier
	p.CampaignLimit = campaignLimit
	p.UpdatedAt = t.now().UTC()
	t.st.profiles[userID] = p
	return nil
}

func (t *tx) IncrementBalance(_ context.Context, userID string, delta int64) (int64, error) {
	p, ok := t.st.profiles[userID]
	if !ok {
		return 0, port.ErrNotFound
	}
	if p.CreditBalance+delta < 0 {
		return 0, errNegativeBalance
	}
	p.CreditBalance += delta
	p.UpdatedAt = t.now().UTC()
	t.st.profiles[userID] = p
	return p.CreditBalance, nil
}

func (t *tx) CountOpenCampaigns(_ context.Context, ownerID string) (int, error) {
	n := 0
	for _, c := range t.st.campaigns {
		if c.OwnerID == ownerID && c.IsOpen() {
			n++
		}
	}
	return n, nil
}

func (t *tx) InsertCampaign(_ context.Context, c *domain.Campaign) error {
	if _, ok := t.st.campaigns[c.ID]; ok {
		return errDuplicateCampaign
	}
	t.st.campaigns[c.ID] = *c
	return nil
}

func (t *tx) UpdateCampaign(_ context.Context, c *domain.Campaign) error {
	cur, ok := t.st.campaigns[c.ID]
	if !ok {
		return port.ErrNotFound
	}
	if cur.CreditsSpent > c.CreditsAllocated {
		return errBudgetOverspent
	}
	cur.Title = c.Title
	cur.URL = c.URL
	cur.CreditsAllocated = c.CreditsAllocated
	cur.Status = c.Status
	cur.UpdatedAt = c.UpdatedAt
	t.st.campaigns[c.ID] = cur
	return nil
}

func (t *tx) IncrementSpent(_ context.Context, campaignID string, delta int64) (domain.CampaignStatus, error) {
	c, ok := t.st.campaigns[campaignID]
	if !ok {
		return "", port.ErrNotFound
	}
	if c.CreditsSpent+delta > c.CreditsAllocated {
		return "", errBudgetOverspent
	}
	c.CreditsSpent += delta
	if c.CreditsSpent >= c.CreditsAllocated && c.Status == domain.CampaignActive {
		c.Status = domain.CampaignCompleted
	}
	c.UpdatedAt = t.now().UTC()
	t.st.campaigns[campaignID] = c
	return c.Status, nil
}

func (t *tx) CountVisits(_ context.Context, visitorID, campaignID string) (int, error) {
	n := 0
	for _, v := range t.st.visits {
		if v.VisitorID == visitorID && v.CampaignID == campaignID {
			n++
		}
	}
	return n, nil
}

func (t *tx) InsertVisit(_ context.Context, v *domain.Visit) error {
	key := fmt.Sprintf("%s/%s/%d", v.VisitorID, v.CampaignID, v.Attempt)
	if _, ok := t.st.attempts[key]; ok {
		return errDuplicateVisit
	}
	t.st.attempts[key] = struct{}{}
	t.st.visits[v.ID] = *v
	return nil
}

func (t *tx) UpdateVisitMetadata(_ context.Context, v *domain.Visit) error {
	cur, ok := t.st.visits[v.ID]
	if !ok {
		return port.ErrNotFound
	}
	cur.DurationSeconds = v.DurationSeconds
	cur.FraudScore = v.FraudScore
	cur.CompletedAt = v.CompletedAt
	cur.IsValid = v.IsValid
	t.st.visits[v.ID] = cur
	return nil
}

func (t *tx) AppendTransaction(_ context.Context, entry *domain.CreditTransaction) error {
	for _, existing := range t.st.transactions {
		if existing.ID == entry.ID {
			return errDuplicateEntry
		}
	}
	t.st.transactions = append(t.st.transactions, *entry)
	return nil
}

func (s *Store) GetProfile(_ context.Context, id string) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.st.profiles[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &p, nil
}

func (s *Store) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.st.campaigns[id]
	if !ok || c.Status == domain.CampaignDeleted {
		return nil, port.ErrNotFound
	}
	return &c, nil
}

// ListCampaignsByOwner returns the owner's campaigns that are not deleted,
// newest first.
func (s *Store) ListCampaignsByOwner(_ context.Context, ownerID string) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Campaign, 0)
	for _, c := range s.st.campaigns {
		if c.OwnerID == ownerID && c.Status != domain.CampaignDeleted {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (s *Store) ListAvailableCampaigns(_ context.Context, visitorID string, limit int) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Campaign, 0)
	for _, c := range s.st.campaigns {
		if c.Status == domain.CampaignActive && c.Remaining() > 0 && c.OwnerID != visitorID {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return truncate(out, limit), nil
}

// ListTransactions returns the newest entries of userID first.
func (s *Store) ListTransactions(_ context.Context, userID string, limit int) ([]domain.CreditTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CreditTransaction, 0)
	for i := len(s.st.transactions) - 1; i >= 0; i-- {
		if t := s.st.transactions[i]; t.UserID == userID {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.CreditTransaction) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return truncate(out, limit), nil
}

func (s *Store) SumTransactions(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum int64
	for _, t := range s.st.transactions {
		if t.UserID == userID {
			sum += t.Amount
		}
	}
	return sum, nil
}

// RecentVisits returns visits started at or after since, newest first,
// with the owner of each visited campaign.
func (s *Store) RecentVisits(_ context.Context, since time.Time, limit int) ([]domain.VisitActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.VisitActivity, 0)
	for _, v := range s.st.visits {
		if v.StartedAt.Before(since) {
			continue
		}
		out = append(out, domain.VisitActivity{
			Visit:           v,
			CampaignOwnerID: s.st.campaigns[v.CampaignID].OwnerID,
		})
	}
	slices.SortFunc(out, func(a, b domain.VisitActivity) int {
		if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return truncate(out, limit), nil
}

// RecentProfiles returns profiles created at or after since, newest first.
func (s *Store) RecentProfiles(_ context.Context, since time.Time, limit int) ([]domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Profile, 0)
	for _, p := range s.st.profiles {
		if !p.CreatedAt.Before(since) {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b domain.Profile) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return truncate(out, limit), nil
}

// RecentTransactions returns ledger entries created at or after since,
// newest first.
func (s *Store) RecentTransactions(_ context.Context, since time.Time, limit int) ([]domain.CreditTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CreditTransaction, 0)
	for i := len(s.st.transactions) - 1; i >= 0; i-- {
		if t := s.st.transactions[i]; !t.CreatedAt.Before(since) {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.CreditTransaction) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return truncate(out, limit), nil
}

func (s *Store) ListReviews(_ context.Context) ([]domain.FraudReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Collect(maps.Values(s.st.reviews))
	slices.SortFunc(out, func(a, b domain.FraudReview) int {
		if c := cmp.Compare(a.UserID, b.UserID); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out, nil
}

// SaveReview upserts the review for its (user, category) pair. The user
// must exist.
func (s *Store) SaveReview(_ context.Context, r domain.FraudReview) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.st.profiles[r.UserID]; !ok {
		return port.ErrNotFound
	}
	s.st.reviews[reviewKey{userID: r.UserID, category: r.Category}] = r
	return nil
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

package worker

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"linkpulse/internal/model"
	"linkpulse/internal/repository"
)

// memStore is an in-memory link and click store for pipeline tests
type memStore struct {
	mu     sync.Mutex
	nextID int64
	links  map[string]*model.Link
	clicks []model.Click
	events map[string]bool
	hourly map[string]model.HourlyRollup
	daily  map[string]model.DailyRollup

	// failRecord makes RecordClick fail while positive
	failRecord int
}

func newMemStore() *memStore {
	return &memStore{
		links:  make(map[string]*model.Link),
		events: make(map[string]bool),
		hourly: make(map[string]model.HourlyRollup),
		daily:  make(map[string]model.DailyRollup),
	}
}

func (m *memStore) addLink(l *model.Link) *model.Link {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	l.ID = m.nextID
	m.links[l.ShortCode] = l
	return l
}

func (m *memStore) SaveLink(_ context.Context, l *model.Link) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.links[l.ShortCode]; ok {
		return repository.ErrDuplicateCode
	}
	m.nextID++
	l.ID = m.nextID
	m.links[l.ShortCode] = l
	return nil
}

func (m *memStore) FindByShortCode(_ context.Context, shortCode string) (*model.Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.links[shortCode]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (m *memStore) CheckExistsByCode(_ context.Context, shortCode string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.links[shortCode]
	return ok, nil
}

func (m *memStore) linkByID(id int64) *model.Link {
	for _, l := range m.links {
		if l.ID == id {
			return l
		}
	}
	return nil
}

func (m *memStore) GetClickCount(_ context.Context, linkID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l := m.linkByID(linkID)
	if l == nil {
		return 0, repository.ErrNotFound
	}
	return l.ClickCount, nil
}

func (m *memStore) IncrementClickCount(_ context.Context, linkID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l := m.linkByID(linkID)
	if l == nil {
		return repository.ErrNotFound
	}
	l.ClickCount++
	return nil
}

func (m *memStore) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, l := range m.links {
		if l.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (m *memStore) DeleteLink(_ context.Context, shortCode string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.links[shortCode]; !ok {
		return repository.ErrNotFound
	}
	delete(m.links, shortCode)
	return nil
}

func (m *memStore) InsertClick(_ context.Context, click *model.Click) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertLocked(click), nil
}

func (m *memStore) insertLocked(click *model.Click) bool {
	if m.events[click.EventID] {
		return false
	}
	m.events[click.EventID] = true
	m.nextID++
	click.ID = m.nextID
	m.clicks = append(m.clicks, *click)
	return true
}

func (m *memStore) RecordClick(_ context.Context, click *model.Click) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failRecord > 0 {
		m.failRecord--
		return false, errTransient
	}
	l := m.linkByID(click.LinkID)
	if l == nil {
		return false, repository.ErrNotFound
	}
	if !m.insertLocked(click) {
		return false, nil
	}
	l.ClickCount++
	return true, nil
}

func (m *memStore) selectClicks(linkID int64, from, to time.Time, excludeBots bool) []model.Click {
	var out []model.Click
	for _, c := range m.clicks {
		if c.LinkID != linkID || c.Timestamp.Before(from) || !c.Timestamp.Before(to) {
			continue
		}
		if excludeBots && c.IsBot {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out
}

func (m *memStore) CountClicks(_ context.Context, linkID int64, from, to time.Time, excludeBots bool) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.selectClicks(linkID, from, to, excludeBots))), nil
}

func (m *memStore) ListClicks(_ context.Context, linkID int64, from, to time.Time, excludeBots bool) ([]model.Click, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectClicks(linkID, from, to, excludeBots), nil
}

func (m *memStore) GetRecentClicks(_ context.Context, linkID int64, limit int) ([]model.Click, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.selectClicks(linkID, time.Time{}, time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC), false)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Timestamp.After(all[j].Timestamp) })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *memStore) UpsertHourlyRollup(_ context.Context, r *model.HourlyRollup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hourly[rollupKey(r.LinkID, r.Hour.Format(time.RFC3339))] = *r
	return nil
}

func (m *memStore) UpsertDailyRollup(_ context.Context, r *model.DailyRollup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.daily[rollupKey(r.LinkID, r.Date)] = *r
	return nil
}

func (m *memStore) GetHourlyRollups(_ context.Context, linkID int64, _, _ time.Time) ([]model.HourlyRollup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.HourlyRollup
	for _, r := range m.hourly {
		if r.LinkID == linkID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) GetDailyRollups(_ context.Context, linkID int64, _, _ time.Time) ([]model.DailyRollup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.DailyRollup
	for _, r := range m.daily {
		if r.LinkID == linkID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) clickCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clicks)
}

func rollupKey(linkID int64, bucket string) string {
	return strconv.FormatInt(linkID, 10) + ":" + bucket
}

var (
	_ repository.LinkRepositoryInterface  = (*memStore)(nil)
	_ repository.ClickRepositoryInterface = (*memStore)(nil)
)

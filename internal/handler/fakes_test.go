package handler_test

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/suggestapp/suggestions-backend/internal/api"
	"github.com/suggestapp/suggestions-backend/internal/handler"
	model "github.com/suggestapp/suggestions-backend/internal/models"
	"github.com/suggestapp/suggestions-backend/internal/store"
)

// Stores en mémoire reproduisant le contrat du store PostgreSQL,
// contrainte d'unicité d'email comprise

type fakeSuggestionStore struct {
	mu     sync.Mutex
	nextID int
	items  map[int]model.Suggestion
}

func newFakeSuggestionStore() *fakeSuggestionStore {
	return &fakeSuggestionStore{nextID: 1, items: map[int]model.Suggestion{}}
}

func (f *fakeSuggestionStore) sorted() []model.Suggestion {
	out := []model.Suggestion{}
	for _, s := range f.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID > out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func (f *fakeSuggestionStore) List(ctx context.Context) ([]model.Suggestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(), nil
}

func (f *fakeSuggestionStore) ListByCategory(ctx context.Context, category string) ([]model.Suggestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Suggestion{}
	for _, s := range f.sorted() {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSuggestionStore) ListByStatus(ctx context.Context, status string) ([]model.Suggestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Suggestion{}
	for _, s := range f.sorted() {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSuggestionStore) Get(ctx context.Context, id int) (model.Suggestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[id]
	if !ok {
		return model.Suggestion{}, store.ErrNotFound
	}
	return s, nil
}

func (f *fakeSuggestionStore) Create(ctx context.Context, s model.Suggestion) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = f.nextID
	s.Date = time.Now()
	s.NbLikes = 0
	f.nextID++
	f.items[s.ID] = s
	return s.ID, nil
}

func (f *fakeSuggestionStore) Update(ctx context.Context, s model.Suggestion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.items[s.ID]
	if !ok {
		return store.ErrNotFound
	}
	s.Date = existing.Date
	f.items[s.ID] = s
	return nil
}

func (f *fakeSuggestionStore) Delete(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeSuggestionStore) Like(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[id]
	if !ok {
		return store.ErrNotFound
	}
	s.NbLikes++
	f.items[id] = s
	return nil
}

type fakeUserStore struct {
	mu     sync.Mutex
	nextID int
	items  map[int]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, items: map[int]model.User{}}
}

func (f *fakeUserStore) sorted() []model.User {
	out := []model.User{}
	for _, u := range f.items {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (f *fakeUserStore) List(ctx context.Context) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(), nil
}

func (f *fakeUserStore) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.User{}
	for _, u := range f.sorted() {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) ListByStatus(ctx context.Context, status string) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.User{}
	for _, u := range f.sorted() {
		if u.Status == status {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) Get(ctx context.Context, id int) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.items[id]
	if !ok {
		return model.User{}, store.ErrNotFound
	}
	return u, nil
}

// emailTaken reproduit la contrainte UNIQUE: comparaison exacte,
// sensible à la casse, en excluant la ligne elle-même
func (f *fakeUserStore) emailTaken(email string, selfID int) bool {
	for _, u := range f.items {
		if u.Email == email && u.ID != selfID {
			return true
		}
	}
	return false
}

func (f *fakeUserStore) Create(ctx context.Context, u model.User) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.emailTaken(u.Email, 0) {
		return 0, store.ErrDuplicateEmail
	}
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.nextID++
	f.items[u.ID] = u
	return u.ID, nil
}

func (f *fakeUserStore) Update(ctx context.Context, u model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.items[u.ID]
	if !ok {
		return store.ErrNotFound
	}
	if f.emailTaken(u.Email, u.ID) {
		return store.ErrDuplicateEmail
	}
	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = time.Now()
	f.items[u.ID] = u
	return nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// newTestRouter construit le routeur complet sur des stores en mémoire
func newTestRouter() (http.Handler, *fakeSuggestionStore, *fakeUserStore) {
	suggestions := newFakeSuggestionStore()
	users := newFakeUserStore()
	h := handler.New(suggestions, users)
	return api.SetupRouter(h), suggestions, users
}

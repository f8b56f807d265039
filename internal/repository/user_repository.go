package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"content-platform/internal/domain/user"

	"github.com/google/uuid"
)

type MemoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]user.User
	byEmail map[string]uuid.UUID
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:    make(map[uuid.UUID]user.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *MemoryUserRepository) Create(ctx context.Context, u user.User) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(u.Email)
	if _, exists := r.byEmail[key]; exists {
		return user.ErrAlreadyExists
	}
	r.byID[u.ID] = cloneUser(u)
	r.byEmail[key] = u.ID
	return nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return cloneUser(r.byID[id]), nil
}

func (r *MemoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[emailKey(email)]
	return ok, nil
}

func (r *MemoryUserRepository) UpdateSkills(ctx context.Context, id uuid.UUID, skills []string) (user.User, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}

	u.Skills = make([]string, len(skills))
	copy(u.Skills, skills)
	u.UpdatedAt = time.Now().UTC()
	r.byID[id] = u
	return cloneUser(u), nil
}

func cloneUser(u user.User) user.User {
	out := u
	if u.Skills != nil {
		out.Skills = make([]string, len(u.Skills))
		copy(out.Skills, u.Skills)
	}
	return out
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

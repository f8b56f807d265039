package usecase

import (
	"context"
	"errors"
	"strings"

	"content-platform/internal/domain/user"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type UserSkillUsecase interface {
	ListSkills(ctx context.Context, userID uuid.UUID) ([]string, error)
	ReplaceSkills(ctx context.Context, userID uuid.UUID, skills []string) ([]string, error)
}

type UserSkill struct {
	users user.Repository
}

func NewUserSkillUsecase(users user.Repository) *UserSkill {
	return &UserSkill{users: users}
}

func (u *UserSkill) ListSkills(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}

	if usr.Skills == nil {
		return []string{}, nil
	}
	return usr.Skills, nil
}

// ReplaceSkills overwrites the user's declared skills with a cleaned copy:
// entries are trimmed, empties dropped, and case-insensitive duplicates
// collapsed keeping the first spelling.
func (u *UserSkill) ReplaceSkills(ctx context.Context, userID uuid.UUID, skills []string) ([]string, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	cleaned := normalizeSkills(skills)

	updated, err := u.users.UpdateSkills(ctx, userID, cleaned)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}
	return updated.Skills, nil
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

package handlers

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"recipebook/internal/models"
	"recipebook/internal/store"
)

// fakeMemberStore is an in-memory MemberStore with the same uniqueness
// behavior as the Mongo implementation. Setting failWith makes every lookup
// fail with that error, simulating a store outage.
type fakeMemberStore struct {
	mu       sync.Mutex
	members  map[string]models.Member
	failWith error
}

func newFakeMemberStore() *fakeMemberStore {
	return &fakeMemberStore{members: make(map[string]models.Member)}
}

func (s *fakeMemberStore) Insert(ctx context.Context, member models.Member) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.members {
		if existing.Email == member.Email || existing.PhoneNumber == member.PhoneNumber {
			return "", store.ErrDuplicate
		}
	}

	member.ID = primitive.NewObjectID()
	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now()
	}
	s.members[member.ID.Hex()] = member
	return member.ID.Hex(), nil
}

func (s *fakeMemberStore) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, member := range s.members {
		if member.Email == email {
			found := member
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeMemberStore) FindByStdID(ctx context.Context, stdID string) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, member := range s.members {
		if member.StdID == stdID {
			found := member
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeMemberStore) FindByID(ctx context.Context, id string) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	member, ok := s.members[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &member, nil
}

func (s *fakeMemberStore) List(ctx context.Context) ([]models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	list := make([]models.Member, 0, len(s.members))
	for _, member := range s.members {
		list = append(list, member)
	}
	return list, nil
}

func (s *fakeMemberStore) UpdateProfile(ctx context.Context, id string, profile store.MemberProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, ok := s.members[id]
	if !ok {
		return store.ErrNotFound
	}

	for otherID, other := range s.members {
		if otherID == id {
			continue
		}
		if other.Email == profile.Email || other.PhoneNumber == profile.PhoneNumber {
			return store.ErrDuplicate
		}
	}

	member.Name = profile.Name
	member.StdID = profile.StdID
	member.Degree = profile.Degree
	member.Country = profile.Country
	member.Email = profile.Email
	member.PhoneNumber = profile.PhoneNumber
	member.Address = profile.Address
	s.members[id] = member
	return nil
}

func (s *fakeMemberStore) UpdatePassword(ctx context.Context, stdID string, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, member := range s.members {
		if member.StdID == stdID {
			member.Password = passwordHash
			s.members[id] = member
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *fakeMemberStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.members[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.members, id)
	return nil
}

// fakeRecipeStore is an in-memory RecipeStore preserving insertion order.
type fakeRecipeStore struct {
	mu      sync.Mutex
	recipes []models.Recipe
}

func newFakeRecipeStore() *fakeRecipeStore {
	return &fakeRecipeStore{}
}

func (s *fakeRecipeStore) Insert(ctx context.Context, recipe models.Recipe) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recipe.ID = primitive.NewObjectID()
	s.recipes = append(s.recipes, recipe)
	return recipe.ID.Hex(), nil
}

func (s *fakeRecipeStore) List(ctx context.Context) ([]models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Recipe(nil), s.recipes...), nil
}

func (s *fakeRecipeStore) ListByUploader(ctx context.Context, uploadedBy string) ([]models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matches := make([]models.Recipe, 0)
	for _, recipe := range s.recipes {
		if recipe.UploadedBy == uploadedBy {
			matches = append(matches, recipe)
		}
	}
	return matches, nil
}

func (s *fakeRecipeStore) FindByID(ctx context.Context, id string) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, recipe := range s.recipes {
		if recipe.ID.Hex() == id {
			found := recipe
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeRecipeStore) SearchByTitle(ctx context.Context, fragment string) ([]models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	needle := strings.ToLower(fragment)
	matches := make([]models.Recipe, 0)
	for _, recipe := range s.recipes {
		if strings.Contains(strings.ToLower(recipe.Title), needle) {
			matches = append(matches, recipe)
		}
	}
	return matches, nil
}

func (s *fakeRecipeStore) Update(ctx context.Context, id string, update store.RecipeUpdate) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, recipe := range s.recipes {
		if recipe.ID.Hex() == id {
			s.recipes[i].Title = update.Title
			s.recipes[i].Description = update.Description
			s.recipes[i].Culture = update.Culture
			updated := s.recipes[i]
			return &updated, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeRecipeStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, recipe := range s.recipes {
		if recipe.ID.Hex() == id {
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

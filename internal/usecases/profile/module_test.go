package profile

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
)

// fakeUserRepo профили в памяти с write-once семантикой времени рождения
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) SetBirthTime(ctx context.Context, id uuid.UUID, birthTime string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if user.BirthComplete() {
		return domain.ErrBirthDataImmutable
	}
	user.BirthTime = &birthTime
	return nil
}

func (r *fakeUserRepo) GetActiveSubscribers(ctx context.Context) ([]*domain.User, error) {
	return nil, nil
}

func newTestService() (*Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return New(repo, slog.Default()), repo
}

func validInput() CreateInput {
	return CreateInput{
		Email:     "aino@example.com",
		FirstName: "Aino",
		BirthDate: time.Date(1992, 10, 2, 0, 0, 0, 0, time.UTC),
		Language:  domain.LanguageFinnish,
	}
}

func TestCreateDerivesSignOnce(t *testing.T) {
	svc, repo := newTestService()

	user, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, domain.Libra, user.ZodiacSign)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, domain.LanguageFinnish, user.Language)
	assert.Equal(t, "+00:00", user.TimezoneOffset)

	stored, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Libra, stored.ZodiacSign)
}

func TestCreateDefaultsLanguageToFinnish(t *testing.T) {
	svc, _ := newTestService()

	in := validInput()
	in.Language = ""
	user, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageFinnish, user.Language)
}

func TestCreateRejectsInvalidBirthDate(t *testing.T) {
	svc, _ := newTestService()

	in := validInput()
	in.BirthDate = time.Date(1850, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidBirthDate)
}

func TestCreateRejectsMalformedBirthTime(t *testing.T) {
	svc, _ := newTestService()

	for _, bad := range []string{"25:00", "12:65", "noon", "7"} {
		in := validInput()
		in.BirthTime = &bad
		_, err := svc.Create(context.Background(), in)
		assert.Error(t, err, "birth time %q", bad)
	}
}

func TestGetByEmail(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	found, err := svc.GetByEmail(context.Background(), "aino@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSetBirthTimeOnce(t *testing.T) {
	svc, _ := newTestService()

	user, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.False(t, user.BirthComplete())

	updated, err := svc.SetBirthTime(context.Background(), user.ID, "08:30")
	require.NoError(t, err)
	require.NotNil(t, updated.BirthTime)
	assert.Equal(t, "08:30", *updated.BirthTime)
	assert.True(t, updated.BirthComplete())

	// Повторная попытка отклоняется: данные рождения write-once
	_, err = svc.SetBirthTime(context.Background(), user.ID, "09:15")
	assert.ErrorIs(t, err, domain.ErrBirthDataImmutable)

	stored, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "08:30", *stored.BirthTime)
}

func TestSetBirthTimeRejectsWhenSetAtCreation(t *testing.T) {
	svc, _ := newTestService()

	in := validInput()
	birthTime := "14:45"
	in.BirthTime = &birthTime
	user, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	require.True(t, user.BirthComplete())

	_, err = svc.SetBirthTime(context.Background(), user.ID, "08:30")
	assert.ErrorIs(t, err, domain.ErrBirthDataImmutable)
}

func TestSetBirthTimeValidatesFormat(t *testing.T) {
	svc, _ := newTestService()

	user, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.SetBirthTime(context.Background(), user.ID, "26:00")
	assert.Error(t, err)
}

func TestSetBirthTimeUserNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SetBirthTime(context.Background(), uuid.New(), "08:30")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

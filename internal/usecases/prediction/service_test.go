package prediction

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
	"github.com/KangasCode/nous-paradeigma/internal/services/astrology"
)

// fakeUserRepo профили в памяти
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
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
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
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
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, u := range r.users {
		if u.IsSubscriber {
			out = append(out, u)
		}
	}
	return out, nil
}

// fakePredictionRepo append-only хранилище в памяти с уникальностью
// (user, period, window_start), как у индекса в Postgres.
// staleLatest имитирует чтение устаревшего состояния другой репликой.
type fakePredictionRepo struct {
	mu          sync.Mutex
	records     []*domain.Prediction
	staleLatest bool
}

func (r *fakePredictionRepo) Create(ctx context.Context, prediction *domain.Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.records {
		if p.UserID == prediction.UserID && p.Period == prediction.Period && p.WindowStart.Equal(prediction.WindowStart) {
			return domain.ErrPredictionWindowTaken
		}
	}
	r.records = append(r.records, prediction)
	return nil
}

func (r *fakePredictionRepo) GetLatest(ctx context.Context, userID uuid.UUID, period domain.Period) (*domain.Prediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.staleLatest {
		return nil, nil
	}
	var latest *domain.Prediction
	for _, p := range r.records {
		if p.UserID == userID && p.Period == period {
			if latest == nil || p.CreatedAt.After(latest.CreatedAt) {
				latest = p
			}
		}
	}
	return latest, nil
}

func (r *fakePredictionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Prediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Prediction
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].UserID == userID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

func (r *fakePredictionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// fakeGenerator настраиваемый генеративный клиент
type fakeGenerator struct {
	mu      sync.Mutex
	calls   int
	content string
	err     error
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.content, nil
}

func (g *fakeGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// fakePublisher собирает опубликованные события
type fakePublisher struct {
	mu     sync.Mutex
	events []domain.PredictionCreatedEvent
	err    error
}

func (p *fakePublisher) PublishPredictionCreated(ctx context.Context, event domain.PredictionCreatedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func testUser() *domain.User {
	return &domain.User{
		ID:             uuid.New(),
		Email:          "aino@example.com",
		FirstName:      "Aino",
		BirthDate:      time.Date(1992, 10, 2, 0, 0, 0, 0, time.UTC),
		TimezoneOffset: "+02:00",
		ZodiacSign:     domain.Libra,
		Language:       domain.LanguageFinnish,
		IsSubscriber:   true,
		CreatedAt:      time.Now(),
	}
}

func newTestService(user *domain.User, generator *fakeGenerator) (*Service, *fakePredictionRepo, *fakePublisher) {
	log := slog.Default()
	predictions := &fakePredictionRepo{}
	publisher := &fakePublisher{}
	charts := astrology.NewChartService(nil, nil, log) // mock-путь, детерминированный
	svc := New(newFakeUserRepo(user), predictions, charts, generator, publisher, log)
	return svc, predictions, publisher
}

func TestCheckEligibilityFirstIsFree(t *testing.T) {
	user := testUser()
	svc, _, _ := newTestService(user, &fakeGenerator{content: "text"})

	result, err := svc.CheckEligibility(context.Background(), user.ID, domain.PeriodDaily)
	require.NoError(t, err)
	assert.True(t, result.CanGenerate)
	assert.True(t, result.IsFirst)
	assert.Nil(t, result.NextAvailableAt)
}

func TestCheckEligibilityWindow(t *testing.T) {
	user := testUser()
	svc, predictions, _ := newTestService(user, &fakeGenerator{content: "text"})

	base := time.Date(2025, 8, 10, 7, 0, 0, 0, time.UTC)
	predictions.records = append(predictions.records, &domain.Prediction{
		ID:        uuid.New(),
		UserID:    user.ID,
		Period:    domain.PeriodDaily,
		CreatedAt: base,
	})

	// Внутри окна
	svc.now = func() time.Time { return base.Add(23 * time.Hour) }
	result, err := svc.CheckEligibility(context.Background(), user.ID, domain.PeriodDaily)
	require.NoError(t, err)
	assert.False(t, result.CanGenerate)
	assert.False(t, result.IsFirst)
	require.NotNil(t, result.NextAvailableAt)
	assert.Equal(t, base.Add(24*time.Hour), *result.NextAvailableAt)

	// Ровно на границе окна — уже можно
	svc.now = func() time.Time { return base.Add(24 * time.Hour) }
	result, err = svc.CheckEligibility(context.Background(), user.ID, domain.PeriodDaily)
	require.NoError(t, err)
	assert.True(t, result.CanGenerate)
}

func TestCheckEligibilityPerPeriodIndependent(t *testing.T) {
	user := testUser()
	svc, predictions, _ := newTestService(user, &fakeGenerator{content: "text"})

	now := time.Now()
	predictions.records = append(predictions.records, &domain.Prediction{
		ID:        uuid.New(),
		UserID:    user.ID,
		Period:    domain.PeriodDaily,
		CreatedAt: now,
	})

	daily, err := svc.CheckEligibility(context.Background(), user.ID, domain.PeriodDaily)
	require.NoError(t, err)
	assert.False(t, daily.CanGenerate)

	weekly, err := svc.CheckEligibility(context.Background(), user.ID, domain.PeriodWeekly)
	require.NoError(t, err)
	assert.True(t, weekly.CanGenerate)
	assert.True(t, weekly.IsFirst)
}

func TestCheckEligibilityUnsupportedPeriod(t *testing.T) {
	user := testUser()
	svc, _, _ := newTestService(user, &fakeGenerator{content: "text"})

	_, err := svc.CheckEligibility(context.Background(), user.ID, "hourly")
	assert.ErrorIs(t, err, domain.ErrUnsupportedPeriod)
}

func TestGenerateCreatesRecordAndPublishesEvent(t *testing.T) {
	user := testUser()
	generator := &fakeGenerator{content: "Tänään tähdet suosivat sinua."}
	svc, predictions, publisher := newTestService(user, generator)

	record, err := svc.Generate(context.Background(), user.ID, domain.PeriodDaily)
	require.NoError(t, err)

	assert.Equal(t, user.ID, record.UserID)
	assert.Equal(t, domain.Libra, record.ZodiacSign)
	assert.Equal(t, domain.PeriodDaily, record.Period)
	assert.Equal(t, generator.content, record.Content)
	assert.NotEmpty(t, record.RawData)
	assert.Equal(t, 1, predictions.count())

	require.Len(t, publisher.events, 1)
	assert.Equal(t, record.ID, publisher.events[0].PredictionID)
	assert.Equal(t, domain.PeriodDaily, publisher.events[0].Period)
}

func TestGenerateSecondCallRateLimited(t *testing.T) {
	user := testUser()
	svc, predictions, _ := newTestService(user, &fakeGenerator{content: "text"})

	_, err := svc.Generate(context.Background(), user.ID, domain.PeriodDaily)
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), user.ID, domain.PeriodDaily)
	require.Error(t, err)

	rl, ok := domain.IsRateLimited(err)
	require.True(t, ok)
	assert.Equal(t, domain.PeriodDaily, rl.Period)
	assert.False(t, rl.NextAvailableAt.IsZero())
	// Рейт-лимит — ожидаемое состояние, контроллер обрабатывает его сам
	assert.False(t, domain.IsBusinessError(err))
	assert.Equal(t, 1, predictions.count())
}

func TestGenerateConcurrentSingleWinner(t *testing.T) {
	user := testUser()
	generator := &fakeGenerator{content: "text"}
	svc, predictions, _ := newTestService(user, generator)

	const workers = 8
	var wg sync.WaitGroup
	var succeeded, rateLimited int
	var mu sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Generate(context.Background(), user.ID, domain.PeriodDaily)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case isRateLimited(err):
				rateLimited++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, rateLimited)
	assert.Equal(t, 1, predictions.count())
	assert.Equal(t, 1, generator.callCount())
}

func TestGenerateWindowConflictMapsToRateLimited(t *testing.T) {
	user := testUser()
	generator := &fakeGenerator{content: "text"}
	svc, predictions, _ := newTestService(user, generator)

	_, err := svc.Generate(context.Background(), user.ID, domain.PeriodDaily)
	require.NoError(t, err)

	// Реплика с устаревшим чтением проходит проверку рейт-лимита,
	// но вставку той же пары окна отклоняет уникальный индекс
	predictions.staleLatest = true
	_, err = svc.Generate(context.Background(), user.ID, domain.PeriodDaily)
	require.Error(t, err)

	rl, ok := domain.IsRateLimited(err)
	require.True(t, ok)
	assert.Equal(t, domain.PeriodDaily, rl.Period)
	assert.False(t, rl.NextAvailableAt.IsZero())
	assert.Equal(t, 1, predictions.count())
}

func TestGenerateCrossReplicaSingleWinner(t *testing.T) {
	user := testUser()
	generator := &fakeGenerator{content: "text"}
	log := slog.Default()
	users := newFakeUserRepo(user)
	predictions := &fakePredictionRepo{}
	charts := astrology.NewChartService(nil, nil, log)

	// Две реплики сервиса: общая база, раздельные мьютексы процессов
	replicaA := New(users, predictions, charts, generator, nil, log)
	replicaB := New(users, predictions, charts, generator, nil, log)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var succeeded, rateLimited int
	for _, svc := range []*Service{replicaA, replicaB} {
		wg.Add(1)
		go func(svc *Service) {
			defer wg.Done()
			_, err := svc.Generate(context.Background(), user.ID, domain.PeriodDaily)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case isRateLimited(err):
				rateLimited++
			}
		}(svc)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rateLimited)
	assert.Equal(t, 1, predictions.count())
}

func TestGenerateFailureLeavesNoRecord(t *testing.T) {
	user := testUser()
	generator := &fakeGenerator{err: domain.ErrGenerationNotConfigured}
	svc, predictions, publisher := newTestService(user, generator)

	_, err := svc.Generate(context.Background(), user.ID, domain.PeriodDaily)
	assert.ErrorIs(t, err, domain.ErrGenerationNotConfigured)
	// Сбой генерации логируется в usecase и помечается уже залогированным
	assert.True(t, domain.IsBusinessError(err))
	assert.Zero(t, predictions.count())
	assert.Empty(t, publisher.events)

	// Следующая попытка не ограничена: записи нет, окно не открыто
	generator.mu.Lock()
	generator.err = nil
	generator.content = "text"
	generator.mu.Unlock()

	record, err := svc.Generate(context.Background(), user.ID, domain.PeriodDaily)
	require.NoError(t, err)
	assert.NotNil(t, record)
}

func TestGenerateUpstreamErrorPropagates(t *testing.T) {
	user := testUser()
	upstream := &domain.GenerationError{Err: errors.New("503 from upstream")}
	svc, predictions, _ := newTestService(user, &fakeGenerator{err: upstream})

	_, err := svc.Generate(context.Background(), user.ID, domain.PeriodDaily)
	require.Error(t, err)

	var genErr *domain.GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.True(t, domain.IsBusinessError(err))
	assert.Zero(t, predictions.count())
}

func TestGenerateUserNotFound(t *testing.T) {
	user := testUser()
	svc, _, _ := newTestService(user, &fakeGenerator{content: "text"})

	_, err := svc.Generate(context.Background(), uuid.New(), domain.PeriodDaily)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGeneratePublishFailureDoesNotFailGeneration(t *testing.T) {
	user := testUser()
	svc, predictions, publisher := newTestService(user, &fakeGenerator{content: "text"})
	publisher.err = errors.New("broker down")

	record, err := svc.Generate(context.Background(), user.ID, domain.PeriodDaily)
	require.NoError(t, err)
	assert.NotNil(t, record)
	assert.Equal(t, 1, predictions.count())
}

func TestGenerateInitialAllPeriods(t *testing.T) {
	user := testUser()
	svc, predictions, _ := newTestService(user, &fakeGenerator{content: "text"})

	results, err := svc.GenerateInitial(context.Background(), user.ID)
	require.NoError(t, err)

	require.Len(t, results, 3)
	for _, period := range domain.AllPeriods {
		assert.Contains(t, results, period)
	}
	assert.Equal(t, 3, predictions.count())
}

func TestGenerateForActiveSubscribers(t *testing.T) {
	subscriber := testUser()
	nonSubscriber := testUser()
	nonSubscriber.ID = uuid.New()
	nonSubscriber.IsSubscriber = false

	log := slog.Default()
	predictions := &fakePredictionRepo{}
	charts := astrology.NewChartService(nil, nil, log)
	svc := New(newFakeUserRepo(subscriber, nonSubscriber), predictions, charts, &fakeGenerator{content: "text"}, nil, log)

	result, err := svc.GenerateForActiveSubscribers(context.Background(), domain.PeriodDaily)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.Succeeded)
	assert.Zero(t, result.Failed)
	assert.Equal(t, 1, predictions.count())
}

func TestGenerateForActiveSubscribersCountsRateLimited(t *testing.T) {
	subscriber := testUser()
	log := slog.Default()
	predictions := &fakePredictionRepo{}
	charts := astrology.NewChartService(nil, nil, log)
	svc := New(newFakeUserRepo(subscriber), predictions, charts, &fakeGenerator{content: "text"}, nil, log)

	// Подписчик уже получил предсказание в этом окне
	_, err := svc.Generate(context.Background(), subscriber.ID, domain.PeriodDaily)
	require.NoError(t, err)

	result, err := svc.GenerateForActiveSubscribers(context.Background(), domain.PeriodDaily)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Total)
	assert.Zero(t, result.Succeeded)
	assert.Equal(t, 1, result.RateLimited)
	assert.Equal(t, 1, predictions.count())
}

func TestListHistoryNewestFirst(t *testing.T) {
	user := testUser()
	svc, predictions, _ := newTestService(user, &fakeGenerator{content: "text"})

	base := time.Now()
	for i := 0; i < 3; i++ {
		predictions.records = append(predictions.records, &domain.Prediction{
			ID:        uuid.New(),
			UserID:    user.ID,
			Period:    domain.PeriodDaily,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	history, err := svc.ListHistory(context.Background(), user.ID)
	require.NoError(t, err)

	require.Len(t, history, 3)
	for i := 1; i < len(history); i++ {
		assert.True(t, !history[i].CreatedAt.After(history[i-1].CreatedAt))
	}
}

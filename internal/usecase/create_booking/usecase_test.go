package create_booking

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpark/SP-BookingService/internal/domain"
	spaceRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/space"
	"github.com/smartpark/SP-BookingService/internal/integrations/discountservice"
	"github.com/smartpark/SP-BookingService/internal/queue"
	"github.com/smartpark/SP-BookingService/pkg/dbmetrics"
	"github.com/smartpark/SP-BookingService/pkg/txmanager"
)

// Стабы контрактов

type stubSpaceRepo struct {
	space *domain.ParkingSpace
	err   error
}

func (s *stubSpaceRepo) GetByID(_ context.Context, _ int64) (*domain.ParkingSpace, error) {
	return s.space, s.err
}

// stubBookingStore хранит бронирования в памяти и реализует
// и FindConflicts, и Create поверх общего слайса.
type stubBookingStore struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	nextID   int64

	findErr   error
	createErr error
}

func (s *stubBookingStore) FindConflicts(_ context.Context, userID, startTime, endTime int64) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findErr != nil {
		return nil, s.findErr
	}

	var conflicts []*domain.Booking
	for _, b := range s.bookings {
		if b.UserID == userID && b.IsActive() && b.Overlaps(startTime, endTime) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts, nil
}

func (s *stubBookingStore) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return nil, s.createErr
	}

	s.nextID++
	created := *booking
	created.ID = s.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.bookings = append(s.bookings, &created)
	return &created, nil
}

type stubOracle struct {
	rate float64
	err  error
}

func (s *stubOracle) PredictWithGracefulDegradation(_ context.Context, _ *discountservice.PredictRequest) (float64, error) {
	return s.rate, s.err
}

type stubPublisher struct {
	mu     sync.Mutex
	events []queue.BookingEvent
	queues []string
}

func (s *stubPublisher) Publish(_ context.Context, queueName string, event queue.BookingEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	s.queues = append(s.queues, queueName)
	return nil
}

// serialTxManager сериализует транзакции мьютексом, как это делает
// сериализуемый уровень изоляции для пересекающихся наборов строк
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// ssiTx транзакция-заглушка для сценариев с serialization failure:
// запросы в ней не выполняются, важен только исход Commit
type ssiTx struct {
	dbmetrics.DBExecutor

	commitErr error
	onCommit  func()
}

func (t *ssiTx) Commit() error {
	if t.onCommit != nil {
		t.onCommit()
	}
	return t.commitErr
}

func (t *ssiTx) Rollback() error { return nil }

type ssiBeginner struct {
	txs    []*ssiTx
	begins int
}

func (b *ssiBeginner) BeginTx(_ context.Context, _ *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	if b.begins >= len(b.txs) {
		return nil, errors.New("no more transactions")
	}
	tx := b.txs[b.begins]
	b.begins++
	return tx, nil
}

type fixedTime struct {
	now int64
}

func (f *fixedTime) Now() time.Time {
	return time.UnixMilli(f.now)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Хелперы

func testSpace() *domain.ParkingSpace {
	return &domain.ParkingSpace{
		ID:             7,
		Name:           "Центральная парковка",
		TotalSlots:     100,
		AvailableSlots: 40,
		PricePerHour:   10,
		IsActive:       true,
	}
}

func newTestUseCase(store *stubBookingStore, space *domain.ParkingSpace, oracle *stubOracle, now int64) (*UseCase, *stubPublisher) {
	pub := &stubPublisher{}
	uc := NewUseCase(
		store,
		&stubSpaceRepo{space: space},
		oracle,
		pub,
		&serialTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{now: now}
	return uc, pub
}

// Тесты

func TestExecute_CreatesPendingBooking(t *testing.T) {
	store := &stubBookingStore{}
	now := int64(1_000_000_000_000)
	uc, pub := newTestUseCase(store, testSpace(), &stubOracle{rate: 0.2}, now)

	start := now + domain.MillisPerHour
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		SpaceID:   7,
		StartTime: start,
		EndTime:   start + 2*domain.MillisPerHour,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatePending), resp.State)
	assert.Equal(t, 2, resp.DurationHours)
	// Сохраняется базовая стоимость, скидка применяется только на выдаче
	assert.Equal(t, 20.00, resp.TotalCost)
	assert.Equal(t, 0.2, resp.DiscountRate)
	assert.Equal(t, 16.00, resp.FinalCost)

	require.Len(t, pub.events, 1)
	assert.Equal(t, queue.QueueBookingCreated, pub.queues[0])
	assert.Equal(t, resp.ID, pub.events[0].BookingID)
}

func TestExecute_ConflictReportedFirst(t *testing.T) {
	now := int64(1_000_000_000_000)
	store := &stubBookingStore{}

	// Существующее подтвержденное бронирование [start, start+4h)
	start := now + domain.MillisPerDay
	store.bookings = append(store.bookings, &domain.Booking{
		ID:        1,
		UserID:    42,
		StartTime: start,
		EndTime:   start + 4*domain.MillisPerHour,
		State:     domain.StateConfirmed,
	})
	store.nextID = 1

	uc, _ := newTestUseCase(store, testSpace(), &stubOracle{}, now)

	// Пересекающийся интервал отклоняется как конфликт
	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		SpaceID:   7,
		StartTime: start + 3*domain.MillisPerHour,
		EndTime:   start + 5*domain.MillisPerHour,
	})
	assert.ErrorIs(t, err, ErrConflictingBooking)

	// Интервал встык не конфликтует
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		SpaceID:   7,
		StartTime: start + 4*domain.MillisPerHour,
		EndTime:   start + 5*domain.MillisPerHour,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)
}

func TestExecute_ConflictWinsOverPolicyViolation(t *testing.T) {
	now := int64(1_000_000_000_000)
	store := &stubBookingStore{}

	// Бронирование, целиком накрывающее запрошенный интервал
	store.bookings = append(store.bookings, &domain.Booking{
		ID:        1,
		UserID:    42,
		StartTime: now - 10*domain.MillisPerHour,
		EndTime:   now + 10*domain.MillisPerHour,
		State:     domain.StatePending,
	})

	uc, _ := newTestUseCase(store, testSpace(), &stubOracle{}, now)

	// Интервал начинается в прошлом, но конфликт сообщается первым
	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		SpaceID:   7,
		StartTime: now - domain.MillisPerHour,
		EndTime:   now + domain.MillisPerHour,
	})
	assert.ErrorIs(t, err, ErrConflictingBooking)
}

func TestExecute_OtherUserDoesNotConflict(t *testing.T) {
	now := int64(1_000_000_000_000)
	store := &stubBookingStore{}

	start := now + domain.MillisPerDay
	store.bookings = append(store.bookings, &domain.Booking{
		ID:        1,
		UserID:    99,
		StartTime: start,
		EndTime:   start + 4*domain.MillisPerHour,
		State:     domain.StateConfirmed,
	})
	store.nextID = 1

	uc, _ := newTestUseCase(store, testSpace(), &stubOracle{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		SpaceID:   7,
		StartTime: start,
		EndTime:   start + 2*domain.MillisPerHour,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)
}

func TestExecute_CancelledBookingDoesNotConflict(t *testing.T) {
	now := int64(1_000_000_000_000)
	store := &stubBookingStore{}

	start := now + domain.MillisPerDay
	store.bookings = append(store.bookings, &domain.Booking{
		ID:        1,
		UserID:    42,
		StartTime: start,
		EndTime:   start + 4*domain.MillisPerHour,
		State:     domain.StateCancelled,
	})
	store.nextID = 1

	uc, _ := newTestUseCase(store, testSpace(), &stubOracle{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		SpaceID:   7,
		StartTime: start,
		EndTime:   start + 2*domain.MillisPerHour,
	})
	assert.NoError(t, err)
}

func TestExecute_SpaceNotFound(t *testing.T) {
	now := int64(1_000_000_000_000)

	uc := NewUseCase(
		&stubBookingStore{},
		&stubSpaceRepo{err: spaceRepo.ErrSpaceNotFound},
		&stubOracle{},
		&stubPublisher{},
		&serialTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{now: now}

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		SpaceID:   404,
		StartTime: now + 1000,
		EndTime:   now + domain.MillisPerHour,
	})
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestExecute_SpaceRepoFailure(t *testing.T) {
	now := int64(1_000_000_000_000)

	uc := NewUseCase(
		&stubBookingStore{},
		&stubSpaceRepo{err: errors.New("connection reset")},
		&stubOracle{},
		&stubPublisher{},
		&serialTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{now: now}

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		SpaceID:   7,
		StartTime: now + 1000,
		EndTime:   now + domain.MillisPerHour,
	})
	// Неизвестная ошибка репозитория не маскируется под NotFound
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestExecute_SpaceInactive(t *testing.T) {
	now := int64(1_000_000_000_000)
	space := testSpace()
	space.IsActive = false

	uc, _ := newTestUseCase(&stubBookingStore{}, space, &stubOracle{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		SpaceID:   7,
		StartTime: now + 1000,
		EndTime:   now + domain.MillisPerHour,
	})
	assert.ErrorIs(t, err, ErrSpaceInactive)
}

func TestExecute_PersistFailureSurfacedDistinctly(t *testing.T) {
	now := int64(1_000_000_000_000)
	store := &stubBookingStore{createErr: errors.New("connection reset")}

	uc, pub := newTestUseCase(store, testSpace(), &stubOracle{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		SpaceID:   7,
		StartTime: now + 1000,
		EndTime:   now + domain.MillisPerHour,
	})
	assert.ErrorIs(t, err, ErrPersistFailed)
	assert.Empty(t, pub.events)
}

func TestExecute_ConflictReadFailure(t *testing.T) {
	now := int64(1_000_000_000_000)
	store := &stubBookingStore{findErr: errors.New("connection reset")}

	uc, _ := newTestUseCase(store, testSpace(), &stubOracle{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		SpaceID:   7,
		StartTime: now + 1000,
		EndTime:   now + domain.MillisPerHour,
	})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestExecute_DegradedOracleAppliesZeroDiscount(t *testing.T) {
	now := int64(1_000_000_000_000)
	oracle := &stubOracle{rate: 0, err: discountservice.ErrServiceDegraded}

	uc, _ := newTestUseCase(&stubBookingStore{}, testSpace(), oracle, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		SpaceID:   7,
		StartTime: now + 1000,
		EndTime:   now + domain.MillisPerHour,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.DiscountRate)
	assert.Equal(t, resp.TotalCost, resp.FinalCost)
}

// Проигравшая при SSI транзакция (Commit падает с кодом 40001) должна быть
// перезапущена менеджером транзакций и увидеть вставку победителя:
// наружу уходит конфликт бронирования, а не внутренняя ошибка.
func TestExecute_SerializationFailureRetriedIntoConflict(t *testing.T) {
	now := int64(1_000_000_000_000)
	store := &stubBookingStore{}
	start := now + domain.MillisPerDay

	winner := &domain.Booking{
		UserID:    42,
		SpaceID:   7,
		StartTime: start,
		EndTime:   start + 2*domain.MillisPerHour,
		State:     domain.StatePending,
	}

	// Первая попытка: победитель успевает закоммититься первым,
	// наш Commit падает с serialization failure
	beginner := &ssiBeginner{txs: []*ssiTx{
		{
			commitErr: &pq.Error{Code: "40001"},
			onCommit: func() {
				_, _ = store.Create(context.Background(), winner)
			},
		},
		{},
	}}

	pub := &stubPublisher{}
	uc := NewUseCase(
		store,
		&stubSpaceRepo{space: testSpace()},
		&stubOracle{},
		pub,
		txmanager.NewTransactionManager(beginner),
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{now: now}

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		SpaceID:   7,
		StartTime: start,
		EndTime:   start + 2*domain.MillisPerHour,
	})

	assert.ErrorIs(t, err, ErrConflictingBooking)
	assert.Equal(t, 2, beginner.begins)
	assert.Empty(t, pub.events)
	// Стаб не моделирует откат, поэтому в нём видна и наша первая вставка
	require.Len(t, store.bookings, 2)
}

// Два параллельных пересекающихся запроса одного пользователя:
// проходит ровно один, второй получает конфликт.
func TestExecute_ConcurrentDoubleBooking(t *testing.T) {
	now := int64(1_000_000_000_000)
	store := &stubBookingStore{}

	uc, _ := newTestUseCase(store, testSpace(), &stubOracle{}, now)

	start := now + domain.MillisPerDay
	req := &Request{
		UserID:    42,
		SpaceID:   7,
		StartTime: start,
		EndTime:   start + 2*domain.MillisPerHour,
	}

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrConflictingBooking):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
	assert.Len(t, store.bookings, 1)
}

package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"glambook/internal/domain"
	"glambook/internal/pkg/clock"
)

type MockAvailabilityRepository struct {
	mock.Mock
}

func (m *MockAvailabilityRepository) GetEffectiveWindow(ctx context.Context, artistID int64, weekday domain.Weekday) (*domain.AvailabilityWindow, error) {
	args := m.Called(ctx, artistID, weekday)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityWindow), args.Error(1)
}

type MockTimeOffRepository struct {
	mock.Mock
}

func (m *MockTimeOffRepository) ListCovering(ctx context.Context, artistID int64, day time.Time) ([]domain.TimeOffRange, error) {
	args := m.Called(ctx, artistID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeOffRange), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) ListForArtistBetween(ctx context.Context, artistID int64, from, to time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, artistID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockServiceCatalog struct {
	mock.Mock
}

func (m *MockServiceCatalog) GetService(ctx context.Context, artistID, serviceID int64) (*domain.Service, error) {
	args := m.Called(ctx, artistID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func mondayWindow() *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		ID:                 1,
		ArtistID:           7,
		Weekday:            domain.Monday,
		StartTime:          "09:00",
		EndTime:            "17:00",
		GranularityMinutes: 30,
		BufferMinutes:      15,
		Enabled:            true,
	}
}

func newTestService(windows *MockAvailabilityRepository, timeOff *MockTimeOffRepository, bookings *MockBookingRepository, catalog *MockServiceCatalog, now time.Time) *Service {
	return NewService(windows, timeOff, bookings, catalog, clock.Fixed(now), time.UTC)
}

// 2026-09-07 is a Monday; the fixed "now" is the preceding Tuesday.
var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func TestGenerateSlots_FullFreeDay(t *testing.T) {
	windows := new(MockAvailabilityRepository)
	timeOff := new(MockTimeOffRepository)
	bookings := new(MockBookingRepository)
	catalog := new(MockServiceCatalog)

	windows.On("GetEffectiveWindow", mock.Anything, int64(7), domain.Monday).Return(mondayWindow(), nil)
	timeOff.On("ListCovering", mock.Anything, int64(7), mock.Anything).Return([]domain.TimeOffRange{}, nil)
	bookings.On("ListForArtistBetween", mock.Anything, int64(7), mock.Anything, mock.Anything).Return([]domain.Booking{}, nil)

	service := newTestService(windows, timeOff, bookings, catalog, testNow)

	res, err := service.GenerateSlots(context.Background(), SlotsRequest{ArtistID: 7, Date: "2026-09-07"})

	require.NoError(t, err)
	// 09:00 .. 16:00 starts in 30-minute steps, 60-minute default duration.
	assert.Equal(t, 15, res.TotalSlots)
	assert.Equal(t, 15, res.AvailableSlots)
	assert.Equal(t, 60, res.ServiceDurationMinutes)

	first := res.Slots[0]
	assert.Equal(t, "09:00", first.StartsAt.Format("15:04"))
	assert.Equal(t, "10:00", first.EndsAt.Format("15:04"))

	last := res.Slots[len(res.Slots)-1]
	assert.Equal(t, "16:00", last.StartsAt.Format("15:04"))
	assert.Equal(t, "17:00", last.EndsAt.Format("15:04"))

	// No candidate may run past closing time.
	windowEnd := time.Date(2026, 9, 7, 17, 0, 0, 0, time.UTC)
	for _, s := range res.Slots {
		assert.False(t, s.EndsAt.After(windowEnd))
	}
}

func TestGenerateSlots_ExistingBookingFlagsOverlaps(t *testing.T) {
	windows := new(MockAvailabilityRepository)
	timeOff := new(MockTimeOffRepository)
	bookings := new(MockBookingRepository)
	catalog := new(MockServiceCatalog)

	booked := domain.Booking{
		ArtistID:  7,
		StartTime: time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC),
		Status:    domain.BookingConfirmed,
	}

	windows.On("GetEffectiveWindow", mock.Anything, int64(7), domain.Monday).Return(mondayWindow(), nil)
	timeOff.On("ListCovering", mock.Anything, int64(7), mock.Anything).Return([]domain.TimeOffRange{}, nil)
	bookings.On("ListForArtistBetween", mock.Anything, int64(7), mock.Anything, mock.Anything).Return([]domain.Booking{booked}, nil)

	service := newTestService(windows, timeOff, bookings, catalog, testNow)

	res, err := service.GenerateSlots(context.Background(), SlotsRequest{ArtistID: 7, Date: "2026-09-07"})

	require.NoError(t, err)

	byStart := make(map[string]bool)
	for _, s := range res.Slots {
		byStart[s.StartsAt.Format("15:04")] = s.Available
	}

	// Candidates intersecting 10:00–11:00 are taken; boundaries stay free.
	assert.True(t, byStart["09:00"])
	assert.False(t, byStart["09:30"])
	assert.False(t, byStart["10:00"])
	assert.False(t, byStart["10:30"])
	assert.True(t, byStart["11:00"])

	assert.Equal(t, 15, res.TotalSlots)
	assert.Equal(t, 12, res.AvailableSlots)
}

func TestGenerateSlots_DeclinedBookingFreesInterval(t *testing.T) {
	windows := new(MockAvailabilityRepository)
	timeOff := new(MockTimeOffRepository)
	bookings := new(MockBookingRepository)
	catalog := new(MockServiceCatalog)

	declined := domain.Booking{
		ArtistID:  7,
		StartTime: time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC),
		Status:    domain.BookingDeclined,
	}

	windows.On("GetEffectiveWindow", mock.Anything, int64(7), domain.Monday).Return(mondayWindow(), nil)
	timeOff.On("ListCovering", mock.Anything, int64(7), mock.Anything).Return([]domain.TimeOffRange{}, nil)
	bookings.On("ListForArtistBetween", mock.Anything, int64(7), mock.Anything, mock.Anything).Return([]domain.Booking{declined}, nil)

	service := newTestService(windows, timeOff, bookings, catalog, testNow)

	res, err := service.GenerateSlots(context.Background(), SlotsRequest{ArtistID: 7, Date: "2026-09-07"})

	require.NoError(t, err)
	assert.Equal(t, res.TotalSlots, res.AvailableSlots)
}

func TestGenerateSlots_TodayCutoffRoundsUpToGrid(t *testing.T) {
	windows := new(MockAvailabilityRepository)
	timeOff := new(MockTimeOffRepository)
	bookings := new(MockBookingRepository)
	catalog := new(MockServiceCatalog)

	window := mondayWindow()
	window.Weekday = domain.Tuesday

	windows.On("GetEffectiveWindow", mock.Anything, int64(7), domain.Tuesday).Return(window, nil)
	timeOff.On("ListCovering", mock.Anything, int64(7), mock.Anything).Return([]domain.TimeOffRange{}, nil)
	bookings.On("ListForArtistBetween", mock.Anything, int64(7), mock.Anything, mock.Anything).Return([]domain.Booking{}, nil)

	// now = 14:05, buffer 15 → 14:20, rounded up to the 30-minute grid → 14:30.
	now := time.Date(2026, 9, 1, 14, 5, 0, 0, time.UTC)
	service := newTestService(windows, timeOff, bookings, catalog, now)

	res, err := service.GenerateSlots(context.Background(), SlotsRequest{ArtistID: 7, Date: "2026-09-01"})

	require.NoError(t, err)
	require.NotEmpty(t, res.Slots)
	assert.Equal(t, "14:30", res.Slots[0].StartsAt.Format("15:04"))

	cutoff := now.Add(15 * time.Minute)
	for _, s := range res.Slots {
		assert.False(t, s.StartsAt.Before(cutoff))
	}
}

func TestGenerateSlots_PastDateIsNormalOutcome(t *testing.T) {
	windows := new(MockAvailabilityRepository)
	timeOff := new(MockTimeOffRepository)
	bookings := new(MockBookingRepository)
	catalog := new(MockServiceCatalog)

	service := newTestService(windows, timeOff, bookings, catalog, testNow)

	res, err := service.GenerateSlots(context.Background(), SlotsRequest{ArtistID: 7, Date: "2026-08-31"})

	require.NoError(t, err)
	assert.Empty(t, res.Slots)
	assert.Equal(t, ReasonPastDate, res.Message)
	windows.AssertNotCalled(t, "GetEffectiveWindow", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateSlots_NoWindowForWeekday(t *testing.T) {
	windows := new(MockAvailabilityRepository)
	timeOff := new(MockTimeOffRepository)
	bookings := new(MockBookingRepository)
	catalog := new(MockServiceCatalog)

	windows.On("GetEffectiveWindow", mock.Anything, int64(7), domain.Monday).Return(nil, nil)

	service := newTestService(windows, timeOff, bookings, catalog, testNow)

	res, err := service.GenerateSlots(context.Background(), SlotsRequest{ArtistID: 7, Date: "2026-09-07"})

	require.NoError(t, err)
	assert.Empty(t, res.Slots)
	assert.Equal(t, ReasonDayOff, res.Message)
}

func TestGenerateSlots_TimeOffOverridesWindow(t *testing.T) {
	windows := new(MockAvailabilityRepository)
	timeOff := new(MockTimeOffRepository)
	bookings := new(MockBookingRepository)
	catalog := new(MockServiceCatalog)

	off := domain.TimeOffRange{
		ArtistID:  7,
		StartDate: time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
	}

	windows.On("GetEffectiveWindow", mock.Anything, int64(7), domain.Monday).Return(mondayWindow(), nil)
	timeOff.On("ListCovering", mock.Anything, int64(7), mock.Anything).Return([]domain.TimeOffRange{off}, nil)

	service := newTestService(windows, timeOff, bookings, catalog, testNow)

	res, err := service.GenerateSlots(context.Background(), SlotsRequest{ArtistID: 7, Date: "2026-09-07"})

	require.NoError(t, err)
	assert.Empty(t, res.Slots)
	assert.Equal(t, ReasonTimeOff, res.Message)
	bookings.AssertNotCalled(t, "ListForArtistBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateSlots_ServiceDurationShortensTail(t *testing.T) {
	windows := new(MockAvailabilityRepository)
	timeOff := new(MockTimeOffRepository)
	bookings := new(MockBookingRepository)
	catalog := new(MockServiceCatalog)

	serviceID := int64(3)
	windows.On("GetEffectiveWindow", mock.Anything, int64(7), domain.Monday).Return(mondayWindow(), nil)
	timeOff.On("ListCovering", mock.Anything, int64(7), mock.Anything).Return([]domain.TimeOffRange{}, nil)
	bookings.On("ListForArtistBetween", mock.Anything, int64(7), mock.Anything, mock.Anything).Return([]domain.Booking{}, nil)
	catalog.On("GetService", mock.Anything, int64(7), serviceID).Return(&domain.Service{
		ID:              serviceID,
		ArtistID:        7,
		DurationMinutes: 120,
	}, nil)

	service := newTestService(windows, timeOff, bookings, catalog, testNow)

	res, err := service.GenerateSlots(context.Background(), SlotsRequest{ArtistID: 7, Date: "2026-09-07", ServiceID: &serviceID})

	require.NoError(t, err)
	assert.Equal(t, 120, res.ServiceDurationMinutes)

	// A two-hour service can start no later than 15:00 in a 09:00–17:00 window.
	last := res.Slots[len(res.Slots)-1]
	assert.Equal(t, "15:00", last.StartsAt.Format("15:04"))
	assert.Equal(t, "17:00", last.EndsAt.Format("15:04"))
}

func TestGenerateSlots_StorageErrorIsNeverEmptyResult(t *testing.T) {
	windows := new(MockAvailabilityRepository)
	timeOff := new(MockTimeOffRepository)
	bookings := new(MockBookingRepository)
	catalog := new(MockServiceCatalog)

	windows.On("GetEffectiveWindow", mock.Anything, int64(7), domain.Monday).Return(mondayWindow(), nil)
	timeOff.On("ListCovering", mock.Anything, int64(7), mock.Anything).Return([]domain.TimeOffRange{}, nil)
	bookings.On("ListForArtistBetween", mock.Anything, int64(7), mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	service := newTestService(windows, timeOff, bookings, catalog, testNow)

	res, err := service.GenerateSlots(context.Background(), SlotsRequest{ArtistID: 7, Date: "2026-09-07"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorage)
	assert.Nil(t, res)
}

func TestGenerateSlots_Validation(t *testing.T) {
	service := newTestService(new(MockAvailabilityRepository), new(MockTimeOffRepository), new(MockBookingRepository), new(MockServiceCatalog), testNow)

	_, err := service.GenerateSlots(context.Background(), SlotsRequest{ArtistID: 0, Date: "2026-09-07"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.GenerateSlots(context.Background(), SlotsRequest{ArtistID: 7, Date: ""})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.GenerateSlots(context.Background(), SlotsRequest{ArtistID: 7, Date: "07.09.2026"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.GenerateSlots(context.Background(), SlotsRequest{ArtistID: 7, Date: "2026-09-07", Timezone: "Mars/Olympus"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	windows := new(MockAvailabilityRepository)
	timeOff := new(MockTimeOffRepository)
	bookings := new(MockBookingRepository)
	catalog := new(MockServiceCatalog)

	windows.On("GetEffectiveWindow", mock.Anything, int64(7), domain.Monday).Return(mondayWindow(), nil)
	timeOff.On("ListCovering", mock.Anything, int64(7), mock.Anything).Return([]domain.TimeOffRange{}, nil)
	bookings.On("ListForArtistBetween", mock.Anything, int64(7), mock.Anything, mock.Anything).Return([]domain.Booking{}, nil)

	service := newTestService(windows, timeOff, bookings, catalog, testNow)

	req := SlotsRequest{ArtistID: 7, Date: "2026-09-07"}
	first, err := service.GenerateSlots(context.Background(), req)
	require.NoError(t, err)
	second, err := service.GenerateSlots(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

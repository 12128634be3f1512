package reservation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dormhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeReservationRepo struct {
	byID map[string]*models.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{byID: make(map[string]*models.Reservation)}
}

func (f *fakeReservationRepo) Create(res *models.Reservation) error {
	cp := *res
	f.byID[res.ID] = &cp
	return nil
}

func (f *fakeReservationRepo) Update(res *models.Reservation) error {
	cp := *res
	f.byID[res.ID] = &cp
	return nil
}

func (f *fakeReservationRepo) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeReservationRepo) GetByID(id string) (*models.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *res
	return &cp, nil
}

func (f *fakeReservationRepo) GetByIDWithProjection(id string, _ bson.M) (*models.Reservation, error) {
	return f.GetByID(id)
}

func (f *fakeReservationRepo) GetByTenant(tenantID string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, res := range f.byID {
		if res.TenantID == tenantID {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) GetAll(_ models.ReservationFilter) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, res := range f.byID {
		out = append(out, *res)
	}
	return out, nil
}

func (f *fakeReservationRepo) GetApprovedVisitsBetween(_, _ int64) ([]models.Reservation, error) {
	return nil, nil
}

type fakeRoomRepo struct {
	rooms    map[string]*models.Room
	occupied map[string]bool // "roomID/bedID" -> occupied
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{
		rooms:    make(map[string]*models.Room),
		occupied: make(map[string]bool),
	}
}

func (f *fakeRoomRepo) Create(room *models.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) Update(room *models.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) Delete(id string) error {
	delete(f.rooms, id)
	return nil
}

func (f *fakeRoomRepo) DeleteByBranch(_ string) (int64, error) { return 0, nil }

func (f *fakeRoomRepo) GetByID(id string) (*models.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	return room, nil
}

func (f *fakeRoomRepo) GetAll(_ models.RoomFilter) ([]models.Room, error) { return nil, nil }

func (f *fakeRoomRepo) SetBedOccupied(roomID, bedID string, occupied bool) error {
	f.occupied[roomID+"/"+bedID] = occupied
	return nil
}

type fakeEnqueuer struct {
	ids   []string
	times []time.Time
}

func (f *fakeEnqueuer) EnqueueVisitReminder(reservationID string, processAt time.Time) error {
	f.ids = append(f.ids, reservationID)
	f.times = append(f.times, processAt)
	return nil
}

func newTestService() (*DefaultReservationService, *fakeReservationRepo, *fakeRoomRepo, *fakeEnqueuer) {
	resRepo := newFakeReservationRepo()
	roomRepo := newFakeRoomRepo()
	enqueuer := &fakeEnqueuer{}
	svc := &DefaultReservationService{
		Repo:      resRepo,
		RoomRepo:  roomRepo,
		Reminders: enqueuer,
	}
	return svc, resRepo, roomRepo, enqueuer
}

func seedRoom(roomRepo *fakeRoomRepo) *models.Room {
	room := &models.Room{
		ID:        "room-1",
		Name:      "Room 101",
		Branch:    models.BranchGilPuyat,
		Type:      "quadruple",
		Price:     5500,
		Capacity:  4,
		Available: true,
		Beds: []models.Bed{
			{ID: "bed-1", Position: "lower"},
			{ID: "bed-2", Position: "upper", Occupied: true},
		},
	}
	roomRepo.rooms[room.ID] = room
	return room
}

// seedReservation inserts a reservation directly into the fake repo.
func seedReservation(resRepo *fakeReservationRepo, mutate func(*models.Reservation)) *models.Reservation {
	res := &models.Reservation{
		ID:              "res-1",
		TenantID:        "tenant-1",
		ReservationCode: "DH-TEST01",
		Status:          models.ReservationPending,
		Room:            &models.RoomSummary{ID: "room-1", Name: "Room 101"},
		SelectedBed:     &models.SelectedBed{ID: "bed-1", Position: "lower"},
		CreatedAt:       time.Now(),
	}
	if mutate != nil {
		mutate(res)
	}
	resRepo.byID[res.ID] = res
	return res
}

func TestCreateReservation(t *testing.T) {
	svc, _, roomRepo, _ := newTestService()
	seedRoom(roomRepo)

	res, err := svc.Create(context.Background(), "tenant-1", CreateRequest{
		RoomID: "room-1",
		Bed:    &models.SelectedBed{ID: "bed-1"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.ReservationPending, res.Status)
	assert.True(t, strings.HasPrefix(res.ReservationCode, "DH-"))
	require.NotNil(t, res.Room)
	assert.Equal(t, "Room 101", res.Room.Name)
	// Bed position is resolved from the room, not trusted from the request.
	assert.Equal(t, "lower", res.SelectedBed.Position)
}

func TestCreateReservationGuards(t *testing.T) {
	svc, _, roomRepo, _ := newTestService()
	room := seedRoom(roomRepo)

	var transition *ErrInvalidTransition

	_, err := svc.Create(context.Background(), "tenant-1", CreateRequest{
		RoomID: "room-1",
		Bed:    &models.SelectedBed{ID: "bed-2"},
	})
	require.ErrorAs(t, err, &transition)
	assert.Contains(t, transition.Reason, "occupied")

	_, err = svc.Create(context.Background(), "tenant-1", CreateRequest{
		RoomID: "room-1",
		Bed:    &models.SelectedBed{ID: "no-such-bed"},
	})
	require.ErrorAs(t, err, &transition)

	room.Available = false
	_, err = svc.Create(context.Background(), "tenant-1", CreateRequest{RoomID: "room-1"})
	require.ErrorAs(t, err, &transition)
	assert.Contains(t, transition.Reason, "not available")

	_, err = svc.Create(context.Background(), "tenant-1", CreateRequest{RoomID: "no-such-room"})
	require.ErrorAs(t, err, &transition)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	var notFound *ErrNotFound
	_, err := svc.GetByID("missing")
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.ID)
}

func TestScheduleVisitGuards(t *testing.T) {
	svc, resRepo, _, _ := newTestService()
	seedReservation(resRepo, nil)

	visit := time.Now().Add(72 * time.Hour)

	var forbidden *ErrForbidden
	_, err := svc.ScheduleVisit(context.Background(), "res-1", "someone-else", ScheduleVisitRequest{
		AgreedToPrivacy: true, ViewingType: models.ViewingInPerson, VisitDate: visit,
	})
	require.ErrorAs(t, err, &forbidden)

	var transition *ErrInvalidTransition
	_, err = svc.ScheduleVisit(context.Background(), "res-1", "tenant-1", ScheduleVisitRequest{
		AgreedToPrivacy: false, ViewingType: models.ViewingInPerson, VisitDate: visit,
	})
	require.ErrorAs(t, err, &transition)

	_, err = svc.ScheduleVisit(context.Background(), "res-1", "tenant-1", ScheduleVisitRequest{
		AgreedToPrivacy: true, ViewingType: "teleportation", VisitDate: visit,
	})
	require.ErrorAs(t, err, &transition)
}

func TestRescheduleClearsRejection(t *testing.T) {
	svc, resRepo, _, _ := newTestService()
	rejectedAt := time.Now()
	seedReservation(resRepo, func(r *models.Reservation) {
		r.AgreedToPrivacy = true
		r.ViewingType = models.ViewingVirtual
		r.VisitDate = &rejectedAt
		r.ScheduleRejected = true
		r.ScheduleRejectionReason = "fully booked"
		r.ScheduleRejectedAt = &rejectedAt
	})

	res, err := svc.ScheduleVisit(context.Background(), "res-1", "tenant-1", ScheduleVisitRequest{
		AgreedToPrivacy: true,
		ViewingType:     models.ViewingInPerson,
		VisitDate:       time.Now().Add(96 * time.Hour),
	})
	require.NoError(t, err)

	assert.False(t, res.ScheduleRejected)
	assert.Empty(t, res.ScheduleRejectionReason)
	assert.Nil(t, res.ScheduleRejectedAt)
	assert.False(t, res.ScheduleApproved)
	assert.Equal(t, models.ViewingInPerson, res.ViewingType)
}

func TestApproveScheduleEnqueuesReminder(t *testing.T) {
	svc, resRepo, _, enqueuer := newTestService()
	visit := time.Now().Add(72 * time.Hour)
	seedReservation(resRepo, func(r *models.Reservation) {
		r.AgreedToPrivacy = true
		r.ViewingType = models.ViewingInPerson
		r.VisitDate = &visit
	})

	res, err := svc.ApproveSchedule(context.Background(), "res-1")
	require.NoError(t, err)
	assert.True(t, res.ScheduleApproved)

	require.Len(t, enqueuer.ids, 1)
	assert.Equal(t, "res-1", enqueuer.ids[0])
	assert.WithinDuration(t, visit.Add(-24*time.Hour), enqueuer.times[0], time.Second)
}

func TestApproveScheduleRequiresRequest(t *testing.T) {
	svc, resRepo, _, _ := newTestService()
	seedReservation(resRepo, nil)

	var transition *ErrInvalidTransition
	_, err := svc.ApproveSchedule(context.Background(), "res-1")
	require.ErrorAs(t, err, &transition)
}

func TestRejectSchedule(t *testing.T) {
	svc, resRepo, _, _ := newTestService()
	visit := time.Now().Add(72 * time.Hour)
	seedReservation(resRepo, func(r *models.Reservation) {
		r.AgreedToPrivacy = true
		r.ViewingType = models.ViewingInPerson
		r.VisitDate = &visit
	})

	res, err := svc.RejectSchedule(context.Background(), "res-1", "no slots that week")
	require.NoError(t, err)

	assert.True(t, res.ScheduleRejected)
	assert.Equal(t, "no slots that week", res.ScheduleRejectionReason)
	require.NotNil(t, res.ScheduleRejectedAt)
	assert.False(t, res.ScheduleApproved)
}

func TestCompleteVisitRequiresApprovedSchedule(t *testing.T) {
	svc, resRepo, _, _ := newTestService()
	seedReservation(resRepo, nil)

	var transition *ErrInvalidTransition
	_, err := svc.CompleteVisit(context.Background(), "res-1")
	require.ErrorAs(t, err, &transition)
}

func TestSubmitApplicationGuards(t *testing.T) {
	svc, resRepo, _, _ := newTestService()
	seedReservation(resRepo, nil)

	app := ApplicationRequest{FirstName: "Maria", LastName: "Santos", MobileNumber: "09171234567"}

	// Visit not yet completed.
	var transition *ErrInvalidTransition
	_, err := svc.SubmitApplication(context.Background(), "res-1", "tenant-1", app)
	require.ErrorAs(t, err, &transition)

	// Locked once a proof of payment exists.
	seedReservation(resRepo, func(r *models.Reservation) {
		r.VisitApproved = true
		r.ProofOfPaymentURL = "https://cdn.example.com/proof.jpg"
	})
	var locked *ErrApplicationLocked
	_, err = svc.SubmitApplication(context.Background(), "res-1", "tenant-1", app)
	require.ErrorAs(t, err, &locked)

	// Locked once confirmed, even without a stored proof.
	seedReservation(resRepo, func(r *models.Reservation) {
		r.VisitApproved = true
		r.PaymentStatus = models.PaymentPaid
	})
	_, err = svc.SubmitApplication(context.Background(), "res-1", "tenant-1", app)
	require.ErrorAs(t, err, &locked)
}

func TestSubmitApplicationAmendableBeforePayment(t *testing.T) {
	svc, resRepo, _, _ := newTestService()
	seedReservation(resRepo, func(r *models.Reservation) {
		r.VisitApproved = true
	})

	_, err := svc.SubmitApplication(context.Background(), "res-1", "tenant-1",
		ApplicationRequest{FirstName: "Maria", LastName: "Santos", MobileNumber: "09171234567"})
	require.NoError(t, err)

	res, err := svc.SubmitApplication(context.Background(), "res-1", "tenant-1",
		ApplicationRequest{FirstName: "Maria Clara", LastName: "Santos", MobileNumber: "09171234567"})
	require.NoError(t, err)
	assert.Equal(t, "Maria Clara", res.FirstName)
}

func TestSubmitPaymentGuards(t *testing.T) {
	svc, resRepo, _, _ := newTestService()
	seedReservation(resRepo, func(r *models.Reservation) {
		r.VisitApproved = true
	})

	pay := PaymentRequest{ProofOfPaymentURL: "https://cdn.example.com/proof.jpg", PaymentMethod: "gcash"}

	var transition *ErrInvalidTransition
	_, err := svc.SubmitPayment(context.Background(), "res-1", "tenant-1", pay)
	require.ErrorAs(t, err, &transition)
	assert.Contains(t, transition.Reason, "application")

	seedReservation(resRepo, func(r *models.Reservation) {
		r.VisitApproved = true
		r.FirstName = "Maria"
		r.LastName = "Santos"
		r.Status = models.ReservationConfirmed
	})
	_, err = svc.SubmitPayment(context.Background(), "res-1", "tenant-1", pay)
	require.ErrorAs(t, err, &transition)
	assert.Contains(t, transition.Reason, "confirmed")
}

func TestSubmitPayment(t *testing.T) {
	svc, resRepo, _, _ := newTestService()
	seedReservation(resRepo, func(r *models.Reservation) {
		r.VisitApproved = true
		r.FirstName = "Maria"
		r.LastName = "Santos"
	})

	res, err := svc.SubmitPayment(context.Background(), "res-1", "tenant-1",
		PaymentRequest{ProofOfPaymentURL: "https://cdn.example.com/proof.jpg", PaymentMethod: "gcash"})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPending, res.PaymentStatus)
	require.NotNil(t, res.PaymentDate)
	assert.Equal(t, "https://cdn.example.com/proof.jpg", res.ProofOfPaymentURL)
}

func TestVerifyPayment(t *testing.T) {
	svc, resRepo, roomRepo, _ := newTestService()
	seedReservation(resRepo, func(r *models.Reservation) {
		r.VisitApproved = true
		r.FirstName = "Maria"
		r.LastName = "Santos"
		r.ProofOfPaymentURL = "https://cdn.example.com/proof.jpg"
	})

	moveIn := time.Now().Add(14 * 24 * time.Hour)
	res, err := svc.VerifyPayment(context.Background(), "res-1", &moveIn)
	require.NoError(t, err)

	assert.Equal(t, models.ReservationConfirmed, res.Status)
	assert.Equal(t, models.PaymentPaid, res.PaymentStatus)
	require.NotNil(t, res.ApprovedDate)
	require.NotNil(t, res.FinalMoveInDate)
	assert.True(t, roomRepo.occupied["room-1/bed-1"])
}

func TestVerifyPaymentRequiresProof(t *testing.T) {
	svc, resRepo, _, _ := newTestService()
	seedReservation(resRepo, nil)

	var transition *ErrInvalidTransition
	_, err := svc.VerifyPayment(context.Background(), "res-1", nil)
	require.ErrorAs(t, err, &transition)
}

func TestCancel(t *testing.T) {
	svc, resRepo, roomRepo, _ := newTestService()
	seedReservation(resRepo, nil)

	var forbidden *ErrForbidden
	err := svc.Cancel(context.Background(), "res-1", "someone-else", false)
	require.ErrorAs(t, err, &forbidden)

	require.NoError(t, svc.Cancel(context.Background(), "res-1", "tenant-1", false))
	res, _ := resRepo.GetByID("res-1")
	assert.Equal(t, models.ReservationCancelled, res.Status)
	// The held bed is released.
	assert.False(t, roomRepo.occupied["room-1/bed-1"])

	// Cancelling twice is a no-op.
	require.NoError(t, svc.Cancel(context.Background(), "res-1", "tenant-1", false))

	// Admins may cancel reservations they do not own.
	seedReservation(resRepo, func(r *models.Reservation) { r.ID = "res-2" })
	require.NoError(t, svc.Cancel(context.Background(), "res-2", "back-office", true))
}

func TestErrorTexts(t *testing.T) {
	assert.EqualError(t, &ErrNotFound{ID: "x"}, "reservation x not found")
	assert.EqualError(t, &ErrForbidden{ID: "x"}, "reservation x does not belong to the caller")
	assert.EqualError(t, &ErrInvalidTransition{Action: "act", Reason: "why"}, "cannot act: why")
	assert.False(t, errors.Is(&ErrNotFound{ID: "a"}, &ErrNotFound{ID: "b"}))
}

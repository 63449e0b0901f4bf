package repositories

import (
	"fmt"
	"testing"
	"time"

	"snaparoo-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Event{}, &models.Upload{}))
	return db
}

func newTestEvent(name string) *models.Event {
	return &models.Event{
		ID:                 uuid.New(),
		OrganizerToken:     uuid.New().String(),
		CameraToken:        uuid.New().String()[:8],
		Name:               name,
		Email:              "organizer@example.com",
		Date:               time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Plan:               models.PlanBasic,
		PaymentStatus:      "PAID",
		MaxUploads:         50,
		GuestLimit:         10,
		MediaLimitPerGuest: 25,
		Branding:           models.DefaultBranding(name),
		Filters:            models.FilterNone,
		GalleryViewing:     models.GalleryDuring,
	}
}

func TestCreateEventRequiresTokens(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))

	event := newTestEvent("No Tokens")
	event.OrganizerToken = ""
	assert.Error(t, repo.CreateEvent(event))

	assert.Error(t, repo.CreateEvent(nil))
}

func TestGetEventByTokens(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db)

	event := newTestEvent("Token Lookup")
	require.NoError(t, repo.CreateEvent(event))

	byOrganizer, err := repo.GetEventByOrganizerToken(event.OrganizerToken)
	require.NoError(t, err)
	assert.Equal(t, event.ID, byOrganizer.ID)

	byCamera, err := repo.GetEventByCameraToken(event.CameraToken)
	require.NoError(t, err)
	assert.Equal(t, event.ID, byCamera.ID)

	_, err = repo.GetEventByOrganizerToken("nope")
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = repo.GetEventByCameraToken("nope")
	assert.ErrorIs(t, err, ErrEventNotFound)

	// the camera token never resolves through the organizer lookup
	_, err = repo.GetEventByOrganizerToken(event.CameraToken)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventTokenUniqueness(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db)

	first := newTestEvent("First")
	require.NoError(t, repo.CreateEvent(first))

	dup := newTestEvent("Duplicate")
	dup.CameraToken = first.CameraToken
	assert.Error(t, repo.CreateEvent(dup))
}

func TestUpdateEventRejectsTokenChange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db)

	event := newTestEvent("Immutable")
	require.NoError(t, repo.CreateEvent(event))

	event.CameraToken = "hijacked"
	assert.EqualError(t, repo.UpdateEvent(event), "event tokens are immutable")
}

func TestUpdateEventFieldsPartial(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db)

	event := newTestEvent("Partial Update")
	event.Filters = models.FilterWarm
	require.NoError(t, repo.CreateEvent(event))

	err := repo.UpdateEventFields(event.ID.String(), map[string]interface{}{
		"filters": models.FilterVintage,
	})
	require.NoError(t, err)

	stored, err := repo.GetEventByID(event.ID.String())
	require.NoError(t, err)
	assert.Equal(t, models.FilterVintage, stored.Filters)
	assert.Equal(t, models.GalleryDuring, stored.GalleryViewing)
	assert.Equal(t, 25, stored.MediaLimitPerGuest)

	err = repo.UpdateEventFields(uuid.New().String(), map[string]interface{}{
		"filters": models.FilterNone,
	})
	assert.ErrorIs(t, err, ErrEventNotFound)

	// an empty field map is a no-op, not an error
	assert.NoError(t, repo.UpdateEventFields(event.ID.String(), nil))
}

func TestUploadCounts(t *testing.T) {
	db := setupTestDB(t)
	eventRepo := NewEventRepository(db)
	uploadRepo := NewUploadRepository(db)

	event := newTestEvent("Counting")
	require.NoError(t, eventRepo.CreateEvent(event))

	for _, participant := range []string{"g-1", "g-1", "g-1", "g-2"} {
		require.NoError(t, uploadRepo.CreateUpload(&models.Upload{
			ID:            uuid.New(),
			EventID:       event.ID,
			ParticipantID: participant,
		}))
	}

	total, err := uploadRepo.CountUploadsByEvent(event.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)

	byParticipant, err := uploadRepo.CountUploadsByEventAndParticipant(event.ID.String(), "g-1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, byParticipant)

	distinct, err := uploadRepo.CountDistinctParticipants(event.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 2, distinct)

	distinct, err = uploadRepo.CountDistinctParticipants(uuid.New().String())
	require.NoError(t, err)
	assert.EqualValues(t, 0, distinct)
}

func TestListUploadsByEvent(t *testing.T) {
	db := setupTestDB(t)
	eventRepo := NewEventRepository(db)
	uploadRepo := NewUploadRepository(db)

	event := newTestEvent("Listing")
	require.NoError(t, eventRepo.CreateEvent(event))

	for i := 0; i < 5; i++ {
		require.NoError(t, uploadRepo.CreateUpload(&models.Upload{
			ID:            uuid.New(),
			EventID:       event.ID,
			ParticipantID: fmt.Sprintf("g-%d", i),
		}))
	}

	uploads, total, err := uploadRepo.ListUploadsByEvent(event.ID.String(), 0, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, uploads, 3)
}

func TestBrandingRoundTripThroughDB(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db)

	event := newTestEvent("Branding")
	event.Branding = models.Branding{
		Title:        "Golden Hour",
		Subtitle:     "No flash please",
		PrimaryColor: "#123456",
		Font:         "mono",
		ShowVintage:  true,
	}
	require.NoError(t, repo.CreateEvent(event))

	stored, err := repo.GetEventByID(event.ID.String())
	require.NoError(t, err)
	assert.Equal(t, event.Branding, stored.Branding)
}

package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/harismriti/sadhna-api/internal/api/middleware"
	"github.com/harismriti/sadhna-api/internal/domain"
	"github.com/harismriti/sadhna-api/internal/repository"
	"github.com/harismriti/sadhna-api/internal/repository/dao"
	"github.com/harismriti/sadhna-api/internal/service"
)

func openHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "sadhna-test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	return db
}

// asUser stands in for VerifyJWT, pinning the authenticated user id.
func asUser(userID uint) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, userID)
		ctx.Next()
	}
}

func setupSadhnaRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	entryRepo := repository.NewEntryRepository(dao.NewEntryDAO(db))
	handler := NewSadhnaHandler(
		service.NewSadhnaService(entryRepo, userRepo),
		service.NewUserService(userRepo),
	)

	router := gin.New()
	router.Use(asUser(userID))
	router.GET("/sadhna/devotees-entries", handler.HandleGetDevoteesEntries)
	router.GET("/sadhna/peer-entries", handler.HandleGetPeerEntries)

	return router
}

func createHandlerTestUser(t *testing.T, repo *repository.UserRepository, name, role string, mentorIDs ...uint) domain.User {
	t.Helper()

	user, err := repo.Create(context.Background(), domain.User{
		Name:      name,
		Email:     name + "@example.com",
		Password:  "hashed-password",
		Role:      role,
		MentorIDs: mentorIDs,
	})
	require.NoError(t, err)

	return user
}

func submitEntryOn(t *testing.T, db *gorm.DB, userID uint, day time.Time) {
	t.Helper()

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	entryRepo := repository.NewEntryRepository(dao.NewEntryDAO(db))
	svc := service.NewSadhnaService(entryRepo, userRepo)

	_, _, err := svc.UpsertEntry(context.Background(), userID, 0, domain.DailyEntry{
		Date:          day,
		WakeUpTime:    "04:00",
		SleepTime:     "21:30",
		RoundsChanted: 16,
		BookName:      "Bhagavad-gītā As It Is",
	})
	require.NoError(t, err)
}

func listEntries(t *testing.T, router *gin.Engine, url string) []domain.DailyEntry {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var entries []domain.DailyEntry
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &entries))

	return entries
}

func TestHandleGetDevoteesEntries_DateOptional(t *testing.T) {
	db := openHandlerTestDB(t)
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))

	mentor := createHandlerTestUser(t, userRepo, "gaura", domain.RoleMentor)
	devotee := createHandlerTestUser(t, userRepo, "nitai", domain.RoleDevotee, mentor.ID)

	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	submitEntryOn(t, db, devotee.ID, monday)
	submitEntryOn(t, db, devotee.ID, monday.AddDate(0, 0, 1))

	router := setupSadhnaRouter(db, mentor.ID)

	// No date parameter: the full history, not just today's entries.
	all := listEntries(t, router, "/sadhna/devotees-entries")
	assert.Len(t, all, 2)

	day := listEntries(t, router, "/sadhna/devotees-entries?date=2026-03-02")
	require.Len(t, day, 1)
	assert.Equal(t, "2026-03-02", day[0].Date.Format("2006-01-02"))
}

func TestHandleGetPeerEntries_DateOptional(t *testing.T) {
	db := openHandlerTestDB(t)
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))

	mentor := createHandlerTestUser(t, userRepo, "gaura", domain.RoleMentor)
	caller := createHandlerTestUser(t, userRepo, "nitai", domain.RoleDevotee, mentor.ID)
	peer := createHandlerTestUser(t, userRepo, "madhava", domain.RoleDevotee, mentor.ID)

	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	submitEntryOn(t, db, peer.ID, monday)
	submitEntryOn(t, db, peer.ID, monday.AddDate(0, 0, 1))

	router := setupSadhnaRouter(db, caller.ID)

	all := listEntries(t, router, "/sadhna/peer-entries")
	assert.Len(t, all, 2)

	day := listEntries(t, router, "/sadhna/peer-entries?date=2026-03-03")
	require.Len(t, day, 1)
	assert.Equal(t, "2026-03-03", day[0].Date.Format("2006-01-02"))
}

package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/harismriti/sadhna-api/internal/domain"
	"github.com/harismriti/sadhna-api/internal/repository"
	"github.com/harismriti/sadhna-api/internal/repository/dao"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "sadhna-test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	return db
}

func newUserRepo(db *gorm.DB) *repository.UserRepository {
	return repository.NewUserRepository(dao.NewUserDAO(db))
}

func newEntryRepo(db *gorm.DB) *repository.EntryRepository {
	return repository.NewEntryRepository(dao.NewEntryDAO(db))
}

func seedMentor(t *testing.T, repo *repository.UserRepository, name string) domain.User {
	t.Helper()

	mentor, err := repo.Create(context.Background(), domain.User{
		Name:     name,
		Email:    name + "@mentors.test",
		Password: "hashed-password",
		Role:     domain.RoleMentor,
	})
	require.NoError(t, err)

	return mentor
}

func seedDevotee(t *testing.T, repo *repository.UserRepository, name string, mentorIDs ...uint) domain.User {
	t.Helper()

	devotee, err := repo.Create(context.Background(), domain.User{
		Name:        name,
		Email:       name + "@devotees.test",
		Password:    "hashed-password",
		Role:        domain.RoleDevotee,
		MentorIDs:   mentorIDs,
		DevoteeType: domain.DevoteeTypeFullTimeService,
	})
	require.NoError(t, err)

	return devotee
}

func testEntry(day time.Time) domain.DailyEntry {
	return domain.DailyEntry{
		Date:            day,
		WakeUpTime:      "04:00",
		SleepTime:       "21:30",
		RoundsChanted:   16,
		BookName:        "Bhagavad-gītā As It Is",
		ReadingDuration: 30,
		ServiceDuration: 1,
	}
}

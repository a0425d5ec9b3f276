package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "roommgmt/errors"
)

func TestGetVacancySettingsCreatesDefaults(t *testing.T) {
	db := setupTestDB(t)

	settings, err := GetVacancySettings(db)
	require.NoError(t, err)
	assert.Equal(t, 5, settings.EarlyCheckoutDay)
	assert.Equal(t, 25, settings.LateCheckoutDay)

	// Gọi lần nữa phải trả về đúng bản ghi đã tạo, không tạo thêm
	again, err := GetVacancySettings(db)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestUpdateVacancySettings(t *testing.T) {
	db := setupTestDB(t)

	settings, err := UpdateVacancySettings(db, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, 10, settings.EarlyCheckoutDay)
	assert.Equal(t, 20, settings.LateCheckoutDay)

	// Giá trị mới phải được đọc lại từ DB
	reloaded, err := GetVacancySettings(db)
	require.NoError(t, err)
	assert.Equal(t, 10, reloaded.EarlyCheckoutDay)
	assert.Equal(t, 20, reloaded.LateCheckoutDay)
}

func TestUpdateVacancySettingsRejectsInvalid(t *testing.T) {
	db := setupTestDB(t)

	tests := []struct {
		name  string
		early int
		late  int
	}{
		{"ngày sớm quá nhỏ", 0, 25},
		{"ngày sớm quá lớn", 29, 31},
		{"ngày muộn quá lớn", 5, 32},
		{"ngày muộn quá nhỏ", 5, 0},
		{"sớm bằng muộn", 15, 15},
		{"sớm sau muộn", 20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UpdateVacancySettings(db, tt.early, tt.late)
			require.Error(t, err)
			assert.True(t, apperrors.IsAppError(err))
		})
	}

	// Tiêu chí trong DB không bị thay đổi sau các lần cập nhật hỏng
	settings, err := GetVacancySettings(db)
	require.NoError(t, err)
	assert.Equal(t, 5, settings.EarlyCheckoutDay)
	assert.Equal(t, 25, settings.LateCheckoutDay)
}

func TestGetVacancySettingsQueryError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 mockDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT`).WillReturnError(assert.AnError)

	_, err = GetVacancySettings(db)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

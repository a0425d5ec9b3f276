package validator

import (
	"fmt"
	"regexp"
	"time"

	"roommgmt/constants"
	"roommgmt/errors"
	"roommgmt/models"
)

// ValidateRoom validate thông tin phòng
func ValidateRoom(room *models.Room) error {
	if room.RoomNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số phòng không được để trống", nil)
	}

	if !isValidRoomNumber(room.RoomNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Số phòng không hợp lệ: "+room.RoomNumber, nil)
	}

	if room.RoomType == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại phòng không được để trống", nil)
	}

	if room.Floor < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Tầng không được âm", nil)
	}

	return nil
}

// ValidateVacancySettings validate tiêu chí trống phòng. Không tự đảo hay
// kẹp giá trị: sai thứ tự earlyDay < lateDay là từ chối.
func ValidateVacancySettings(earlyDay, lateDay int) error {
	if earlyDay < constants.MinEarlyCheckoutDay || earlyDay > constants.MaxEarlyCheckoutDay {
		return errors.NewAppError(errors.ErrCodeInvalidThreshold,
			fmt.Sprintf("Ngày trả phòng sớm phải nằm trong khoảng từ %d đến %d", constants.MinEarlyCheckoutDay, constants.MaxEarlyCheckoutDay), nil)
	}

	if lateDay < constants.MinLateCheckoutDay || lateDay > constants.MaxLateCheckoutDay {
		return errors.NewAppError(errors.ErrCodeInvalidThreshold,
			fmt.Sprintf("Ngày trả phòng muộn phải nằm trong khoảng từ %d đến %d", constants.MinLateCheckoutDay, constants.MaxLateCheckoutDay), nil)
	}

	if earlyDay >= lateDay {
		return errors.NewAppError(errors.ErrCodeInvalidThreshold, "Ngày trả phòng sớm phải trước ngày trả phòng muộn", nil)
	}

	return nil
}

// ValidateCheckOutDate kiểm tra ngày trả phòng so với ngày nhận phòng
func ValidateCheckOutDate(checkInDate, checkOutDate time.Time) error {
	if checkOutDate.Before(checkInDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	return nil
}

// isValidRoomNumber kiểm tra số phòng hợp lệ
func isValidRoomNumber(number string) bool {
	roomNumberRegex := regexp.MustCompile(`^[A-Za-z0-9-]{1,20}$`)
	return roomNumberRegex.MatchString(number)
}

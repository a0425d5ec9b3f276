package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Room errors
	ErrCodeInvalidRoomID ErrorCode = "INVALID_ROOM_ID"
	ErrCodeRoomNotFound  ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeRoomExists    ErrorCode = "ROOM_EXISTS"
	ErrCodeRoomInactive  ErrorCode = "ROOM_INACTIVE"

	// Check-in/check-out errors
	ErrCodeRoomOccupied    ErrorCode = "ROOM_OCCUPIED"
	ErrCodeRoomNotOccupied ErrorCode = "ROOM_NOT_OCCUPIED"
	ErrCodeInvalidDate     ErrorCode = "INVALID_DATE"

	// Settings errors
	ErrCodeInvalidThreshold ErrorCode = "INVALID_THRESHOLD"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

var (
	// Room errors
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomExists     = errors.New("room already exists")
	ErrRoomInactive   = errors.New("room is inactive")
	ErrRoomHasRecords = errors.New("room has check-in/out history")

	// Check-in/check-out errors
	ErrRoomOccupied     = errors.New("room is occupied")
	ErrRoomNotCheckedIn = errors.New("room is not checked in")
	ErrRecordNotFound   = errors.New("check-in/out record not found")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)

package services

import (
	"encoding/json"
	"errors"
	"time"

	"roommgmt/config"
	"roommgmt/utils"
)

const (
	CacheKeyRooms         = "rooms:all"
	CacheKeyVacancyReport = "vacancy:report"
)

// ErrCacheUnavailable báo hiệu Redis chưa được kết nối
var ErrCacheUnavailable = errors.New("cache không khả dụng")

// GetFromCache lấy dữ liệu từ Redis và giải mã vào dest.
// Trả lỗi khi Redis chưa kết nối hoặc key không tồn tại.
func GetFromCache(key string, dest interface{}) error {
	rdb := config.RedisClient
	if rdb == nil {
		return ErrCacheUnavailable
	}

	data, err := rdb.Get(config.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(data), dest)
}

// SetToCache mã hóa value thành JSON và lưu vào Redis với thời gian hết hạn
func SetToCache(key string, value interface{}, expiration time.Duration) error {
	rdb := config.RedisClient
	if rdb == nil {
		return ErrCacheUnavailable
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return rdb.Set(config.Ctx, key, data, expiration).Err()
}

// DeleteFromCache xóa các key khỏi Redis
func DeleteFromCache(keys ...string) error {
	rdb := config.RedisClient
	if rdb == nil {
		return ErrCacheUnavailable
	}

	return rdb.Del(config.Ctx, keys...).Err()
}

// InvalidateRoomCaches xóa cache danh sách phòng và báo cáo trống phòng
// sau mỗi thao tác ghi làm thay đổi dữ liệu phòng hoặc lượt lưu trú
func InvalidateRoomCaches() {
	if err := DeleteFromCache(CacheKeyRooms, CacheKeyVacancyReport); err != nil && err != ErrCacheUnavailable {
		utils.LogError("Lỗi khi xóa cache: %v", err)
	}
}

package services

import (
	"encoding/json"
	"time"

	"github.com/olahol/melody"

	"roommgmt/utils"
)

var wsMelody *melody.Melody

// RoomEvent là sự kiện nhận/trả phòng phát qua websocket
type RoomEvent struct {
	Event      string    `json:"event"`
	RoomID     uint      `json:"roomId"`
	RoomNumber string    `json:"roomNumber"`
	At         time.Time `json:"at"`
}

// SetMelody gắn instance melody dùng để broadcast
func SetMelody(m *melody.Melody) {
	wsMelody = m
}

// BroadcastRoomEvent phát sự kiện phòng đến mọi client websocket đang kết nối
func BroadcastRoomEvent(event string, roomID uint, roomNumber string) {
	if wsMelody == nil {
		return
	}

	payload, err := json.Marshal(RoomEvent{
		Event:      event,
		RoomID:     roomID,
		RoomNumber: roomNumber,
		At:         time.Now(),
	})
	if err != nil {
		utils.LogError("Lỗi khi mã hóa sự kiện websocket: %v", err)
		return
	}

	if err := wsMelody.Broadcast(payload); err != nil {
		utils.LogError("Lỗi khi broadcast websocket: %v", err)
	}
}

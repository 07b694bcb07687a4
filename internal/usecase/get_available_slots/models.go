package get_available_slots

import "time"

// Request модель запроса доступных слотов
type Request struct {
	FieldID int64     // ID поля
	Date    time.Time // Дата (без времени)
}

// Slot доступный для бронирования слот расписания
type Slot struct {
	ScheduleID int64     `json:"scheduleId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Available  bool      `json:"available"`
}

// Response модель ответа со слотами на дату
type Response struct {
	FieldID int64     `json:"fieldId"`
	Date    time.Time `json:"date"`
	Slots   []Slot    `json:"slots"`
}

package create_booking

import "time"

// Request модель запроса на создание бронирования
// Указывается либо слот расписания, либо свободное окно StartTime-EndTime
type Request struct {
	UserID     int64      // ID пользователя
	FieldID    int64      // ID поля
	ScheduleID *int64     // ID слота расписания (опционально)
	StartTime  *time.Time // Начало свободного окна (если слот не указан)
	EndTime    *time.Time // Конец свободного окна (если слот не указан)
	Note       *string    // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64     // ID созданного бронирования
	UserID     int64     // ID пользователя
	FieldID    int64     // ID поля
	ScheduleID *int64    // ID слота расписания
	StartTime  time.Time // Начало бронирования
	EndTime    time.Time // Конец бронирования
	Price      float64   // Стоимость, денормализована из цены поля
	Status     string    // Статус бронирования
	Note       *string   // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

package seeder

import (
	"context"
	"fmt"
	"time"
)

// Seeder генератор слотов расписания для активных полей
// Запускается по расписанию и при старте сервиса. Повторные запуски
// безопасны: существующие слоты не перезаписываются
type Seeder struct {
	fieldRepo    FieldRepository
	scheduleRepo ScheduleRepository
	horizonDays  int
	logger       Logger
}

// NewSeeder создает новый экземпляр генератора расписания
func NewSeeder(fieldRepo FieldRepository, scheduleRepo ScheduleRepository, horizonDays int, logger Logger) *Seeder {
	return &Seeder{
		fieldRepo:    fieldRepo,
		scheduleRepo: scheduleRepo,
		horizonDays:  horizonDays,
		logger:       logger,
	}
}

// SeedUpcoming создает слоты расписания для всех активных полей на горизонт вперед
func (s *Seeder) SeedUpcoming(ctx context.Context) error {
	s.logger.Info("SeedUpcoming: seeding schedules for %d days ahead", s.horizonDays)

	fields, err := s.fieldRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("SeedUpcoming: failed to list active fields: %v", err)
		return fmt.Errorf("seeder: list active fields: %w", err)
	}

	if len(fields) == 0 {
		s.logger.Info("SeedUpcoming: no active fields, nothing to seed")
		return nil
	}

	today := time.Now()
	seeded := 0

	for _, field := range fields {
		for dayOffset := 0; dayOffset < s.horizonDays; dayOffset++ {
			day := today.AddDate(0, 0, dayOffset)

			bands := generateDayBands(field.ID, day)
			if len(bands) == 0 {
				continue
			}

			if err := s.scheduleRepo.CreateBatch(ctx, bands); err != nil {
				s.logger.Error("SeedUpcoming: failed to seed field=%d day=%s: %v",
					field.ID, day.Format("2006-01-02"), err)
				return fmt.Errorf("seeder: seed field %d: %w", field.ID, err)
			}

			seeded += len(bands)
		}
	}

	s.logger.Info("SeedUpcoming: seeded %d slots for %d fields", seeded, len(fields))
	return nil
}

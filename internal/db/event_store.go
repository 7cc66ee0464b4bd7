package db

import (
	"github.com/chronodesk/chronodesk/internal/analytics"
	"github.com/chronodesk/chronodesk/internal/models"
)

// LogEvent appends an application event. Events are never mutated.
func (s *Store) LogEvent(eventType string, eventData *string) error {
	return s.db.Create(&models.AppEvent{EventType: eventType, EventData: eventData}).Error
}

// CountEventDays counts the distinct days an event type occurred on
func (s *Store) CountEventDays(eventType string) (int64, error) {
	days, err := s.eventDays(eventType)
	if err != nil {
		return 0, err
	}
	return int64(len(days)), nil
}

// CountDistinctEventData counts distinct non-null data values for a type
func (s *Store) CountDistinctEventData(eventType string) (int64, error) {
	var count int64
	err := s.db.Model(&models.AppEvent{}).
		Where("event_type = ? AND event_data IS NOT NULL", eventType).
		Distinct("event_data").
		Count(&count).Error
	return count, err
}

// EventsSameDay reports whether two event types ever occurred on the
// same calendar day
func (s *Store) EventsSameDay(a, b string) (bool, error) {
	daysA, err := s.eventDays(a)
	if err != nil {
		return false, err
	}
	daysB, err := s.eventDays(b)
	if err != nil {
		return false, err
	}
	for d := range daysA {
		if daysB[d] {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) eventDays(eventType string) (map[string]bool, error) {
	var events []models.AppEvent
	if err := s.db.Where("event_type = ?", eventType).Find(&events).Error; err != nil {
		return nil, err
	}
	days := make(map[string]bool, len(events))
	for i := range events {
		days[analytics.DateOf(events[i].CreatedAt)] = true
	}
	return days, nil
}

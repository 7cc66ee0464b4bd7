package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/chronodesk/chronodesk/internal/models"
)

// ListSessionTypes returns all categories ordered by name
func (s *Store) ListSessionTypes() ([]models.SessionType, error) {
	var types []models.SessionType
	if err := s.db.Order("name").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// GetSessionType retrieves a category by ID
func (s *Store) GetSessionType(id uint) (*models.SessionType, error) {
	var st models.SessionType
	if err := s.db.First(&st, id).Error; err != nil {
		return nil, fmt.Errorf("session type #%d: %w", id, ErrNotFound)
	}
	return &st, nil
}

// SessionTypeByName retrieves a category by its exact name
func (s *Store) SessionTypeByName(name string) (*models.SessionType, error) {
	var st models.SessionType
	if err := s.db.Where("name = ?", name).First(&st).Error; err != nil {
		return nil, fmt.Errorf("session type %q: %w", name, ErrNotFound)
	}
	return &st, nil
}

// CreateSessionType adds a new category
func (s *Store) CreateSessionType(name, color string, hourlyRate *float64) (*models.SessionType, error) {
	if name == "" {
		return nil, fmt.Errorf("session type name cannot be empty")
	}
	st := models.SessionType{Name: name, Color: color, HourlyRate: hourlyRate}
	if err := s.db.Create(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

// UpdateSessionType saves changes to a category
func (s *Store) UpdateSessionType(st *models.SessionType) error {
	return s.db.Save(st).Error
}

// DeleteSessionType removes a category
func (s *Store) DeleteSessionType(id uint) error {
	return s.db.Delete(&models.SessionType{}, id).Error
}

// CreateSession logs a new work session and refreshes the project cache
func (s *Store) CreateSession(req models.NewSession) (*models.Session, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}
	st, err := s.GetSessionType(req.SessionTypeID)
	if err != nil {
		return nil, err
	}
	payType := req.PayType
	if payType == "" {
		payType = models.PayNone
	}
	hourlyRate := req.HourlyRate
	if payType == models.PayHourly && hourlyRate == nil {
		// fall back to the category's default rate
		hourlyRate = st.HourlyRate
	}
	session := models.Session{
		SessionTypeID: req.SessionTypeID,
		Date:          req.Date,
		ProjectName:   req.ProjectName,
		Hours:         req.Hours,
		Description:   req.Description,
		PayType:       payType,
		HourlyRate:    hourlyRate,
		FixedAmount:   req.FixedAmount,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	if err := s.touchProjectCache(req.ProjectName, req.SessionTypeID, req.Date); err != nil {
		return nil, err
	}
	s.db.Preload("SessionType").First(&session, session.ID)
	return &session, nil
}

// UpdateSession saves changes to a session
func (s *Store) UpdateSession(session *models.Session) error {
	if session.ProjectName == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if session.Hours < 0.1 || session.Hours > 24.0 {
		return fmt.Errorf("hours must be between 0.1 and 24.0")
	}
	if err := s.db.Save(session).Error; err != nil {
		return err
	}
	return s.touchProjectCache(session.ProjectName, session.SessionTypeID, session.Date)
}

// DeleteSession removes a session
func (s *Store) DeleteSession(id uint) error {
	return s.db.Delete(&models.Session{}, id).Error
}

// GetSession retrieves a session by ID
func (s *Store) GetSession(id uint) (*models.Session, error) {
	var session models.Session
	if err := s.db.Preload("SessionType").First(&session, id).Error; err != nil {
		return nil, fmt.Errorf("session #%d: %w", id, ErrNotFound)
	}
	return &session, nil
}

// ListSessions returns all sessions, newest first
func (s *Store) ListSessions() ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.Preload("SessionType").
		Order("date DESC, id DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// SessionsByDate returns the sessions logged on one day
func (s *Store) SessionsByDate(date string) ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.Preload("SessionType").
		Where("date = ?", date).
		Order("id DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// SessionsInRange returns all sessions within an inclusive date range
func (s *Store) SessionsInRange(start, end string) ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.Preload("SessionType").
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// SessionsByType returns all sessions for one category, newest first
func (s *Store) SessionsByType(sessionTypeID uint) ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.Preload("SessionType").
		Where("session_type_id = ?", sessionTypeID).
		Order("date DESC, id DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// ProjectsByType returns up to 20 cached project names for a category,
// most used first
func (s *Store) ProjectsByType(sessionTypeID uint) ([]string, error) {
	var names []string
	err := s.db.Model(&models.Project{}).
		Where("session_type_id = ?", sessionTypeID).
		Order("use_count DESC, last_used DESC").
		Limit(20).
		Distinct().
		Pluck("project_name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// touchProjectCache upserts the autocomplete entry for a project name
func (s *Store) touchProjectCache(projectName string, sessionTypeID uint, date string) error {
	res := s.db.Model(&models.Project{}).
		Where("project_name = ? AND session_type_id = ?", projectName, sessionTypeID).
		Updates(map[string]interface{}{
			"last_used": date,
			"use_count": gorm.Expr("use_count + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return s.db.Create(&models.Project{
			ProjectName:   projectName,
			SessionTypeID: sessionTypeID,
			LastUsed:      date,
			UseCount:      1,
		}).Error
	}
	return nil
}

// Package resume manages the single resume document. The UI auto-saves
// the whole document on every change, so the service exposes get,
// replace, and reset rather than field-level patches.
package resume

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"atelier/internal/domain/models"
	"atelier/internal/kvstore"
)

const keyResume = "user_resume"

type Service struct {
	mu     sync.Mutex
	kv     kvstore.Store
	logger *slog.Logger

	data models.ResumeData
}

func NewService(kv kvstore.Store, logger *slog.Logger) *Service {
	s := &Service{kv: kv, logger: logger, data: emptyResume()}

	raw, err := kv.Get(keyResume)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			logger.Warn("failed to read resume, starting empty", "error", err)
		}
		return s
	}
	if err := json.Unmarshal([]byte(raw), &s.data); err != nil {
		logger.Warn("malformed resume, starting empty", "error", err)
		s.data = emptyResume()
	}
	return s
}

// Get returns the current resume document.
func (s *Service) Get() models.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// Replace stores the document wholesale and persists it.
func (s *Service) Replace(data models.ResumeData) models.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data.Skills == nil {
		data.Skills = []string{}
	}
	if data.Experiences == nil {
		data.Experiences = []models.ResumeExperience{}
	}
	if data.Education == nil {
		data.Education = []models.ResumeEducation{}
	}

	s.data = data
	s.persist()
	return s.data
}

// Reset clears the document back to its empty shape.
func (s *Service) Reset() models.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = emptyResume()
	s.persist()
	s.logger.Info("resume reset")
	return s.data
}

func (s *Service) persist() {
	payload, err := json.Marshal(s.data)
	if err != nil {
		s.logger.Error("failed to encode resume", "error", err)
		return
	}
	if err := s.kv.Set(keyResume, string(payload)); err != nil {
		s.logger.Warn("persist failed, continuing with in-memory state", "key", keyResume, "error", err)
	}
}

func emptyResume() models.ResumeData {
	return models.ResumeData{
		Skills:      []string{},
		Experiences: []models.ResumeExperience{},
		Education:   []models.ResumeEducation{},
	}
}

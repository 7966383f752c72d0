// Package studio manages chat personas (characters) and their per-persona
// conversation history. Replies come from the generative-text client; a
// failed call yields the static fallback line, never an error to the user.
package studio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"atelier/internal/domain"
	"atelier/internal/domain/models"
	"atelier/internal/kvstore"
	"atelier/internal/llm"
)

const (
	keyCharacters = "saved_characters"
	keyChats      = "chat_history"
)

type Service struct {
	mu     sync.Mutex
	kv     kvstore.Store
	llm    llm.Client
	logger *slog.Logger

	characters []models.Character
	chats      map[string][]models.ChatMessage
}

func NewService(kv kvstore.Store, client llm.Client, logger *slog.Logger) *Service {
	s := &Service{
		kv:     kv,
		llm:    client,
		logger: logger,
		chats:  make(map[string][]models.ChatMessage),
	}

	if raw, err := kv.Get(keyCharacters); err == nil {
		if err := json.Unmarshal([]byte(raw), &s.characters); err != nil {
			logger.Warn("malformed characters, starting empty", "error", err)
			s.characters = nil
		}
	} else if !errors.Is(err, kvstore.ErrKeyNotFound) {
		logger.Warn("failed to read characters, starting empty", "error", err)
	}

	if raw, err := kv.Get(keyChats); err == nil {
		if err := json.Unmarshal([]byte(raw), &s.chats); err != nil {
			logger.Warn("malformed chat history, starting empty", "error", err)
			s.chats = make(map[string][]models.ChatMessage)
		}
	} else if !errors.Is(err, kvstore.ErrKeyNotFound) {
		logger.Warn("failed to read chat history, starting empty", "error", err)
	}

	return s
}

// SaveCharacterRequest carries the editable persona fields.
type SaveCharacterRequest struct {
	Name   string   `json:"name"`
	Avatar string   `json:"avatar"`
	Age    int      `json:"age"`
	Job    string   `json:"job"`
	Style  string   `json:"style"`
	Tone   string   `json:"tone"`
	Traits []string `json:"traits"`
	Bio    string   `json:"bio"`
}

func (r *SaveCharacterRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Job, validation.Required),
	)
}

func (s *Service) Create(req *SaveCharacterRequest) (*models.Character, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch := models.Character{
		ID:     uuid.New().String(),
		Name:   req.Name,
		Avatar: req.Avatar,
		Age:    req.Age,
		Job:    req.Job,
		Style:  req.Style,
		Tone:   req.Tone,
		Traits: req.Traits,
		Bio:    req.Bio,
	}
	if ch.Traits == nil {
		ch.Traits = []string{}
	}
	s.characters = append(s.characters, ch)
	s.persistCharacters()

	s.logger.Info("character created", "id", ch.ID, "name", ch.Name)
	return &ch, nil
}

func (s *Service) List() []models.Character {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Character, len(s.characters))
	copy(out, s.characters)
	return out
}

func (s *Service) Get(id string) (*models.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(id)
}

func (s *Service) Update(id string, req *SaveCharacterRequest) (*models.Character, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.characters {
		if s.characters[i].ID != id {
			continue
		}
		ch := &s.characters[i]
		ch.Name = req.Name
		ch.Avatar = req.Avatar
		ch.Age = req.Age
		ch.Job = req.Job
		ch.Style = req.Style
		ch.Tone = req.Tone
		ch.Bio = req.Bio
		if req.Traits != nil {
			ch.Traits = req.Traits
		}
		s.persistCharacters()
		out := *ch
		return &out, nil
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("character %q not found", id)}
}

// Delete removes a persona and drops its conversation history.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.characters {
		if s.characters[i].ID == id {
			s.characters = append(s.characters[:i], s.characters[i+1:]...)
			delete(s.chats, id)
			s.persistCharacters()
			s.persistChats()
			return nil
		}
	}
	return &domain.NotFoundError{Message: fmt.Sprintf("character %q not found", id)}
}

// Messages returns the conversation with one persona, oldest first.
func (s *Service) Messages(characterID string) ([]models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.findLocked(characterID); err != nil {
		return nil, err
	}
	out := make([]models.ChatMessage, len(s.chats[characterID]))
	copy(out, s.chats[characterID])
	return out, nil
}

// SendMessage appends the user's turn, asks the LLM for an in-persona
// reply, appends that, and persists the history. An LLM failure produces
// the static fallback reply rather than an error.
func (s *Service) SendMessage(ctx context.Context, characterID, text string) ([]models.ChatMessage, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: message must not be empty", domain.ErrValidation)
	}

	s.mu.Lock()
	persona, err := s.findLocked(characterID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	history := make([]models.ChatMessage, len(s.chats[characterID]))
	copy(history, s.chats[characterID])
	s.mu.Unlock()

	// The LLM call happens outside the lock; it can take seconds.
	reply, err := s.llm.ChatReply(ctx, persona, history, text)
	if err != nil {
		s.logger.Warn("chat reply failed, using fallback", "character_id", characterID, "error", err)
		reply = llm.FallbackReply
	}

	now := time.Now().UnixMilli()
	userMsg := models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.ChatRoleUser,
		Text:      text,
		Timestamp: now,
	}
	modelMsg := models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.ChatRoleModel,
		Text:      reply,
		Timestamp: time.Now().UnixMilli(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats[characterID] = append(s.chats[characterID], userMsg, modelMsg)
	s.persistChats()

	out := make([]models.ChatMessage, len(s.chats[characterID]))
	copy(out, s.chats[characterID])
	return out, nil
}

func (s *Service) findLocked(id string) (*models.Character, error) {
	for i := range s.characters {
		if s.characters[i].ID == id {
			out := s.characters[i]
			return &out, nil
		}
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("character %q not found", id)}
}

func (s *Service) persistCharacters() {
	payload, err := json.Marshal(s.characters)
	if err != nil {
		s.logger.Error("failed to encode characters", "error", err)
		return
	}
	if err := s.kv.Set(keyCharacters, string(payload)); err != nil {
		s.logger.Warn("persist failed, continuing with in-memory state", "key", keyCharacters, "error", err)
	}
}

func (s *Service) persistChats() {
	payload, err := json.Marshal(s.chats)
	if err != nil {
		s.logger.Error("failed to encode chat history", "error", err)
		return
	}
	if err := s.kv.Set(keyChats, string(payload)); err != nil {
		s.logger.Warn("persist failed, continuing with in-memory state", "key", keyChats, "error", err)
	}
}

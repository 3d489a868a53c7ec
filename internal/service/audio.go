package service

import (
	"context"
	"encoding/json"
	"math"
	"sync"

	"tabata_timer/internal/logger"
	"tabata_timer/internal/models"
	"tabata_timer/internal/repository"
)

// AudioSettingsKey namespaces the audio preferences in the KV store.
const AudioSettingsKey = "tabata-audio-settings"

// DefaultAudioSettings are used for anything not persisted.
var DefaultAudioSettings = models.AudioSettings{Enabled: true, Volume: 0.7}

// AudioUpdate carries the fields to change; nil fields are kept.
type AudioUpdate struct {
	Enabled *bool    `json:"enabled"`
	Volume  *float64 `json:"volume"`
}

// AudioSettingsService loads, merges and saves the cue preferences.
type AudioSettingsService struct {
	mu       sync.Mutex
	store    repository.KVStore
	log      *logger.Logger
	settings models.AudioSettings
}

func NewAudioSettingsService(ctx context.Context, store repository.KVStore, log *logger.Logger) *AudioSettingsService {
	s := &AudioSettingsService{
		store:    store,
		log:      logger.OrNop(log),
		settings: DefaultAudioSettings,
	}
	s.load(ctx)
	return s
}

func (s *AudioSettingsService) load(ctx context.Context) {
	raw, ok, err := s.store.Get(ctx, AudioSettingsKey)
	if err != nil {
		s.log.Warnw("audio_settings_load_failed", "error", err)
		return
	}
	if !ok {
		return
	}

	var stored AudioUpdate
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.log.Warnw("audio_settings_decode_failed", "error", err)
		return
	}
	s.settings = mergeAudio(DefaultAudioSettings, stored)
}

// Get returns the current settings.
func (s *AudioSettingsService) Get() models.AudioSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Update merges u, clamps the volume and persists the result.
func (s *AudioSettingsService) Update(ctx context.Context, u AudioUpdate) models.AudioSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = mergeAudio(s.settings, u)
	data, err := json.Marshal(s.settings)
	if err != nil {
		s.log.Errorw("audio_settings_encode_failed", "error", err)
		return s.settings
	}
	if err := s.store.Set(ctx, AudioSettingsKey, string(data)); err != nil {
		s.log.Warnw("audio_settings_save_failed", "error", err)
	}
	return s.settings
}

func mergeAudio(base models.AudioSettings, u AudioUpdate) models.AudioSettings {
	if u.Enabled != nil {
		base.Enabled = *u.Enabled
	}
	if u.Volume != nil {
		base.Volume = clampVolume(*u.Volume)
	}
	return base
}

func clampVolume(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return DefaultAudioSettings.Volume
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

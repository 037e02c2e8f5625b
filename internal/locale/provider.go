// Package locale owns the active language selection. The chosen locale is
// persisted as a JSON {id, text} record in the key-value store and read by
// every locale-aware upstream call at issue time.
package locale

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/alexivanou/skytrip-api/internal/model"
	"github.com/alexivanou/skytrip-api/internal/repository"
	"go.uber.org/zap"
)

// StorageKey is the key-value entry holding the selected locale
const StorageKey = "selectedLocale"

// fallbackLocales is used when the upstream locale list cannot be fetched
var fallbackLocales = []model.Locale{
	model.DefaultLocale,
	{ID: "es-ES", Text: "Spanish"},
	{ID: "fr-FR", Text: "French"},
	{ID: "de-DE", Text: "German"},
	{ID: "zh-CN", Text: "Chinese, Simplified"},
	{ID: "ja-JP", Text: "Japanese"},
}

// LocalesClient fetches the languages supported by the upstream API
type LocalesClient interface {
	Locales(ctx context.Context) ([]model.Locale, error)
}

// Provider is the single owner of the locale selection. Search controllers
// read it at request-issue time; only explicit user action mutates it.
type Provider struct {
	store  repository.Store
	client LocalesClient
	logger *zap.Logger

	mu        sync.RWMutex
	current   model.Locale
	available []model.Locale
}

// NewProvider creates a locale provider starting at the default locale
func NewProvider(store repository.Store, client LocalesClient, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		store:   store,
		client:  client,
		logger:  logger,
		current: model.DefaultLocale,
	}
}

// Init restores a previously persisted selection and refreshes the
// available-locale list. A failed refresh is not fatal: the static
// fallback list is installed instead.
func (p *Provider) Init(ctx context.Context) error {
	if err := p.loadSaved(ctx); err != nil {
		p.logger.Warn("failed to load saved locale", zap.Error(err))
	}

	if err := p.Refresh(ctx); err != nil {
		p.logger.Warn("failed to fetch locales, using fallback list", zap.Error(err))
		p.mu.Lock()
		p.available = fallbackLocales
		p.mu.Unlock()
	}
	return nil
}

// Current returns the active locale
func (p *Provider) Current() model.Locale {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// CurrentID returns the active locale id, e.g. "en-US"
func (p *Provider) CurrentID() string {
	return p.Current().ID
}

// Available returns the selectable locales
func (p *Provider) Available() []model.Locale {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]model.Locale, len(p.available))
	copy(out, p.available)
	return out
}

// Set makes locale the active selection and persists it
func (p *Provider) Set(ctx context.Context, locale model.Locale) error {
	if locale.ID == "" {
		return fmt.Errorf("locale id is required")
	}

	encoded, err := json.Marshal(locale)
	if err != nil {
		return fmt.Errorf("failed to encode locale: %w", err)
	}
	if err := p.store.Set(ctx, StorageKey, string(encoded)); err != nil {
		return fmt.Errorf("failed to persist locale: %w", err)
	}

	p.mu.Lock()
	p.current = locale
	p.mu.Unlock()
	return nil
}

// Refresh re-fetches the available locales from the upstream API
func (p *Provider) Refresh(ctx context.Context) error {
	locales, err := p.client.Locales(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch locales: %w", err)
	}

	p.mu.Lock()
	p.available = locales
	p.mu.Unlock()
	return nil
}

func (p *Provider) loadSaved(ctx context.Context) error {
	value, found, err := p.store.Get(ctx, StorageKey)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	var saved model.Locale
	if err := json.Unmarshal([]byte(value), &saved); err != nil {
		return fmt.Errorf("failed to decode saved locale: %w", err)
	}
	if saved.ID == "" {
		return nil
	}

	p.mu.Lock()
	p.current = saved
	p.mu.Unlock()
	return nil
}

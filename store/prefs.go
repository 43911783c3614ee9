package store

import (
	"log"
	"sync"

	"marketfolio"
	"marketfolio/storage"
)

// Storage keys for the persisted preferences.
const (
	keyLanguage   = "language"
	keyCurrency   = "currency"
	keyTheme      = "theme"
	keyShowPrices = "showPrices"
)

// PreferencesStore holds the display preferences. Every change is validated
// and persisted immediately; unknown stored values fall back to the defaults.
type PreferencesStore struct {
	kv *storage.Store

	mu   sync.RWMutex
	cur  marketfolio.Preferences
	subs []func(marketfolio.Preferences)
}

// NewPreferences restores the preferences persisted in kv, falling back to
// the defaults for missing or unknown values.
func NewPreferences(kv *storage.Store) *PreferencesStore {
	p := &PreferencesStore{kv: kv, cur: marketfolio.DefaultPreferences()}
	if lang := marketfolio.Language(kv.Get(keyLanguage)); lang.Known() {
		p.cur.Language = lang
	}
	if cur := marketfolio.Currency(kv.Get(keyCurrency)); cur.Known() {
		p.cur.Currency = cur
	}
	if theme := marketfolio.Theme(kv.Get(keyTheme)); theme.Known() {
		p.cur.Theme = theme
	}
	// Absent means visible. Only an explicit "false" hides prices.
	if kv.Has(keyShowPrices) {
		p.cur.ShowPrices = kv.Get(keyShowPrices) != "false"
	}
	return p
}

// Preferences returns the current preferences.
func (p *PreferencesStore) Preferences() marketfolio.Preferences {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cur
}

// Currency returns the display currency.
func (p *PreferencesStore) Currency() marketfolio.Currency { return p.Preferences().Currency }

// Language returns the interface language.
func (p *PreferencesStore) Language() marketfolio.Language { return p.Preferences().Language }

// Theme returns the color theme.
func (p *PreferencesStore) Theme() marketfolio.Theme { return p.Preferences().Theme }

// ShowPrices reports whether monetary values are visible.
func (p *PreferencesStore) ShowPrices() bool { return p.Preferences().ShowPrices }

// Subscribe registers fn to run after every preference change.
func (p *PreferencesStore) Subscribe(fn func(marketfolio.Preferences)) {
	p.mu.Lock()
	p.subs = append(p.subs, fn)
	p.mu.Unlock()
}

// SetLanguage switches the interface language. Unknown languages are ignored.
func (p *PreferencesStore) SetLanguage(lang marketfolio.Language) {
	if !lang.Known() {
		log.Printf("ignoring unknown language %q", lang)
		return
	}
	p.update(keyLanguage, string(lang), func(cur *marketfolio.Preferences) { cur.Language = lang })
}

// SetCurrency switches the display currency. Unknown currencies are ignored.
func (p *PreferencesStore) SetCurrency(c marketfolio.Currency) {
	if !c.Known() {
		log.Printf("ignoring unknown currency %q", c)
		return
	}
	p.update(keyCurrency, string(c), func(cur *marketfolio.Preferences) { cur.Currency = c })
}

// SetTheme switches the color theme. Unknown themes are ignored.
func (p *PreferencesStore) SetTheme(theme marketfolio.Theme) {
	if !theme.Known() {
		log.Printf("ignoring unknown theme %q", theme)
		return
	}
	p.update(keyTheme, string(theme), func(cur *marketfolio.Preferences) { cur.Theme = theme })
}

// SetShowPrices toggles monetary value visibility.
func (p *PreferencesStore) SetShowPrices(show bool) {
	value := "false"
	if show {
		value = "true"
	}
	p.update(keyShowPrices, value, func(cur *marketfolio.Preferences) { cur.ShowPrices = show })
}

func (p *PreferencesStore) update(key, value string, apply func(*marketfolio.Preferences)) {
	p.mu.Lock()
	apply(&p.cur)
	cur := p.cur
	p.mu.Unlock()

	if err := p.kv.Set(key, value); err != nil {
		log.Printf("cannot persist %s: %v", key, err)
	}
	p.mu.RLock()
	subs := make([]func(marketfolio.Preferences), len(p.subs))
	copy(subs, p.subs)
	p.mu.RUnlock()
	for _, fn := range subs {
		fn(cur)
	}
}

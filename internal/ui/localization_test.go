package ui

import "testing"

func TestLocalization_DefaultLanguage(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText(KeyGrab); got != "Grab" {
		t.Errorf("GetText(KeyGrab) = %s, expected Grab", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language ru, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyDownload); got != "Скачать" {
		t.Errorf("GetText(KeyDownload) = %s, expected Скачать", got)
	}

	// Unknown language keeps current
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should not change current, got %s", l.GetCurrentLanguage())
	}

	// "system" resolves to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to resolve to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_FallbackToKey(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText("nonexistent_key"); got != "nonexistent_key" {
		t.Errorf("Expected key itself as final fallback, got %s", got)
	}
}

func TestLocalization_AllLanguagesCoverAllKeys(t *testing.T) {
	l := NewLocalization()

	keys := []string{
		KeyAppTitle, KeyGrab, KeyDownload, KeySettings, KeyFile, KeyLanguage,
		KeyDownloadDirectory, KeyAutoReveal, KeySave, KeyCancel, KeyBrowse,
		KeyEnterLink, KeyPleaseEnterLink, KeyInvalidLink, KeyProbing,
		KeyNoThumbnails, KeyAvailableQualities, KeyThumbnailSaved,
		KeyErrorSaving, KeyErrorOpeningFile, KeyCopyURL, KeyURLCopied,
		KeyOpen, KeyReveal, KeySettingsSaved,
	}

	for lang := range l.GetAvailableLanguages() {
		texts, exists := l.texts[lang]
		if !exists {
			t.Fatalf("Language %s has no text map", lang)
		}
		for _, key := range keys {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s missing key %s", lang, key)
			}
		}
	}
}

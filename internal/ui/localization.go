package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyGrab               = "grab"
	KeyDownload           = "download"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyDownloadDirectory  = "download_directory"
	KeyAutoReveal         = "auto_reveal"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeyEnterLink          = "enter_link"
	KeyPleaseEnterLink    = "please_enter_link"
	KeyInvalidLink        = "invalid_link"
	KeyProbing            = "probing"
	KeyNoThumbnails       = "no_thumbnails"
	KeyAvailableQualities = "available_qualities"
	KeyThumbnailSaved     = "thumbnail_saved"
	KeyErrorSaving        = "error_saving"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyCopyURL            = "copy_url"
	KeyURLCopied          = "url_copied"
	KeyOpen               = "open"
	KeyReveal             = "reveal"
	KeySettingsSaved      = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "YT Thumbnail Grabber",
		KeyGrab:               "Grab",
		KeyDownload:           "Download",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyDownloadDirectory:  "Download Directory",
		KeyAutoReveal:         "Reveal file after saving",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeyEnterLink:          "Enter video link or ID (https://youtube.com/watch?v=...)",
		KeyPleaseEnterLink:    "Please enter a video link",
		KeyInvalidLink:        "No video ID found in input",
		KeyProbing:            "Checking available qualities...",
		KeyNoThumbnails:       "No thumbnails found — video may be private or deleted",
		KeyAvailableQualities: "Available qualities",
		KeyThumbnailSaved:     "Thumbnail saved",
		KeyErrorSaving:        "Error saving thumbnail",
		KeyErrorOpeningFile:   "Error opening file",
		KeyCopyURL:            "Copy URL",
		KeyURLCopied:          "URL copied to clipboard",
		KeyOpen:               "Open",
		KeyReveal:             "Reveal",
		KeySettingsSaved:      "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "YT Грабер Превью",
		KeyGrab:               "Получить",
		KeyDownload:           "Скачать",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyDownloadDirectory:  "Папка загрузки",
		KeyAutoReveal:         "Показывать файл после сохранения",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeyEnterLink:          "Введите ссылку или ID видео (https://youtube.com/watch?v=...)",
		KeyPleaseEnterLink:    "Пожалуйста, введите ссылку",
		KeyInvalidLink:        "ID видео не найден во вводе",
		KeyProbing:            "Проверка доступных качеств...",
		KeyNoThumbnails:       "Превью не найдены — видео приватное или удалено",
		KeyAvailableQualities: "Доступные качества",
		KeyThumbnailSaved:     "Превью сохранено",
		KeyErrorSaving:        "Ошибка сохранения превью",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyCopyURL:            "Копировать URL",
		KeyURLCopied:          "URL скопирован в буфер обмена",
		KeyOpen:               "Открыть",
		KeyReveal:             "Показать",
		KeySettingsSaved:      "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "YT Thumbnail Grabber",
		KeyGrab:               "Buscar",
		KeyDownload:           "Baixar",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyDownloadDirectory:  "Diretório de Download",
		KeyAutoReveal:         "Mostrar arquivo após salvar",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeyEnterLink:          "Digite o link ou ID do vídeo (https://youtube.com/watch?v=...)",
		KeyPleaseEnterLink:    "Por favor, digite um link",
		KeyInvalidLink:        "Nenhum ID de vídeo encontrado",
		KeyProbing:            "Verificando qualidades disponíveis...",
		KeyNoThumbnails:       "Nenhuma miniatura encontrada — vídeo privado ou excluído",
		KeyAvailableQualities: "Qualidades disponíveis",
		KeyThumbnailSaved:     "Miniatura salva",
		KeyErrorSaving:        "Erro ao salvar miniatura",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeyCopyURL:            "Copiar URL",
		KeyURLCopied:          "URL copiada para a área de transferência",
		KeyOpen:               "Abrir",
		KeyReveal:             "Mostrar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
	}
}

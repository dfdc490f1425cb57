package config

const (
	LangEN = "en"
	LangES = "es"
)

// SupportedLanguages lista los idiomas con locale disponible.
func SupportedLanguages() []string {
	return []string{LangEN, LangES}
}

// GetLocaleConfig normaliza el idioma pedido al locale soportado; ante un
// idioma desconocido cae al inglés.
func GetLocaleConfig(lang string) string {
	for _, supported := range SupportedLanguages() {
		if lang == supported {
			return lang
		}
	}
	return LangEN
}

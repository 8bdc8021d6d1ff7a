// Package i18n resolves multilingual catalog content. All presentation code
// goes through these functions rather than re-implementing the fallback
// chain: exact language match, then the first translation in list order,
// then a fixed placeholder.
package i18n

import "github.com/salonyai/storefront/internal/domain"

// Fallback display names used when an entity carries no translations at all
const (
	FallbackProductName  = "Unnamed Product"
	FallbackCategoryName = "Unnamed Category"
)

// ResolveName returns the best-matching display name for the given language.
// Missing translations never raise an error; the fallback is returned instead.
func ResolveName(translations []domain.Translation, lang domain.LanguageCode, fallback string) string {
	if t, ok := match(translations, lang); ok {
		return t.Name
	}
	if len(translations) > 0 {
		return translations[0].Name
	}
	return fallback
}

// ResolveDescription returns the best-matching description, or the empty
// string when the entity has no translations.
func ResolveDescription(translations []domain.Translation, lang domain.LanguageCode) string {
	if t, ok := match(translations, lang); ok {
		return t.Description
	}
	if len(translations) > 0 {
		return translations[0].Description
	}
	return ""
}

// HasLanguage reports whether a translation exists for the given language.
// Categories without one are hidden from that language's catalog view.
func HasLanguage(translations []domain.Translation, lang domain.LanguageCode) bool {
	_, ok := match(translations, lang)
	return ok
}

func match(translations []domain.Translation, lang domain.LanguageCode) (domain.Translation, bool) {
	for _, t := range translations {
		if t.LanguageCode == lang {
			return t, true
		}
	}
	return domain.Translation{}, false
}

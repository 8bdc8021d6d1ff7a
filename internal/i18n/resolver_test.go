package i18n

import (
	"testing"

	"github.com/salonyai/storefront/internal/domain"
)

var translations = []domain.Translation{
	{LanguageCode: domain.LanguageEnglish, Name: "Hair Care", Description: "Shampoos and conditioners"},
	{LanguageCode: domain.LanguageArabic, Name: "العناية بالشعر", Description: "شامبو وبلسم"},
}

func TestResolveNameExactMatch(t *testing.T) {
	if got := ResolveName(translations, domain.LanguageArabic, FallbackCategoryName); got != "العناية بالشعر" {
		t.Errorf("got %q", got)
	}
	if got := ResolveName(translations, domain.LanguageEnglish, FallbackCategoryName); got != "Hair Care" {
		t.Errorf("got %q", got)
	}
}

func TestResolveNameFallsBackToFirst(t *testing.T) {
	arabicOnly := translations[1:]
	if got := ResolveName(arabicOnly, domain.LanguageEnglish, FallbackCategoryName); got != "العناية بالشعر" {
		t.Errorf("got %q, want first translation's name", got)
	}
}

func TestResolveNameEmptyListUsesFallback(t *testing.T) {
	if got := ResolveName(nil, domain.LanguageEnglish, FallbackProductName); got != FallbackProductName {
		t.Errorf("got %q, want %q", got, FallbackProductName)
	}
	if got := ResolveName([]domain.Translation{}, domain.LanguageArabic, FallbackCategoryName); got != FallbackCategoryName {
		t.Errorf("got %q, want %q", got, FallbackCategoryName)
	}
}

func TestResolveDescription(t *testing.T) {
	if got := ResolveDescription(translations, domain.LanguageEnglish); got != "Shampoos and conditioners" {
		t.Errorf("got %q", got)
	}
	if got := ResolveDescription(translations[:1], domain.LanguageArabic); got != "Shampoos and conditioners" {
		t.Errorf("fallback to first: got %q", got)
	}
	if got := ResolveDescription(nil, domain.LanguageEnglish); got != "" {
		t.Errorf("empty list: got %q, want empty string", got)
	}
}

func TestHasLanguage(t *testing.T) {
	if !HasLanguage(translations, domain.LanguageArabic) {
		t.Error("expected Arabic translation to be found")
	}
	if HasLanguage(translations[:1], domain.LanguageArabic) {
		t.Error("did not expect Arabic translation")
	}
	if HasLanguage(nil, domain.LanguageEnglish) {
		t.Error("empty list should have no languages")
	}
}

func TestT(t *testing.T) {
	if got := T(domain.LanguageEnglish, "notification.added_to_cart"); got != "added to cart!" {
		t.Errorf("got %q", got)
	}
	if got := T(domain.LanguageArabic, "cart.empty"); got != "سلة التسوق فارغة" {
		t.Errorf("got %q", got)
	}
	// Unknown language falls back to English.
	if got := T(domain.LanguageCode(99), "error.general"); got != "An error occurred" {
		t.Errorf("got %q", got)
	}
	// Unknown key falls back to the key itself.
	if got := T(domain.LanguageEnglish, "no.such.key"); got != "no.such.key" {
		t.Errorf("got %q", got)
	}
}

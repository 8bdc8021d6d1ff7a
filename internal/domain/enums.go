package domain

// LanguageCode identifies a catalog language. The set in play is
// configuration-driven via TenantSettings.SupportedLanguages; 1 is the
// primary language in every deployment seen so far.
type LanguageCode int

const (
	LanguageEnglish LanguageCode = 1
	LanguageArabic  LanguageCode = 2
)

// IsValid checks if the language code is a known one
func (l LanguageCode) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageArabic:
		return true
	default:
		return false
	}
}

// IsRTL reports whether the language renders right-to-left
func (l LanguageCode) IsRTL() bool {
	return l == LanguageArabic
}

// OrderSource tags the channel an order originated from
type OrderSource int

const (
	// OrderSourceWebsite is the storefront web channel
	OrderSourceWebsite OrderSource = 1
)

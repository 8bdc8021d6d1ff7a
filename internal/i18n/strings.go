package i18n

import "github.com/salonyai/storefront/internal/domain"

// UI string dictionary for messages composed server-side (notifications,
// inline errors). Catalog content itself comes from Translation records.
var dictionary = map[domain.LanguageCode]map[string]string{
	domain.LanguageEnglish: {
		"notification.added_to_cart": "added to cart!",
		"notification.max_stock":     "is already at maximum stock in your cart!",
		"checkout.order_placed":      "Order placed successfully!",
		"checkout.order_failed":      "Order failed",
		"cart.empty":                 "Your cart is empty",
		"error.general":              "An error occurred",
		"error.network":              "Network error. Please check your connection.",
		"error.loading":              "Failed to load data",
	},
	domain.LanguageArabic: {
		"notification.added_to_cart": "تمت الإضافة للسلة!",
		"notification.max_stock":     "وصل للحد الأقصى في السلة!",
		"checkout.order_placed":      "تم إتمام الطلب بنجاح!",
		"checkout.order_failed":      "فشل الطلب",
		"cart.empty":                 "سلة التسوق فارغة",
		"error.general":              "حدث خطأ",
		"error.network":              "خطأ في الشبكة. يرجى التحقق من الاتصال.",
		"error.loading":              "فشل في تحميل البيانات",
	},
}

// T looks up a UI string for the given language. Unknown languages fall back
// to English; unknown keys fall back to the key itself.
func T(lang domain.LanguageCode, key string) string {
	strings, ok := dictionary[lang]
	if !ok {
		strings = dictionary[domain.LanguageEnglish]
	}
	if s, ok := strings[key]; ok {
		return s
	}
	return key
}

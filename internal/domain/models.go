package domain

// TenantSettings is the branding/config snapshot for one storefront tenant,
// fetched per slug from the Salony API and passed down read-only.
type TenantSettings struct {
	ID                 int            `json:"id"`
	TenantIdentifier   string         `json:"tenantIdentifier"`
	Slug               string         `json:"slug"`
	SupportedLanguages []LanguageCode `json:"supportedLanguages"`
	LogoURL            string         `json:"logoUrl"`
	ThemeColor         string         `json:"themeColor"`
	YoutubeLink        string         `json:"youtubeLink,omitempty"`
	FacebookLink       string         `json:"facebookLink,omitempty"`
	InstagramLink      string         `json:"instagramLink,omitempty"`
	TikTokLink         string         `json:"tikTokLink,omitempty"`
	LinkedInLink       string         `json:"linkedInLink,omitempty"`
	XLink              string         `json:"xLink,omitempty"`
	AddressAr          string         `json:"address_Ar"`
	AddressEn          string         `json:"address_En"`
	DeliveryDays       int            `json:"deliveryDays"`
	ShippingCost       float64        `json:"shippingCost"`
	IsActive           bool           `json:"isActive"`
	DateCreated        string         `json:"dateCreated,omitempty"`
	DateModified       string         `json:"dateModified,omitempty"`
}

// Translation carries the language-specific text fields of a category or product.
// Exactly one translation per language code is expected per owning entity, but
// the list may be empty and consumers must degrade gracefully.
type Translation struct {
	ID           int          `json:"id"`
	LanguageCode LanguageCode `json:"languageCode"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
}

// Category is a tenant-scoped product category
type Category struct {
	ID               int           `json:"id"`
	TenantIdentifier string        `json:"tenantIdentifier"`
	ImageURL         string        `json:"imageUrl"`
	IsActive         bool          `json:"isActive"`
	Translations     []Translation `json:"translations"`
	DateCreated      string        `json:"dateCreated,omitempty"`
	DateModified     string        `json:"dateModified,omitempty"`
}

// ProductImage is one image attached to a product
type ProductImage struct {
	ID        int    `json:"id"`
	ImageURL  string `json:"imageUrl"`
	IsMain    bool   `json:"isMain"`
	SortOrder int    `json:"sortOrder"`
}

// Product is a tenant-scoped catalog product
type Product struct {
	ID               int            `json:"id"`
	TenantIdentifier string         `json:"tenantIdentifier"`
	CategoryID       int            `json:"categoryId"`
	Price            float64        `json:"price"`
	ImageURL         string         `json:"imageUrl"`
	Images           []ProductImage `json:"images"`
	IsActive         bool           `json:"isActive"`
	InStock          bool           `json:"inStock"`
	StockQuantity    int            `json:"stockQuantity"`
	Translations     []Translation  `json:"translations"`
	DateCreated      string         `json:"dateCreated,omitempty"`
	DateModified     string         `json:"dateModified,omitempty"`
}

// PrimaryImageURL returns the product's main image, else the first image in
// list order, else the flat imageUrl field.
func (p Product) PrimaryImageURL() string {
	for _, img := range p.Images {
		if img.IsMain {
			return img.ImageURL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].ImageURL
	}
	return p.ImageURL
}

// CartLineItem is one product entry within a cart. Quantity is always
// positive and never exceeds StockQuantity, the stock ceiling captured from
// the product at last add/update. Name, description, price and image are
// snapshots taken at time of add.
type CartLineItem struct {
	ID            string  `json:"id"`
	ProductID     int     `json:"productId"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"imageUrl"`
	Quantity      int     `json:"quantity"`
	StockQuantity int     `json:"stockQuantity"`
}

// Customer holds the contact fields collected at checkout
type Customer struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// OrderItem is the per-line snapshot sent to the order endpoint
type OrderItem struct {
	ProductID  int     `json:"productId"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// OrderPayload is the body posted to the upstream order-creation endpoint
type OrderPayload struct {
	TenantIdentifier string      `json:"tenantIdentifier"`
	Customer         Customer    `json:"customer"`
	TotalAmount      float64     `json:"totalAmount"`
	Source           OrderSource `json:"source"`
	Items            []OrderItem `json:"items"`
}

package entity

// DefaultPrepMinutes is assumed for items that do not declare a
// preparation time.
const DefaultPrepMinutes = 15

// MenuItem is one dish on the menu. Prices are in minor currency
// units.
type MenuItem struct {
	ID              string       `json:"id"`
	Name            Translatable `json:"name"`
	Description     Translatable `json:"description"`
	Price           int64        `json:"price"`
	Image           string       `json:"image,omitempty"`
	Category        string       `json:"category"`
	IsAvailable     bool         `json:"isAvailable"`
	Tags            []string     `json:"tags,omitempty"`
	PrepTimeMinutes int          `json:"prepTimeMinutes,omitempty"`
}

// PrepTime returns the item's preparation time in minutes, or
// fallback when the item does not declare one.
func (m MenuItem) PrepTime(fallback int) int {
	if m.PrepTimeMinutes > 0 {
		return m.PrepTimeMinutes
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultPrepMinutes
}

// Category groups menu items.
type Category struct {
	ID   string       `json:"id"`
	Name Translatable `json:"name"`
}

// MenuTheme controls the customer-facing menu rendering.
type MenuTheme struct {
	PrimaryColor string `json:"primaryColor"`
	AccentColor  string `json:"accentColor"`
	FontFamily   string `json:"fontFamily"` // serif | sans
	Layout       string `json:"layout"`     // list | grid
}

// Restaurant is the whole menu/restaurant configuration blob.
type Restaurant struct {
	Name        Translatable `json:"name"`
	Description Translatable `json:"description"`
	LogoURL     string       `json:"logoUrl,omitempty"`
	Address     string       `json:"address,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Website     string       `json:"website,omitempty"`
	Items       []MenuItem   `json:"items"`
	Categories  []Category   `json:"categories"`
	Theme       MenuTheme    `json:"theme"`
	Tables      []string     `json:"tables"`
}

// FindItem looks an item up by id.
func (r Restaurant) FindItem(id string) (MenuItem, bool) {
	for _, it := range r.Items {
		if it.ID == id {
			return it, true
		}
	}
	return MenuItem{}, false
}

// FindCategory looks a category up by id.
func (r Restaurant) FindCategory(id string) (Category, bool) {
	for _, c := range r.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// HasTable reports whether label is a registered table.
func (r Restaurant) HasTable(label string) bool {
	for _, t := range r.Tables {
		if t == label {
			return true
		}
	}
	return false
}

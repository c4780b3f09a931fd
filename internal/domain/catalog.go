package domain

// ItemKind distinguishes how an add-on accumulates quantity.
type ItemKind string

const (
	// KindToggle add-ons flip between 0 and 1.
	KindToggle ItemKind = "toggle"
	// KindCounter add-ons carry a quantity clamped to [0, MaxAddonQuantity].
	KindCounter ItemKind = "counter"
)

// ItemGroup distinguishes base length tiers from optional add-ons.
type ItemGroup string

const (
	GroupLength ItemGroup = "length"
	GroupAddon  ItemGroup = "addon"
)

// ServiceCatalogItem is static reference data for one service tier or
// add-on. The catalog is owned by an external collaborator and read-only
// to the booking engine.
type ServiceCatalogItem struct {
	ID          string
	Name        string
	NameFr      string
	Description string
	Price       string // display price, possibly a range ("5$–20$")
	Duration    string
	Group       ItemGroup
	Kind        ItemKind // meaningful for add-ons only
}

// Catalog is the full service reference list.
type Catalog []ServiceCatalogItem

// FindByID returns the catalog item with the given id, or nil.
func (c Catalog) FindByID(id string) *ServiceCatalogItem {
	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}
	return nil
}

// Lengths returns the base length tiers in catalog order.
func (c Catalog) Lengths() []ServiceCatalogItem {
	out := make([]ServiceCatalogItem, 0, len(c))
	for _, item := range c {
		if item.Group == GroupLength {
			out = append(out, item)
		}
	}
	return out
}

// Addons returns the add-ons in catalog order.
func (c Catalog) Addons() []ServiceCatalogItem {
	out := make([]ServiceCatalogItem, 0, len(c))
	for _, item := range c {
		if item.Group == GroupAddon {
			out = append(out, item)
		}
	}
	return out
}

// DefaultCatalog is the studio's built-in service list, used when the
// catalog service is unavailable (graceful degradation).
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: "fs-s", Name: "Full set (short)", NameFr: "Pose complète (courte)", Description: "Clean & natural", Price: "50$", Duration: "60+ mins", Group: GroupLength},
		{ID: "fs-m", Name: "Full set (medium)", NameFr: "Pose complète (moyenne)", Description: "The perfect balance", Price: "55$", Duration: "75+ mins", Group: GroupLength},
		{ID: "fs-ml", Name: "Full set (medium-long)", NameFr: "Pose complète (mi-longue)", Description: "Sophisticated length", Price: "60$", Duration: "90+ mins", Group: GroupLength},
		{ID: "fs-l", Name: "Full set (long)", NameFr: "Pose complète (longue)", Description: "Maximum statement", Price: "65$", Duration: "105+ mins", Group: GroupLength},

		{ID: "ft", Name: "French tips", NameFr: "French classique", Description: "Classic or color", Price: "1$–10$", Duration: "+15 mins", Group: GroupAddon, Kind: KindCounter},
		{ID: "od", Name: "Other designs", NameFr: "Autres designs", Description: "Custom artistry", Price: "5$–20$", Duration: "+20 mins", Group: GroupAddon, Kind: KindCounter},
		{ID: "3d", Name: "3D designs", NameFr: "Designs 3D", Description: "Sculpted texture", Price: "2$–5$", Duration: "+10 mins", Group: GroupAddon, Kind: KindCounter},
		{ID: "cg", Name: "Charms / gems", NameFr: "Bijoux / Gems", Description: "Curated jewelry", Price: "2$–5$", Duration: "+5 mins", Group: GroupAddon, Kind: KindCounter},
		{ID: "bn", Name: "Bling nails", NameFr: "Ongles \"Bling\"", Description: "Ultimate luxury", Price: "3$", Duration: "+10 mins", Group: GroupAddon, Kind: KindCounter},
		{ID: "sm", Name: "Simple manicure", NameFr: "Manucure simple", Description: "Essential care", Price: "30$", Duration: "45 mins", Group: GroupAddon, Kind: KindToggle},
		{ID: "so", Name: "Soak-off", NameFr: "Dépose (Soak-off)", Description: "Safe removal", Price: "15$", Duration: "30 mins", Group: GroupAddon, Kind: KindToggle},
	}
}

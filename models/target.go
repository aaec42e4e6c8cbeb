package models

// Internal discriminator tags for polymorphic assignedTo references. These are
// the values persisted in documents; the API boundary speaks the external
// aliases below.
const (
	KindRental     = "Rental"
	KindSubservice = "Subservice"
	KindService    = "Service"
	KindInventory  = "Inventory"
)

// BookableKinds are the target kinds a Booking may reference.
var BookableKinds = []string{KindRental, KindSubservice}

// PayableKinds are the target kinds a Payment may reference.
var PayableKinds = []string{KindInventory, KindService, KindRental}

// kindCollections maps an internal discriminator tag to the collection its
// documents live in. Single source of truth for polymorphic resolution.
var kindCollections = map[string]string{
	KindRental:     "rentals",
	KindSubservice: "subservices",
	KindService:    "services",
	KindInventory:  "inventory",
}

// kindAliases maps internal tags to their external/API spellings. Both
// Subservice and Service present as "service"; Booking and Payment each accept
// only their own kind set, so the spelling never collides within one entity.
var kindAliases = map[string]string{
	KindRental:     "rental",
	KindSubservice: "service",
	KindService:    "service",
	KindInventory:  "inventory",
}

// CollectionForKind returns the collection name for an internal tag.
func CollectionForKind(kind string) (string, bool) {
	coll, ok := kindCollections[kind]
	return coll, ok
}

// TargetDocForKind returns a fresh typed document for an internal tag, so a
// resolved target decodes into its known shape rather than a loose map.
func TargetDocForKind(kind string) (interface{}, bool) {
	switch kind {
	case KindRental:
		return &Rental{}, true
	case KindSubservice:
		return &Subservice{}, true
	case KindService:
		return &Service{}, true
	case KindInventory:
		return &Inventory{}, true
	}
	return nil, false
}

// ExternalKind translates an internal tag to its API spelling. Unknown tags
// pass through unchanged so a dangling value is visible rather than hidden.
func ExternalKind(kind string) string {
	if alias, ok := kindAliases[kind]; ok {
		return alias
	}
	return kind
}

// InternalKind translates an external spelling back to the internal tag,
// restricted to the given kind set. Internal spellings are accepted as-is so
// staff tooling can submit either form.
func InternalKind(external string, allowed []string) (string, bool) {
	for _, kind := range allowed {
		if external == kind || external == kindAliases[kind] {
			return kind, true
		}
	}
	return "", false
}

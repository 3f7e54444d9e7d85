package bungie

// Hash is the canonical identifier for every definition in the Destiny 2
// catalog. The API keys content-blob objects by the stringified hash; the
// client re-keys everything by Hash so downstream lookups never mix string
// and integer keys.
type Hash uint32

type DisplayProperties struct {
	Name string `json:"name"`
}

type ItemCategoryDef struct {
	Hash              Hash              `json:"hash"`
	DisplayProperties DisplayProperties `json:"displayProperties"`
}

type InventoryItemDef struct {
	Hash               Hash              `json:"hash"`
	DisplayProperties  DisplayProperties `json:"displayProperties"`
	ItemCategoryHashes []Hash            `json:"itemCategoryHashes"`
	Sockets            *SocketBlock      `json:"sockets"`
}

type SocketBlock struct {
	SocketEntries []SocketEntry `json:"socketEntries"`
}

// SocketEntry is one slot on an item. RandomizedPlugSetHash is only present
// on sockets that can roll randomly; fixed sockets leave it nil.
type SocketEntry struct {
	SocketTypeHash        Hash  `json:"socketTypeHash"`
	SingleInitialItemHash Hash  `json:"singleInitialItemHash"`
	RandomizedPlugSetHash *Hash `json:"randomizedPlugSetHash"`
}

type PlugSetDef struct {
	Hash              Hash           `json:"hash"`
	ReusablePlugItems []ReusablePlug `json:"reusablePlugItems"`
}

type ReusablePlug struct {
	PlugItemHash Hash `json:"plugItemHash"`
}

// Definitions bundles the three content blobs the reconciliation needs,
// re-keyed by Hash.
type Definitions struct {
	Categories map[Hash]ItemCategoryDef
	Items      map[Hash]InventoryItemDef
	PlugSets   map[Hash]PlugSetDef
}

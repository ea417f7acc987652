package types

import (
	"encoding/json"
)

// PriceMaxAge is the largest age, in heights, of a usable price.
const PriceMaxAge uint64 = 144

// PriceEntry is a cached oracle price. Price carries PriceDecimals fractional digits.
type PriceEntry struct {
	Price      uint64 `json:"price"`
	LastUpdate uint64 `json:"last_update"`
	Valid      bool   `json:"valid"`
}

// Stringer method for PriceEntry.
func (e PriceEntry) String() string {
	bz, err := json.Marshal(e)
	if err != nil {
		panic(err)
	}

	return string(bz)
}

// Age is the distance from LastUpdate to height, zero if height precedes it.
func (e PriceEntry) Age(height uint64) uint64 {
	if height < e.LastUpdate {
		return 0
	}
	return height - e.LastUpdate
}

// IsFreshAt reports whether the entry is valid and at most PriceMaxAge old.
func (e PriceEntry) IsFreshAt(height uint64) bool {
	return e.Valid && IsFresh(e.LastUpdate, height)
}

// IsFresh reports whether an update at lastUpdate is usable at height.
func IsFresh(lastUpdate, height uint64) bool {
	if height < lastUpdate {
		return true
	}
	return height-lastUpdate <= PriceMaxAge
}

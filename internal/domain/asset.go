package domain

// Asset identifies a tradable instrument. Equality and hashing are on
// AssetID alone, so Asset is safe to use as (or to derive) a map key.
type Asset struct {
	AssetID string
}

func NewAsset(assetID string) Asset {
	return Asset{AssetID: assetID}
}

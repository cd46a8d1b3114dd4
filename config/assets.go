package config

// AssetName identifies an image resource. Components hold names, not images.
type AssetName string

const (
	AssetSky       AssetName = "sky"
	AssetMountains AssetName = "mountains"
	AssetJeep      AssetName = "jeep"
)

// AssetSpec binds an asset name to the path it is loaded from.
type AssetSpec struct {
	Name AssetName
	Path string
}

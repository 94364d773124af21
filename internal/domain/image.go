package domain

// Image is an asset reference with its expanded asset and editor hints.
// Hotspot and Crop values are fractions of the source dimensions.
type Image struct {
	Asset   *Asset   `json:"asset,omitempty"`
	Alt     string   `json:"alt,omitempty"`
	Hotspot *Hotspot `json:"hotspot,omitempty"`
	Crop    *Crop    `json:"crop,omitempty"`
}

type Asset struct {
	ID       string         `json:"_id,omitempty"`
	URL      string         `json:"url,omitempty"`
	Metadata *AssetMetadata `json:"metadata,omitempty"`
}

type AssetMetadata struct {
	LQIP       string      `json:"lqip,omitempty"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
}

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Hotspot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Crop struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

package geo

// Place is the payload the binaries index: an OSM object reduced to the
// fields needed to show a search hit.
type Place struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
	Tipe string `json:"type"` // value of the amenity / shop / place tag
}

func NewPlace(id int64, name, city, tipe string) Place {
	return Place{
		ID:   id,
		Name: name,
		City: city,
		Tipe: tipe,
	}
}

type OSMNode struct {
	ID     int64
	Lat    float64
	Lon    float64
	TagMap map[string]string
}

func NewOSMNode(id int64, lat float64, lon float64, tagMap map[string]string) OSMNode {
	return OSMNode{
		ID:     id,
		Lat:    lat,
		Lon:    lon,
		TagMap: tagMap,
	}
}

// ToPlacePoint turns a parsed node into an indexable point.
func (n OSMNode) ToPlacePoint() Point[Place] {
	place := NewPlace(n.ID, n.TagMap["name"], n.TagMap["addr:city"], placeType(n.TagMap))
	return NewPoint(NewPointOptions(n.Lat, n.Lon, place))
}

func placeType(tagMap map[string]string) string {
	for _, key := range typeTags {
		if v, ok := tagMap[key]; ok {
			return v
		}
	}
	return ""
}

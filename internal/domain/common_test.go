package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSumTotals(t *testing.T) {
	objects := []*ConstructionObject{
		{ID: "obj-001", Cost: 12500000000, Fact: 3500000000, PlanEOY: 5000000000},
		{ID: "obj-002", Cost: 6800000000, Fact: 1100000000, PlanEOY: 2200000000},
		{ID: "obj-003", Cost: 2100000000, Fact: 1600000000, PlanEOY: 1800000000},
	}

	totals := SumTotals(objects)

	assert.Equal(t, int64(21400000000), totals.Cost)
	assert.Equal(t, int64(6200000000), totals.Fact)
	assert.Equal(t, int64(9000000000), totals.PlanEOY)
}

func TestSumTotals_MissingFieldsCountAsZero(t *testing.T) {
	objects := []*ConstructionObject{
		{ID: "a", Cost: 100},
		{ID: "b"},
		nil,
	}

	assert.Equal(t, Totals{Cost: 100}, SumTotals(objects))
	assert.Equal(t, Totals{}, SumTotals(nil))
}

func TestPolygon_UnmarshalYAML(t *testing.T) {
	src := `
id: obj-001
status: ok
polygon:
  - [43.684199, 51.144279]
  - [43.682312, 51.143490]
  - [43.681698, 51.145705]
photos:
  bird: [https://example.com/a.jpg]
`
	var obj ConstructionObject
	require.NoError(t, yaml.Unmarshal([]byte(src), &obj))

	require.Len(t, obj.Polygon, 3)
	assert.Equal(t, LatLng{Lat: 43.684199, Lng: 51.144279}, obj.Polygon[0])
	assert.Equal(t, StatusOK, obj.Status)
	assert.Empty(t, obj.Photos.Ground)
	assert.Zero(t, obj.Cost)
}

func TestPolygon_JSONPairs(t *testing.T) {
	p := Polygon{{Lat: 1, Lng: 2}, {Lat: 3, Lng: 4}}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2],[3,4]]`, string(data))

	var back Polygon
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, p, back)
}

func TestPhotos_FirstBird(t *testing.T) {
	url, ok := Photos{Bird: []string{"https://example.com/a.jpg", "b"}}.FirstBird()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/a.jpg", url)

	_, ok = Photos{}.FirstBird()
	assert.False(t, ok)
}

package mapview

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construction-map/internal/domain"
)

func testObjects() []*domain.ConstructionObject {
	square := domain.Polygon{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 2}, {Lat: 2, Lng: 2}, {Lat: 2, Lng: 0}}
	return []*domain.ConstructionObject{
		{ID: "with-photo", Polygon: square, Photos: domain.Photos{Bird: []string{"https://img/a.jpg", "https://img/b.jpg"}}},
		{ID: "no-bird", Polygon: square, Photos: domain.Photos{Ground: []string{"https://img/g.jpg"}}},
		{ID: "no-polygon", Photos: domain.Photos{Bird: []string{"https://img/c.jpg"}}},
		{ID: "second", Polygon: square, Photos: domain.Photos{Bird: []string{"https://img/d.jpg"}}},
	}
}

func TestThumbnails_Threshold(t *testing.T) {
	objects := testObjects()

	assert.Empty(t, Thumbnails(objects, 13.9, DefaultThumbnailZoom))

	markers := Thumbnails(objects, 14.0, DefaultThumbnailZoom)
	require.Len(t, markers, 2)

	assert.Equal(t, "with-photo", markers[0].ObjectID)
	assert.Equal(t, "https://img/a.jpg", markers[0].PhotoURL)
	assert.Equal(t, domain.LatLng{Lat: 1, Lng: 1}, markers[0].Position)
	assert.Equal(t, ThumbnailWidth, markers[0].Width)
	assert.Equal(t, ThumbnailHeight, markers[0].Height)
	assert.Equal(t, "second", markers[1].ObjectID)
}

func TestThumbnails_NaNZoomShowsNothing(t *testing.T) {
	assert.Empty(t, Thumbnails(testObjects(), math.NaN(), DefaultThumbnailZoom))
}

func TestViewport_OnAndOff(t *testing.T) {
	v := NewViewport(domain.LatLng{Lat: 43.6481, Lng: 51.1722}, 12.5)

	var calls int
	off := v.On(EventZoomEnd, func(*Viewport) { calls++ })
	assert.Equal(t, 1, v.Listeners(EventZoomEnd))

	v.SetZoom(13)
	assert.Equal(t, 1, calls)

	off()
	off()
	assert.Equal(t, 0, v.Listeners(EventZoomEnd))

	v.SetZoom(14)
	assert.Equal(t, 1, calls, "handler must not fire after unsubscribe")
	assert.Equal(t, 14.0, v.Zoom())
}

func TestThumbnailOverlay_FollowsZoom(t *testing.T) {
	v := NewViewport(domain.LatLng{}, 12.5)
	overlay := NewThumbnailOverlay(testObjects(), DefaultThumbnailZoom)

	overlay.Mount(v)
	defer overlay.Unmount()

	assert.Equal(t, 12.5, overlay.Zoom())
	assert.Empty(t, overlay.Markers())

	v.SetZoom(14)
	assert.Len(t, overlay.Markers(), 2)

	v.SetZoom(13.9)
	assert.Empty(t, overlay.Markers())
}

func TestThumbnailOverlay_UnmountReleasesListener(t *testing.T) {
	v := NewViewport(domain.LatLng{}, 15)
	overlay := NewThumbnailOverlay(testObjects(), DefaultThumbnailZoom)

	func() {
		overlay.Mount(v)
		defer overlay.Unmount()
		assert.Equal(t, 1, v.Listeners(EventZoomEnd))
	}()

	assert.Equal(t, 0, v.Listeners(EventZoomEnd))

	// после отписки слой больше не видит изменений зума
	v.SetZoom(10)
	assert.Equal(t, 15.0, overlay.Zoom())

	overlay.Unmount()
	assert.Equal(t, 0, v.Listeners(EventZoomEnd))
}

func TestThumbnailOverlay_RemountKeepsSingleListener(t *testing.T) {
	v := NewViewport(domain.LatLng{}, 14)
	overlay := NewThumbnailOverlay(testObjects(), DefaultThumbnailZoom)

	overlay.Mount(v)
	overlay.Mount(v)
	defer overlay.Unmount()

	assert.Equal(t, 1, v.Listeners(EventZoomEnd))
}

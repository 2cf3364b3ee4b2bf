package format

import "github.com/construction-map/internal/domain"

// Centroid возвращает среднее арифметическое вершин контура.
// Это не геометрический центр масс: для небольших городских участков
// разница несущественна, а маркеры должны совпадать с исходными координатами.
func Centroid(points []domain.LatLng) (domain.LatLng, bool) {
	if len(points) == 0 {
		return domain.LatLng{}, false
	}

	var sumLat, sumLng float64
	for _, p := range points {
		sumLat += p.Lat
		sumLng += p.Lng
	}

	n := float64(len(points))
	return domain.LatLng{Lat: sumLat / n, Lng: sumLng / n}, true
}

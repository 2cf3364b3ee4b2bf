// Package docs Construction Map API.
//
// Дашборд объектов строительства на карте: полигоны объектов с цветом по
// статусу, сводка по себестоимости, факту и плану, карточка выбранного объекта
// и миниатюры аэрофото при приближении.
//
// Основные возможности:
// - Список объектов и карточка объекта
// - Слой полигонов в GeoJSON
// - Сводка по каталогу
// - Миниатюры для уровня зума
// - Переходы состояния интерфейса (наведение, выбор, закрытие, зум)
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//	- application/geo+json
//	- text/html
//
// swagger:meta
package docs

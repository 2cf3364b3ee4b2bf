package usecase

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/construction-map/internal/domain"
	"github.com/construction-map/internal/domain/repository"
	"github.com/construction-map/internal/pkg/errors"
	"github.com/construction-map/internal/pkg/format"
	"github.com/construction-map/internal/pkg/metrics"
	"github.com/construction-map/internal/pkg/validator"
	"github.com/construction-map/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	panelTitle = "Выберите объект на карте"
	panelHint  = "Наведите курсор для подсветки контура, кликните для подробностей. При приближении появятся миниатюры фото."
)

// DashboardUseCase - корень приложения: каталог, сводка, состояние интерфейса и боковая панель
type DashboardUseCase struct {
	objectRepo repository.ObjectRepository
	mapUC      *MapUseCase
	logger     *zap.Logger
}

func NewDashboardUseCase(
	objectRepo repository.ObjectRepository,
	mapUC *MapUseCase,
	logger *zap.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		objectRepo: objectRepo,
		mapUC:      mapUC,
		logger:     logger,
	}
}

// Summary считает сводку по каталогу; суммы выводятся заново на каждый вызов
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.Summary, error) {
	objects, err := uc.objectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}

	totals := domain.SumTotals(objects)

	summary := &dto.Summary{
		Count:       len(objects),
		Totals:      totals,
		CostText:    format.Currency(totals.Cost),
		FactText:    format.Currency(totals.Fact),
		PlanEOYText: format.Currency(totals.PlanEOY),
	}
	if len(objects) > 0 {
		summary.Title = regionLine(objects[0])
	}
	return summary, nil
}

// Card возвращает карточку объекта по идентификатору
func (uc *DashboardUseCase) Card(ctx context.Context, id string) (*dto.ObjectCard, error) {
	obj, err := uc.objectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	card := CardFor(obj)
	return &card, nil
}

// Transition применяет событие к состоянию. Событие, ссылающееся на
// неизвестный объект, отклоняется, состояние при этом не меняется.
func (uc *DashboardUseCase) Transition(ctx context.Context, state domain.ViewState, event domain.Event) (domain.ViewState, error) {
	if err := validator.Validate(&event); err != nil {
		return state, errors.ErrInvalidEvent.WithDetails(map[string]interface{}{
			"reason": validator.Describe(err),
		})
	}

	if event.NeedsObject() {
		if event.ObjectID == "" {
			return state, errors.ErrInvalidEvent.WithDetails(map[string]interface{}{
				"reason": "object_id is required for " + string(event.Type),
			})
		}
		if _, err := uc.objectRepo.GetByID(ctx, event.ObjectID); err != nil {
			return state, err
		}
	}

	if event.Type == domain.EventZoom && !validZoom(event.Zoom) {
		return state, errors.ErrInvalidZoom
	}

	next := state.Apply(event)
	metrics.ViewEventsTotal.WithLabelValues(string(event.Type)).Inc()

	uc.logger.Debug("View transition",
		zap.String("event", string(event.Type)),
		zap.String("object_id", event.ObjectID),
		zap.String("hover_id", next.HoverID),
		zap.String("active_id", next.ActiveID),
	)

	return next, nil
}

// Panel строит боковую панель: карточку, если объект выбран, иначе легенду и список
func (uc *DashboardUseCase) Panel(ctx context.Context, state domain.ViewState) (*dto.SidePanel, error) {
	if state.HasActive() {
		card, err := uc.Card(ctx, state.ActiveID)
		if err != nil {
			return nil, err
		}
		return &dto.SidePanel{Mode: dto.PanelCard, Card: card}, nil
	}

	items, err := uc.mapUC.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.SidePanel{
		Mode:   dto.PanelList,
		Title:  panelTitle,
		Hint:   panelHint,
		Legend: domain.Legend(),
		Items:  items,
	}, nil
}

// Page собирает страницу целиком для заданного состояния.
// Ссылка на неизвестный объект в состоянии сбрасывается, а не ломает страницу.
func (uc *DashboardUseCase) Page(ctx context.Context, state domain.ViewState) (*dto.DashboardPage, error) {
	state = uc.sanitize(ctx, state)

	settings := uc.mapUC.Settings()
	if state.Zoom == 0 {
		state.Zoom = settings.Zoom
	}

	summary, err := uc.Summary(ctx)
	if err != nil {
		return nil, err
	}

	polygons, err := uc.mapUC.Layer(ctx, state)
	if err != nil {
		return nil, err
	}

	markers, err := uc.mapUC.Thumbnails(ctx, state.Zoom)
	if err != nil {
		return nil, err
	}

	panel, err := uc.Panel(ctx, state)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardPage{
		State:    state,
		Map:      settings,
		Summary:  *summary,
		Polygons: polygons,
		Markers:  markers,
		Panel:    *panel,
	}, nil
}

func (uc *DashboardUseCase) sanitize(ctx context.Context, state domain.ViewState) domain.ViewState {
	for _, ref := range []*string{&state.HoverID, &state.ActiveID} {
		if *ref == "" {
			continue
		}
		if _, err := uc.objectRepo.GetByID(ctx, *ref); err != nil {
			if !stderrors.Is(err, errors.ErrObjectNotFound) {
				uc.logger.Warn("Failed to resolve object from view state", zap.String("id", *ref), zap.Error(err))
			}
			*ref = ""
		}
	}
	if !validZoom(state.Zoom) {
		state.Zoom = 0
	}
	return state
}

// CardFor строит карточку объекта
func CardFor(o *domain.ConstructionObject) dto.ObjectCard {
	return dto.ObjectCard{
		ID:          o.ID,
		RegionLine:  regionLine(o),
		Name:        o.Name,
		Status:      o.Status,
		StatusLabel: o.Status.Label(),
		Rows: []dto.InfoRow{
			{Label: "Подрядчик", Value: o.Contractor},
			{Label: "Начало проекта", Value: format.Date(o.StartDate)},
			{Label: "Сдача проекта", Value: format.Date(o.EndDate)},
			{Label: "Себестоимость", Value: format.Currency(o.Cost)},
			{Label: "Факт (освоено)", Value: format.Currency(o.Fact)},
			{Label: "План до конца года", Value: format.Currency(o.PlanEOY)},
			{Label: "Статус", Value: o.Status.Label()},
		},
		BirdPhotos:   nonNil(o.Photos.Bird),
		GroundPhotos: nonNil(o.Photos.Ground),
	}
}

func regionLine(o *domain.ConstructionObject) string {
	return o.Region + " — " + o.City
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

package static_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/construction-map/internal/domain"
	"github.com/construction-map/internal/pkg/errors"
	"github.com/construction-map/internal/repository/static"
)

func square(offset float64) domain.Polygon {
	return domain.Polygon{
		{Lat: offset, Lng: offset},
		{Lat: offset, Lng: offset + 1},
		{Lat: offset + 1, Lng: offset + 1},
	}
}

func TestNewSampleRepository(t *testing.T) {
	repo, err := static.NewSampleRepository(zap.NewNop())
	require.NoError(t, err)

	objects, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, objects, 3)

	assert.Equal(t, "obj-001", objects[0].ID)
	assert.Equal(t, "obj-002", objects[1].ID)
	assert.Equal(t, "obj-003", objects[2].ID)

	assert.Equal(t, domain.StatusInProgress, objects[0].Status)
	assert.Equal(t, domain.StatusRisk, objects[1].Status)
	assert.Equal(t, domain.StatusOK, objects[2].Status)

	assert.Equal(t, int64(12500000000), objects[0].Cost)
	assert.Equal(t, "2025-04-10", objects[0].StartDate)
	assert.Len(t, objects[0].Polygon, 4)
	assert.Equal(t, domain.LatLng{Lat: 43.684199, Lng: 51.144279}, objects[0].Polygon[0])
	assert.Len(t, objects[2].Photos.Bird, 1)
	assert.NotEmpty(t, repo.Version())
}

func TestObjectRepository_GetByID(t *testing.T) {
	repo, err := static.NewSampleRepository(zap.NewNop())
	require.NoError(t, err)

	obj, err := repo.GetByID(context.Background(), "obj-002")
	require.NoError(t, err)
	assert.Equal(t, "Реконструкция набережной (мкрн 15)", obj.Name)

	_, err = repo.GetByID(context.Background(), "obj-404")
	assert.True(t, stderrors.Is(err, errors.ErrObjectNotFound))
}

func TestObjectRepository_ListReturnsCopy(t *testing.T) {
	repo, err := static.NewSampleRepository(zap.NewNop())
	require.NoError(t, err)

	first, _ := repo.List(context.Background())
	first[0] = nil

	second, _ := repo.List(context.Background())
	assert.NotNil(t, second[0])
}

func TestNewRepository_Validation(t *testing.T) {
	tests := []struct {
		name    string
		objects []domain.ConstructionObject
	}{
		{
			name:    "missing id",
			objects: []domain.ConstructionObject{{Polygon: square(0)}},
		},
		{
			name:    "polygon with two points",
			objects: []domain.ConstructionObject{{ID: "a", Polygon: square(0)[:2]}},
		},
		{
			name: "duplicate id",
			objects: []domain.ConstructionObject{
				{ID: "a", Polygon: square(0)},
				{ID: "a", Polygon: square(1)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := static.NewRepository(tt.objects)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, errors.ErrInvalidCatalog))
		})
	}
}

func TestNewRepository_KeepsUnknownStatus(t *testing.T) {
	repo, err := static.NewRepository([]domain.ConstructionObject{
		{ID: "a", Status: "frozen", Polygon: square(0)},
	})
	require.NoError(t, err)

	obj, err := repo.GetByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, domain.Status("frozen"), obj.Status)
}

func TestNewRepository_VersionTracksContent(t *testing.T) {
	a, err := static.NewRepository([]domain.ConstructionObject{{ID: "a", Polygon: square(0)}})
	require.NoError(t, err)
	b, err := static.NewRepository([]domain.ConstructionObject{{ID: "a", Polygon: square(0), Cost: 1}})
	require.NoError(t, err)

	assert.NotEqual(t, a.Version(), b.Version())
}

func TestNewFileRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `objects:
  - id: x-1
    name: Test
    status: ok
    polygon: [[1, 1], [1, 2], [2, 2]]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	repo, err := static.NewFileRepository(path, zap.NewNop())
	require.NoError(t, err)

	objects, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "x-1", objects[0].ID)

	_, err = static.NewFileRepository(filepath.Join(t.TempDir(), "none.yaml"), zap.NewNop())
	assert.Error(t, err)
}

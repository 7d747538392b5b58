package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

// setupBackend creates an attached backend over a temp data dir.
func setupBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, b.Attach(config))
	t.Cleanup(func() { b.Detach() })
	return b
}

// fixtureLayout builds a valid layout with a table and a parented chair.
func fixtureLayout(name string) *types.Layout {
	l := types.NewLayout(name)
	table := &types.Element{
		ID: "table-1", Kind: types.KindRoundTable,
		X: 100, Y: 100, Width: 120, Height: 120,
		ZIndex: 1, Capacity: 8, Visible: true,
		Metadata: types.ElementMetadata{Name: "Table 1"},
	}
	chair := &types.Element{
		ID: "chair-1", Kind: types.KindChair,
		X: 90, Y: 230, Width: 20, Height: 20,
		ZIndex: 2, ParentID: "table-1", Visible: true,
	}
	l.Elements[table.ID] = table
	l.Elements[chair.ID] = chair
	l.ElementOrder = []string{table.ID, chair.ID}
	return l
}

func TestBackendLifecycle(t *testing.T) {
	b := NewBackend()
	config := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}

	require.NoError(t, b.Attach(config))
	assert.ErrorIs(t, b.Attach(config), types.ErrAlreadyAttached)

	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach(), "detach is idempotent")

	_, err := b.ListLayouts()
	assert.ErrorIs(t, err, types.ErrBackendDetached)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	b := setupBackend(t)
	l := fixtureLayout("reception hall")

	require.NoError(t, b.SaveLayout(l))

	got, err := b.LoadLayout(l.ID)
	require.NoError(t, err)

	require.NoError(t, types.ValidateLayout(got))
	assert.Equal(t, l.ID, got.ID)
	assert.Equal(t, l.Name, got.Name)
	assert.Equal(t, l.ElementOrder, got.ElementOrder)
	require.Len(t, got.Elements, 2)
	assert.Equal(t, 100.0, got.Elements["table-1"].X)
	assert.Equal(t, "table-1", got.Elements["chair-1"].ParentID)
	assert.Equal(t, 8, got.Elements["table-1"].Capacity)
}

func TestSaveRejectsInvalidLayout(t *testing.T) {
	b := setupBackend(t)
	l := fixtureLayout("broken")
	l.Elements["chair-1"].ParentID = "nowhere"

	err := b.SaveLayout(l)
	assert.ErrorIs(t, err, types.ErrInvalidLayout)

	_, err = b.LoadLayout(l.ID)
	assert.ErrorIs(t, err, types.ErrLayoutNotFound, "rejected save must not persist anything")
}

func TestSaveOverwrites(t *testing.T) {
	b := setupBackend(t)
	l := fixtureLayout("v1 name")
	require.NoError(t, b.SaveLayout(l))

	l.Name = "v2 name"
	require.NoError(t, b.SaveLayout(l))

	got, err := b.LoadLayout(l.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2 name", got.Name)

	summaries, err := b.ListLayouts()
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestListLayoutsOrder(t *testing.T) {
	b := setupBackend(t)

	first := fixtureLayout("first")
	require.NoError(t, b.SaveLayout(first))
	time.Sleep(5 * time.Millisecond)
	second := fixtureLayout("second")
	require.NoError(t, b.SaveLayout(second))

	summaries, err := b.ListLayouts()
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "second", summaries[0].Name, "most recently saved first")
	assert.Equal(t, "first", summaries[1].Name)
	assert.False(t, summaries[0].SavedAt.IsZero())
}

func TestDeleteLayout(t *testing.T) {
	b := setupBackend(t)
	l := fixtureLayout("doomed")
	require.NoError(t, b.SaveLayout(l))
	require.NoError(t, b.AppendChange(types.ChangeRecord{
		LayoutID: l.ID, ChangeType: types.ChangeCreate,
	}))

	require.NoError(t, b.DeleteLayout(l.ID))

	_, err := b.LoadLayout(l.ID)
	assert.ErrorIs(t, err, types.ErrLayoutNotFound)
	changes, err := b.UnsyncedChanges(l.ID)
	require.NoError(t, err)
	assert.Empty(t, changes, "change log is removed with the layout")

	assert.ErrorIs(t, b.DeleteLayout(l.ID), types.ErrLayoutNotFound)
}

func TestExportImportRoundTrip(t *testing.T) {
	l := fixtureLayout("exported")

	data, err := ExportLayout(l)
	require.NoError(t, err)

	got, err := ImportLayout(data)
	require.NoError(t, err)
	assert.Equal(t, l.ID, got.ID)
	assert.Equal(t, l.ElementOrder, got.ElementOrder)
}

func TestImportSanitizesUntrustedGeometry(t *testing.T) {
	l := fixtureLayout("hostile")
	l.Elements["table-1"].X = 2e6 // far outside the working area
	data, err := encodeEnvelope(l, time.Now().UTC())
	require.NoError(t, err)

	got, err := ImportLayout(data)
	require.NoError(t, err)
	assert.Equal(t, types.MaxPosition, got.Elements["table-1"].X)
}

func TestImportRejectsGarbage(t *testing.T) {
	_, err := ImportLayout([]byte(`{"version": 99, "data": {}}`))
	assert.ErrorIs(t, err, types.ErrInvalidLayout)

	_, err = ImportLayout([]byte(`not json at all`))
	assert.ErrorIs(t, err, types.ErrInvalidLayout)
}

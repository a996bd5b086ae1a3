package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SeedsPresetsOnce(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	ts, err := s.LoadTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, ts, 2)
	assert.Equal(t, entities.PresetInstallationID, ts[0].ID)
	assert.Equal(t, entities.PresetMaintenanceID, ts[1].ID)

	ts, err = s.LoadTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, ts, 2)
}

func TestStore_SaveTemplateUpsert(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	custom := entities.ChecklistTemplate{ID: "c1", Name: "Custom", Fields: entities.FieldList{}}
	require.NoError(t, s.SaveTemplate(ctx, custom))
	require.NoError(t, s.SaveTemplate(ctx, custom))

	ts, err := s.LoadTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, ts, 3)
	assert.Equal(t, "c1", ts[2].ID)

	renamed := ts[0]
	renamed.Name = "Instalação Premium"
	require.NoError(t, s.SaveTemplate(ctx, renamed))

	ts, err = s.LoadTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, ts, 3)
	assert.Equal(t, "Instalação Premium", ts[0].Name)
	assert.Equal(t, entities.PresetMaintenanceID, ts[1].ID)
	assert.Equal(t, "c1", ts[2].ID)
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	ts, err := s.LoadTemplates(ctx)
	require.NoError(t, err)
	ts[0].Name = "mutated"
	ts[0].Fields[0] = entities.PhotoField{FieldHeader: entities.FieldHeader{ID: "x"}}

	again, err := s.LoadTemplates(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Instalação Padrão", again[0].Name)
	assert.Equal(t, "p1", again[0].Fields[0].Header().ID)
}

func TestStore_OrderLogIsAppendOnly(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	orders, err := s.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	for _, id := range []string{"o1", "o2", "o3"} {
		require.NoError(t, s.AppendOrder(ctx, entities.ServiceOrder{ID: id, ClientName: "Cli", TotalValue: decimal.NewFromInt(10), Date: time.Now().UTC()}))
	}
	orders, err = s.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, []string{"o1", "o2", "o3"}, []string{orders[0].ID, orders[1].ID, orders[2].ID})

	orders[0].ClientName = "changed"
	again, err := s.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cli", again[0].ClientName)
}

func TestStore_Payments(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	p := entities.OrderPayment{ID: "p1", OrderID: "o1", Status: entities.PaymentStatusAprovado, Date: time.Now().UTC()}
	_, err := s.Create(ctx, p)
	require.NoError(t, err)

	_, err = s.Create(ctx, p)
	assert.True(t, errors.Is(err, interfaces.ErrPersistenceFailure))

	got, err := s.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "o1", got.OrderID)

	missing, err := s.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	list, err := s.ListByOrderID(ctx, "o1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

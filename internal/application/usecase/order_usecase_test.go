package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gifted-solutions/storefront-api/internal/application/dto"
	"github.com/gifted-solutions/storefront-api/internal/application/usecase"
	"github.com/gifted-solutions/storefront-api/internal/domain"
	"github.com/gifted-solutions/storefront-api/internal/domain/entity"
	"github.com/gifted-solutions/storefront-api/internal/domain/repository"
)

// ordenesEnMemoria implementa repository.OrderRepository sobre un map, para
// probar el caso de uso sin PostgreSQL.
type ordenesEnMemoria struct {
	ordenes map[string]*entity.Order
	orden   []string // IDs en orden de creación
}

func nuevoRepoOrdenes() *ordenesEnMemoria {
	return &ordenesEnMemoria{ordenes: make(map[string]*entity.Order)}
}

func (r *ordenesEnMemoria) Create(o *entity.Order) error {
	r.ordenes[o.ID] = o
	r.orden = append(r.orden, o.ID)
	return nil
}

func (r *ordenesEnMemoria) GetByID(id string) (*entity.Order, error) {
	return r.ordenes[id], nil
}

func (r *ordenesEnMemoria) List(status string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	// Recientes primero
	for i := len(r.orden) - 1; i >= 0; i-- {
		o := r.ordenes[r.orden[i]]
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, o)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *ordenesEnMemoria) UpdateStatus(id, status string) error {
	if o, ok := r.ordenes[id]; ok {
		o.Status = status
	}
	return nil
}

func (r *ordenesEnMemoria) Stats() (*repository.OrderStats, error) {
	stats := &repository.OrderStats{Revenue: decimal.Zero}
	for _, o := range r.ordenes {
		stats.TotalOrders++
		switch o.Status {
		case entity.OrderStatusPending:
			stats.PendingOrders++
		case entity.OrderStatusCompleted:
			stats.CompletedOrders++
			stats.Revenue = stats.Revenue.Add(o.TotalAmount)
		}
	}
	return stats, nil
}

func lineasDemo() []entity.CartLine {
	return []entity.CartLine{
		{ID: "p1", Name: "Arduino Uno R3", Price: decimal.NewFromInt(650), Quantity: 2},
		{ID: "p2", Name: "HC-SR04", Price: decimal.NewFromInt(85), Quantity: 1},
	}
}

// Orden válida: queda pending, con el total verificado contra las líneas.
func TestOrderCreate_OrdenValidaQuedaPendiente(t *testing.T) {
	uc := usecase.NewOrderUseCase(nuevoRepoOrdenes())

	out, err := uc.Create(dto.CreateOrderRequest{
		CustomerName: "Mwamba",
		OrderItems:   lineasDemo(),
		TotalAmount:  decimal.NewFromInt(1385), // 650*2 + 85
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.Equal(t, "K1,385.00", out.TotalDisplay)
	assert.Len(t, out.OrderItems, 2)
}

// El total enviado debe coincidir con la suma de las líneas.
func TestOrderCreate_TotalQueNoCuadra_Rechazada(t *testing.T) {
	uc := usecase.NewOrderUseCase(nuevoRepoOrdenes())

	_, err := uc.Create(dto.CreateOrderRequest{
		OrderItems:  lineasDemo(),
		TotalAmount: decimal.NewFromInt(9999),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Sin líneas no hay orden.
func TestOrderCreate_SinLineas_Rechazada(t *testing.T) {
	uc := usecase.NewOrderUseCase(nuevoRepoOrdenes())

	_, err := uc.Create(dto.CreateOrderRequest{
		TotalAmount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Una línea con cantidad cero o precio no positivo invalida toda la orden.
func TestOrderCreate_LineaInvalida_Rechazada(t *testing.T) {
	uc := usecase.NewOrderUseCase(nuevoRepoOrdenes())

	_, err := uc.Create(dto.CreateOrderRequest{
		OrderItems: []entity.CartLine{
			{ID: "p1", Name: "Regalo", Price: decimal.Zero, Quantity: 1},
		},
		TotalAmount: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// UpdateStatus acepta solo estados del enum.
func TestOrderUpdateStatus_EstadoDesconocido_Rechazado(t *testing.T) {
	repo := nuevoRepoOrdenes()
	uc := usecase.NewOrderUseCase(repo)

	creada, err := uc.Create(dto.CreateOrderRequest{
		OrderItems:  lineasDemo(),
		TotalAmount: decimal.NewFromInt(1385),
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(creada.ID, "shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	out, err := uc.UpdateStatus(creada.ID, entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, out.Status)
}

// UpdateStatus de una orden inexistente devuelve nil (el handler traduce a 404).
func TestOrderUpdateStatus_OrdenInexistente_RetornaNil(t *testing.T) {
	uc := usecase.NewOrderUseCase(nuevoRepoOrdenes())

	out, err := uc.UpdateStatus("no-existe", entity.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Nil(t, out)
}

// List filtra por estado y devuelve recientes primero.
func TestOrderList_FiltraPorEstado(t *testing.T) {
	repo := nuevoRepoOrdenes()
	uc := usecase.NewOrderUseCase(repo)

	a, err := uc.Create(dto.CreateOrderRequest{OrderItems: lineasDemo(), TotalAmount: decimal.NewFromInt(1385)})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreateOrderRequest{OrderItems: lineasDemo(), TotalAmount: decimal.NewFromInt(1385)})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(a.ID, entity.OrderStatusCompleted)
	require.NoError(t, err)

	pendientes, err := uc.List(entity.OrderStatusPending, 20, 0)
	require.NoError(t, err)
	require.Len(t, pendientes.Items, 1)
	assert.Equal(t, b.ID, pendientes.Items[0].ID)

	_, err = uc.List("shipped", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

package document_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/document"
)

var allActions = []document.Action{
	document.ActionConfirm,
	document.ActionReceive,
	document.ActionStart,
	document.ActionComplete,
	document.ActionCancel,
}

// assertOnlyAllowed verifica que desde from se permiten EXACTAMENTE las
// acciones de allowed y ninguna otra.
func assertOnlyAllowed(t *testing.T, table document.TransitionTable, from document.Status, allowed ...document.Action) {
	t.Helper()
	permitted := map[document.Action]bool{}
	for _, a := range allowed {
		permitted[a] = true
	}
	for _, a := range allActions {
		if permitted[a] {
			assert.True(t, table.Allows(from, a), "%s debe permitirse desde %s", a, from)
		} else {
			assert.False(t, table.Allows(from, a), "%s no debe permitirse desde %s", a, from)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de Order: PENDING -> CONFIRMED -> RECEIVED, cancelable salvo recibida
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderTransitions_CaminoFeliz(t *testing.T) {
	next, err := document.OrderTransitions.Next(document.OrderPending, document.ActionConfirm)
	require.NoError(t, err)
	assert.Equal(t, document.OrderConfirmed, next)

	next, err = document.OrderTransitions.Next(document.OrderConfirmed, document.ActionReceive)
	require.NoError(t, err)
	assert.Equal(t, document.OrderReceived, next)
}

func TestOrderTransitions_AccionesPermitidasPorEstado(t *testing.T) {
	assertOnlyAllowed(t, document.OrderTransitions, document.OrderPending,
		document.ActionConfirm, document.ActionCancel)
	assertOnlyAllowed(t, document.OrderTransitions, document.OrderConfirmed,
		document.ActionReceive, document.ActionCancel)
	assertOnlyAllowed(t, document.OrderTransitions, document.OrderCancelled,
		document.ActionCancel)
	// RECEIVED es terminal: nada, ni siquiera cancelar.
	assertOnlyAllowed(t, document.OrderTransitions, document.OrderReceived)
}

func TestOrderTransitions_CancelarCanceladaEsIdempotente(t *testing.T) {
	next, err := document.OrderTransitions.Next(document.OrderCancelled, document.ActionCancel)
	require.NoError(t, err)
	assert.Equal(t, document.OrderCancelled, next, "cancelar dos veces debe dejar la orden en CANCELLED")
}

func TestOrderTransitions_RecibirSinConfirmarFalla(t *testing.T) {
	_, err := document.OrderTransitions.Next(document.OrderPending, document.ActionReceive)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de MaterialReceipt: PENDING -> RECEIVED directo, sin CONFIRMED
// ──────────────────────────────────────────────────────────────────────────────

func TestReceiptTransitions_RecibeDirectoDesdePending(t *testing.T) {
	next, err := document.ReceiptTransitions.Next(document.ReceiptPending, document.ActionReceive)
	require.NoError(t, err)
	assert.Equal(t, document.ReceiptReceived, next)

	// No hay paso de confirmación en recepciones.
	assert.False(t, document.ReceiptTransitions.Allows(document.ReceiptPending, document.ActionConfirm))
}

func TestReceiptTransitions_AccionesPermitidasPorEstado(t *testing.T) {
	assertOnlyAllowed(t, document.ReceiptTransitions, document.ReceiptPending,
		document.ActionReceive, document.ActionCancel)
	assertOnlyAllowed(t, document.ReceiptTransitions, document.ReceiptCancelled,
		document.ActionCancel)
	assertOnlyAllowed(t, document.ReceiptTransitions, document.ReceiptReceived)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de Production: PLANNED -> IN_PROGRESS -> COMPLETED
// ──────────────────────────────────────────────────────────────────────────────

func TestProductionTransitions_CaminoFeliz(t *testing.T) {
	next, err := document.ProductionTransitions.Next(document.ProductionPlanned, document.ActionStart)
	require.NoError(t, err)
	assert.Equal(t, document.ProductionInProgress, next)

	next, err = document.ProductionTransitions.Next(document.ProductionInProgress, document.ActionComplete)
	require.NoError(t, err)
	assert.Equal(t, document.ProductionCompleted, next)
}

func TestProductionTransitions_AccionesPermitidasPorEstado(t *testing.T) {
	assertOnlyAllowed(t, document.ProductionTransitions, document.ProductionPlanned,
		document.ActionStart, document.ActionCancel)
	assertOnlyAllowed(t, document.ProductionTransitions, document.ProductionInProgress,
		document.ActionComplete, document.ActionCancel)
	assertOnlyAllowed(t, document.ProductionTransitions, document.ProductionCancelled,
		document.ActionCancel)
	assertOnlyAllowed(t, document.ProductionTransitions, document.ProductionCompleted)
}

func TestProductionTransitions_CompletarSinIniciarFalla(t *testing.T) {
	_, err := document.ProductionTransitions.Next(document.ProductionPlanned, document.ActionComplete)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ON_HOLD existe en el modelo heredado pero ninguna transición lo alcanza ni
// sale de él.
func TestProductionTransitions_OnHoldAislado(t *testing.T) {
	assertOnlyAllowed(t, document.ProductionTransitions, document.ProductionOnHold)
	for from, actions := range document.ProductionTransitions {
		for action, next := range actions {
			assert.NotEqual(t, document.ProductionOnHold, next,
				"ninguna transición debe producir ON_HOLD (%s desde %s)", action, from)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Mecánica común
// ──────────────────────────────────────────────────────────────────────────────

func TestTransitionTable_ErrorEnvuelveInvalidTransition(t *testing.T) {
	_, err := document.OrderTransitions.Next(document.OrderReceived, document.ActionCancel)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
	assert.Contains(t, err.Error(), string(document.ActionCancel))
	assert.Contains(t, err.Error(), string(document.OrderReceived))
}

func TestTransitionTable_EstadoDesconocidoFalla(t *testing.T) {
	_, err := document.OrderTransitions.Next(document.Status("INVENTADO"), document.ActionConfirm)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

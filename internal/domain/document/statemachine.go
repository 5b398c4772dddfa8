// Package document contiene la infraestructura compartida de los documentos
// con ciclo de vida (Order, MaterialReceipt, Production): la tabla de
// transiciones de estado y el recálculo de totales a partir de sus líneas.
//
// Los tres flujos son estructuralmente similares pero cada uno conserva su
// propia tabla; la mecánica (consultar la tabla, rechazar con
// ErrInvalidTransition) es una sola.
package document

import (
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain"
)

// Status estado de un documento.
type Status string

// Action transición solicitada sobre un documento.
type Action string

// Acciones de los tres flujos.
const (
	ActionConfirm  Action = "CONFIRM"
	ActionReceive  Action = "RECEIVE"
	ActionStart    Action = "START"
	ActionComplete Action = "COMPLETE"
	ActionCancel   Action = "CANCEL"
)

// TransitionTable mapa (estado actual, acción) -> estado siguiente.
type TransitionTable map[Status]map[Action]Status

// Next devuelve el estado resultante de aplicar action desde from.
// Si el par no está en la tabla retorna ErrInvalidTransition.
func (t TransitionTable) Next(from Status, action Action) (Status, error) {
	if actions, ok := t[from]; ok {
		if next, ok := actions[action]; ok {
			return next, nil
		}
	}
	return "", fmt.Errorf("%w: %s desde %s", domain.ErrInvalidTransition, action, from)
}

// Allows indica si la acción es válida desde el estado dado.
func (t TransitionTable) Allows(from Status, action Action) bool {
	_, err := t.Next(from, action)
	return err == nil
}

// Estados de Order.
const (
	OrderPending   Status = "PENDING"
	OrderConfirmed Status = "CONFIRMED"
	OrderReceived  Status = "RECEIVED"
	OrderCancelled Status = "CANCELLED"
)

// Estados de MaterialReceipt. A diferencia de Order no existe un estado
// CONFIRMED intermedio; la recepción se hace directamente desde PENDING.
const (
	ReceiptPending   Status = "PENDING"
	ReceiptReceived  Status = "RECEIVED"
	ReceiptCancelled Status = "CANCELLED"
)

// Estados de Production. ON_HOLD existe en el modelo heredado pero ninguna
// transición lo produce ni lo consume.
const (
	ProductionPlanned    Status = "PLANNED"
	ProductionInProgress Status = "IN_PROGRESS"
	ProductionCompleted  Status = "COMPLETED"
	ProductionCancelled  Status = "CANCELLED"
	ProductionOnHold     Status = "ON_HOLD"
)

// OrderTransitions tabla de Order: PENDING -> CONFIRMED -> RECEIVED (terminal);
// cancelable desde cualquier estado salvo RECEIVED.
var OrderTransitions = TransitionTable{
	OrderPending: {
		ActionConfirm: OrderConfirmed,
		ActionCancel:  OrderCancelled,
	},
	OrderConfirmed: {
		ActionReceive: OrderReceived,
		ActionCancel:  OrderCancelled,
	},
	OrderCancelled: {
		ActionCancel: OrderCancelled,
	},
}

// ReceiptTransitions tabla de MaterialReceipt: PENDING -> RECEIVED (terminal);
// cancelable salvo ya recibido.
var ReceiptTransitions = TransitionTable{
	ReceiptPending: {
		ActionReceive: ReceiptReceived,
		ActionCancel:  ReceiptCancelled,
	},
	ReceiptCancelled: {
		ActionCancel: ReceiptCancelled,
	},
}

// ProductionTransitions tabla de Production: PLANNED -> IN_PROGRESS -> COMPLETED
// (terminal); cancelable salvo ya completada.
var ProductionTransitions = TransitionTable{
	ProductionPlanned: {
		ActionStart:  ProductionInProgress,
		ActionCancel: ProductionCancelled,
	},
	ProductionInProgress: {
		ActionComplete: ProductionCompleted,
		ActionCancel:   ProductionCancelled,
	},
	ProductionCancelled: {
		ActionCancel: ProductionCancelled,
	},
}

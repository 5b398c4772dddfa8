// Package stock implementa la infraestructura compartida por los tres flujos
// de documentos: la cuenta de stock (cantidad mutable de un Item o Product
// con invariante de no-negatividad) y el ledger de transacciones.
package stock

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Account envuelve la cantidad en stock de un Item o Product y ofrece
// incremento/decremento atómicos. Cada operación bloquea la fila
// (SELECT FOR UPDATE) dentro de la transacción en curso, de modo que la
// mutación y el asiento del ledger se observan juntos.
type Account struct {
	repos      *Repos
	entityType entity.EntityType
	id         string
}

// ItemAccount cuenta de stock sobre un Item.
func ItemAccount(r *Repos, itemID string) Account {
	return Account{repos: r, entityType: entity.EntityItems, id: itemID}
}

// ProductAccount cuenta de stock sobre un Product.
func ProductAccount(r *Repos, productID string) Account {
	return Account{repos: r, entityType: entity.EntityProducts, id: productID}
}

// EntityType familia de la cuenta (ITEMS o PRODUCTS).
func (a Account) EntityType() entity.EntityType { return a.entityType }

// ID identificador del Item o Product subyacente.
func (a Account) ID() string { return a.id }

// Current obtiene la cantidad actual bloqueando la fila para update.
// Una cantidad ausente se trata como cero.
func (a Account) Current() (decimal.Decimal, error) {
	switch a.entityType {
	case entity.EntityItems:
		item, err := a.repos.Items.GetForUpdate(a.id)
		if err != nil {
			return decimal.Zero, err
		}
		if item == nil {
			return decimal.Zero, domain.ErrNotFound
		}
		return item.Quantity, nil
	default:
		product, err := a.repos.Products.GetForUpdate(a.id)
		if err != nil {
			return decimal.Zero, err
		}
		if product == nil {
			return decimal.Zero, domain.ErrNotFound
		}
		return product.Quantity, nil
	}
}

// Increase suma amount (positivo, 3 decimales) a la cantidad y persiste.
// Nunca falla por límite superior.
func (a Account) Increase(amount decimal.Decimal) (decimal.Decimal, error) {
	current, err := a.Current()
	if err != nil {
		return decimal.Zero, err
	}
	newQty := current.Add(amount)
	if err := a.persist(newQty); err != nil {
		return decimal.Zero, err
	}
	return newQty, nil
}

// Decrease resta amount de la cantidad y persiste. Si la cantidad actual es
// menor que amount falla con ErrInsufficientStock y no escribe nada.
func (a Account) Decrease(amount decimal.Decimal) (decimal.Decimal, error) {
	current, err := a.Current()
	if err != nil {
		return decimal.Zero, err
	}
	if current.LessThan(amount) {
		return decimal.Zero, domain.ErrInsufficientStock
	}
	newQty := current.Sub(amount)
	if err := a.persist(newQty); err != nil {
		return decimal.Zero, err
	}
	return newQty, nil
}

func (a Account) persist(quantity decimal.Decimal) error {
	switch a.entityType {
	case entity.EntityItems:
		if err := a.repos.Items.UpdateQuantity(a.id, quantity); err != nil {
			return fmt.Errorf("actualizar stock item: %w", err)
		}
	default:
		if err := a.repos.Products.UpdateQuantity(a.id, quantity); err != nil {
			return fmt.Errorf("actualizar stock product: %w", err)
		}
	}
	return nil
}

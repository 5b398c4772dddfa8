package refnum

import (
	"fmt"
	"time"
)

// Prefijos de numeración de documentos y transacciones.
const (
	PrefixOrder       = "ORD"
	PrefixReceipt     = "REC"
	PrefixProduction  = "PROD"
	PrefixTransaction = "TXN"
)

// Clock abstrae la fuente de tiempo para que los casos de uso sean testeables.
type Clock interface {
	Now() time.Time
}

// SystemClock implementación de Clock sobre time.Now.
type SystemClock struct{}

// Now devuelve la hora actual del sistema.
func (SystemClock) Now() time.Time { return time.Now() }

// Generator genera números de documento/referencia legibles.
// El formato heredado es `<PREFIX>-<epoch millis>`; bajo alta concurrencia puede
// colisionar (limitación conocida), por eso queda detrás de una interfaz.
type Generator interface {
	Next(prefix string) string
}

// MillisGenerator genera `<PREFIX>-<epoch millis>` usando el Clock inyectado.
type MillisGenerator struct {
	Clock Clock
}

// NewMillisGenerator construye el generador con el reloj del sistema si clock es nil.
func NewMillisGenerator(clock Clock) MillisGenerator {
	if clock == nil {
		clock = SystemClock{}
	}
	return MillisGenerator{Clock: clock}
}

// Next devuelve el siguiente número con el prefijo dado.
func (g MillisGenerator) Next(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, g.Clock.Now().UnixMilli())
}

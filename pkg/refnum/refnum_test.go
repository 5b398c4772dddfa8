package refnum_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/pkg/refnum"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func TestMillisGenerator_FormatoPrefijoMillis(t *testing.T) {
	at := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	gen := refnum.NewMillisGenerator(fixedClock{t: at})

	got := gen.Next(refnum.PrefixOrder)
	assert.Equal(t, fmt.Sprintf("ORD-%d", at.UnixMilli()), got)
}

func TestMillisGenerator_UsaElPrefijoDado(t *testing.T) {
	gen := refnum.NewMillisGenerator(fixedClock{t: time.Unix(1, 0)})

	assert.True(t, strings.HasPrefix(gen.Next(refnum.PrefixReceipt), "REC-"))
	assert.True(t, strings.HasPrefix(gen.Next(refnum.PrefixProduction), "PROD-"))
	assert.True(t, strings.HasPrefix(gen.Next(refnum.PrefixTransaction), "TXN-"))
}

func TestNewMillisGenerator_NilClockUsaReloj(t *testing.T) {
	gen := refnum.NewMillisGenerator(nil)
	got := gen.Next(refnum.PrefixOrder)
	assert.True(t, strings.HasPrefix(got, "ORD-"), "fue %q", got)
}

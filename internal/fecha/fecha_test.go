package fecha_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntoventa/internal/fecha"
)

func TestClaveDiaZonaNegocio(t *testing.T) {
	stgo, err := fecha.Cargar("")
	require.NoError(t, err)

	// 2025-06-16 01:30 UTC is still 2025-06-15 evening in Santiago (UTC-4).
	instante := time.Date(2025, 6, 16, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-15", fecha.ClaveDia(instante, stgo))

	// Midday UTC is the same calendar day in Santiago.
	instante = time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-16", fecha.ClaveDia(instante, stgo))
}

func TestClaveDiaIndependienteDeZonaLocal(t *testing.T) {
	stgo, err := fecha.Cargar("America/Santiago")
	require.NoError(t, err)

	tokio, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// Same instant expressed in another wall clock yields the same key.
	instante := time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)
	assert.Equal(t,
		fecha.ClaveDia(instante, stgo),
		fecha.ClaveDia(instante.In(tokio), stgo),
	)
}

func TestClaveDiaEstable(t *testing.T) {
	stgo, err := fecha.Cargar("America/Santiago")
	require.NoError(t, err)

	instante := time.Date(2025, 3, 8, 18, 45, 12, 0, time.UTC)
	primera := fecha.ClaveDia(instante, stgo)
	for i := 0; i < 10; i++ {
		assert.Equal(t, primera, fecha.ClaveDia(instante, stgo))
	}
}

func TestCargarZonaInvalida(t *testing.T) {
	_, err := fecha.Cargar("America/NoExiste")
	assert.Error(t, err)
}

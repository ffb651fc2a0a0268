package slug

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canonical = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ya normalizado", input: "parqueadero-central", want: "parqueadero-central"},
		{name: "minúsculas y espacios", input: "Parqueadero Central", want: "parqueadero-central"},
		{name: "diacríticos", input: "Café Ñandú Estación", want: "cafe-nandu-estacion"},
		{name: "ordinal compatible", input: "Sede Nº 2", want: "sede-no-2"},
		{name: "secuencias de separadores", input: "Lote -- Norte__&__Sur", want: "lote-norte-sur"},
		{name: "recorta bordes", input: "  ¡Bienvenidos!  ", want: "bienvenidos"},
		{name: "vacío", input: "", want: ""},
		{name: "solo símbolos", input: "*** ###", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Make(tt.input)
			assert.Equal(t, tt.want, got)
			if got != "" {
				require.Regexp(t, canonical, got)
			}
		})
	}
}

func TestMake_Determinista(t *testing.T) {
	in := "Parqueadero Ñuñoa 24h"
	assert.Equal(t, Make(in), Make(in))
	assert.Equal(t, Make(in), Make(Make(in)), "aplicar Make sobre un slug no debe cambiarlo")
}

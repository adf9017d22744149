package jsonio

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/jsonio/pkg/scan"
)

type vector struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Error  string `yaml:"error"`
}

func via[T any](in []byte) ([]byte, error) {
	var v T
	if err := Unmarshal(in, &v); err != nil {
		return nil, err
	}
	return Marshal(&v)
}

func viaSlice[E any](in []byte) ([]byte, error) {
	var v []E
	if err := UnmarshalSlice(in, &v); err != nil {
		return nil, err
	}
	return MarshalSlice(v)
}

var vectorTypes = map[string]func([]byte) ([]byte, error){
	"string":  via[string],
	"uint8":   via[uint8],
	"int16":   via[int16],
	"bool":    via[bool],
	"hex":     via[[]byte],
	"strings": viaSlice[string],
	"uints":   viaSlice[uint],
	"point":   via[point],
	"color":   via[color],
}

func TestGoldenVectors(t *testing.T) {
	raw, err := os.ReadFile("testdata/vectors.yaml")
	require.NoError(t, err)
	var vectors []vector
	require.NoError(t, yaml.Unmarshal(raw, &vectors))
	require.NotEmpty(t, vectors)

	for _, v := range vectors {
		t.Run(v.Name, func(t *testing.T) {
			fn, ok := vectorTypes[v.Type]
			require.True(t, ok, "unknown type %q", v.Type)
			out, err := fn([]byte(v.Input))
			if v.Error != "" {
				require.Error(t, err)
				assert.Equal(t, v.Error, scan.KindOf(err).String(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, v.Output, string(out))
		})
	}
}

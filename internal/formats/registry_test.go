package formats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundleview/internal/model"
)

func TestRegistryDispatch(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		file   string
		parser string
		ok     bool
	}{
		{file: "stats.json", parser: "bundler-stats", ok: true},
		{file: "main.js.map", parser: "source-map", ok: true},
		{file: "vendor.js", parser: "raw-script", ok: true},
		{file: "app.tsx", parser: "raw-script", ok: true},
		{file: "site.css", ok: false},
		{file: "notes.txt", ok: false},
	}

	for _, tt := range tests {
		parser, ok := registry.ParserForFile(tt.file)
		require.Equal(t, tt.ok, ok, tt.file)
		if ok {
			assert.Equal(t, tt.parser, parser.Name(), tt.file)
		}
	}
}

func TestRegistrySkipsStyleAndOther(t *testing.T) {
	registry := NewRegistry()

	for _, name := range []string{"site.css", "logo.png", "LICENSE"} {
		records, err := registry.Parse(model.InputFile{Name: name, Content: []byte("body{}")})
		assert.True(t, errors.Is(err, ErrSkipped), name)
		assert.Empty(t, records.Modules)
		assert.Empty(t, records.Chunks)
	}
}

func TestRegistryKinds(t *testing.T) {
	kinds := NewRegistry().Kinds()
	require.Len(t, kinds, 5)

	assert.Equal(t, model.KindScript, kinds[0].Kind)
	assert.Equal(t, []string{".js", ".jsx", ".ts", ".tsx"}, kinds[0].Extensions)
	assert.Equal(t, "raw-script", kinds[0].Parser)

	assert.Equal(t, model.KindStyle, kinds[1].Kind)
	assert.Empty(t, kinds[1].Parser)

	assert.Equal(t, model.KindOther, kinds[4].Kind)
	assert.Empty(t, kinds[4].Extensions)
}

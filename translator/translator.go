package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator *gst.ShaderTranslator
	initErr    error
	once       sync.Once
)

// GetTranslator returns the process-wide shader translator, creating it on
// first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	once.Do(func() {
		translator, initErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, initErr
}

// Translate converts WebGL2 GLSL of the given stage ("vertex" or "fragment")
// into desktop GLSL 4.10. It returns the code and the uniforms keyed by their
// source names.
func Translate(source, stage string) (string, map[string]gst.ShaderVariable, error) {
	t, err := GetTranslator()
	if err != nil {
		return "", nil, fmt.Errorf("shader translator unavailable: %w", err)
	}
	out, err := t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return "", nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	return out.Code, out.Variables, nil
}

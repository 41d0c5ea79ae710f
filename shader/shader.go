package shader

import (
	"embed"
	"fmt"
	"io/fs"
)

// ────────────────────────────────── Sources ─────────────────────────────────────

// The built-in programs are written as WebGL2 GLSL and translated for the
// host context when compiled.
//
//go:embed glsl
var sources embed.FS

const (
	VertexPath            = "texture.vert"
	FragmentPath          = "texture.frag"
	GrayscaleFragmentPath = "texture_bw.frag"
	PixelateFragmentPath  = "texture_pixelate.frag"
)

// Program names the vertex and fragment source files of one shader program.
type Program struct {
	Vertex   string
	Fragment string
}

func (p Program) String() string {
	return p.Vertex + "+" + p.Fragment
}

// ForFilters selects the program for the filters active when GPU mode is
// entered. Grayscale wins over pixelate; blur has no GPU variant.
func ForFilters(grayscale, pixelate bool) Program {
	switch {
	case grayscale:
		return Program{Vertex: VertexPath, Fragment: GrayscaleFragmentPath}
	case pixelate:
		return Program{Vertex: VertexPath, Fragment: PixelateFragmentPath}
	default:
		return Program{Vertex: VertexPath, Fragment: FragmentPath}
	}
}

// ────────────────────────────────── Loading ─────────────────────────────────────

// Sources returns the built-in shader files.
func Sources() fs.FS {
	sub, err := fs.Sub(sources, "glsl")
	if err != nil {
		panic(err)
	}
	return sub
}

// Load reads the source at path from fsys.
func Load(fsys fs.FS, path string) (string, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	return string(b), nil
}

package compositor

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/richinsley/dualview/transform"
	"github.com/richinsley/dualview/viewer"
)

const (
	blurKernel     = 15
	cannyLow       = 100
	cannyHigh      = 200
	pixelateFactor = 0.1
)

// ApplyFilters runs the enabled filters over src in the fixed order
// grayscale, blur, edge, pixelate. The caller owns the returned Mat.
func ApplyFilters(src gocv.Mat, flags viewer.FilterFlags) (gocv.Mat, error) {
	flags = flags.Effective()
	out := src.Clone()

	step := func(name string, fn func(dst *gocv.Mat) error) error {
		dst := gocv.NewMat()
		if err := fn(&dst); err != nil {
			dst.Close()
			return fmt.Errorf("%s filter: %w", name, err)
		}
		out.Close()
		out = dst
		return nil
	}

	var err error
	if flags.Grayscale && out.Channels() == 3 {
		err = step("grayscale", func(dst *gocv.Mat) error {
			return gocv.CvtColor(out, dst, gocv.ColorBGRToGray)
		})
	}
	if err == nil && flags.Blur {
		err = step("blur", func(dst *gocv.Mat) error {
			return gocv.GaussianBlur(out, dst, image.Pt(blurKernel, blurKernel), 0, 0, gocv.BorderDefault)
		})
	}
	if err == nil && flags.Edge {
		err = step("edge", func(dst *gocv.Mat) error {
			gocv.Canny(out, dst, cannyLow, cannyHigh)
			return nil
		})
	}
	if err == nil && flags.Pixelate {
		err = step("pixelate", func(dst *gocv.Mat) error {
			return pixelate(out, dst)
		})
	}
	if err != nil {
		out.Close()
		return gocv.NewMat(), err
	}
	return out, nil
}

// pixelate shrinks src to a tenth and scales it back with nearest
// neighbour, leaving blocks of about 10x10 pixels.
func pixelate(src gocv.Mat, dst *gocv.Mat) error {
	small := gocv.NewMat()
	defer small.Close()

	w := max(1, int(float64(src.Cols())*pixelateFactor))
	h := max(1, int(float64(src.Rows())*pixelateFactor))
	if err := gocv.Resize(src, &small, image.Pt(w, h), 0, 0, gocv.InterpolationLinear); err != nil {
		return err
	}
	return gocv.Resize(small, dst, image.Pt(src.Cols(), src.Rows()), 0, 0, gocv.InterpolationNearestNeighbor)
}

// affineMat copies m into the 2x3 CV_64F matrix WarpAffine expects.
func affineMat(m transform.Affine) gocv.Mat {
	mat := gocv.NewMatWithSize(2, 3, gocv.MatTypeCV64F)
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			mat.SetDoubleAt(r, c, m[r][c])
		}
	}
	return mat
}

// Warp maps src through m into a Mat of the same size. Uncovered pixels are
// black.
func Warp(src gocv.Mat, m transform.Affine) gocv.Mat {
	mat := affineMat(m)
	defer mat.Close()

	dst := gocv.NewMat()
	gocv.WarpAffine(src, &dst, mat, image.Pt(src.Cols(), src.Rows()))
	return dst
}

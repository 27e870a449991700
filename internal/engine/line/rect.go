package line

import "github.com/dshills/textbox/internal/geom"

// Rects returns the screen rectangle of each line, positioning the
// wrapped block within bounds according to the alignments. Each line's
// rectangle is as wide as its measured text and fontSize tall;
// consecutive lines are separated by spacing.
func Rects(infos []Info, fontSize float64, bounds geom.Rect, xAlign, yAlign geom.Align, spacing float64) []geom.Rect {
	if len(infos) == 0 {
		return nil
	}
	total := Height(len(infos), fontSize, spacing)
	block := geom.NewRange(0, total).AlignTo(yAlign, bounds.YRange())

	rects := make([]geom.Rect, len(infos))
	for i, in := range infos {
		x := geom.NewRange(0, in.Width).AlignTo(xAlign, bounds.XRange())
		y := block.Start + float64(i)*(fontSize+spacing)
		rects[i] = geom.Rect{X: x.Start, Y: y, W: in.Width, H: fontSize}
	}
	return rects
}

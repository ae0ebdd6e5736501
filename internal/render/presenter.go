package render

import "github.com/hajimehoshi/ebiten/v2"

// Presenter uploads a Surface to an Ebitengine screen each frame.
type Presenter struct {
	img  *ebiten.Image
	rgba []byte
}

// NewPresenter creates a presenter for a width×height surface.
func NewPresenter(width, height int) *Presenter {
	return &Presenter{
		img:  ebiten.NewImage(width, height),
		rgba: make([]byte, width*height*4),
	}
}

// Draw copies the surface into the presenter's image and blits it to screen.
func (p *Presenter) Draw(screen *ebiten.Image, s *Surface) {
	p.rgba = s.ExpandRGBA(p.rgba)
	p.img.WritePixels(p.rgba)

	var op ebiten.DrawImageOptions
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	if sw != s.Width || sh != s.Height {
		op.GeoM.Scale(float64(sw)/float64(s.Width), float64(sh)/float64(s.Height))
	}
	screen.DrawImage(p.img, &op)
}

package services

// PageSize is a physical page size in millimetres
type PageSize struct {
	Width  float64
	Height float64
}

// Aspect returns width / height
func (p PageSize) Aspect() float64 {
	return p.Width / p.Height
}

// ContractPage is the output page and the renderer's surface size: A3 landscape.
var ContractPage = PageSize{Width: 420, Height: 297}

// Fit branches reported by FitToPage
const (
	FitWidth  = "width"
	FitHeight = "height"
)

// Placement positions a captured bitmap on a page, in page units
type Placement struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Branch string // which dimension was fitted first
}

// FitToPage scales a width x height pixel bitmap to fit inside page while
// keeping its aspect ratio, and centers it. The result never exceeds the page.
func FitToPage(width, height int, page PageSize) Placement {
	if width <= 0 || height <= 0 {
		return Placement{X: page.Width / 2, Y: page.Height / 2}
	}

	canvasAspect := float64(width) / float64(height)
	var p Placement

	if canvasAspect > page.Aspect() {
		p.Branch = FitWidth
		p.Width = page.Width
		p.Height = page.Width / canvasAspect
		if p.Height > page.Height {
			p.Height = page.Height
			p.Width = page.Height * canvasAspect
		}
	} else {
		p.Branch = FitHeight
		p.Height = page.Height
		p.Width = page.Height * canvasAspect
		if p.Width > page.Width {
			p.Width = page.Width
			p.Height = page.Width / canvasAspect
		}
	}

	// Floating point can leave either side a hair over the page.
	if p.Width > page.Width {
		p.Width = page.Width
		p.Height = p.Width / canvasAspect
	}
	if p.Height > page.Height {
		p.Height = page.Height
		p.Width = p.Height * canvasAspect
	}

	p.X = (page.Width - p.Width) / 2
	p.Y = (page.Height - p.Height) / 2
	return p
}

// SlicePages lays a bitmap out at full page width and returns one placement
// per page. Each page shows the same image shifted up by one page height, so
// the page boundary clips it into consecutive vertical slices.
func SlicePages(width, height int, page PageSize) []Placement {
	if width <= 0 || height <= 0 {
		return nil
	}

	imgWidth := page.Width
	imgHeight := float64(height) * page.Width / float64(width)

	placements := []Placement{{Width: imgWidth, Height: imgHeight, Branch: FitWidth}}
	heightLeft := imgHeight - page.Height
	for heightLeft > sliceTolerance {
		placements = append(placements, Placement{
			Y:      heightLeft - imgHeight,
			Width:  imgWidth,
			Height: imgHeight,
			Branch: FitWidth,
		})
		heightLeft -= page.Height
	}
	return placements
}

// sliceTolerance keeps rounding noise from producing an empty trailing page
const sliceTolerance = 1e-6

package common

import (
	"github.com/charmbracelet/scroller/internal/config"
	"github.com/charmbracelet/scroller/internal/scroller"
	"github.com/charmbracelet/scroller/internal/ui/styles"
	uv "github.com/charmbracelet/ultraviolet"
)

// Common is shared by every component of the UI.
type Common struct {
	Config *config.Config
	Styles styles.Styles
}

// DefaultCommon returns a [Common] for cfg with the default styles.
func DefaultCommon(cfg *config.Config) *Common {
	return &Common{
		Config: cfg,
		Styles: styles.DefaultStyles(),
	}
}

// ItemSize returns the size of one list item in cells.
func (c *Common) ItemSize() scroller.Vec {
	return scroller.Vec{
		X: float64(c.Config.Item.Width),
		Y: float64(c.Config.Item.Height),
	}
}

// CenterRect returns a width by height rectangle centered in area.
func CenterRect(area uv.Rectangle, width, height int) uv.Rectangle {
	x := area.Min.X + (area.Dx()-width)/2
	y := area.Min.Y + (area.Dy()-height)/2
	return uv.Rect(x, y, width, height)
}

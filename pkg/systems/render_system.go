package systems

import (
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/config"
	"github.com/gonewx/trainmatch/pkg/ecs"
	"github.com/gonewx/trainmatch/pkg/theme"
	"github.com/gonewx/trainmatch/pkg/utils"
)

// RenderSystem draws everything procedurally with the vector package; the
// game ships no image assets. Scenes call the Draw* methods in their own
// order.
type RenderSystem struct {
	em      *ecs.EntityManager
	screenW float64
	screenH float64

	labelFace *text.GoTextFace
	titleFace *text.GoTextFace
	hudFace   *text.GoTextFace
}

// NewRenderSystem creates a render system over the given entity manager.
func NewRenderSystem(em *ecs.EntityManager, screenW, screenH float64) *RenderSystem {
	rs := &RenderSystem{em: em, screenW: screenW, screenH: screenH}

	var err error
	if rs.labelFace, err = utils.LoadFace(20, false); err != nil {
		log.Printf("[RenderSystem] failed to load label face: %v", err)
	}
	if rs.titleFace, err = utils.LoadFace(48, true); err != nil {
		log.Printf("[RenderSystem] failed to load title face: %v", err)
	}
	if rs.hudFace, err = utils.LoadFace(18, false); err != nil {
		log.Printf("[RenderSystem] failed to load HUD face: %v", err)
	}
	return rs
}

// DrawBackground fills the screen with the theme background.
func (rs *RenderSystem) DrawBackground(screen *ebiten.Image, pal theme.Palette) {
	screen.Fill(pal.Background)
}

// DrawScenery draws the parallax layers. Stars only show in dark mode.
func (rs *RenderSystem) DrawScenery(screen *ebiten.Image, pal theme.Palette, dark bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.SceneryComponent, *components.PositionComponent](rs.em) {
		sc, _ := ecs.GetComponent[*components.SceneryComponent](rs.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](rs.em, id)

		switch sc.Kind {
		case components.SceneryStar:
			if !dark {
				continue
			}
			g := uint8(sc.Glow)
			r := float32(1.5 * sc.Scale)
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r,
				color.RGBA{g, g, g, 255}, true)
		case components.SceneryCloud:
			rs.drawCloud(screen, pos.X, pos.Y, sc.Scale, dark)
		case components.SceneryTree:
			rs.drawTree(screen, pos.X, pos.Y, sc.Scale, pal)
		}
	}
}

func (rs *RenderSystem) drawCloud(screen *ebiten.Image, x, y, scale float64, dark bool) {
	clr := color.RGBA{255, 255, 255, 220}
	if dark {
		clr = color.RGBA{90, 90, 100, 220}
	}
	r := float32(18 * scale)
	cx, cy := float32(x), float32(y)
	vector.DrawFilledCircle(screen, cx, cy, r, clr, true)
	vector.DrawFilledCircle(screen, cx-r*0.9, cy+r*0.3, r*0.75, clr, true)
	vector.DrawFilledCircle(screen, cx+r*0.9, cy+r*0.3, r*0.75, clr, true)
}

func (rs *RenderSystem) drawTree(screen *ebiten.Image, x, y, scale float64, pal theme.Palette) {
	trunkW := float32(8 * scale)
	trunkH := float32(30 * scale)
	vector.DrawFilledRect(screen, float32(x)-trunkW/2, float32(y), trunkW, trunkH,
		color.RGBA{121, 85, 72, 255}, true)
	crownR := float32(22 * scale)
	vector.DrawFilledCircle(screen, float32(x), float32(y)-crownR*0.4, crownR, pal.Secondary, true)
}

// DrawTrack draws the track bed, ties and the two rails.
func (rs *RenderSystem) DrawTrack(screen *ebiten.Image, pal theme.Palette) {
	bedY := float32(config.TrackY + 15)
	vector.DrawFilledRect(screen, 0, bedY, float32(rs.screenW), config.TrackHeight, pal.Track, false)

	for x := 0.0; x < rs.screenW; x += config.TieSpacing {
		vector.DrawFilledRect(screen, float32(x), bedY, 8, config.TrackHeight, pal.Rail, false)
	}

	vector.DrawFilledRect(screen, 0, bedY+6, float32(rs.screenW), config.RailThickness, pal.Rail, false)
	vector.DrawFilledRect(screen, 0, bedY+config.TrackHeight-11, float32(rs.screenW), config.RailThickness, pal.Rail, false)
}

// DrawTrains draws every train: body, cab, chimney, windows and wheels.
// In dark mode a soft glow outlines the body so colors stay readable.
func (rs *RenderSystem) DrawTrains(screen *ebiten.Image, tcfg config.TrainConfig, pal theme.Palette, dark bool) {
	ids := ecs.GetEntitiesWith2[*components.TrainComponent, *components.PositionComponent](rs.em)
	// Draw back-to-front so the head of the queue lands on top.
	sort.Slice(ids, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.TrainComponent](rs.em, ids[i])
		b, _ := ecs.GetComponent[*components.TrainComponent](rs.em, ids[j])
		return a.Slot > b.Slot
	})

	for _, id := range ids {
		tr, _ := ecs.GetComponent[*components.TrainComponent](rs.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](rs.em, id)
		rs.drawTrain(screen, tr, pos, tcfg, pal, dark)
	}
}

func (rs *RenderSystem) drawTrain(screen *ebiten.Image, tr *components.TrainComponent, pos *components.PositionComponent, tcfg config.TrainConfig, pal theme.Palette, dark bool) {
	w := float32(tcfg.Width)
	h := float32(tcfg.Height)
	x := float32(pos.X) - w/2
	y := float32(pos.Y) - h/2
	body := tr.Color.RGBA()

	if dark {
		glow := body
		glow.A = 70
		vector.DrawFilledRect(screen, x-3, y-3, w+6, h+6, glow, true)
	}

	// Body and cab.
	vector.DrawFilledRect(screen, x, y, w, h, body, true)
	cabW := w * 0.3
	vector.DrawFilledRect(screen, x, y-h*0.4, cabW, h*0.4, body, true)

	// Chimney on the cab roof.
	vector.DrawFilledRect(screen, x+cabW*0.3, y-h*0.75, w*0.1, h*0.35, pal.Rail, true)

	// Windows.
	winW := w * 0.18
	winH := h * 0.4
	winY := y + h*0.15
	vector.DrawFilledRect(screen, x+w*0.42, winY, winW, winH, pal.Button, true)
	vector.DrawFilledRect(screen, x+w*0.68, winY, winW, winH, pal.Button, true)

	// Wheels.
	wr := float32(tcfg.WheelRadius)
	wheelY := y + h + wr*0.4
	wheel := color.RGBA{40, 40, 40, 255}
	vector.DrawFilledCircle(screen, x+w*0.25, wheelY, wr, wheel, true)
	vector.DrawFilledCircle(screen, x+w*0.75, wheelY, wr, wheel, true)
}

// DrawFog covers the track band with translucent banks of grey so the
// queue colors are harder to read. Endless rounds switch it on.
func (rs *RenderSystem) DrawFog(screen *ebiten.Image) {
	bandY := float32(config.TrackY - 60)
	bandH := float32(config.TrackHeight + 120)
	vector.DrawFilledRect(screen, 0, bandY, float32(rs.screenW), bandH,
		color.RGBA{200, 200, 205, 90}, false)

	for x := 0.0; x < rs.screenW; x += 110 {
		cx := float32(x + 55)
		cy := bandY + bandH*0.5
		vector.DrawFilledCircle(screen, cx, cy, 48, color.RGBA{210, 210, 215, 60}, true)
	}
}

// DrawSelectors draws the clickable color swatches as small train fronts.
func (rs *RenderSystem) DrawSelectors(screen *ebiten.Image, pal theme.Palette) {
	for _, id := range ecs.GetEntitiesWith2[*components.SelectorComponent, *components.PositionComponent](rs.em) {
		sel, _ := ecs.GetComponent[*components.SelectorComponent](rs.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](rs.em, id)

		size := float32(sel.Size)
		x := float32(pos.X) - size/2
		y := float32(pos.Y) - size/2
		if sel.Pressed {
			y += 2
		}

		// Shadow, then the swatch.
		vector.DrawFilledRect(screen, x+3, y+3, size, size, pal.Shadow, true)
		vector.DrawFilledRect(screen, x, y, size, size, sel.Color.RGBA(), true)
		if sel.Hovered {
			vector.StrokeRect(screen, x-2, y-2, size+4, size+4, 3, pal.Text, true)
		}
	}
}

// DrawParticles draws every live particle with its faded alpha.
func (rs *RenderSystem) DrawParticles(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](rs.em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](rs.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](rs.em, id)

		clr := p.Color
		clr.A = uint8(p.Alpha * 255)
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(p.Size/2), clr, true)
	}
}

// DrawButtons draws every button with its shadow, hover lift and label.
func (rs *RenderSystem) DrawButtons(screen *ebiten.Image, pal theme.Palette) {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](rs.em) {
		btn, _ := ecs.GetComponent[*components.ButtonComponent](rs.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](rs.em, id)

		y := pos.Y + BobOffset(btn)
		lift := 0.0
		switch btn.State {
		case components.ButtonHovered:
			lift = -2
		case components.ButtonPressed:
			lift = 2
		}

		x0 := float32(pos.X - btn.Width/2)
		y0 := float32(y - btn.Height/2 + lift)
		w := float32(btn.Width)
		h := float32(btn.Height)

		vector.DrawFilledRect(screen, x0+4, y0+4, w, h, pal.Shadow, true)
		fill := pal.Button
		if btn.State == components.ButtonHovered {
			fill = pal.Primary
		}
		vector.DrawFilledRect(screen, x0, y0, w, h, fill, true)
		vector.StrokeRect(screen, x0, y0, w, h, 2, pal.Primary, true)

		labelColor := pal.Text
		if btn.State == components.ButtonHovered {
			labelColor = pal.Button
		}
		face := rs.labelFace
		if btn.FontSize > 0 {
			if f, err := utils.LoadFace(btn.FontSize, false); err == nil {
				face = f
			}
		}
		rs.drawCenteredText(screen, btn.Label, face, pos.X, y+lift, labelColor)
	}
}

// DrawMessages draws the floating messages with a lifetime-based fade.
func (rs *RenderSystem) DrawMessages(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.MessageComponent, *components.PositionComponent](rs.em) {
		msg, _ := ecs.GetComponent[*components.MessageComponent](rs.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](rs.em, id)

		clr := msg.Color
		if msg.Total > 0 {
			clr.A = uint8(utils.Clamp(msg.Lifetime/msg.Total, 0, 1) * 255)
		}
		face := rs.labelFace
		if msg.FontSize > 0 {
			if f, err := utils.LoadFace(msg.FontSize, true); err == nil {
				face = f
			}
		}
		rs.drawCenteredText(screen, msg.Text, face, pos.X, pos.Y, clr)
	}
}

// DrawTitle draws the big centered title text.
func (rs *RenderSystem) DrawTitle(screen *ebiten.Image, s string, y float64, clr color.RGBA) {
	rs.drawCenteredText(screen, s, rs.titleFace, rs.screenW/2, y, clr)
}

// DrawHUDText draws left-aligned HUD text at (x, y).
func (rs *RenderSystem) DrawHUDText(screen *ebiten.Image, s string, x, y float64, clr color.RGBA) {
	if rs.hudFace == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, rs.hudFace, op)
}

// DrawCenteredText draws s centered on (x, y) at the given size.
func (rs *RenderSystem) DrawCenteredText(screen *ebiten.Image, s string, x, y, size float64, bold bool, clr color.RGBA) {
	face, err := utils.LoadFace(size, bold)
	if err != nil {
		return
	}
	rs.drawCenteredText(screen, s, face, x, y, clr)
}

func (rs *RenderSystem) drawCenteredText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.RGBA) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// ScreenSize returns the logical screen size the system renders at.
func (rs *RenderSystem) ScreenSize() (float64, float64) {
	return rs.screenW, rs.screenH
}

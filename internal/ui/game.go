package ui

import (
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/temidaradev/esset/v2"

	"cryptoview/internal/chart"
	"cryptoview/internal/market"
)

// Control is what the game needs from the poll loop: a way to request an
// immediate fetch cycle for a new selection.
type Control interface {
	Refresh(sel market.Selection)
}

var periodKeys = []ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
	ebiten.KeyDigit6,
}

// layoutRects are the clickable regions computed during Draw and hit
// against on the next Update.
type layoutRects struct {
	coin    image.Rectangle
	delta   image.Rectangle
	periods []image.Rectangle
	chart   image.Rectangle
}

// Game owns all mutable display state. It is the sole writer: the poll
// loop hands results to ApplyUpdate, everything else happens on the
// game loop.
type Game struct {
	theme       Theme
	fontFace    text.Face
	deviceScale float64
	lineHeight  float64
	control     Control

	mu        sync.Mutex
	sel       market.Selection
	value     float64
	hasValue  bool
	history   market.ValueHistory
	dataDirty bool

	showPercent bool

	scaled         []chart.Point
	transition     *chart.Transition
	chartW, chartH float64

	layout layoutRects

	solidColorImage *ebiten.Image
}

func NewGame(theme Theme, fontFace text.Face, deviceScale, lineHeight float64, sel market.Selection, control Control) *Game {
	return &Game{
		theme:       theme,
		fontFace:    fontFace,
		deviceScale: deviceScale,
		lineHeight:  lineHeight,
		sel:         sel,
		control:     control,
	}
}

// ApplyUpdate installs the result of a settled fetch cycle. A result for
// a selection the user has already moved away from is ignored.
func (g *Game) ApplyUpdate(sel market.Selection, value float64, history market.ValueHistory) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if sel != g.sel {
		return
	}
	g.value = value
	g.hasValue = true
	g.history = history
	g.dataDirty = true
}

// changeSelection discards the loaded series and asks the poll loop for
// the new one.
func (g *Game) changeSelection(sel market.Selection) {
	g.mu.Lock()
	g.sel = sel
	g.value = 0
	g.hasValue = false
	g.history = nil
	g.scaled = nil
	g.transition = nil
	g.dataDirty = false
	g.mu.Unlock()

	g.control.Refresh(sel)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.mu.Lock()
		next := g.sel.NextCoin()
		g.mu.Unlock()
		g.changeSelection(next)
	}

	for i, key := range periodKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.mu.Lock()
			sel := g.sel
			g.mu.Unlock()
			if p := market.Periods[i]; p != sel.Period {
				g.changeSelection(sel.WithPeriod(p))
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.mu.Lock()
		g.showPercent = !g.showPercent
		g.mu.Unlock()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(ebiten.CursorPosition())
	}

	return nil
}

func (g *Game) handleClick(mx, my int) {
	g.mu.Lock()
	layout := g.layout
	sel := g.sel
	g.mu.Unlock()

	if ptIn(layout.coin, mx, my) {
		g.changeSelection(sel.NextCoin())
		return
	}
	if ptIn(layout.delta, mx, my) {
		g.mu.Lock()
		g.showPercent = !g.showPercent
		g.mu.Unlock()
		return
	}
	for i, r := range layout.periods {
		if ptIn(r, mx, my) {
			if p := market.Periods[i]; p != sel.Period {
				g.changeSelection(sel.WithPeriod(p))
			}
			return
		}
	}
}

func ptIn(r image.Rectangle, x, y int) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

func (g *Game) initSolidColorImage() {
	if g.solidColorImage == nil {
		g.solidColorImage = ebiten.NewImage(1, 1)
		g.solidColorImage.Fill(color.White)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.initSolidColorImage()
	screen.Fill(g.theme.Background)

	screenWidth, screenHeight := screen.Size()
	s := g.deviceScale
	margin := 16.0 * s
	now := time.Now()

	g.mu.Lock()
	defer g.mu.Unlock()

	coin := g.sel.Coin()
	accent := g.theme.AccentFor(coin.Symbol)

	// header row: coin name left, delta readout right
	headerY := margin
	coinLabel := fmt.Sprintf("%s (%s)", coin.Name, coin.Symbol)
	coinW, coinH := text.Measure(coinLabel, g.fontFace, -1)
	esset.DrawText(screen, coinLabel, 0, margin, headerY, g.fontFace, g.theme.Text)
	g.layout.coin = image.Rect(int(margin), int(headerY), int(margin+coinW), int(headerY+coinH))

	deltaLabel, deltaColor := g.deltaReadout()
	deltaW, deltaH := text.Measure(deltaLabel, g.fontFace, -1)
	deltaX := float64(screenWidth) - margin - deltaW
	esset.DrawText(screen, deltaLabel, 0, deltaX, headerY, g.fontFace, deltaColor)
	g.layout.delta = image.Rect(int(deltaX), int(headerY), int(deltaX+deltaW), int(headerY+deltaH))

	// value row
	valueY := headerY + g.lineHeight
	valueLabel := "Loading..."
	valueColor := g.theme.MutedText
	if g.hasValue {
		valueLabel = market.FormatSigned(g.value, "$", true, false)
		valueColor = g.theme.Text
	}
	esset.DrawText(screen, valueLabel, 0, margin, valueY, g.fontFace, valueColor)

	// period switcher row
	periodY := valueY + g.lineHeight
	g.layout.periods = g.layout.periods[:0]
	x := margin
	for _, p := range market.Periods {
		label := p.Label()
		w, h := text.Measure(label, g.fontFace, -1)
		c := g.theme.MutedText
		if p == g.sel.Period {
			c = g.theme.Active
		}
		esset.DrawText(screen, label, 0, x, periodY, g.fontFace, c)
		g.layout.periods = append(g.layout.periods, image.Rect(int(x), int(periodY), int(x+w), int(periodY+h)))
		x += w + 14.0*s
	}

	// chart area
	chartRect := image.Rect(
		int(margin),
		int(periodY+g.lineHeight+10.0*s),
		screenWidth-int(margin),
		screenHeight-int(margin),
	)
	g.layout.chart = chartRect
	vector.DrawFilledRect(screen, float32(chartRect.Min.X), float32(chartRect.Min.Y),
		float32(chartRect.Dx()), float32(chartRect.Dy()), g.theme.ChartFill, false)

	if len(g.history) == 0 {
		message := "No history data yet."
		w, h := text.Measure(message, g.fontFace, -1)
		msgX := float64(chartRect.Min.X) + (float64(chartRect.Dx())-w)/2.0
		msgY := float64(chartRect.Min.Y) + (float64(chartRect.Dy())-h)/2.0
		esset.DrawText(screen, message, 0, msgX, msgY, g.fontFace, g.theme.MutedText)
		return
	}

	displayed := g.refreshScaled(chartRect, now)
	if len(displayed) == 0 {
		return
	}

	ox, oy := float64(chartRect.Min.X), float64(chartRect.Min.Y)
	line := make([]chart.Point, len(displayed))
	for i, p := range displayed {
		line[i] = chart.Point{X: p.X + ox, Y: p.Y + oy}
	}
	path := chart.BuildPath(line)

	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width: g.theme.LineWidth * float32(s),
	})
	op := &ebiten.DrawTrianglesOptions{}
	op.ColorM.Scale(float64(accent.R)/255.0, float64(accent.G)/255.0, float64(accent.B)/255.0, 1)
	screen.DrawTriangles(vs, is, g.solidColorImage, op)

	last := line[len(line)-1]
	vector.DrawFilledCircle(screen, float32(last.X), float32(last.Y),
		3.0*float32(s), g.theme.Marker, false)

	g.drawHover(screen, chartRect)
}

// refreshScaled re-scales the series when the data or the chart area
// changed, retargeting the transition on new data and snapping on
// resize, then returns the series to display this frame.
func (g *Game) refreshScaled(chartRect image.Rectangle, now time.Time) []chart.Point {
	w, h := float64(chartRect.Dx()), float64(chartRect.Dy())
	resized := w != g.chartW || h != g.chartH

	if g.dataDirty || resized {
		target := chart.Scale(g.history, w, h, g.theme.ChartInsets)
		if g.dataDirty && !resized {
			from := g.scaled
			if g.transition != nil {
				from = g.transition.At(now)
			}
			g.transition = chart.NewTransition(from, target, now, chart.DefaultTransitionDuration)
		} else {
			g.transition = nil
		}
		g.scaled = target
		g.dataDirty = false
		g.chartW, g.chartH = w, h
	}

	if g.transition != nil {
		if g.transition.Done(now) {
			g.transition = nil
			return g.scaled
		}
		return g.transition.At(now)
	}
	return g.scaled
}

// drawHover paints a marker and readout for the sample nearest to the
// cursor while it is inside the chart.
func (g *Game) drawHover(screen *ebiten.Image, chartRect image.Rectangle) {
	mx, my := ebiten.CursorPosition()
	if !ptIn(chartRect, mx, my) {
		return
	}
	if len(g.scaled) != len(g.history) {
		// placeholder series has no real samples behind it
		return
	}

	ox, oy := float64(chartRect.Min.X), float64(chartRect.Min.Y)
	idx := chart.NearestIndex(g.scaled, float64(mx)-ox)
	if idx < 0 {
		return
	}
	point := g.history[idx]
	at := g.scaled[idx]

	vector.DrawFilledCircle(screen, float32(at.X+ox), float32(at.Y+oy),
		4.0*float32(g.deviceScale), g.theme.AccentFor(g.sel.Coin().Symbol), false)

	readout := fmt.Sprintf("%s @ %s",
		market.FormatSigned(point.Price, "$", true, false),
		point.Time.Local().Format("Jan 2 15:04"))
	esset.DrawText(screen, readout, 0,
		ox+g.theme.ChartInsets.Left, oy+4.0*g.deviceScale, g.fontFace, g.theme.Text)
}

// deltaReadout formats the change between the current value and the
// earliest loaded point, absolute or percent per the toggle.
func (g *Game) deltaReadout() (string, color.RGBA) {
	if !g.hasValue {
		return "--", g.theme.MutedText
	}

	var v float64
	var ok bool
	if g.showPercent {
		v, ok = market.PercentDelta(g.value, g.history)
	} else {
		v, ok = market.AbsoluteDelta(g.value, g.history)
	}
	if !ok {
		return "--", g.theme.MutedText
	}

	c := g.theme.MutedText
	if v > 0 {
		c = g.theme.Gain
	} else if v < 0 {
		c = g.theme.Loss
	}

	if g.showPercent {
		return market.FormatSigned(v, "%", false, true), c
	}
	return market.FormatSigned(v, "$", false, false), c
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

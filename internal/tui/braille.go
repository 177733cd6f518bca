package tui

// classTip marks tooltip label cells inside the canvas.
const classTip uint8 = 0xFF

type tipLabel struct {
	x, y int
	text []rune
}

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit dot mask
	c    [][]uint8 // per-cell color class, highest writer wins
	tip  *tipLabel
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	c := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
		c[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m, c: c}
}

// setTip overlays a one-line label at cell coords, clamped to the
// buffer. Only one label is shown at a time.
func (b *brailleBuf) setTip(x, y int, text string) {
	r := []rune(text)
	if len(r) == 0 || y < 0 || y >= b.h {
		return
	}
	if x+len(r) > b.w {
		x = b.w - len(r)
	}
	if x < 0 {
		x = 0
		if len(r) > b.w {
			r = r[:b.w]
		}
	}
	b.tip = &tipLabel{x: x, y: y, text: r}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell) with the
// given color class.
func (b *brailleBuf) setPixel(mx, my int, class uint8) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	if class > b.c[cy][cx] {
		b.c[cy][cx] = class
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, class uint8) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, class)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// toLines renders the buffer to one styled string per cell row. Runs of
// cells sharing a color class are styled together to keep the output
// compact.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	if b.w == 0 {
		return out
	}
	classes := make([]uint8, b.w)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
				classes[x] = classNone
			} else {
				row[x] = rune(0x2800 + int(mask))
				classes[x] = b.c[y][x]
			}
		}
		if b.tip != nil && b.tip.y == y {
			for i, ch := range b.tip.text {
				row[b.tip.x+i] = ch
				classes[b.tip.x+i] = classTip
			}
		}
		var sb []byte
		runStart := 0
		runClass := classes[0]
		flush := func(end int) {
			if end <= runStart {
				return
			}
			seg := string(row[runStart:end])
			switch {
			case runClass == classTip:
				seg = tipStyle.Render(seg)
			case runClass != classNone:
				if st, ok := classStyles[runClass]; ok {
					seg = st.Render(seg)
				}
			}
			sb = append(sb, seg...)
		}
		for x := 1; x < b.w; x++ {
			if classes[x] != runClass {
				flush(x)
				runStart = x
				runClass = classes[x]
			}
		}
		flush(b.w)
		out[y] = string(sb)
	}
	return out
}

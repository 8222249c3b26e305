package emulator

import (
	"fmt"
	"image"

	"github.com/tuboc/chirp/chip8"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	PanelLineHeight = 13
	PanelLines      = chip8.HistorySize
	PanelHeight     = PanelLines*PanelLineHeight + 2*panelMargin

	panelMargin = 4
)

// keypadLayout is the hex keypad as it appears on the COSMAC VIP.
var keypadLayout = [4][4]uint8{
	{0x1, 0x2, 0x3, 0xC},
	{0x4, 0x5, 0x6, 0xD},
	{0x7, 0x8, 0x9, 0xE},
	{0xA, 0x0, 0xB, 0xF},
}

// PanelText lays out the debug information in three columns: instruction
// history, V registers and the remaining registers with the keypad.
func PanelText(s chip8.State) []string {
	right := make([]string, PanelLines)
	right[0] = fmt.Sprintf("DT = %02X", s.DT)
	right[1] = fmt.Sprintf("ST = %02X", s.ST)
	right[2] = fmt.Sprintf("SP = %02X", s.SP)
	right[3] = fmt.Sprintf(" I = %04X", s.I)
	right[4] = fmt.Sprintf("PC = %04X", s.PC)
	for row, keys := range keypadLayout {
		line := "     "
		if row == 0 {
			line = "KEYS "
		}
		for _, k := range keys {
			if s.Keys[k] {
				line += "1"
			} else {
				line += "0"
			}
		}
		right[6+row] = line
	}
	switch {
	case s.WaitingForKey:
		right[11] = "WAITING KEY"
	case s.Paused:
		right[11] = "PAUSED"
	}

	lines := make([]string, PanelLines)
	for i := range lines {
		hist := ""
		if i < len(s.History) {
			hist = s.History[i]
		}
		lines[i] = fmt.Sprintf("%-26s V%X = %02X   %s", hist, i, s.V[i], right[i])
	}
	return lines
}

// RenderPanel rasterizes lines with a fixed 7x13 font into an alpha mask.
func RenderPanel(lines []string, width, height int) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		d.Dot = fixed.P(panelMargin, panelMargin+(i+1)*PanelLineHeight-2)
		d.DrawString(line)
	}
	return img
}

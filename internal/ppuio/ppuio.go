// Package ppuio implements the PPU I/O register file at relative
// offsets $00-$3F within $2100-$213F. Offsets $00-$33 are write-only
// from the CPU's perspective, $34-$3F read-only; scanline rendering
// itself is not modeled here, only the register storage and latch
// behavior the CPU observes.
package ppuio

// Relative offsets (add to $2100 for the full bus address).
const (
	INIDISP = 0x00
	OBSEL   = 0x01
	OAMADDL = 0x02
	OAMADDH = 0x03
	OAMDATA = 0x04
	BGMODE  = 0x05
	MOSAIC  = 0x06
	BG1SC   = 0x07
	BG2SC   = 0x08
	BG3SC   = 0x09
	BG4SC   = 0x0A
	BG12NBA = 0x0B
	BG34NBA = 0x0C
	BG1HOFS = 0x0D
	BG1VOFS = 0x0E
	BG2HOFS = 0x0F
	BG2VOFS = 0x10
	BG3HOFS = 0x11
	BG3VOFS = 0x12
	BG4HOFS = 0x13
	BG4VOFS = 0x14
	VMAIN   = 0x15
	VMADDL  = 0x16
	VMADDH  = 0x17
	VMDATAL = 0x18
	VMDATAH = 0x19
	M7SEL   = 0x1A
	M7A     = 0x1B
	M7B     = 0x1C
	M7C     = 0x1D
	M7D     = 0x1E
	M7X     = 0x1F
	M7Y     = 0x20
	CGADD   = 0x21
	CGDATA  = 0x22
	W12SEL  = 0x23
	W34SEL  = 0x24
	WOBJSEL = 0x25
	WH0     = 0x26
	WH1     = 0x27
	WH2     = 0x28
	WH3     = 0x29
	WBGLOG  = 0x2A
	WOBJLOG = 0x2B
	TM      = 0x2C
	TS      = 0x2D
	TMW     = 0x2E
	TSW     = 0x2F
	CGWSEL  = 0x30
	CGADSUB = 0x31
	COLDATA = 0x32
	SETINI  = 0x33

	MPYL    = 0x34
	MPYM    = 0x35
	MPYH    = 0x36
	SLHV    = 0x37
	RDOAM   = 0x38
	RDVRAML = 0x39
	RDVRAMH = 0x3A
	RDCGRAM = 0x3B
	OPHCT   = 0x3C
	OPVCT   = 0x3D
	STAT77  = 0x3E
	STAT78  = 0x3F
)

// DoubleReg is a latch-paired 16-bit port: every access, read or
// write, touches one byte and flips which byte is touched next. The
// toggle is shared between reads and writes of the same port.
type DoubleReg struct {
	value      uint16
	highActive bool
}

// Read returns the low byte on the first access after construction (or
// after a write left the toggle pointing low), then the high byte, and
// so on, flipping the toggle on every call.
func (r *DoubleReg) Read() uint8 {
	var value uint8
	if r.highActive {
		value = uint8(r.value >> 8)
	} else {
		value = uint8(r.value)
	}
	r.highActive = !r.highActive
	return value
}

// Write stores into the low or high byte depending on the toggle,
// flipping it afterward.
func (r *DoubleReg) Write(value uint8) {
	if r.highActive {
		r.value = r.value&0x00FF | uint16(value)<<8
	} else {
		r.value = r.value&0xFF00 | uint16(value)
	}
	r.highActive = !r.highActive
}

// Value returns the full 16-bit latched value without touching the
// toggle, for test assertions and peek-style inspection.
func (r *DoubleReg) Value() uint16 { return r.value }

// Peek returns whichever byte the next Read would return, without
// flipping the toggle. Used by the disassembler's side-effect-free
// addressing computations.
func (r *DoubleReg) Peek() uint8 {
	if r.highActive {
		return uint8(r.value >> 8)
	}
	return uint8(r.value)
}

// PpuIo holds every CPU-visible PPU register.
type PpuIo struct {
	IniDisp  uint8
	ObSel    uint8
	OamAddL  uint8
	OamAddH  uint8
	OamData  DoubleReg
	BgMode   uint8
	Mosaic   uint8
	Bg1Sc    uint8
	Bg2Sc    uint8
	Bg3Sc    uint8
	Bg4Sc    uint8
	Bg12Nba  uint8
	Bg34Nba  uint8
	Bg1Hofs  DoubleReg
	Bg1Vofs  DoubleReg
	Bg2Hofs  DoubleReg
	Bg2Vofs  DoubleReg
	Bg3Hofs  DoubleReg
	Bg3Vofs  DoubleReg
	Bg4Hofs  DoubleReg
	Bg4Vofs  DoubleReg
	VmAin    uint8
	VmAddL   uint8
	VmAddH   uint8
	VmDataL  uint8
	VmDataH  uint8
	M7Sel    uint8
	M7A      DoubleReg
	M7B      DoubleReg
	M7C      DoubleReg
	M7D      DoubleReg
	M7X      DoubleReg
	M7Y      DoubleReg
	CgAdd    uint8
	CgData   DoubleReg
	W12Sel   uint8
	W34Sel   uint8
	WobjSel  uint8
	Wh0      uint8
	Wh1      uint8
	Wh2      uint8
	Wh3      uint8
	WbgLog   uint8
	WobjLog  uint8
	Tm       uint8
	Ts       uint8
	Tmw      uint8
	Tsw      uint8
	CgWsel   uint8
	CgAdsub  uint8
	ColData  uint8
	Setini   uint8
	MpyL     uint8
	MpyM     uint8
	MpyH     uint8
	SlHv     uint8
	RdOam    DoubleReg
	RdVramL  uint8
	RdVramH  uint8
	RdCgram  DoubleReg
	OpHct    DoubleReg
	OpVct    DoubleReg
	Stat77   uint8
	Stat78   uint8
}

// New returns a PpuIo at its documented power-on state: INIDISP=$08,
// BGMODE=$0F, VMAIN=$0F, MPYL=$01, M7A=M7B=$00FF, OPHCT=OPVCT=$01FF.
// The mode-7 and scanline-latch defaults are established the same way
// the reference implementation does it: two sequential latched writes,
// so the toggle ends in a defined (low-next) state rather than being
// poked directly.
func New() *PpuIo {
	p := &PpuIo{
		IniDisp: 0x08,
		BgMode:  0x0F,
		VmAin:   0x0F,
		MpyL:    0x01,
	}
	p.M7A.Write(0xFF)
	p.M7A.Write(0x00)
	p.M7B.Write(0xFF)
	p.M7B.Write(0x00)
	p.OpHct.Write(0xFF)
	p.OpHct.Write(0x01)
	p.OpVct.Write(0xFF)
	p.OpVct.Write(0x01)
	return p
}

// Reset restores power-on defaults.
func (p *PpuIo) Reset() {
	*p = *New()
}

// Read decodes a relative offset ($00-$3F) and returns the register
// value, toggling latches as appropriate.
func (p *PpuIo) Read(offset uint8) uint8 {
	switch offset {
	case INIDISP:
		return p.IniDisp
	case OBSEL:
		return p.ObSel
	case OAMADDL:
		return p.OamAddL
	case OAMADDH:
		return p.OamAddH
	case OAMDATA:
		return p.OamData.Read()
	case BGMODE:
		return p.BgMode
	case MOSAIC:
		return p.Mosaic
	case BG1SC:
		return p.Bg1Sc
	case BG2SC:
		return p.Bg2Sc
	case BG3SC:
		return p.Bg3Sc
	case BG4SC:
		return p.Bg4Sc
	case BG12NBA:
		return p.Bg12Nba
	case BG34NBA:
		return p.Bg34Nba
	case BG1HOFS:
		return p.Bg1Hofs.Read()
	case BG1VOFS:
		return p.Bg1Vofs.Read()
	case BG2HOFS:
		return p.Bg2Hofs.Read()
	case BG2VOFS:
		return p.Bg2Vofs.Read()
	case BG3HOFS:
		return p.Bg3Hofs.Read()
	case BG3VOFS:
		return p.Bg3Vofs.Read()
	case BG4HOFS:
		return p.Bg4Hofs.Read()
	case BG4VOFS:
		return p.Bg4Vofs.Read()
	case VMAIN:
		return p.VmAin
	case VMADDL:
		return p.VmAddL
	case VMADDH:
		return p.VmAddH
	case VMDATAL:
		return p.VmDataL
	case VMDATAH:
		return p.VmDataH
	case M7SEL:
		return p.M7Sel
	case M7A:
		return p.M7A.Read()
	case M7B:
		return p.M7B.Read()
	case M7C:
		return p.M7C.Read()
	case M7D:
		return p.M7D.Read()
	case M7X:
		return p.M7X.Read()
	case M7Y:
		return p.M7Y.Read()
	case CGADD:
		return p.CgAdd
	case CGDATA:
		return p.CgData.Read()
	case W12SEL:
		return p.W12Sel
	case W34SEL:
		return p.W34Sel
	case WOBJSEL:
		return p.WobjSel
	case WH0:
		return p.Wh0
	case WH1:
		return p.Wh1
	case WH2:
		return p.Wh2
	case WH3:
		return p.Wh3
	case WBGLOG:
		return p.WbgLog
	case WOBJLOG:
		return p.WobjLog
	case TM:
		return p.Tm
	case TS:
		return p.Ts
	case TMW:
		return p.Tmw
	case TSW:
		return p.Tsw
	case CGWSEL:
		return p.CgWsel
	case CGADSUB:
		return p.CgAdsub
	case COLDATA:
		return p.ColData
	case SETINI:
		return p.Setini
	case MPYL:
		return p.MpyL
	case MPYM:
		return p.MpyM
	case MPYH:
		return p.MpyH
	case SLHV:
		return p.SlHv
	case RDOAM:
		return p.RdOam.Read()
	case RDVRAML:
		return p.RdVramL
	case RDVRAMH:
		return p.RdVramH
	case RDCGRAM:
		return p.RdCgram.Read()
	case OPHCT:
		return p.OpHct.Read()
	case OPVCT:
		return p.OpVct.Read()
	case STAT77:
		return p.Stat77
	case STAT78:
		return p.Stat78
	default:
		return 0
	}
}

// Peek mirrors Read but never flips a DoubleReg's toggle, for use by
// side-effect-free disassembler addressing computations.
func (p *PpuIo) Peek(offset uint8) uint8 {
	switch offset {
	case OAMDATA:
		return p.OamData.Peek()
	case BG1HOFS:
		return p.Bg1Hofs.Peek()
	case BG1VOFS:
		return p.Bg1Vofs.Peek()
	case BG2HOFS:
		return p.Bg2Hofs.Peek()
	case BG2VOFS:
		return p.Bg2Vofs.Peek()
	case BG3HOFS:
		return p.Bg3Hofs.Peek()
	case BG3VOFS:
		return p.Bg3Vofs.Peek()
	case BG4HOFS:
		return p.Bg4Hofs.Peek()
	case BG4VOFS:
		return p.Bg4Vofs.Peek()
	case M7A:
		return p.M7A.Peek()
	case M7B:
		return p.M7B.Peek()
	case M7C:
		return p.M7C.Peek()
	case M7D:
		return p.M7D.Peek()
	case M7X:
		return p.M7X.Peek()
	case M7Y:
		return p.M7Y.Peek()
	case CGDATA:
		return p.CgData.Peek()
	case RDOAM:
		return p.RdOam.Peek()
	case RDCGRAM:
		return p.RdCgram.Peek()
	case OPHCT:
		return p.OpHct.Peek()
	case OPVCT:
		return p.OpVct.Peek()
	default:
		return p.Read(offset)
	}
}

// Write decodes a relative offset and stores the byte.
func (p *PpuIo) Write(offset uint8, value uint8) {
	switch offset {
	case INIDISP:
		p.IniDisp = value
	case OBSEL:
		p.ObSel = value
	case OAMADDL:
		p.OamAddL = value
	case OAMADDH:
		p.OamAddH = value
	case OAMDATA:
		p.OamData.Write(value)
	case BGMODE:
		p.BgMode = value
	case MOSAIC:
		p.Mosaic = value
	case BG1SC:
		p.Bg1Sc = value
	case BG2SC:
		p.Bg2Sc = value
	case BG3SC:
		p.Bg3Sc = value
	case BG4SC:
		p.Bg4Sc = value
	case BG12NBA:
		p.Bg12Nba = value
	case BG34NBA:
		p.Bg34Nba = value
	case BG1HOFS:
		p.Bg1Hofs.Write(value)
	case BG1VOFS:
		p.Bg1Vofs.Write(value)
	case BG2HOFS:
		p.Bg2Hofs.Write(value)
	case BG2VOFS:
		p.Bg2Vofs.Write(value)
	case BG3HOFS:
		p.Bg3Hofs.Write(value)
	case BG3VOFS:
		p.Bg3Vofs.Write(value)
	case BG4HOFS:
		p.Bg4Hofs.Write(value)
	case BG4VOFS:
		p.Bg4Vofs.Write(value)
	case VMAIN:
		p.VmAin = value
	case VMADDL:
		p.VmAddL = value
	case VMADDH:
		p.VmAddH = value
	case VMDATAL:
		p.VmDataL = value
	case VMDATAH:
		p.VmDataH = value
	case M7SEL:
		p.M7Sel = value
	case M7A:
		p.M7A.Write(value)
	case M7B:
		p.M7B.Write(value)
	case M7C:
		p.M7C.Write(value)
	case M7D:
		p.M7D.Write(value)
	case M7X:
		p.M7X.Write(value)
	case M7Y:
		p.M7Y.Write(value)
	case CGADD:
		p.CgAdd = value
	case CGDATA:
		p.CgData.Write(value)
	case W12SEL:
		p.W12Sel = value
	case W34SEL:
		p.W34Sel = value
	case WOBJSEL:
		p.WobjSel = value
	case WH0:
		p.Wh0 = value
	case WH1:
		p.Wh1 = value
	case WH2:
		p.Wh2 = value
	case WH3:
		p.Wh3 = value
	case WBGLOG:
		p.WbgLog = value
	case WOBJLOG:
		p.WobjLog = value
	case TM:
		p.Tm = value
	case TS:
		p.Ts = value
	case TMW:
		p.Tmw = value
	case TSW:
		p.Tsw = value
	case CGWSEL:
		p.CgWsel = value
	case CGADSUB:
		p.CgAdsub = value
	case COLDATA:
		p.ColData = value
	case SETINI:
		p.Setini = value
	case MPYL:
		p.MpyL = value
	case MPYM:
		p.MpyM = value
	case MPYH:
		p.MpyH = value
	case SLHV:
		p.SlHv = value
	case RDOAM:
		p.RdOam.Write(value)
	case RDVRAML:
		p.RdVramL = value
	case RDVRAMH:
		p.RdVramH = value
	case RDCGRAM:
		p.RdCgram.Write(value)
	case OPHCT:
		p.OpHct.Write(value)
	case OPVCT:
		p.OpVct.Write(value)
	case STAT77:
		p.Stat77 = value
	case STAT78:
		p.Stat78 = value
	}
}

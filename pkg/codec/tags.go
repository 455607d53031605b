package codec

// Tag bytes of the wire format. These values are fixed points of the
// format and shared by every conforming implementation; changing any of
// them breaks interoperability.
const (
	tagNil     = 0xC0
	tagFalse   = 0xC2
	tagTrue    = 0xC3
	tagBin8    = 0xC4
	tagBin16   = 0xC5
	tagFloat32 = 0xCA
	tagFloat64 = 0xCB
	tagInt32   = 0xD2
	tagInt64   = 0xD3
	tagStr8    = 0xD9
	tagStr16   = 0xDA
	tagStr32   = 0xDB
	tagList16  = 0xDC
	tagList32  = 0xDD
	tagMap16   = 0xDE
	tagMap32   = 0xDF
)

// Base bytes of the packed one-byte forms. The low bits carry the
// payload length (fixstr) or element count (fixlist, fixmap).
const (
	fixmapBase  = 0x80
	fixlistBase = 0x90
	fixstrBase  = 0xA0
	negFixBase  = 0xE0
)

// Size-class boundaries.
const (
	posFixintMax = 127
	negFixintMin = -32
	fixstrMax    = 31
	fixlistMax   = 15
	fixmapMax    = 15
	max8         = 0xFF
	max16        = 0xFFFF
)

package symcore

import "github.com/uSwapExchange/symcore/internal/registry"

// Symbology selects which encoder Encode/EncodeSegs dispatches to. The
// type and its constants live in internal/registry (the dispatch
// table's home) and are re-exported here so callers never import an
// internal package directly.
type Symbology = registry.Symbology

const (
	Code11          = registry.Code11
	Code39          = registry.Code39
	ExtendedCode39  = registry.ExtendedCode39
	Codabar         = registry.Codabar
	Code93          = registry.Code93
	Code128         = registry.Code128
	Code128AB       = registry.Code128AB
	EAN14           = registry.EAN14
	NVE18           = registry.NVE18
	Interleaved2of5 = registry.Interleaved2of5
	ITF14           = registry.ITF14
	DPLeitcode      = registry.DPLeitcode
	DPIdentcode     = registry.DPIdentcode
	Standard2of5    = registry.Standard2of5
	MSIPlessey      = registry.MSIPlessey
	PZN             = registry.PZN
	VIN             = registry.VIN
	Telepen         = registry.Telepen
	Pharmacode      = registry.Pharmacode
	ChannelCode     = registry.ChannelCode
	CodablockF      = registry.CodablockF
	GS1_128         = registry.GS1_128
	EAN13           = registry.EAN13
	EAN8            = registry.EAN8
	UPCA            = registry.UPCA

	DataMatrix    = registry.DataMatrix
	QRCode        = registry.QRCode
	MicroQRCode   = registry.MicroQRCode
	RMQRCode      = registry.RMQRCode
	Aztec         = registry.Aztec
	AztecRune     = registry.AztecRune
	HanXin        = registry.HanXin
	GridMatrix    = registry.GridMatrix
	PDF417        = registry.PDF417
	PDF417Compact = registry.PDF417Compact
	MicroPDF417   = registry.MicroPDF417
	MaxiCode      = registry.MaxiCode
	DotCode       = registry.DotCode
)

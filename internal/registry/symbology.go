package registry

// Symbology selects which encoder Dispatch calls. Values are a flat
// enum, not a class hierarchy: static dispatch tables over subclassing.
// It lives here, not in the root symcore
// package, so every encoder package and the dispatch table can share
// one definition without an import cycle; symcore.Symbology is a type
// alias to this type.
type Symbology int

const (
	_ Symbology = iota

	Code11
	Code39
	ExtendedCode39
	Codabar
	Code93
	Code128
	Code128AB
	EAN14
	NVE18
	Interleaved2of5
	ITF14
	DPLeitcode
	DPIdentcode
	Standard2of5
	MSIPlessey
	PZN
	VIN
	Telepen
	Pharmacode
	ChannelCode
	CodablockF
	GS1_128
	EAN13
	EAN8
	UPCA

	DataMatrix
	QRCode
	MicroQRCode
	RMQRCode
	Aztec
	AztecRune
	HanXin
	GridMatrix
	PDF417
	PDF417Compact
	MicroPDF417
	MaxiCode
	DotCode
)

var names = map[Symbology]string{
	Code11:          "Code 11",
	Code39:          "Code 39",
	ExtendedCode39:  "Extended Code 39",
	Codabar:         "Codabar",
	Code93:          "Code 93",
	Code128:         "Code 128",
	Code128AB:       "Code 128 (A/B subset)",
	EAN14:           "EAN-14",
	NVE18:           "NVE-18",
	Interleaved2of5: "Interleaved 2 of 5",
	ITF14:           "ITF-14",
	DPLeitcode:      "Deutsche Post Leitcode",
	DPIdentcode:     "Deutsche Post Identcode",
	Standard2of5:    "Standard 2 of 5",
	MSIPlessey:      "MSI Plessey",
	PZN:             "Pharmazentralnummer",
	VIN:             "Vehicle Identification Number",
	Telepen:         "Telepen",
	Pharmacode:      "Pharmacode",
	ChannelCode:     "Channel Code",
	CodablockF:      "Codablock-F",
	GS1_128:         "GS1-128",
	EAN13:           "EAN-13",
	EAN8:            "EAN-8",
	UPCA:            "UPC-A",
	DataMatrix:      "Data Matrix",
	QRCode:          "QR Code",
	MicroQRCode:     "Micro QR Code",
	RMQRCode:        "rMQR Code",
	Aztec:           "Aztec Code",
	AztecRune:       "Aztec Runes",
	HanXin:          "Han Xin Code",
	GridMatrix:      "Grid Matrix",
	PDF417:          "PDF417",
	PDF417Compact:   "Compact PDF417",
	MicroPDF417:     "MicroPDF417",
	MaxiCode:        "MaxiCode",
	DotCode:         "DotCode",
}

func (s Symbology) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return "unknown symbology"
}

// IsMatrix reports whether s fills Result.Modules/Rows/Cols (a 2D
// module grid) rather than Result.WidthRows (one or more bar/space
// width-strings — PDF417 and its variants are row-stacked linear
// symbols in this sense, same as Codablock-F, despite being 2D
// barcodes in the everyday sense of the term).
func (s Symbology) IsMatrix() bool {
	switch s {
	case DataMatrix, QRCode, MicroQRCode, RMQRCode, Aztec, AztecRune, HanXin,
		GridMatrix, MaxiCode, DotCode:
		return true
	}
	return false
}

// table is the dispatch table itself: one function pointer per
// symbology, registered by each encoder package's init().
var table = map[Symbology]EncodeFunc{}

// Register installs the encoder for s. Called from each encoder
// package's init(); panics on a duplicate registration since that can
// only be a programming error.
func Register(s Symbology, fn EncodeFunc) {
	if _, exists := table[s]; exists {
		panic("registry: duplicate registration for " + s.String())
	}
	table[s] = fn
}

// Dispatch looks up and calls the encoder for s.
func Dispatch(s Symbology, req Request) (Result, error) {
	fn, ok := table[s]
	if !ok {
		return Result{}, &Err{Code: ErrInvalidOption, Message: "unsupported symbology: " + s.String()}
	}
	return fn(req)
}

package swatch

// Encoding is the strategy tag of a wire record.
type Encoding string

const (
	EncodingHexString          Encoding = "hexString"
	EncodingSystemColor        Encoding = "systemColor"
	EncodingMixedColors        Encoding = "mixedColors"
	EncodingColorWithIntensity Encoding = "colorWithIntensity"
)

// Known reports whether e is one of the four defined encodings.
func (e Encoding) Known() bool {
	switch e {
	case EncodingHexString, EncodingSystemColor, EncodingMixedColors, EncodingColorWithIntensity:
		return true
	default:
		return false
	}
}

// Record is the serialized form of a NamedColor. Name, ID and Encoding are
// always written; Name is a pointer so that an absent name can be told apart
// from an empty one. The remaining fields are set only when the encoding
// requires them and are omitted from JSON otherwise. Absent and null fields
// decode identically.
type Record struct {
	Name     *string  `json:"name"`
	ID       string   `json:"id"`
	Encoding Encoding `json:"encoding"`

	// hexString
	HexString *string `json:"hexString,omitempty"`

	// systemColor
	SystemColorName *string `json:"systemColorName,omitempty"`

	// mixedColors
	BaseHexString *string  `json:"baseHexString,omitempty"`
	MixHexString  *string  `json:"mixHexString,omitempty"`
	MixFraction   *float64 `json:"mixFraction,omitempty"`
	ColorSpace    *string  `json:"colorSpace,omitempty"`

	// colorWithIntensity
	Intensity           *string `json:"intensity,omitempty"`
	BaseSystemColorName *string `json:"baseSystemColorName,omitempty"`
	BaseColorHex        *string `json:"baseColorHex,omitempty"`
}

// Envelope is the fixed wrapper around every record on the wire.
type Envelope struct {
	Data *Record `json:"data"`
}

func ptr[T any](v T) *T {
	return &v
}

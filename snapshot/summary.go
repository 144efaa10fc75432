package snapshot

import (
	"crypto/sha256"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Summary describes a build without its data, for tools that track
// snapshot changes across builds.
type Summary struct {
	Version  int              `cbor:"1,keyasint"`
	Build    string           `cbor:"2,keyasint"`
	Objects  []string         `cbor:"3,keyasint"`
	Natives  []string         `cbor:"4,keyasint"`
	Variants []VariantSummary `cbor:"5,keyasint"`
}

// VariantSummary describes one byte order variant.
type VariantSummary struct {
	Order  string   `cbor:"1,keyasint"`
	Length int      `cbor:"2,keyasint"`
	Digest [32]byte `cbor:"3,keyasint"` // SHA-256 of the init data
	Stats  Stats    `cbor:"4,keyasint"`
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("snapshot: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Summary returns the summary of b.
func (b *Build) Summary() *Summary {
	s := &Summary{
		Objects: b.Objects(),
		Natives: b.Natives(),
	}
	if b.BuildInfo != nil {
		s.Version = b.BuildInfo.Version
		s.Build = b.BuildInfo.Build
	}
	for _, v := range b.Variants {
		s.Variants = append(s.Variants, VariantSummary{
			Order:  v.Order.String(),
			Length: len(v.Data),
			Digest: sha256.Sum256(v.Data),
			Stats:  v.Stats,
		})
	}
	return s
}

// MarshalSummary serializes a Summary to canonical CBOR.
func MarshalSummary(s *Summary) ([]byte, error) {
	return cborEncMode.Marshal(s)
}

// UnmarshalSummary deserializes a Summary from CBOR bytes.
func UnmarshalSummary(data []byte) (*Summary, error) {
	var s Summary
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("snapshot: unmarshal summary: %w", err)
	}
	return &s, nil
}

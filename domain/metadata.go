package domain

import (
	"github.com/mysterymart/goapi/base/ctx"
)

// Attribute is one trait of a token's metadata.
type Attribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

// Metadata is the decorative document a token URI points at. Every field is
// optional; a missing or unfetchable document never blocks the structural
// record it decorates.
type Metadata struct {
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Image       string      `json:"image,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
}

type MetadataUseCase interface {
	// Resolve fetches and parses the document behind uri. On any failure it
	// returns an empty Metadata together with ErrMetadataUnavailable.
	Resolve(ctx.Ctx, string) (*Metadata, error)
	// ResolveAll fans out Resolve over many uris, preserving input order.
	// Failed entries come back empty.
	ResolveAll(ctx.Ctx, []string) []*Metadata
}

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

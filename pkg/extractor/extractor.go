// Package extractor mines component metadata from raw source text.
//
// Extraction is heuristic text scanning, not parsing. Both entry points
// degrade to partial or empty results on input they do not understand and
// never return errors. An AST-backed implementation can replace the internals
// as long as it keeps the PropDescriptor contract.
package extractor

// Extract runs description and property extraction over src.
func Extract(src string) Metadata {
	return Metadata{
		Description: ExtractDescription(src),
		Props:       ExtractProperties(src),
	}
}

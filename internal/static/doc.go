// Package static implements the request-to-file pipeline: path
// resolution confined to a content root, content-type lookup,
// conditional-cache negotiation, compression selection, and streaming
// response assembly.
package static

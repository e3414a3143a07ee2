package protocol

import "io"

// ProofFileData is a downloaded proof artifact, such as the image or video
// captured during a check.
//
// Content is backed by the transport's response body and can be consumed
// once; ownership transfers to the caller, who must close it.
type ProofFileData struct {
	// Content streams the proof file bytes
	Content io.ReadCloser

	// ContentType is the media type the service declared for the file
	ContentType string
}

// Close releases the underlying response body
func (p *ProofFileData) Close() error {
	return p.Content.Close()
}

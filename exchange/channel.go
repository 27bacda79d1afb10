package exchange

import (
	"net/http"

	"github.com/MrEthical07/goLaunch/credential"
)

// CredentialChannel applies transport credentials to an outbound request.
type CredentialChannel interface {
	Apply(req *http.Request)
}

// WebSession is the browser-style channel. It sets no headers; cookies attached
// to the underlying http.Client carry the session.
type WebSession struct{}

// Apply implements CredentialChannel as a no-op.
func (WebSession) Apply(*http.Request) {}

// EmbeddedCredential attaches a host-injected credential blob as a header.
type EmbeddedCredential struct {
	Header string
	Blob   string
}

// Apply sets the credential header when a blob is present.
func (e EmbeddedCredential) Apply(req *http.Request) {
	if e.Blob != "" {
		req.Header.Set(e.Header, e.Blob)
	}
}

// ChannelFor maps a detected credential channel onto its wire behavior.
func ChannelFor(ch credential.Channel, header string) CredentialChannel {
	if ch.Kind == credential.KindEmbedded {
		return EmbeddedCredential{Header: header, Blob: ch.Blob}
	}
	return WebSession{}
}

package control

import (
	"bytes"
	"fmt"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/clearsign"
)

// ParseSigned parses clearsigned control data, the format used by .dsc
// source package descriptions and InRelease repository indices.
//
// The PGP armor around the document is stripped before parsing. If a
// keyring is provided, the signature is verified against it and a
// verification failure is fatal; with a nil keyring the signature is
// ignored. The handler h receives parse diagnostics; nil means
// DefaultHandler.
func ParseSigned(data []byte, keyring openpgp.EntityList, h Handler) (*Document, error) {
	block, _ := clearsign.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no clearsigned message found")
	}

	if keyring != nil {
		if _, err := block.VerifySignature(keyring, nil); err != nil {
			return nil, fmt.Errorf("verifying signature: %w", err)
		}
	}

	p := NewParser()
	p.Handler = h
	doc, err := p.Parse(bytes.NewReader(block.Plaintext), "signed message")
	if err != nil {
		return doc, err
	}
	return doc, nil
}

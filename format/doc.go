// Package format names the text formats documents are read from and written to.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//	    // format.ErrBadFormat
//	}
//
// # Related Packages
//
//   - github.com/signadot/hashproxy/parse - Decode text into a raw document
//   - github.com/signadot/hashproxy/encode - Encode documents and proxies to text
package format

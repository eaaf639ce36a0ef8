package svgo

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/tdewolff/parse/v2"
)

// DataURI encodings.
const (
	DataURIBase64 = "base64"
	DataURIEnc    = "enc"
	DataURIUnenc  = "unenc"
)

const svgMimetype = "image/svg+xml"

// EncodeDataURI wraps the document in a data URI using the base64, percent (enc) or unencoded (unenc) form.
func EncodeDataURI(s, encoding string) (string, error) {
	prefix := "data:" + svgMimetype
	switch encoding {
	case DataURIBase64:
		return prefix + ";base64," + base64.StdEncoding.EncodeToString([]byte(s)), nil
	case DataURIEnc:
		return prefix + "," + string(parse.EncodeURL([]byte(s), parse.DataURIEncodingTable)), nil
	case DataURIUnenc:
		return prefix + "," + s, nil
	}
	return "", fmt.Errorf("unknown data URI encoding %q", encoding)
}

// DecodeDataURI returns the document of an SVG data URI.
func DecodeDataURI(uri []byte) ([]byte, error) {
	mediatype, data, err := parse.DataURI(uri)
	if err != nil {
		return nil, err
	} else if mimetype, _ := parse.Mediatype(mediatype); !bytes.Equal(mimetype, []byte(svgMimetype)) {
		return nil, fmt.Errorf("unexpected mediatype %s", mediatype)
	}
	return data, nil
}

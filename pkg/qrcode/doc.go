// Package qrcode renders QR codes as PNG images, with optional base64
// data-URI output for direct HTML embedding.
//
// Codes are generated with medium error correction, which recovers from
// roughly 15% data corruption and suits typical screen-to-phone scanning.
//
// Usage:
//
//	png, err := qrcode.Generate("https://example.com/?session=abc", 360)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	dataURI, err := qrcode.GenerateBase64Image(content, qrcode.DefaultSize)
//	// <img src="{{dataURI}}">
package qrcode

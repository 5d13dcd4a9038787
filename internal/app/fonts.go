package app

import (
	"fmt"

	"github.com/plus3/livetext/livetext"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

type faceKey struct {
	font livetext.FontID
	size float64
}

// FontBook resolves font identifiers to faces, creating each (font, size)
// face once.
type FontBook struct {
	sources map[livetext.FontID]*opentype.Font
	faces   map[faceKey]font.Face
}

// LoadFontBook parses the embedded Go fonts: bold for FontSans and mono for
// FontMono.
func LoadFontBook() (FontBook, error) {
	book := FontBook{
		sources: make(map[livetext.FontID]*opentype.Font),
		faces:   make(map[faceKey]font.Face),
	}

	for id, data := range map[livetext.FontID][]byte{
		livetext.FontSans: gobold.TTF,
		livetext.FontMono: gomono.TTF,
	} {
		parsed, err := opentype.Parse(data)
		if err != nil {
			return FontBook{}, fmt.Errorf("parse %s font: %w", id, err)
		}
		book.sources[id] = parsed
	}

	return book, nil
}

// Face returns the face for id at size, falling back to a fixed bitmap face
// when the font is unknown or the face cannot be built.
func (b *FontBook) Face(id livetext.FontID, size float64) font.Face {
	key := faceKey{font: id, size: size}
	if face, ok := b.faces[key]; ok {
		return face
	}

	face := font.Face(basicfont.Face7x13)
	if src, ok := b.sources[id]; ok && size > 0 {
		f, err := opentype.NewFace(src, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			log.WithError(err).WithFields(log.Fields{"font": id, "size": size}).Warn("Falling back to bitmap face")
		} else {
			face = f
		}
	}

	b.faces[key] = face
	return face
}
